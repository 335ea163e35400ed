package app

import (
	"career_advisor_backend/docs"
	"career_advisor_backend/internal/config"
	"career_advisor_backend/internal/middleware"
	"career_advisor_backend/internal/util"
	"career_advisor_backend/pkg/monitoring"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes (no login required)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/colleges/:id", c.college.GetCollege)
	}

	// Authorized routes
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.POST("/form", c.profile.SubmitForm)
		authGroup.POST("/test/start", c.test.StartTest)
		authGroup.POST("/test/submit", c.test.SubmitTest)
		authGroup.GET("/recommendations", c.recommendation.GetRecommendations)
		authGroup.POST("/colleges/search", c.college.Search)
		authGroup.GET("/resources", c.resource.GetResources)
	}

	a.registerFrontend(router, cfg)
}

// registerFrontend serves the bundled single-page frontend for non-API
// paths, falling back to index.html for client-side routes.
func (a *App) registerFrontend(router *gin.Engine, cfg *config.Config) {
	dir := cfg.Server.FrontendDir
	if dir == "" {
		return
	}

	router.NoRoute(func(ctx *gin.Context) {
		path := ctx.Request.URL.Path
		if strings.HasPrefix(path, "/api/") {
			util.NotFound(ctx)
			return
		}

		file := filepath.Join(dir, filepath.Clean("/"+path))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			ctx.File(file)
			return
		}
		ctx.File(filepath.Join(dir, "index.html"))
	})
}
