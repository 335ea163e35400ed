package app

import (
	"career_advisor_backend/internal/config"
	"career_advisor_backend/internal/controller"
	"career_advisor_backend/internal/engine"
	"career_advisor_backend/internal/repository"
	"career_advisor_backend/internal/service"
	"career_advisor_backend/pkg/database"
	"career_advisor_backend/pkg/logger"
	"career_advisor_backend/pkg/monitoring"
	"career_advisor_backend/pkg/security"
	"career_advisor_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	tracerProvider *sdktrace.TracerProvider
}

type repositories struct {
	user     *repository.UserRepository
	profile  *repository.ProfileRepository
	question *repository.QuestionRepository
	session  *repository.TestSessionRepository
	college  *repository.CollegeRepository
	resource *repository.ResourceRepository
}

type services struct {
	auth           *service.AuthService
	profile        *service.ProfileService
	test           *service.TestService
	recommendation *service.RecommendationService
	college        *service.CollegeService
	resource       *service.ResourceService
	seed           *service.SeedService
}

type controllers struct {
	auth           *controller.AuthController
	profile        *controller.ProfileController
	test           *controller.TestController
	recommendation *controller.RecommendationController
	college        *controller.CollegeController
	resource       *controller.ResourceController
	health         *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		profile:  repository.NewProfileRepository(db),
		question: repository.NewQuestionRepository(db),
		session:  repository.NewTestSessionRepository(db),
		college:  repository.NewCollegeRepository(db),
		resource: repository.NewResourceRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	catalog := engine.NewCatalog()
	cache := service.NewRecommendationCache(rdb)

	return &services{
		auth:           service.NewAuthService(repos.user, cfg),
		profile:        service.NewProfileService(repos.profile, cache),
		test:           service.NewTestService(repos.question, repos.session, cache),
		recommendation: service.NewRecommendationService(repos.profile, repos.session, catalog, cache),
		college:        service.NewCollegeService(repos.college),
		resource:       service.NewResourceService(repos.resource),
		seed:           service.NewSeedService(repos.question, repos.college, repos.resource, cfg.Seed.Dir),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:           controller.NewAuthController(s.auth),
		profile:        controller.NewProfileController(s.profile),
		test:           controller.NewTestController(s.test),
		recommendation: controller.NewRecommendationController(s.recommendation),
		college:        controller.NewCollegeController(s.college),
		resource:       controller.NewResourceController(s.resource),
		health:         controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	if err := services.seed.Run(); err != nil {
		logger.Log.Fatal("Failed to seed reference data", zap.Error(err))
	}

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("career-advisor", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, cfg)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
