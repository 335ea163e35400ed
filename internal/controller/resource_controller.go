package controller

import (
	"career_advisor_backend/internal/service"
	"career_advisor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResourceController struct {
	ResourceService *service.ResourceService
}

func NewResourceController(resourceService *service.ResourceService) *ResourceController {
	return &ResourceController{ResourceService: resourceService}
}

// GetResources godoc
// @Summary Free study resources for a course
// @Tags resources
// @Produce  json
// @Security ApiKeyAuth
// @Param   course_code query string true "course code"
// @Success 200 {object} util.Response{data=object} "resources"
// @Failure 400 {object} util.Response "missing course code"
// @Failure 401 {object} util.Response "unauthorized"
// @Router /api/resources [get]
func (c *ResourceController) GetResources(ctx *gin.Context) {
	courseCode := ctx.Query("course_code")
	if courseCode == "" {
		util.BadRequest(ctx, "course_code is required")
		return
	}

	resources, err := c.ResourceService.FreeByCourse(courseCode)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"resources": resources})
}
