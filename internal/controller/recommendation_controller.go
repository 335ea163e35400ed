package controller

import (
	"career_advisor_backend/internal/service"
	"career_advisor_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	RecommendationService *service.RecommendationService
}

func NewRecommendationController(recommendationService *service.RecommendationService) *RecommendationController {
	return &RecommendationController{RecommendationService: recommendationService}
}

// GetRecommendations godoc
// @Summary Ranked course suggestions
// @Description Blend the latest profile and test results into ranked course fits
// @Tags recommendations
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.Recommendations} "ranked courses"
// @Failure 400 {object} util.Response "no form submitted yet"
// @Failure 401 {object} util.Response "unauthorized"
// @Router /api/recommendations [get]
func (c *RecommendationController) GetRecommendations(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	recs, err := c.RecommendationService.ForUser(ctx.Request.Context(), user.UserID)
	if err != nil {
		if errors.Is(err, util.ErrProfileNotFound) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, recs)
}
