package controller

import (
	"career_advisor_backend/internal/model"
	"career_advisor_backend/internal/service"
	"career_advisor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	ProfileService *service.ProfileService
}

func NewProfileController(profileService *service.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profileService}
}

// swagger:model FormRequest
type FormRequest struct {
	HighestQualification string  `json:"highest_qualification"`
	Stream               string  `json:"stream"`
	BoardMarks           float64 `json:"board_marks"`
	City                 string  `json:"city"`
	Country              string  `json:"country"`
	Abroad               bool    `json:"abroad"`
	Budget               int     `json:"budget" binding:"min=0"`
	DreamCourse          string  `json:"dream_course"`
}

// SubmitForm godoc
// @Summary Submit the guidance form
// @Description Store a new profile submission; the latest one drives recommendations
// @Tags profile
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body FormRequest true "form fields"
// @Success 200 {object} util.Response "stored"
// @Failure 400 {object} util.Response "invalid payload"
// @Failure 401 {object} util.Response "unauthorized"
// @Router /api/form [post]
func (c *ProfileController) SubmitForm(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req FormRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile := &model.Profile{
		UserID:               user.UserID,
		HighestQualification: req.HighestQualification,
		Stream:               req.Stream,
		BoardMarks:           req.BoardMarks,
		City:                 req.City,
		Country:              req.Country,
		Abroad:               req.Abroad,
		Budget:               req.Budget,
		DreamCourse:          req.DreamCourse,
	}

	if err := c.ProfileService.Submit(ctx.Request.Context(), profile); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"ok": true})
}
