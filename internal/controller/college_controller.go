package controller

import (
	"career_advisor_backend/internal/engine"
	"career_advisor_backend/internal/service"
	"career_advisor_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type CollegeController struct {
	CollegeService *service.CollegeService
}

func NewCollegeController(collegeService *service.CollegeService) *CollegeController {
	return &CollegeController{CollegeService: collegeService}
}

// swagger:model CollegeSearchRequest
type CollegeSearchRequest struct {
	CourseCode        string `json:"course_code" binding:"required"`
	City              string `json:"city"`
	Country           string `json:"country"`
	Abroad            bool   `json:"abroad"`
	Budget            int    `json:"budget" binding:"min=0"`
	IncludePrivate    *bool  `json:"include_private"`
	IncludeGovernment *bool  `json:"include_government"`
}

// Search godoc
// @Summary Search colleges
// @Description Filter the catalog by course, geography, budget and ownership, ranked by proximity then fee
// @Tags colleges
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CollegeSearchRequest true "search filters"
// @Success 200 {object} util.Response{data=object} "ranked colleges"
// @Failure 400 {object} util.Response "invalid filters"
// @Failure 401 {object} util.Response "unauthorized"
// @Router /api/colleges/search [post]
func (c *CollegeController) Search(ctx *gin.Context) {
	var req CollegeSearchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	// Ownership flags default to inclusive when omitted.
	includePrivate := req.IncludePrivate == nil || *req.IncludePrivate
	includeGovernment := req.IncludeGovernment == nil || *req.IncludeGovernment

	colleges, err := c.CollegeService.Search(engine.CollegeQuery{
		CourseCode:        req.CourseCode,
		City:              req.City,
		Country:           req.Country,
		Abroad:            req.Abroad,
		Budget:            req.Budget,
		IncludePrivate:    includePrivate,
		IncludeGovernment: includeGovernment,
	})
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"colleges": colleges})
}

// GetCollege godoc
// @Summary College detail
// @Tags colleges
// @Produce  json
// @Param   id path int true "college id"
// @Success 200 {object} util.Response{data=model.College} "college"
// @Failure 404 {object} util.Response "not found"
// @Router /api/colleges/{id} [get]
func (c *CollegeController) GetCollege(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	college, err := c.CollegeService.GetByID(id)
	if err != nil {
		if errors.Is(err, util.ErrCollegeNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"college": college})
}
