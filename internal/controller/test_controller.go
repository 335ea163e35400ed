package controller

import (
	"career_advisor_backend/internal/model"
	"career_advisor_backend/internal/service"
	"career_advisor_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type TestController struct {
	TestService *service.TestService
}

func NewTestController(testService *service.TestService) *TestController {
	return &TestController{TestService: testService}
}

// swagger:model StartTestRequest
type StartTestRequest struct {
	Kind string `json:"kind" binding:"required,oneof=aptitude personality"`
}

// StartTest godoc
// @Summary Start a test
// @Description Open a test session and return its questions without scoring data
// @Tags tests
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body StartTestRequest true "test kind"
// @Success 200 {object} util.Response{data=service.StartedTest} "session and questions"
// @Failure 400 {object} util.Response "invalid kind"
// @Failure 401 {object} util.Response "unauthorized"
// @Router /api/test/start [post]
func (c *TestController) StartTest(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StartTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	started, err := c.TestService.Start(user.UserID, model.TestKind(req.Kind))
	if err != nil {
		if errors.Is(err, util.ErrInvalidTestKind) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, started)
}

// swagger:model SubmitTestRequest
type SubmitTestRequest struct {
	SessionID uint              `json:"session_id" binding:"required"`
	Answers   map[string]string `json:"answers"`
}

// SubmitTest godoc
// @Summary Submit test answers
// @Description Score the submission and persist the result on its session
// @Tags tests
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body SubmitTestRequest true "session id and answer map"
// @Success 200 {object} util.Response{data=service.SubmitResult} "score or trait map"
// @Failure 400 {object} util.Response "invalid session"
// @Failure 401 {object} util.Response "unauthorized"
// @Router /api/test/submit [post]
func (c *TestController) SubmitTest(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	// JSON object keys are strings; unparsable ids are dropped the same
	// way unknown ids are.
	answers := make(map[uint]string, len(req.Answers))
	for key, chosen := range req.Answers {
		if id := util.MustParseUint(key); id != 0 {
			answers[id] = chosen
		}
	}

	result, err := c.TestService.Submit(ctx.Request.Context(), user.UserID, req.SessionID, answers)
	if err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}
