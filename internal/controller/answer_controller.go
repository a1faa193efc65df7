package controller

import (
	"errors"

	"truth_buddy_backend/internal/service"
	"truth_buddy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnswerController struct {
	AnswerService *service.AnswerService
}

func NewAnswerController(answerService *service.AnswerService) *AnswerController {
	return &AnswerController{AnswerService: answerService}
}

type submitAnswerRequest struct {
	SelectedAnswer *int `json:"selected_answer" binding:"required"`
}

// Submit godoc
// @Summary Answer a question
// @Description Scores the answer for the current user. A question already
// @Description attempted earns nothing and records no new answer.
// @Tags questions
// @Accept json
// @Produce json
// @Param id path string true "question id"
// @Param answer body submitAnswerRequest true "zero-based option index"
// @Success 200 {object} util.Response{data=service.SubmitResult}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/questions/{id}/answer [post]
func (c *AnswerController) Submit(ctx *gin.Context) {
	var req submitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "selected_answer is required")
		return
	}

	result, err := c.AnswerService.Submit(ctx.Request.Context(), ctx.Param("id"), *req.SelectedAnswer)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuestionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidAnswer):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}
