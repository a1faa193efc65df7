package controller

import (
	"truth_buddy_backend/internal/service"
	"truth_buddy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

// HomeFeed godoc
// @Summary Home feed
// @Description Today's hot questions plus a handful of regular ones.
// @Tags questions
// @Produce json
// @Success 200 {object} util.Response{data=service.HomeFeed}
// @Router /api/questions/home [get]
func (c *QuestionController) HomeFeed(ctx *gin.Context) {
	util.Success(ctx, c.QuestionService.HomeFeed(ctx.Request.Context()))
}

// List godoc
// @Summary All questions
// @Tags questions
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Question}
// @Router /api/questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	questions, src := c.QuestionService.List(ctx.Request.Context())
	util.Success(ctx, gin.H{
		"questions": questions,
		"source":    src.String(),
	})
}
