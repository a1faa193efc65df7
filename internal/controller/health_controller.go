package controller

import (
	"truth_buddy_backend/internal/repository"
	"truth_buddy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Selector *repository.Selector
}

func NewHealthController(selector *repository.Selector) *HealthController {
	return &HealthController{Selector: selector}
}

// Check godoc
// @Summary Health check
// @Description Reports service status and which storage backend is active.
// @Tags health
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) Check(ctx *gin.Context) {
	storage := "fallback"
	if c.Selector.UseRemote(ctx.Request.Context()) {
		storage = "remote"
	}
	util.Success(ctx, gin.H{
		"status":  "ok",
		"storage": storage,
	})
}
