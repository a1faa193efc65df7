package controller

import (
	"truth_buddy_backend/internal/model"
	"truth_buddy_backend/internal/repository"
	"truth_buddy_backend/internal/service"
	"truth_buddy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LeaderboardController struct {
	LeaderboardService *service.LeaderboardService
}

func NewLeaderboardController(leaderboardService *service.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{LeaderboardService: leaderboardService}
}

// Get godoc
// @Summary Leaderboard
// @Description Players ranked by points, optionally restricted to one city.
// @Tags leaderboard
// @Produce json
// @Param city query string false "filter by city (case-insensitive)"
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /api/leaderboard [get]
func (c *LeaderboardController) Get(ctx *gin.Context) {
	var users []*model.User
	var src repository.Source

	if city := ctx.Query("city"); city != "" {
		users, src = c.LeaderboardService.ByCity(ctx.Request.Context(), city)
	} else {
		users, src = c.LeaderboardService.Global(ctx.Request.Context())
	}

	util.Success(ctx, gin.H{
		"users":  users,
		"source": src.String(),
	})
}
