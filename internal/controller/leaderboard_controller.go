package controller

import (
	"strconv"

	"recruiter_hub_backend/internal/service"
	"recruiter_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LeaderboardController struct {
	LeaderboardService *service.LeaderboardService
}

func NewLeaderboardController(leaderboardService *service.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{LeaderboardService: leaderboardService}
}

// @Summary Leaderboard
// @Description Top users by points with activity stats, plus the caller's own rank when signed in.
// @Tags leaderboard
// @Produce json
// @Param limit query int false "Number of entries" default(10)
// @Success 200 {object} util.Response
// @Router /api/leaderboard [get]
func (c *LeaderboardController) Get(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	view, err := c.LeaderboardService.Get(ctx.Request.Context(), limit, util.GetUserFromContext(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, view)
}
