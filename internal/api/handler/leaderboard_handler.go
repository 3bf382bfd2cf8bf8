package handler

import (
	"ReviewArena/internal/pkg/response"
	"ReviewArena/internal/service"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	leaderboardSvc service.LeaderboardService
}

func NewLeaderboardHandler(leaderboardSvc service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardSvc: leaderboardSvc}
}

// GetLeaderboard 返回全部/本月/本周三个窗口的榜单
func (s *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	board, err := s.leaderboardSvc.GetLeaderboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, board)
}

// GetMyRank 返回当前用户在各窗口中的名次
func (s *LeaderboardHandler) GetMyRank(c *gin.Context) {
	userID := c.GetUint64("user_id")

	rank, err := s.leaderboardSvc.GetUserRank(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rank)
}
