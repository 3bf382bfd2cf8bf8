package api

import (
	"ReviewArena/internal/api/middleware"
	"ReviewArena/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		arenaGroup := apiGroup.Group("/arena")
		{
			arenaGroup.Use(middleware.AuthMiddleware())
			{
				arenaGroup.GET("/pair", group.ArenaHandler.GetPair)
				arenaGroup.POST("/review", group.ArenaHandler.SubmitReview)
				arenaGroup.GET("/remaining", group.ArenaHandler.GetRemaining)
			}
		}

		leaderboardGroup := apiGroup.Group("/leaderboard")
		{
			// 榜单页无需登录即可浏览
			leaderboardGroup.GET("", group.LeaderboardHandler.GetLeaderboard)

			authGroup := leaderboardGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.GET("/rank", group.LeaderboardHandler.GetMyRank)
			}
		}
	}

	return r
}
