package wire

import (
	"ReviewArena/internal/api"
	"ReviewArena/internal/api/config"
	"ReviewArena/internal/api/handler"
	"ReviewArena/internal/job"
	"ReviewArena/internal/pkg/cron"
	"ReviewArena/internal/repository"
	"ReviewArena/internal/service"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	portfolioRepo := repository.NewPortfolioRepo(db)
	reviewRepo := repository.NewReviewRepo(db)
	profileRepo := repository.NewProfileRepo(db)

	pairService := service.NewPairService(portfolioRepo, reviewRepo, cfg.Arena.CandidatePoolSize, nil)
	reviewService := service.NewReviewService(reviewRepo, portfolioRepo, profileRepo, cfg.Arena.DailyReviewCap)
	leaderboardService := service.NewLeaderboardService(reviewRepo,
		time.Duration(cfg.Arena.LeaderboardTTLMinutes)*time.Minute)

	handlers := &api.HandlersGroup{
		ArenaHandler:       handler.NewArenaHandler(pairService, reviewService),
		LeaderboardHandler: handler.NewLeaderboardHandler(leaderboardService),
	}

	router := api.SetupRouter(handlers)

	leaderboardJob := job.NewLeaderboardJob(leaderboardService)
	cronMgr := cron.NewCronManager(leaderboardJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
