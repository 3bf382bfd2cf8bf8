package job

import (
	"ReviewArena/internal/pkg/consts"
	"ReviewArena/internal/pkg/logger"
	"ReviewArena/internal/pkg/redis"
	"ReviewArena/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// LeaderboardJob 周期性重算榜单并回填缓存，避免页面请求撞上缓存过期
type LeaderboardJob struct {
	leaderboardSvc service.LeaderboardService
}

func NewLeaderboardJob(leaderboardSvc service.LeaderboardService) *LeaderboardJob {
	return &LeaderboardJob{leaderboardSvc: leaderboardSvc}
}

func (s *LeaderboardJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	// 多实例部署时只允许一个实例预热
	lockValue := traceID
	locked, err := redis.TryLock(ctx, consts.LeaderboardWarmLock, lockValue, time.Minute, 1)
	if err != nil {
		log.ErrorContext(ctx, "acquire leaderboard warm lock error", "err", err)
		return
	}
	if !locked {
		return
	}
	defer redis.UnLock(ctx, consts.LeaderboardWarmLock, lockValue)

	if _, err = s.leaderboardSvc.RefreshLeaderboard(ctx); err != nil {
		log.ErrorContext(ctx, "refresh leaderboard error", "err", err)
		return
	}

	log.InfoContext(ctx, "leaderboard cache warmed")
}
