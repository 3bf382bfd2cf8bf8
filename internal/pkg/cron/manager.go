package cron

import (
	"ReviewArena/internal/api/config"
	"ReviewArena/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

const defaultLeaderboardSpec = "0 */5 * * * *"

type Manager struct {
	engine         *cron.Cron
	leaderboardJob *job.LeaderboardJob
}

func NewCronManager(leaderboardJob *job.LeaderboardJob) *Manager {
	return &Manager{
		engine:         cron.New(cron.WithSeconds()),
		leaderboardJob: leaderboardJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	spec := config.Cfg.Arena.LeaderboardCron
	if spec == "" {
		spec = defaultLeaderboardSpec
	}
	if _, err := s.engine.AddJob(spec, s.leaderboardJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
