package api

import "ReviewArena/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	ArenaHandler       *handler.ArenaHandler
	LeaderboardHandler *handler.LeaderboardHandler
}
