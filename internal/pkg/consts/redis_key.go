package consts

const (
	LeaderboardKey = "leaderboard:windows"
)

const (
	LeaderboardWarmLock = "lock:leaderboard:warm"
)
