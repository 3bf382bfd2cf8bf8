package dto

// LeaderboardEntryDTO 榜单条目，Rank 从 1 开始
type LeaderboardEntryDTO struct {
	Rank      int    `json:"rank"`
	UserID    uint64 `json:"user_id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
	XP        int    `json:"xp"`
}

// LeaderboardDTO 三个时间窗口的榜单
type LeaderboardDTO struct {
	AllTime []*LeaderboardEntryDTO `json:"all_time"`
	Monthly []*LeaderboardEntryDTO `json:"monthly"`
	Weekly  []*LeaderboardEntryDTO `json:"weekly"`
}

// UserRankDTO 用户在各窗口中的名次，0 表示未上榜
type UserRankDTO struct {
	UserID      uint64 `json:"user_id"`
	TotalXP     int    `json:"total_xp"`
	AllTimeRank int    `json:"all_time_rank"`
	MonthlyRank int    `json:"monthly_rank"`
	WeeklyRank  int    `json:"weekly_rank"`
}
