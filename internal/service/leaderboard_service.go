package service

import (
	"ReviewArena/internal/api/dto"
	"ReviewArena/internal/pkg/consts"
	"ReviewArena/internal/pkg/redis"
	"ReviewArena/internal/pkg/util"
	"ReviewArena/internal/repository"
	"context"
	log "log/slog"
	"sort"
	"time"

	"github.com/goccy/go-json"
)

const DefaultLeaderboardTTL = 5 * time.Minute

// Unranked 用户不在榜单中时的名次
const Unranked = 0

type LeaderboardService interface {
	// GetLeaderboard 返回全部/本月/本周三个窗口的榜单，优先走缓存
	GetLeaderboard(ctx context.Context) (*dto.LeaderboardDTO, error)
	// RefreshLeaderboard 绕过缓存重新聚合并回填缓存
	RefreshLeaderboard(ctx context.Context) (*dto.LeaderboardDTO, error)
	GetUserRank(ctx context.Context, userID uint64) (*dto.UserRankDTO, error)
	// RankOf 在榜单中线性查找用户的 1 起始名次，找不到返回 Unranked
	RankOf(userID uint64, entries []*dto.LeaderboardEntryDTO) int
}

type leaderboardServiceImpl struct {
	reviewRepo repository.ReviewRepo
	cacheTTL   time.Duration

	now func() time.Time
}

func NewLeaderboardService(reviewRepo repository.ReviewRepo, cacheTTL time.Duration) LeaderboardService {
	if cacheTTL <= 0 {
		cacheTTL = DefaultLeaderboardTTL
	}
	return &leaderboardServiceImpl{
		reviewRepo: reviewRepo,
		cacheTTL:   cacheTTL,
		now:        time.Now,
	}
}

func (s *leaderboardServiceImpl) GetLeaderboard(ctx context.Context) (*dto.LeaderboardDTO, error) {
	if val, err := redis.GetValue(ctx, consts.LeaderboardKey); err == nil && val != "" {
		var cached dto.LeaderboardDTO
		if err = json.Unmarshal([]byte(val), &cached); err == nil {
			return &cached, nil
		}
	}
	return s.RefreshLeaderboard(ctx)
}

func (s *leaderboardServiceImpl) RefreshLeaderboard(ctx context.Context) (*dto.LeaderboardDTO, error) {
	now := s.now()
	rows, err := s.reviewRepo.GetLeaderboardAggregate(ctx, util.MonthStart(now), util.WeekStart(now))
	if err != nil {
		return nil, err
	}

	// 三个窗口来自同一份聚合行，只是排序字段不同
	board := &dto.LeaderboardDTO{
		AllTime: buildRankedList(rows, func(r *repository.LeaderboardAggRow) int { return r.TotalXP }),
		Monthly: buildRankedList(rows, func(r *repository.LeaderboardAggRow) int { return r.MonthXP }),
		Weekly:  buildRankedList(rows, func(r *repository.LeaderboardAggRow) int { return r.WeekXP }),
	}

	payload, err := json.Marshal(board)
	if err != nil {
		return board, nil
	}
	if err = redis.SetWithExpiration(ctx, consts.LeaderboardKey, payload, s.cacheTTL); err != nil {
		log.WarnContext(ctx, "leaderboard cache fill failed", "err", err)
	}

	return board, nil
}

func (s *leaderboardServiceImpl) GetUserRank(ctx context.Context, userID uint64) (*dto.UserRankDTO, error) {
	board, err := s.GetLeaderboard(ctx)
	if err != nil {
		return nil, err
	}

	rank := &dto.UserRankDTO{
		UserID:      userID,
		AllTimeRank: s.RankOf(userID, board.AllTime),
		MonthlyRank: s.RankOf(userID, board.Monthly),
		WeeklyRank:  s.RankOf(userID, board.Weekly),
	}
	for _, entry := range board.AllTime {
		if entry.UserID == userID {
			rank.TotalXP = entry.XP
			break
		}
	}
	return rank, nil
}

func (s *leaderboardServiceImpl) RankOf(userID uint64, entries []*dto.LeaderboardEntryDTO) int {
	for _, entry := range entries {
		if entry.UserID == userID {
			return entry.Rank
		}
	}
	return Unranked
}

// buildRankedList 按窗口 XP 降序排名；并列时注册早者在前（created_at 升序），
// 再按 user_id 升序兜底，保证排序稳定可复现
func buildRankedList(rows []*repository.LeaderboardAggRow, xpOf func(*repository.LeaderboardAggRow) int) []*dto.LeaderboardEntryDTO {
	sorted := make([]*repository.LeaderboardAggRow, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		if xpOf(sorted[i]) != xpOf(sorted[j]) {
			return xpOf(sorted[i]) > xpOf(sorted[j])
		}
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].UserID < sorted[j].UserID
	})

	entries := make([]*dto.LeaderboardEntryDTO, 0, len(sorted))
	for i, row := range sorted {
		avatar := row.Avatar
		if avatar == "" {
			avatar = consts.DefaultAvatarURL
		}
		entries = append(entries, &dto.LeaderboardEntryDTO{
			Rank:      i + 1,
			UserID:    row.UserID,
			Username:  row.Username,
			AvatarURL: avatar,
			XP:        xpOf(row),
		})
	}
	return entries
}
