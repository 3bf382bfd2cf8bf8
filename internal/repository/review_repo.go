package repository

import (
	"ReviewArena/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

// LeaderboardAggRow 排行榜聚合行，三个时间窗口共用同一次查询
type LeaderboardAggRow struct {
	UserID    uint64    `gorm:"column:user_id"`
	Username  string    `gorm:"column:username"`
	Avatar    string    `gorm:"column:avatar"`
	CreatedAt time.Time `gorm:"column:created_at"`
	TotalXP   int       `gorm:"column:total_xp"`
	MonthXP   int       `gorm:"column:month_xp"`
	WeekXP    int       `gorm:"column:week_xp"`
}

type ReviewRepo interface {
	InsertReview(ctx context.Context, review *model.Review) error
	// ListReviewedPortfolioIDs 该用户评审过的所有作品集 ID（左右两侧都算）
	ListReviewedPortfolioIDs(ctx context.Context, reviewerID uint64) ([]uint64, error)
	CountReviewsSince(ctx context.Context, reviewerID uint64, since time.Time) (int64, error)
	GetLeaderboardAggregate(ctx context.Context, monthStart, weekStart time.Time) ([]*LeaderboardAggRow, error)
}

type reviewRepoImpl struct {
	db *gorm.DB
}

func NewReviewRepo(db *gorm.DB) ReviewRepo {
	return &reviewRepoImpl{db: db}
}

func (s *reviewRepoImpl) InsertReview(ctx context.Context, review *model.Review) error {
	return s.db.WithContext(ctx).Create(review).Error
}

func (s *reviewRepoImpl) ListReviewedPortfolioIDs(ctx context.Context, reviewerID uint64) ([]uint64, error) {
	leftIDs := make([]uint64, 0)
	err := s.db.WithContext(ctx).
		Model(&model.Review{}).
		Where("reviewer_id = ?", reviewerID).
		Pluck("left_portfolio_id", &leftIDs).Error
	if err != nil {
		return nil, err
	}

	rightIDs := make([]uint64, 0)
	err = s.db.WithContext(ctx).
		Model(&model.Review{}).
		Where("reviewer_id = ?", reviewerID).
		Pluck("right_portfolio_id", &rightIDs).Error
	if err != nil {
		return nil, err
	}

	return append(leftIDs, rightIDs...), nil
}

func (s *reviewRepoImpl) CountReviewsSince(ctx context.Context, reviewerID uint64, since time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.Review{}).
		Where("reviewer_id = ? AND created_at >= ?", reviewerID, since).
		Count(&count).Error
	return count, err
}

// GetLeaderboardAggregate 以 profiles 为主表聚合评审 XP，没有评审记录的用户 XP 记为 0
func (s *reviewRepoImpl) GetLeaderboardAggregate(ctx context.Context, monthStart, weekStart time.Time) ([]*LeaderboardAggRow, error) {
	rows := make([]*LeaderboardAggRow, 0)
	err := s.db.WithContext(ctx).Raw(`
		SELECT
			p.user_id,
			p.username,
			p.avatar,
			p.created_at,
			COALESCE(SUM(r.xp), 0)                                          AS total_xp,
			COALESCE(SUM(CASE WHEN r.created_at >= ? THEN r.xp ELSE 0 END), 0) AS month_xp,
			COALESCE(SUM(CASE WHEN r.created_at >= ? THEN r.xp ELSE 0 END), 0) AS week_xp
		FROM profiles p
		LEFT JOIN reviews r ON r.reviewer_id = p.user_id
		GROUP BY p.user_id, p.username, p.avatar, p.created_at
	`, monthStart, weekStart).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
