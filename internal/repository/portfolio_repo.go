package repository

import (
	"ReviewArena/internal/model"
	"context"

	"gorm.io/gorm"
)

type PortfolioRepo interface {
	// ListCandidates 按创建时间倒序取候选池，排除指定用户自己的作品集
	ListCandidates(ctx context.Context, excludeOwner uint64, limit int) ([]*model.Portfolio, error)
	GetByIDs(ctx context.Context, ids []uint64) ([]*model.Portfolio, error)
}

type portfolioRepoImpl struct {
	db *gorm.DB
}

func NewPortfolioRepo(db *gorm.DB) PortfolioRepo {
	return &portfolioRepoImpl{db: db}
}

func (s *portfolioRepoImpl) ListCandidates(ctx context.Context, excludeOwner uint64, limit int) ([]*model.Portfolio, error) {
	portfolios := make([]*model.Portfolio, 0)
	result := s.db.WithContext(ctx).
		Where("user_id <> ?", excludeOwner).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&portfolios)
	if result.Error != nil {
		return nil, result.Error
	}
	return portfolios, nil
}

func (s *portfolioRepoImpl) GetByIDs(ctx context.Context, ids []uint64) ([]*model.Portfolio, error) {
	portfolios := make([]*model.Portfolio, 0)
	result := s.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&portfolios)
	if result.Error != nil {
		return nil, result.Error
	}
	return portfolios, nil
}
