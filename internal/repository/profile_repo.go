package repository

import (
	"ReviewArena/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ProfileRepo interface {
	GetProfile(ctx context.Context, userID uint64) (*model.Profile, error)
	// CreditXP 累加用户 XP，必须走数据库侧的原子自增，禁止读改写
	CreditXP(ctx context.Context, userID uint64, amount int) error
}

type profileRepoImpl struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) ProfileRepo {
	return &profileRepoImpl{db: db}
}

func (s *profileRepoImpl) GetProfile(ctx context.Context, userID uint64) (*model.Profile, error) {
	var profile model.Profile
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (s *profileRepoImpl) CreditXP(ctx context.Context, userID uint64, amount int) error {
	result := s.db.WithContext(ctx).
		Model(&model.Profile{}).
		Where("user_id = ?", userID).
		UpdateColumn("xp", gorm.Expr("xp + ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
