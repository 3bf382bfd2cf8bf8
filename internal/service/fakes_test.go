package service

import (
	"ReviewArena/internal/model"
	"ReviewArena/internal/repository"
	"context"
	"time"
)

// 内存版仓储实现，供本包单测注入使用

type fakePortfolioRepo struct {
	portfolios []*model.Portfolio
	listErr    error
	listCalls  int
	getCalls   int
}

func (f *fakePortfolioRepo) ListCandidates(_ context.Context, excludeOwner uint64, limit int) ([]*model.Portfolio, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*model.Portfolio, 0, len(f.portfolios))
	for _, p := range f.portfolios {
		if p.UserID == excludeOwner {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakePortfolioRepo) GetByIDs(_ context.Context, ids []uint64) ([]*model.Portfolio, error) {
	f.getCalls++
	out := make([]*model.Portfolio, 0, len(ids))
	for _, id := range ids {
		for _, p := range f.portfolios {
			if p.ID == id {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

type fakeReviewRepo struct {
	inserted    []*model.Review
	reviewedIDs []uint64
	todayCount  int64
	aggRows     []*repository.LeaderboardAggRow

	insertErr error
	listErr   error
	countErr  error
	aggErr    error
}

func (f *fakeReviewRepo) InsertReview(_ context.Context, review *model.Review) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	review.ID = uint64(len(f.inserted) + 1)
	f.inserted = append(f.inserted, review)
	return nil
}

func (f *fakeReviewRepo) ListReviewedPortfolioIDs(_ context.Context, _ uint64) ([]uint64, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.reviewedIDs, nil
}

func (f *fakeReviewRepo) CountReviewsSince(_ context.Context, _ uint64, _ time.Time) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.todayCount, nil
}

func (f *fakeReviewRepo) GetLeaderboardAggregate(_ context.Context, _, _ time.Time) ([]*repository.LeaderboardAggRow, error) {
	if f.aggErr != nil {
		return nil, f.aggErr
	}
	return f.aggRows, nil
}

type fakeProfileRepo struct {
	xpByUser    map[uint64]int
	creditErr   error
	creditCalls int
}

func (f *fakeProfileRepo) GetProfile(_ context.Context, userID uint64) (*model.Profile, error) {
	xp, ok := f.xpByUser[userID]
	if !ok {
		return nil, nil
	}
	return &model.Profile{UserID: userID, XP: xp}, nil
}

func (f *fakeProfileRepo) CreditXP(_ context.Context, userID uint64, amount int) error {
	f.creditCalls++
	if f.creditErr != nil {
		return f.creditErr
	}
	if f.xpByUser == nil {
		f.xpByUser = make(map[uint64]int)
	}
	f.xpByUser[userID] += amount
	return nil
}
