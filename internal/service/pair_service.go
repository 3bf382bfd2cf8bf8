package service

import (
	"ReviewArena/internal/model"
	"ReviewArena/internal/repository"
	"context"
	"math/rand"
	"sync"
	"time"
)

const DefaultCandidatePoolSize = 100

type PairService interface {
	// SelectPair 为评审人选出两个不同的、非本人的作品集。
	// excludeIDs 由调用方传入上一轮展示过的作品集，已评审过的由服务端自行合并。
	// 第三个返回值表示候选不足、已回退到未过滤池（降级而非失败）。
	SelectPair(ctx context.Context, reviewerID uint64, excludeIDs []uint64) (*model.Portfolio, *model.Portfolio, bool, error)
}

type pairServiceImpl struct {
	portfolioRepo repository.PortfolioRepo
	reviewRepo    repository.ReviewRepo
	poolSize      int

	// rng 可注入以便测试固定随机序列，rand.Rand 本身非并发安全
	mu  sync.Mutex
	rng *rand.Rand
}

func NewPairService(portfolioRepo repository.PortfolioRepo, reviewRepo repository.ReviewRepo, poolSize int, rng *rand.Rand) PairService {
	if poolSize <= 0 {
		poolSize = DefaultCandidatePoolSize
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &pairServiceImpl{
		portfolioRepo: portfolioRepo,
		reviewRepo:    reviewRepo,
		poolSize:      poolSize,
		rng:           rng,
	}
}

func (s *pairServiceImpl) SelectPair(ctx context.Context, reviewerID uint64, excludeIDs []uint64) (*model.Portfolio, *model.Portfolio, bool, error) {
	pool, err := s.portfolioRepo.ListCandidates(ctx, reviewerID, s.poolSize)
	if err != nil {
		return nil, nil, false, err
	}
	if len(pool) < 2 {
		return nil, nil, false, ErrInsufficientCandidates
	}

	reviewedIDs, err := s.reviewRepo.ListReviewedPortfolioIDs(ctx, reviewerID)
	if err != nil {
		return nil, nil, false, err
	}

	excluded := make(map[uint64]struct{}, len(excludeIDs)+len(reviewedIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}
	for _, id := range reviewedIDs {
		excluded[id] = struct{}{}
	}

	candidates := make([]*model.Portfolio, 0, len(pool))
	for _, p := range pool {
		if _, ok := excluded[p.ID]; !ok {
			candidates = append(candidates, p)
		}
	}

	// 过滤后不足两个时退回未过滤池，向调用方标记新鲜度降级
	reducedNovelty := false
	if len(candidates) < 2 {
		candidates = pool
		reducedNovelty = true
	}

	s.shuffle(candidates)

	left := candidates[0]
	right := candidates[1]
	if right.ID == left.ID && len(candidates) > 2 {
		right = candidates[2]
	}
	if right.ID == left.ID {
		return nil, nil, false, ErrInsufficientCandidates
	}

	return left, right, reducedNovelty, nil
}

func (s *pairServiceImpl) shuffle(candidates []*model.Portfolio) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
}
