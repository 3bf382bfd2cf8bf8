package service

import (
	"ReviewArena/internal/api/dto"
	"ReviewArena/internal/model"
	"ReviewArena/internal/pkg/util"
	"ReviewArena/internal/repository"
	"context"
	log "log/slog"
	"strings"
	"time"
)

const DefaultDailyReviewCap = 10

type ReviewService interface {
	// SubmitReview 校验、限流、计分、落库、记账，按顺序执行。
	// XP 入账失败时评审本身已持久化，返回 ErrXpCreditPending 和评审记录，
	// 调用方只需重试入账（金额取 review.xp），不要重新提交评审。
	SubmitReview(ctx context.Context, reviewerID uint64, submission *dto.SubmitReviewDTO) (*model.Review, error)
	CountSubmittedToday(ctx context.Context, userID uint64) (int64, error)
	RemainingToday(ctx context.Context, userID uint64) (int64, error)
	DailyCap() int64
}

type reviewServiceImpl struct {
	reviewRepo    repository.ReviewRepo
	portfolioRepo repository.PortfolioRepo
	profileRepo   repository.ProfileRepo
	dailyCap      int64

	// now 可注入以便测试固定日界
	now func() time.Time
}

func NewReviewService(
	reviewRepo repository.ReviewRepo,
	portfolioRepo repository.PortfolioRepo,
	profileRepo repository.ProfileRepo,
	dailyCap int64,
) ReviewService {
	if dailyCap <= 0 {
		dailyCap = DefaultDailyReviewCap
	}
	return &reviewServiceImpl{
		reviewRepo:    reviewRepo,
		portfolioRepo: portfolioRepo,
		profileRepo:   profileRepo,
		dailyCap:      dailyCap,
		now:           time.Now,
	}
}

func (s *reviewServiceImpl) SubmitReview(ctx context.Context, reviewerID uint64, submission *dto.SubmitReviewDTO) (*model.Review, error) {
	if submission == nil {
		return nil, ErrParamInvalid
	}
	if submission.ScoreLeft < 0 || submission.ScoreLeft > 10 ||
		submission.ScoreRight < 0 || submission.ScoreRight > 10 {
		return nil, ErrScoreOutOfRange
	}

	feedbackLeft := strings.TrimSpace(submission.FeedbackLeft)
	feedbackRight := strings.TrimSpace(submission.FeedbackRight)
	if feedbackLeft == "" || feedbackRight == "" {
		return nil, ErrFeedbackEmpty
	}

	if submission.LeftPortfolioID == submission.RightPortfolioID {
		return nil, ErrSamePortfolio
	}

	portfolios, err := s.portfolioRepo.GetByIDs(ctx, []uint64{submission.LeftPortfolioID, submission.RightPortfolioID})
	if err != nil {
		return nil, err
	}
	if len(portfolios) != 2 {
		return nil, ErrPortfolioNotFound
	}
	for _, p := range portfolios {
		if p.UserID == reviewerID {
			return nil, ErrSelfReview
		}
	}

	count, err := s.CountSubmittedToday(ctx, reviewerID)
	if err != nil {
		return nil, err
	}
	if count >= s.dailyCap {
		return nil, ErrRateLimitExceeded
	}

	review := &model.Review{
		ReviewerID:       reviewerID,
		LeftPortfolioID:  submission.LeftPortfolioID,
		RightPortfolioID: submission.RightPortfolioID,
		ScoreLeft:        submission.ScoreLeft,
		ScoreRight:       submission.ScoreRight,
		FeedbackLeft:     feedbackLeft,
		FeedbackRight:    feedbackRight,
		XP:               ScoreFeedback(feedbackLeft, feedbackRight),
		CreatedAt:        s.now(),
	}

	if err = s.reviewRepo.InsertReview(ctx, review); err != nil {
		log.ErrorContext(ctx, "insert review failed", "reviewer_id", reviewerID, "err", err)
		return nil, ErrPersistence
	}

	// 评审行先落库，再做 XP 原子入账；入账失败只重试入账，避免重复计 XP
	if err = s.profileRepo.CreditXP(ctx, reviewerID, review.XP); err != nil {
		log.ErrorContext(ctx, "credit xp failed after review insert",
			"reviewer_id", reviewerID, "review_id", review.ID, "xp", review.XP, "err", err)
		return review, ErrXpCreditPending
	}

	return review, nil
}

// CountSubmittedToday 统计本日（服务器本地时区，零点为界）已提交的评审数
func (s *reviewServiceImpl) CountSubmittedToday(ctx context.Context, userID uint64) (int64, error) {
	return s.reviewRepo.CountReviewsSince(ctx, userID, util.GetMidnight(s.now()))
}

func (s *reviewServiceImpl) DailyCap() int64 {
	return s.dailyCap
}

func (s *reviewServiceImpl) RemainingToday(ctx context.Context, userID uint64) (int64, error) {
	count, err := s.CountSubmittedToday(ctx, userID)
	if err != nil {
		return 0, err
	}
	remaining := s.dailyCap - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}
