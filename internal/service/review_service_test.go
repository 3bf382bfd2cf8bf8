package service

import (
	"ReviewArena/internal/api/dto"
	"ReviewArena/internal/model"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

var fixedNow = time.Date(2026, 3, 10, 15, 30, 0, 0, time.Local)

func newReviewServiceForTest(reviewRepo *fakeReviewRepo, portfolioRepo *fakePortfolioRepo, profileRepo *fakeProfileRepo) *reviewServiceImpl {
	return &reviewServiceImpl{
		reviewRepo:    reviewRepo,
		portfolioRepo: portfolioRepo,
		profileRepo:   profileRepo,
		dailyCap:      DefaultDailyReviewCap,
		now:           func() time.Time { return fixedNow },
	}
}

func validSubmission() *dto.SubmitReviewDTO {
	return &dto.SubmitReviewDTO{
		LeftPortfolioID:  11,
		RightPortfolioID: 12,
		ScoreLeft:        7,
		ScoreRight:       4,
		FeedbackLeft:     strings.Repeat("a", 200),
		FeedbackRight:    strings.Repeat("b", 310),
	}
}

func pairPortfolios() []*model.Portfolio {
	return makePortfolios([2]uint64{11, 2}, [2]uint64{12, 3})
}

func TestSubmitReview_Success(t *testing.T) {
	reviewRepo := &fakeReviewRepo{}
	portfolioRepo := &fakePortfolioRepo{portfolios: pairPortfolios()}
	profileRepo := &fakeProfileRepo{xpByUser: map[uint64]int{1: 5}}
	svc := newReviewServiceForTest(reviewRepo, portfolioRepo, profileRepo)

	review, err := svc.SubmitReview(context.Background(), 1, validSubmission())
	if err != nil {
		t.Fatalf("SubmitReview() error = %v", err)
	}

	// 200 字中档 15 + 310 字长档 20 + 完成奖励 10
	if review.XP != 45 {
		t.Errorf("review.XP = %d, want 45", review.XP)
	}
	if !review.CreatedAt.Equal(fixedNow) {
		t.Errorf("review.CreatedAt = %v, want %v", review.CreatedAt, fixedNow)
	}
	if len(reviewRepo.inserted) != 1 {
		t.Fatalf("落库 %d 条评审，want 1", len(reviewRepo.inserted))
	}
	if profileRepo.creditCalls != 1 {
		t.Errorf("CreditXP 调用 %d 次，want 1", profileRepo.creditCalls)
	}
	if profileRepo.xpByUser[1] != 50 {
		t.Errorf("入账后 XP = %d, want 50", profileRepo.xpByUser[1])
	}
}

func TestSubmitReview_ValidationBeforeAnyWrite(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*dto.SubmitReviewDTO)
		wantErr error
	}{
		{"评分超上限", func(d *dto.SubmitReviewDTO) { d.ScoreLeft = 11 }, ErrScoreOutOfRange},
		{"评分为负", func(d *dto.SubmitReviewDTO) { d.ScoreRight = -1 }, ErrScoreOutOfRange},
		{"反馈为空", func(d *dto.SubmitReviewDTO) { d.FeedbackLeft = "   " }, ErrFeedbackEmpty},
		{"左右同一作品集", func(d *dto.SubmitReviewDTO) { d.RightPortfolioID = d.LeftPortfolioID }, ErrSamePortfolio},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviewRepo := &fakeReviewRepo{}
			portfolioRepo := &fakePortfolioRepo{portfolios: pairPortfolios()}
			profileRepo := &fakeProfileRepo{}
			svc := newReviewServiceForTest(reviewRepo, portfolioRepo, profileRepo)

			submission := validSubmission()
			tt.mutate(submission)

			_, err := svc.SubmitReview(context.Background(), 1, submission)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("SubmitReview() error = %v, want %v", err, tt.wantErr)
			}
			if portfolioRepo.getCalls != 0 || len(reviewRepo.inserted) != 0 || profileRepo.creditCalls != 0 {
				t.Error("校验失败后不应触达任何仓储写入")
			}
		})
	}
}

func TestSubmitReview_PortfolioNotFound(t *testing.T) {
	reviewRepo := &fakeReviewRepo{}
	portfolioRepo := &fakePortfolioRepo{portfolios: makePortfolios([2]uint64{11, 2})}
	svc := newReviewServiceForTest(reviewRepo, portfolioRepo, &fakeProfileRepo{})

	_, err := svc.SubmitReview(context.Background(), 1, validSubmission())
	if !errors.Is(err, ErrPortfolioNotFound) {
		t.Errorf("SubmitReview() error = %v, want ErrPortfolioNotFound", err)
	}
}

func TestSubmitReview_SelfReview(t *testing.T) {
	reviewRepo := &fakeReviewRepo{}
	portfolioRepo := &fakePortfolioRepo{portfolios: makePortfolios([2]uint64{11, 1}, [2]uint64{12, 3})}
	svc := newReviewServiceForTest(reviewRepo, portfolioRepo, &fakeProfileRepo{})

	_, err := svc.SubmitReview(context.Background(), 1, validSubmission())
	if !errors.Is(err, ErrSelfReview) {
		t.Errorf("SubmitReview() error = %v, want ErrSelfReview", err)
	}
	if len(reviewRepo.inserted) != 0 {
		t.Error("自评拦截后不应落库")
	}
}

func TestSubmitReview_RateLimit(t *testing.T) {
	tests := []struct {
		name       string
		todayCount int64
		wantErr    error
	}{
		{"第 10 次允许", 9, nil},
		{"达到上限拒绝", 10, ErrRateLimitExceeded},
		{"超过上限拒绝", 11, ErrRateLimitExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviewRepo := &fakeReviewRepo{todayCount: tt.todayCount}
			portfolioRepo := &fakePortfolioRepo{portfolios: pairPortfolios()}
			profileRepo := &fakeProfileRepo{}
			svc := newReviewServiceForTest(reviewRepo, portfolioRepo, profileRepo)

			_, err := svc.SubmitReview(context.Background(), 1, validSubmission())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("SubmitReview() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil && (len(reviewRepo.inserted) != 0 || profileRepo.creditCalls != 0) {
				t.Error("限流拒绝后不应有任何写入")
			}
		})
	}
}

func TestSubmitReview_InsertFailure(t *testing.T) {
	reviewRepo := &fakeReviewRepo{insertErr: errors.New("db down")}
	portfolioRepo := &fakePortfolioRepo{portfolios: pairPortfolios()}
	profileRepo := &fakeProfileRepo{}
	svc := newReviewServiceForTest(reviewRepo, portfolioRepo, profileRepo)

	review, err := svc.SubmitReview(context.Background(), 1, validSubmission())
	if !errors.Is(err, ErrPersistence) {
		t.Errorf("SubmitReview() error = %v, want ErrPersistence", err)
	}
	if review != nil {
		t.Error("落库失败时不应返回评审记录")
	}
	if profileRepo.creditCalls != 0 {
		t.Error("落库失败后不应尝试入账")
	}
}

func TestSubmitReview_CreditPending(t *testing.T) {
	reviewRepo := &fakeReviewRepo{}
	portfolioRepo := &fakePortfolioRepo{portfolios: pairPortfolios()}
	profileRepo := &fakeProfileRepo{creditErr: errors.New("db down")}
	svc := newReviewServiceForTest(reviewRepo, portfolioRepo, profileRepo)

	review, err := svc.SubmitReview(context.Background(), 1, validSubmission())
	if !errors.Is(err, ErrXpCreditPending) {
		t.Fatalf("SubmitReview() error = %v, want ErrXpCreditPending", err)
	}
	if review == nil {
		t.Fatal("入账失败时应返回已持久化的评审记录供重试")
	}
	if len(reviewRepo.inserted) != 1 {
		t.Errorf("落库 %d 条评审，want 1", len(reviewRepo.inserted))
	}
	if review.XP != 45 {
		t.Errorf("review.XP = %d, want 45", review.XP)
	}
}

func TestRemainingToday(t *testing.T) {
	tests := []struct {
		name       string
		todayCount int64
		want       int64
	}{
		{"未提交过", 0, 10},
		{"提交过部分", 7, 3},
		{"达到上限", 10, 0},
		{"超过上限不为负", 12, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviewRepo := &fakeReviewRepo{todayCount: tt.todayCount}
			svc := newReviewServiceForTest(reviewRepo, &fakePortfolioRepo{}, &fakeProfileRepo{})

			got, err := svc.RemainingToday(context.Background(), 1)
			if err != nil {
				t.Fatalf("RemainingToday() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("RemainingToday() = %d, want %d", got, tt.want)
			}
		})
	}
}
