package dto

import "time"

// SubmitReviewDTO 提交评审
type SubmitReviewDTO struct {
	LeftPortfolioID  uint64 `json:"left_portfolio_id" validate:"required"`
	RightPortfolioID uint64 `json:"right_portfolio_id" validate:"required"`
	ScoreLeft        int    `json:"score_left" validate:"min=0,max=10"`
	ScoreRight       int    `json:"score_right" validate:"min=0,max=10"`
	FeedbackLeft     string `json:"feedback_left" validate:"required"`
	FeedbackRight    string `json:"feedback_right" validate:"required"`
}

// ReviewDTO 评审记录
type ReviewDTO struct {
	ID               uint64    `json:"id"`
	ReviewerID       uint64    `json:"reviewer_id"`
	LeftPortfolioID  uint64    `json:"left_portfolio_id"`
	RightPortfolioID uint64    `json:"right_portfolio_id"`
	ScoreLeft        int       `json:"score_left"`
	ScoreRight       int       `json:"score_right"`
	XP               int       `json:"xp"`
	CreatedAt        time.Time `json:"created_at"`
}

// PortfolioDTO 作品集卡片
type PortfolioDTO struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"user_id"`
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Niche     string    `json:"niche"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

// PairDTO 一轮评审展示的作品集对
type PairDTO struct {
	Left           *PortfolioDTO `json:"left"`
	Right          *PortfolioDTO `json:"right"`
	ReducedNovelty bool          `json:"reduced_novelty"`
}

// RemainingDTO 今日剩余评审次数
type RemainingDTO struct {
	Submitted int64 `json:"submitted"`
	Remaining int64 `json:"remaining"`
	DailyCap  int64 `json:"daily_cap"`
}
