package model

import (
	"time"
)

type Review struct {
	ID               uint64    `gorm:"primaryKey" json:"id"`
	ReviewerID       uint64    `gorm:"not null;index:idx_reviewer_created,priority:1" json:"reviewer_id"`
	LeftPortfolioID  uint64    `gorm:"not null;index:idx_left_portfolio" json:"left_portfolio_id"`
	RightPortfolioID uint64    `gorm:"not null;index:idx_right_portfolio" json:"right_portfolio_id"`
	ScoreLeft        int       `gorm:"not null" json:"score_left"`
	ScoreRight       int       `gorm:"not null" json:"score_right"`
	FeedbackLeft     string    `gorm:"type:text;not null" json:"feedback_left"`
	FeedbackRight    string    `gorm:"type:text;not null" json:"feedback_right"`
	XP               int       `gorm:"column:xp;not null;default:0" json:"xp"`
	CreatedAt        time.Time `gorm:"index:idx_reviewer_created,priority:2" json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}
