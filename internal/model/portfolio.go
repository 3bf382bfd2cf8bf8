package model

import (
	"time"
)

type Portfolio struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Link      string    `gorm:"type:varchar(512);not null" json:"link"`
	Niche     string    `gorm:"type:varchar(100)" json:"niche"`
	Image     string    `gorm:"type:varchar(512)" json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

func (Portfolio) TableName() string {
	return "portfolios"
}
