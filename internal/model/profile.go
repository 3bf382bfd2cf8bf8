package model

import (
	"time"
)

type Profile struct {
	UserID    uint64    `gorm:"primaryKey" json:"user_id"`
	Username  string    `gorm:"type:varchar(50);uniqueIndex:idx_username;not null" json:"username"`
	Avatar    string    `gorm:"type:varchar(512)" json:"avatar"`
	XP        int       `gorm:"column:xp;not null;default:0" json:"xp"`
	CreatedAt time.Time `json:"created_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
