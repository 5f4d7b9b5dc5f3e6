package models

import "time"

// Session has no expiry. A token stays valid for as long as its row exists.
type Session struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null;index" json:"userId"`
	Token     string    `gorm:"column:token;type:text;not null;uniqueIndex" json:"token"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Session) TableName() string { return "sessions" }
