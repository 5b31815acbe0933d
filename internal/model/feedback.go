package model

import "time"

type Feedback struct {
	ID        uint      `gorm:"primaryKey"`
	PlayerID  uint      `gorm:"not null;index"`
	Comment   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (Feedback) TableName() string {
	return "player_feedback"
}
