package models

import "time"

// UserProgress tracks how far a user has read into a novel.
type UserProgress struct {
	UserID         string    `gorm:"type:uuid;not null;primaryKey;index:idx_user_novel" json:"user_id"`
	NovelID        int64     `gorm:"not null;primaryKey;index:idx_user_novel" json:"novel_id"`
	CurrentChapter int       `gorm:"default:0" json:"current_chapter"`
	Status         string    `gorm:"type:text" json:"status"` // reading, completed, plan_to_read, dropped
	UpdatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
