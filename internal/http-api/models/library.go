package models

import "time"

// UserLibrary is a user's bookmark of a novel.
type UserLibrary struct {
	ID      int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  string    `gorm:"type:uuid;not null;index" json:"user_id"`
	NovelID int64     `gorm:"not null;index" json:"novel_id"`
	AddedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"added_at"`

	// Associations
	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Novel *Novel `gorm:"foreignKey:NovelID" json:"novel,omitempty"`
}

func (UserLibrary) TableName() string {
	return "user_library"
}
