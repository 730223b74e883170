package models

import "time"

type Chapter struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	NovelID   int64     `json:"novel_id" gorm:"not null;uniqueIndex:idx_novel_chapter"`
	Number    int       `json:"number" gorm:"not null;uniqueIndex:idx_novel_chapter"`
	Title     string    `json:"title" gorm:"not null"`
	Content   *string   `json:"content,omitempty"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// association
	Novel *Novel `json:"novel,omitempty" gorm:"foreignKey:NovelID;constraint:OnDelete:CASCADE;"`
}

func (Chapter) TableName() string {
	return "chapters"
}
