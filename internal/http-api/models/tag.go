package models

// Tag is a free-text label attached to novels. Unlike genres, tags are
// created implicitly whenever a novel references a new name.
type Tag struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"uniqueIndex;not null;size:100"`
}

func (Tag) TableName() string {
	return "tags"
}
