package models

import "time"

// NotificationPrefs holds a user's opt-ins for the notification kinds
// the platform can emit. Delivery itself happens elsewhere; this is
// only the preference record consulted before sending.
type NotificationPrefs struct {
	UserID       string    `gorm:"primaryKey;type:uuid" json:"user_id"`
	NewChapters  bool      `gorm:"default:true" json:"new_chapters"`
	NovelUpdates bool      `gorm:"default:true" json:"novel_updates"`
	Announcement bool      `gorm:"default:false" json:"announcements"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (NotificationPrefs) TableName() string {
	return "notification_prefs"
}
