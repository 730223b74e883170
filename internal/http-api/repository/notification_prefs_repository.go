package repository

import (
	"context"

	"novelhub/internal/http-api/models"

	"gorm.io/gorm"
)

type NotificationPrefsRepository interface {
	Get(ctx context.Context, userID string) (*models.NotificationPrefs, error)
	Save(ctx context.Context, prefs *models.NotificationPrefs) error
}

type notificationPrefsRepository struct {
	db *gorm.DB
}

func NewNotificationPrefsRepository(db *gorm.DB) NotificationPrefsRepository {
	return &notificationPrefsRepository{db: db}
}

// Get returns the user's preferences, falling back to the defaults for
// users who never saved any.
func (r *notificationPrefsRepository) Get(ctx context.Context, userID string) (*models.NotificationPrefs, error) {
	var prefs models.NotificationPrefs
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&prefs).Error
	if err == gorm.ErrRecordNotFound {
		return &models.NotificationPrefs{
			UserID:       userID,
			NewChapters:  true,
			NovelUpdates: true,
		}, nil
	} else if err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (r *notificationPrefsRepository) Save(ctx context.Context, prefs *models.NotificationPrefs) error {
	return r.db.WithContext(ctx).Save(prefs).Error
}
