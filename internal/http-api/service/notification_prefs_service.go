package service

import (
	"context"

	"novelhub/internal/http-api/models"
	"novelhub/internal/http-api/repository"
)

type NotificationPrefsService interface {
	Get(ctx context.Context, userID string) (*models.NotificationPrefs, error)
	Update(ctx context.Context, prefs *models.NotificationPrefs) (*models.NotificationPrefs, error)
}

type notificationPrefsService struct {
	repo repository.NotificationPrefsRepository
}

func NewNotificationPrefsService(repo repository.NotificationPrefsRepository) NotificationPrefsService {
	return &notificationPrefsService{repo: repo}
}

func (s *notificationPrefsService) Get(ctx context.Context, userID string) (*models.NotificationPrefs, error) {
	return s.repo.Get(ctx, userID)
}

func (s *notificationPrefsService) Update(ctx context.Context, prefs *models.NotificationPrefs) (*models.NotificationPrefs, error) {
	if err := s.repo.Save(ctx, prefs); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, prefs.UserID)
}
