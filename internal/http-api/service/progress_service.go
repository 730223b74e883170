package service

import (
	"context"
	"errors"
	"time"

	"novelhub/internal/cache"
	"novelhub/internal/http-api/models"
	"novelhub/internal/http-api/repository"
)

type ProgressService interface {
	Update(ctx context.Context, userID string, novelID int64, currentChapter int, status string) error
	Get(ctx context.Context, userID string, novelID int64) (*models.UserProgress, error)
	GetByUser(ctx context.Context, userID string) ([]models.UserProgress, error)
}

type progressService struct {
	repo      repository.ProgressRepository
	novelRepo NovelGetter
	hot       *cache.ProgressCache // nil when redis is unavailable
}

func NewProgressService(repo repository.ProgressRepository, novelRepo NovelGetter, hot *cache.ProgressCache) ProgressService {
	return &progressService{
		repo:      repo,
		novelRepo: novelRepo,
		hot:       hot,
	}
}

func (s *progressService) Update(ctx context.Context, userID string, novelID int64, currentChapter int, status string) error {
	novel, err := s.novelRepo.GetByID(ctx, novelID)
	if err != nil {
		return errors.New("novel not found")
	}

	if currentChapter < 0 {
		return errors.New("chapter must be >= 0")
	}
	if novel.TotalChapters > 0 && currentChapter > novel.TotalChapters {
		return errors.New("chapter number exceeds total chapters")
	}

	validStatuses := map[string]bool{
		"reading":      true,
		"completed":    true,
		"plan_to_read": true,
		"dropped":      true,
	}
	if status != "" && !validStatuses[status] {
		return errors.New("invalid status")
	}

	progress := &models.UserProgress{
		UserID:         userID,
		NovelID:        novelID,
		CurrentChapter: currentChapter,
		Status:         status,
		UpdatedAt:      time.Now(),
	}

	if err := s.repo.UpdateProgress(ctx, progress); err != nil {
		return err
	}

	// write-through to the hot cache; a cache failure never fails the
	// request, postgres stays the source of truth
	s.hot.Save(ctx, progress)
	return nil
}

func (s *progressService) Get(ctx context.Context, userID string, novelID int64) (*models.UserProgress, error) {
	if cached, err := s.hot.Get(ctx, userID, novelID); err == nil && cached != nil {
		return cached, nil
	}
	return s.repo.GetProgressByNovelID(ctx, userID, novelID)
}

func (s *progressService) GetByUser(ctx context.Context, userID string) ([]models.UserProgress, error) {
	return s.repo.GetAllProgress(ctx, userID)
}
