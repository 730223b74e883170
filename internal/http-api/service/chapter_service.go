package service

import (
	"context"
	"errors"
	"strings"

	"novelhub/internal/http-api/models"
	"novelhub/internal/http-api/repository"
)

var ErrChapterExists = errors.New("chapter number already exists for this novel")

type ChapterService interface {
	ListByNovel(ctx context.Context, novelID int64) ([]models.Chapter, error)
	GetByNumber(ctx context.Context, novelID int64, number int) (*models.Chapter, error)
	Create(ctx context.Context, ch *models.Chapter) error
	Update(ctx context.Context, novelID int64, number int, title *string, content *string) (*models.Chapter, error)
}

type chapterService struct {
	repo      *repository.ChapterRepo
	novelRepo *repository.NovelRepo
}

func NewChapterService(repo *repository.ChapterRepo, novelRepo *repository.NovelRepo) ChapterService {
	return &chapterService{repo: repo, novelRepo: novelRepo}
}

func (s *chapterService) ListByNovel(ctx context.Context, novelID int64) ([]models.Chapter, error) {
	return s.repo.ListByNovel(ctx, novelID)
}

func (s *chapterService) GetByNumber(ctx context.Context, novelID int64, number int) (*models.Chapter, error) {
	return s.repo.GetByNumber(ctx, novelID, number)
}

// Create adds a chapter and keeps the novel's chapter count in step.
func (s *chapterService) Create(ctx context.Context, ch *models.Chapter) error {
	if strings.TrimSpace(ch.Title) == "" {
		return errors.New("title is required")
	}
	if ch.Number < 1 {
		return errors.New("chapter number must be >= 1")
	}

	novel, err := s.novelRepo.GetByID(ctx, ch.NovelID)
	if err != nil {
		return errors.New("novel not found")
	}

	if existing, err := s.repo.GetByNumber(ctx, ch.NovelID, ch.Number); err == nil && existing != nil {
		return ErrChapterExists
	}

	if err := s.repo.Create(ctx, ch); err != nil {
		return err
	}

	count, err := s.repo.CountByNovel(ctx, ch.NovelID)
	if err != nil {
		return err
	}
	novel.TotalChapters = int(count)
	return s.novelRepo.Update(ctx, novel.ID, novel)
}

func (s *chapterService) Update(ctx context.Context, novelID int64, number int, title *string, content *string) (*models.Chapter, error) {
	ch, err := s.repo.GetByNumber(ctx, novelID, number)
	if err != nil {
		return nil, err
	}

	if title != nil && strings.TrimSpace(*title) != "" {
		ch.Title = *title
	}
	if content != nil {
		ch.Content = content
	}

	if err := s.repo.Update(ctx, ch); err != nil {
		return nil, err
	}
	return ch, nil
}
