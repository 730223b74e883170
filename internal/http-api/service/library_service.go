package service

import (
	"context"
	"errors"

	"novelhub/internal/http-api/models"
	"novelhub/internal/http-api/repository"
)

var (
	ErrAlreadyInLibrary = errors.New("novel already in library")
	ErrNovelNotFound    = errors.New("novel not found")
)

// NovelGetter is the slice of the novel repository the user-facing
// services need to check a novel exists.
type NovelGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Novel, error)
}

type LibraryService interface {
	Add(ctx context.Context, userID string, novelID int64) error
	Remove(ctx context.Context, userID string, novelID int64) error
	List(ctx context.Context, userID string) ([]models.UserLibrary, error)
}

type libraryService struct {
	repo      repository.LibraryRepository
	novelRepo NovelGetter
}

func NewLibraryService(repo repository.LibraryRepository, novelRepo NovelGetter) LibraryService {
	return &libraryService{repo: repo, novelRepo: novelRepo}
}

func (s *libraryService) Add(ctx context.Context, userID string, novelID int64) error {
	if _, err := s.novelRepo.GetByID(ctx, novelID); err != nil {
		return ErrNovelNotFound
	}

	exists, err := s.repo.Exists(ctx, userID, novelID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyInLibrary
	}

	return s.repo.Add(ctx, userID, novelID)
}

func (s *libraryService) Remove(ctx context.Context, userID string, novelID int64) error {
	return s.repo.Remove(ctx, userID, novelID)
}

func (s *libraryService) List(ctx context.Context, userID string) ([]models.UserLibrary, error) {
	return s.repo.List(ctx, userID)
}
