package service

import (
	"context"
	"errors"

	"novelhub/internal/http-api/models"
	"novelhub/internal/http-api/repository"
)

var ErrInvalidScore = errors.New("score must be between 1 and 5")

type RatingService interface {
	Rate(ctx context.Context, userID string, novelID int64, score int) error
	Unrate(ctx context.Context, userID string, novelID int64) error
	GetForUser(ctx context.Context, userID string, novelID int64) (*models.Rating, error)
}

type ratingService struct {
	repo      repository.RatingRepository
	novelRepo NovelGetter
}

func NewRatingService(repo repository.RatingRepository, novelRepo NovelGetter) RatingService {
	return &ratingService{repo: repo, novelRepo: novelRepo}
}

// Rate upserts the user's score and recomputes the novel's aggregate.
// Scores live on a 1-5 scale, so the stored average always stays inside
// [0,5].
func (s *ratingService) Rate(ctx context.Context, userID string, novelID int64, score int) error {
	if score < 1 || score > 5 {
		return ErrInvalidScore
	}

	if _, err := s.novelRepo.GetByID(ctx, novelID); err != nil {
		return ErrNovelNotFound
	}

	rating := &models.Rating{
		UserID:  userID,
		NovelID: novelID,
		Score:   score,
	}
	if err := s.repo.Upsert(ctx, rating); err != nil {
		return err
	}

	return s.refreshAggregate(ctx, novelID)
}

func (s *ratingService) Unrate(ctx context.Context, userID string, novelID int64) error {
	if err := s.repo.Delete(ctx, userID, novelID); err != nil {
		return err
	}
	return s.refreshAggregate(ctx, novelID)
}

func (s *ratingService) GetForUser(ctx context.Context, userID string, novelID int64) (*models.Rating, error) {
	return s.repo.GetByUserAndNovel(ctx, userID, novelID)
}

func (s *ratingService) refreshAggregate(ctx context.Context, novelID int64) error {
	count, average, err := s.repo.Aggregate(ctx, novelID)
	if err != nil {
		return err
	}
	return s.repo.ApplyAggregate(ctx, novelID, count, average)
}
