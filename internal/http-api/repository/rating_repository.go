package repository

import (
	"context"
	"errors"

	"novelhub/internal/http-api/models"

	"gorm.io/gorm"
)

type RatingRepository interface {
	Upsert(ctx context.Context, rating *models.Rating) error
	Delete(ctx context.Context, userID string, novelID int64) error
	GetByUserAndNovel(ctx context.Context, userID string, novelID int64) (*models.Rating, error)
	Aggregate(ctx context.Context, novelID int64) (count int64, average float64, err error)
	ApplyAggregate(ctx context.Context, novelID, count int64, average float64) error
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert creates the user's rating for a novel or overwrites the score
// of an existing one.
func (r *ratingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	var existing models.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND novel_id = ?", rating.UserID, rating.NovelID).
		First(&existing).Error

	if err == gorm.ErrRecordNotFound {
		return r.db.WithContext(ctx).Create(rating).Error
	} else if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Model(&existing).Update("score", rating.Score).Error
}

func (r *ratingRepository) Delete(ctx context.Context, userID string, novelID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND novel_id = ?", userID, novelID).
		Delete(&models.Rating{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("rating not found")
	}
	return nil
}

func (r *ratingRepository) GetByUserAndNovel(ctx context.Context, userID string, novelID int64) (*models.Rating, error) {
	var rating models.Rating
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND novel_id = ?", userID, novelID).
		First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

// Aggregate computes the rating count and average for a novel.
func (r *ratingRepository) Aggregate(ctx context.Context, novelID int64) (int64, float64, error) {
	var agg struct {
		Count   int64
		Average float64
	}

	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("COUNT(*) as count, COALESCE(AVG(score), 0) as average").
		Where("novel_id = ?", novelID).
		Scan(&agg).Error
	if err != nil {
		return 0, 0, err
	}

	return agg.Count, agg.Average, nil
}

// ApplyAggregate writes the recomputed aggregate onto the novel row.
func (r *ratingRepository) ApplyAggregate(ctx context.Context, novelID, count int64, average float64) error {
	return r.db.WithContext(ctx).Model(&models.Novel{}).
		Where("id = ?", novelID).
		Updates(map[string]any{
			"rating_count":   count,
			"rating_average": average,
		}).Error
}
