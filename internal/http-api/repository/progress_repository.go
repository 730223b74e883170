package repository

import (
	"context"
	"time"

	"novelhub/internal/http-api/models"

	"gorm.io/gorm"
)

type ProgressRepository interface {
	GetAllProgress(ctx context.Context, userID string) ([]models.UserProgress, error)
	GetProgressByNovelID(ctx context.Context, userID string, novelID int64) (*models.UserProgress, error)
	UpdateProgress(ctx context.Context, progress *models.UserProgress) error
	DeleteProgress(ctx context.Context, userID string, novelID int64) error
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) GetAllProgress(ctx context.Context, userID string) ([]models.UserProgress, error) {
	var list []models.UserProgress
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *progressRepository) GetProgressByNovelID(ctx context.Context, userID string, novelID int64) (*models.UserProgress, error) {
	var progress models.UserProgress
	if err := r.db.WithContext(ctx).Where("user_id = ? AND novel_id = ?", userID, novelID).First(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

// UpdateProgress upserts the progress record for (user, novel).
func (r *progressRepository) UpdateProgress(ctx context.Context, progress *models.UserProgress) error {
	var existing models.UserProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND novel_id = ?", progress.UserID, progress.NovelID).
		First(&existing).Error

	if err == gorm.ErrRecordNotFound {
		progress.UpdatedAt = time.Now()
		return r.db.WithContext(ctx).Create(progress).Error
	} else if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Model(&existing).Updates(map[string]any{
		"current_chapter": progress.CurrentChapter,
		"status":          progress.Status,
		"updated_at":      time.Now(),
	}).Error
}

func (r *progressRepository) DeleteProgress(ctx context.Context, userID string, novelID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND novel_id = ?", userID, novelID).
		Delete(&models.UserProgress{}).Error
}
