package repository

import (
	"context"
	"fmt"

	"novelhub/internal/http-api/models"

	"gorm.io/gorm"
)

type ChapterRepo struct {
	db *gorm.DB
}

func NewChapterRepo(db *gorm.DB) *ChapterRepo {
	return &ChapterRepo{db: db}
}

// ListByNovel returns the chapter index for a novel, ordered by number.
// Content is excluded; it is only loaded when a single chapter is read.
func (r *ChapterRepo) ListByNovel(ctx context.Context, novelID int64) ([]models.Chapter, error) {
	var list []models.Chapter
	if err := r.db.WithContext(ctx).
		Select("id", "novel_id", "number", "title", "created_at", "updated_at").
		Where("novel_id = ?", novelID).
		Order("number asc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list chapters: %w", err)
	}
	return list, nil
}

func (r *ChapterRepo) GetByNumber(ctx context.Context, novelID int64, number int) (*models.Chapter, error) {
	var ch models.Chapter
	if err := r.db.WithContext(ctx).
		Where("novel_id = ? AND number = ?", novelID, number).
		First(&ch).Error; err != nil {
		return nil, err
	}
	return &ch, nil
}

func (r *ChapterRepo) Create(ctx context.Context, ch *models.Chapter) error {
	if err := r.db.WithContext(ctx).Create(ch).Error; err != nil {
		return fmt.Errorf("create chapter: %w", err)
	}
	return nil
}

func (r *ChapterRepo) Update(ctx context.Context, ch *models.Chapter) error {
	if err := r.db.WithContext(ctx).Save(ch).Error; err != nil {
		return fmt.Errorf("update chapter: %w", err)
	}
	return nil
}

func (r *ChapterRepo) CountByNovel(ctx context.Context, novelID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Chapter{}).
		Where("novel_id = ?", novelID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count chapters: %w", err)
	}
	return count, nil
}
