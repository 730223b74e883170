package repository

import (
	"context"
	"fmt"

	"novelhub/internal/http-api/models"

	"gorm.io/gorm"
)

type GenreRepo struct {
	db *gorm.DB
}

func NewGenreRepo(db *gorm.DB) *GenreRepo {
	return &GenreRepo{db: db}
}

func (r *GenreRepo) GetAll(ctx context.Context) ([]models.Genre, error) {
	var list []models.Genre
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get genres: %w", err)
	}
	return list, nil
}

func (r *GenreRepo) Create(ctx context.Context, g *models.Genre) error {
	if err := r.db.WithContext(ctx).Create(g).Error; err != nil {
		return fmt.Errorf("create genre: %w", err)
	}
	return nil
}

// FindByNames resolves genre names to their records. Names that don't
// exist are simply missing from the result, never an error.
func (r *GenreRepo) FindByNames(ctx context.Context, names []string) ([]models.Genre, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var list []models.Genre
	if err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("find genres by names: %w", err)
	}
	return list, nil
}

// GetNovelsByGenre returns novels associated with the given genre id.
func (r *GenreRepo) GetNovelsByGenre(ctx context.Context, genreID int64) ([]models.Novel, error) {
	var list []models.Novel
	if err := r.db.WithContext(ctx).
		Model(&models.Novel{}).
		Joins("JOIN novel_genres ng ON ng.novel_id = novels.id").
		Where("ng.genre_id = ?", genreID).
		Preload("Genres").
		Order("created_at desc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get novels by genre: %w", err)
	}
	return list, nil
}
