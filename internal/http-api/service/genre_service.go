package service

import (
	"context"
	"errors"
	"strings"

	"novelhub/internal/http-api/models"
	"novelhub/internal/http-api/repository"
)

type GenreService interface {
	GetAll(ctx context.Context) ([]models.Genre, error)
	Create(ctx context.Context, g *models.Genre) error
	GetNovelsByGenre(ctx context.Context, genreID int64) ([]models.Novel, error)
}

type genreService struct {
	repo *repository.GenreRepo
}

func NewGenreService(r *repository.GenreRepo) GenreService {
	return &genreService{repo: r}
}

func (s *genreService) GetAll(ctx context.Context) ([]models.Genre, error) {
	return s.repo.GetAll(ctx)
}

func (s *genreService) Create(ctx context.Context, g *models.Genre) error {
	if strings.TrimSpace(g.Name) == "" {
		return errors.New("name is required")
	}
	if g.Slug == "" {
		g.Slug = generateSlug(g.Name)
	}
	return s.repo.Create(ctx, g)
}

func (s *genreService) GetNovelsByGenre(ctx context.Context, genreID int64) ([]models.Novel, error) {
	return s.repo.GetNovelsByGenre(ctx, genreID)
}
