package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"novelhub/internal/http-api/models"
	"novelhub/internal/http-api/repository"
)

type NovelService interface {
	GetAll(ctx context.Context, page, pageSize int) ([]models.Novel, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Novel, error)
	Create(ctx context.Context, n *models.Novel) error
	Update(ctx context.Context, id int64, n *models.Novel) error
	Delete(ctx context.Context, id int64) error
	ReplaceGenresForNovel(ctx context.Context, novelID int64, genreIDs []int64) error
	ReplaceTagsForNovel(ctx context.Context, novelID int64, tags []string) error
}

type novelService struct {
	repo *repository.NovelRepo
}

func NewNovelService(r *repository.NovelRepo) NovelService {
	return &novelService{repo: r}
}

func (s *novelService) GetAll(ctx context.Context, page, pageSize int) ([]models.Novel, int64, error) {
	return s.repo.GetAll(ctx, page, pageSize)
}

// GetByID fetches the novel and bumps its view counter. The counter
// write is best-effort: a failed bump never fails the read.
func (s *novelService) GetByID(ctx context.Context, id int64) (*models.Novel, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	_ = s.repo.IncrementViews(ctx, id)
	return n, nil
}

func (s *novelService) Create(ctx context.Context, n *models.Novel) error {
	if strings.TrimSpace(n.Title) == "" {
		return errors.New("title is required")
	}

	if n.Status == "" {
		n.Status = models.StatusOngoing
	}
	if !models.ValidStatus(n.Status) {
		return fmt.Errorf("invalid status: %s", n.Status)
	}

	// ensure slug exists, generate from title if missing
	if n.Slug == nil || strings.TrimSpace(*n.Slug) == "" {
		slug := generateSlug(n.Title)
		// short uuid suffix to avoid collisions
		slug = fmt.Sprintf("%s-%s", slug, uuid.New().String()[:8])
		n.Slug = &slug
	}

	if n.Author != nil {
		a := strings.TrimSpace(*n.Author)
		n.Author = &a
	}

	return s.repo.Create(ctx, n)
}

func (s *novelService) Update(ctx context.Context, id int64, n *models.Novel) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if n.Slug != nil {
		existing.Slug = n.Slug
	}
	if strings.TrimSpace(n.Title) != "" {
		existing.Title = n.Title
	}
	if n.Author != nil {
		existing.Author = n.Author
	}
	if n.Status != "" {
		if !models.ValidStatus(n.Status) {
			return fmt.Errorf("invalid status: %s", n.Status)
		}
		existing.Status = n.Status
	}
	if n.Description != nil {
		existing.Description = n.Description
	}
	if n.CoverURL != nil {
		existing.CoverURL = n.CoverURL
	}

	return s.repo.Update(ctx, id, existing)
}

func (s *novelService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *novelService) ReplaceGenresForNovel(ctx context.Context, novelID int64, genreIDs []int64) error {
	for _, id := range genreIDs {
		if id <= 0 {
			return fmt.Errorf("invalid genre id: %d", id)
		}
	}
	return s.repo.ReplaceGenres(ctx, novelID, genreIDs)
}

func (s *novelService) ReplaceTagsForNovel(ctx context.Context, novelID int64, tags []string) error {
	return s.repo.ReplaceTags(ctx, novelID, tags)
}

/* helper: generate slug-like string from title */
var nonAlnum = regexp.MustCompile(`[^a-z0-9\-]+`)

func generateSlug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = strings.ReplaceAll(s, " ", "-")
	s = nonAlnum.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "--", "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "novel"
	}
	if len(s) > 50 {
		s = s[:50]
	}
	return s
}
