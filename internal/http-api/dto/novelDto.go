package dto

import (
	"time"

	"novelhub/internal/http-api/models"
)

// CreateNovelDTO used for POST /api/novels
type CreateNovelDTO struct {
	Slug        *string  `json:"slug,omitempty"` // optional client slug
	Title       string   `json:"title" binding:"required"`
	Author      *string  `json:"author,omitempty"`
	Status      string   `json:"status,omitempty" binding:"omitempty,oneof=ongoing completed hiatus"`
	Description *string  `json:"description,omitempty"`
	CoverURL    *string  `json:"cover_url,omitempty"`
	GenreIDs    []int64  `json:"genre_ids,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// UpdateNovelDTO used for PUT /api/novels/:id (partial updates allowed)
type UpdateNovelDTO struct {
	Title       *string  `json:"title,omitempty"`
	Author      *string  `json:"author,omitempty"`
	Status      *string  `json:"status,omitempty" binding:"omitempty,oneof=ongoing completed hiatus"`
	Description *string  `json:"description,omitempty"`
	CoverURL    *string  `json:"cover_url,omitempty"`
	Slug        *string  `json:"slug,omitempty"`
	GenreIDs    []int64  `json:"genre_ids,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// NovelResponse DTO for detail responses
type NovelResponse struct {
	ID            int64     `json:"id"`
	Slug          *string   `json:"slug,omitempty"`
	Title         string    `json:"title"`
	Author        *string   `json:"author,omitempty"`
	Status        string    `json:"status"`
	TotalChapters int       `json:"total_chapters"`
	Description   *string   `json:"description,omitempty"`
	CoverURL      *string   `json:"cover_url,omitempty"`
	Genres        []string  `json:"genres"`
	Tags          []string  `json:"tags"`
	Views         int64     `json:"views"`
	Favorites     int64     `json:"favorites"`
	Followers     int64     `json:"followers"`
	Features      int64     `json:"features"`
	RatingCount   int64     `json:"rating_count"`
	RatingAverage float64   `json:"rating_average"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NovelBasicResponse is the trimmed shape used in lists.
type NovelBasicResponse struct {
	ID            int64   `json:"id"`
	Slug          *string `json:"slug,omitempty"`
	Title         string  `json:"title"`
	Author        *string `json:"author,omitempty"`
	Status        string  `json:"status"`
	CoverURL      *string `json:"cover_url,omitempty"`
	RatingAverage float64 `json:"rating_average"`
	TotalChapters int     `json:"total_chapters"`
}

// Converters
func (d CreateNovelDTO) ToModel() models.Novel {
	return models.Novel{
		Slug:        d.Slug,
		Title:       d.Title,
		Author:      d.Author,
		Status:      d.Status,
		Description: d.Description,
		CoverURL:    d.CoverURL,
	}
}

func (d UpdateNovelDTO) ApplyTo(n *models.Novel) {
	if d.Title != nil {
		n.Title = *d.Title
	}
	if d.Author != nil {
		n.Author = d.Author
	}
	if d.Status != nil {
		n.Status = *d.Status
	}
	if d.Description != nil {
		n.Description = d.Description
	}
	if d.CoverURL != nil {
		n.CoverURL = d.CoverURL
	}
	if d.Slug != nil {
		n.Slug = d.Slug
	}
}

func FromModelToResponse(n models.Novel) NovelResponse {
	return NovelResponse{
		ID:            n.ID,
		Slug:          n.Slug,
		Title:         n.Title,
		Author:        n.Author,
		Status:        n.Status,
		TotalChapters: n.TotalChapters,
		Description:   n.Description,
		CoverURL:      n.CoverURL,
		Genres:        n.GenreNames(),
		Tags:          n.TagNames(),
		Views:         n.Views,
		Favorites:     n.Favorites,
		Followers:     n.Followers,
		Features:      n.Features,
		RatingCount:   n.RatingCount,
		RatingAverage: n.RatingAverage,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}

func FromModelToBasicResponse(n models.Novel) NovelBasicResponse {
	return NovelBasicResponse{
		ID:            n.ID,
		Slug:          n.Slug,
		Title:         n.Title,
		Author:        n.Author,
		Status:        n.Status,
		CoverURL:      n.CoverURL,
		RatingAverage: n.RatingAverage,
		TotalChapters: n.TotalChapters,
	}
}
