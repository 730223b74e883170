package dto

import (
	"time"

	"novelhub/internal/http-api/models"
)

// CreateChapterDTO for POST /api/novels/:novel_id/chapters
type CreateChapterDTO struct {
	Number  int     `json:"number" binding:"required,min=1"`
	Title   string  `json:"title" binding:"required"`
	Content *string `json:"content,omitempty"`
}

// UpdateChapterDTO for PUT /api/novels/:novel_id/chapters/:number
type UpdateChapterDTO struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// ChapterListItem is the index entry without content.
type ChapterListItem struct {
	ID        int64     `json:"id"`
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// ChapterResponse carries the full chapter including content.
type ChapterResponse struct {
	ID        int64     `json:"id"`
	NovelID   int64     `json:"novel_id"`
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	Content   *string   `json:"content,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ChapterToListItem(ch models.Chapter) ChapterListItem {
	return ChapterListItem{
		ID:        ch.ID,
		Number:    ch.Number,
		Title:     ch.Title,
		CreatedAt: ch.CreatedAt,
	}
}

func ChapterToResponse(ch models.Chapter) ChapterResponse {
	return ChapterResponse{
		ID:        ch.ID,
		NovelID:   ch.NovelID,
		Number:    ch.Number,
		Title:     ch.Title,
		Content:   ch.Content,
		CreatedAt: ch.CreatedAt,
		UpdatedAt: ch.UpdatedAt,
	}
}
