package dto

import (
	"time"

	"novelhub/internal/http-api/models"
)

// UpdateProgressRequest: payload for recording reading progress
type UpdateProgressRequest struct {
	NovelID        int64  `json:"novel_id" binding:"required"`
	CurrentChapter int    `json:"current_chapter" binding:"min=0"`
	Status         string `json:"status" binding:"omitempty,oneof=reading completed plan_to_read dropped"`
}

type ProgressResponse struct {
	NovelID        int64     `json:"novel_id"`
	CurrentChapter int       `json:"current_chapter"`
	Status         string    `json:"status"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ProgressFromModel(p models.UserProgress) ProgressResponse {
	return ProgressResponse{
		NovelID:        p.NovelID,
		CurrentChapter: p.CurrentChapter,
		Status:         p.Status,
		UpdatedAt:      p.UpdatedAt,
	}
}
