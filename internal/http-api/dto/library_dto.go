package dto

import "time"

// AddToLibraryRequest: payload for bookmarking a novel
type AddToLibraryRequest struct {
	NovelID int64 `json:"novel_id" binding:"required"`
}

type LibraryResponse struct {
	ID      int64         `json:"id"`
	NovelID int64         `json:"novel_id"`
	AddedAt time.Time     `json:"added_at"`
	Novel   NovelResponse `json:"novel,omitempty"`
}

type LibraryListResponse struct {
	Items []LibraryResponse `json:"items"`
	Total int               `json:"total"`
}
