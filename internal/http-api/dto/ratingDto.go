package dto

// RateNovelRequest: payload for rating a novel
type RateNovelRequest struct {
	Score int `json:"score" binding:"required,min=1,max=5"`
}

type RatingResponse struct {
	NovelID int64 `json:"novel_id"`
	Score   int   `json:"score"`
}
