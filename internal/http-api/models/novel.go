package models

import "time"

// Novel statuses. Anything else is rejected at the boundary.
const (
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
	StatusHiatus    = "hiatus"
)

type Novel struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Slug          *string   `json:"slug,omitempty" gorm:"uniqueIndex;size:200"`
	Title         string    `json:"title" gorm:"not null"`
	Author        *string   `json:"author,omitempty"`
	Description   *string   `json:"description,omitempty"`
	CoverURL      *string   `json:"cover_url,omitempty"`
	Status        string    `json:"status" gorm:"default:'ongoing';index"`
	TotalChapters int       `json:"total_chapters" gorm:"default:0"`
	Views         int64     `json:"views" gorm:"default:0"`
	Favorites     int64     `json:"favorites" gorm:"default:0"`
	Followers     int64     `json:"followers" gorm:"default:0"`
	Features      int64     `json:"features" gorm:"default:0"`
	RatingCount   int64     `json:"rating_count" gorm:"default:0"`
	RatingAverage float64   `json:"rating_average" gorm:"type:decimal(3,2);default:0"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// associations
	Genres []Genre `json:"genres,omitempty" gorm:"many2many:novel_genres;constraint:OnDelete:CASCADE;"`
	Tags   []Tag   `json:"tags,omitempty" gorm:"many2many:novel_tags;constraint:OnDelete:CASCADE;"`
}

func (Novel) TableName() string {
	return "novels"
}

// GenreNames flattens the preloaded genre association to names.
func (n Novel) GenreNames() []string {
	names := make([]string, 0, len(n.Genres))
	for _, g := range n.Genres {
		names = append(names, g.Name)
	}
	return names
}

// TagNames flattens the preloaded tag association to names.
func (n Novel) TagNames() []string {
	names := make([]string, 0, len(n.Tags))
	for _, t := range n.Tags {
		names = append(names, t.Name)
	}
	return names
}

// ValidStatus reports whether s is one of the known novel statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusOngoing, StatusCompleted, StatusHiatus:
		return true
	}
	return false
}
