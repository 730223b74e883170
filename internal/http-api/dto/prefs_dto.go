package dto

import "novelhub/internal/http-api/models"

// UpdatePrefsRequest: partial update of notification preferences.
// Pointers distinguish "not sent" from "set to false".
type UpdatePrefsRequest struct {
	NewChapters  *bool `json:"new_chapters,omitempty"`
	NovelUpdates *bool `json:"novel_updates,omitempty"`
	Announcement *bool `json:"announcements,omitempty"`
}

type PrefsResponse struct {
	NewChapters  bool `json:"new_chapters"`
	NovelUpdates bool `json:"novel_updates"`
	Announcement bool `json:"announcements"`
}

func PrefsFromModel(p models.NotificationPrefs) PrefsResponse {
	return PrefsResponse{
		NewChapters:  p.NewChapters,
		NovelUpdates: p.NovelUpdates,
		Announcement: p.Announcement,
	}
}

func (r UpdatePrefsRequest) ApplyTo(p *models.NotificationPrefs) {
	if r.NewChapters != nil {
		p.NewChapters = *r.NewChapters
	}
	if r.NovelUpdates != nil {
		p.NovelUpdates = *r.NovelUpdates
	}
	if r.Announcement != nil {
		p.Announcement = *r.Announcement
	}
}
