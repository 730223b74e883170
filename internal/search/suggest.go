package search

import "errors"

// ErrEmptyQuery rejects suggestion requests without a query string.
var ErrEmptyQuery = errors.New("query is required")

// Suggestion types returned by /search/suggestions.
const (
	SuggestionQuery  = "query"
	SuggestionNovel  = "novel"
	SuggestionAuthor = "author"
)

// Caps per suggestion source.
const (
	MaxNovelSuggestions  = 3
	MaxAuthorSuggestions = 3
)

// querySuffixes are the canned words appended to the partial query to
// synthesize query-style suggestions.
var querySuffixes = []string{"system", "academy", "world"}

// Suggestion is one entry of the suggestions response.
type Suggestion struct {
	Text       string  `json:"text"`
	Type       string  `json:"type"`
	ID         *int64  `json:"id,omitempty"`
	Author     *string `json:"author,omitempty"`
	CoverImage *string `json:"coverImage,omitempty"`
	NovelCount *int64  `json:"novelCount,omitempty"`
	Popularity *int64  `json:"popularity,omitempty"`
}

// QuerySuggestions synthesizes the canned query-style suggestions for a
// partial query, one per suffix word.
func QuerySuggestions(queryText string) []Suggestion {
	out := make([]Suggestion, 0, len(querySuffixes))
	for _, suffix := range querySuffixes {
		out = append(out, Suggestion{
			Text: queryText + " " + suffix,
			Type: SuggestionQuery,
		})
	}
	return out
}

// NovelSuggestion shapes a matched novel into a suggestion entry.
func NovelSuggestion(id int64, title, author, coverImage string, views int64) Suggestion {
	s := Suggestion{
		Text: title,
		Type: SuggestionNovel,
		ID:   &id,
	}
	if author != "" {
		s.Author = &author
	}
	if coverImage != "" {
		s.CoverImage = &coverImage
	}
	s.Popularity = &views
	return s
}

// AuthorSuggestion shapes a matched author into a suggestion entry.
func AuthorSuggestion(name string, novelCount int64) Suggestion {
	return Suggestion{
		Text:       name,
		Type:       SuggestionAuthor,
		NovelCount: &novelCount,
	}
}
