package search

import (
	"net/url"
	"strconv"
	"strings"
)

// SortKey is a symbolic sort selector supplied by the client.
type SortKey string

const (
	SortRelevance  SortKey = "relevance"
	SortRating     SortKey = "rating"
	SortPopularity SortKey = "popularity"
	SortFeatured   SortKey = "featured"
	SortNewest     SortKey = "newest"
	SortUpdated    SortKey = "updated"
)

const (
	DefaultPage      = 1
	DefaultLimit     = 20
	MaxLimit         = 100
	DefaultRatingMin = 0
	DefaultRatingMax = 5
)

// Query is the normalized form of the /search query parameters. It is
// built once at the HTTP boundary and passed down unchanged.
type Query struct {
	Text       string
	Genres     []string
	Statuses   []string
	Tags       []string
	RatingMin  float64
	RatingMax  float64
	ChapterMin int
	// ChapterMax is nil when the parameter is absent: "no upper bound"
	// must stay distinguishable from "zero chapters".
	ChapterMax *int
	SortBy     SortKey
	SortAsc    bool
	Page       int
	Limit      int
}

// ParseQuery builds a Query from raw URL parameters. Unrecognized enum
// values degrade to defaults instead of failing; out-of-range numbers
// are clamped. It never returns an error by design.
func ParseQuery(values url.Values) Query {
	q := Query{
		Text:      strings.TrimSpace(values.Get("q")),
		Genres:    splitCSV(values.Get("genres")),
		Statuses:  splitCSV(values.Get("status")),
		Tags:      splitCSV(values.Get("tags")),
		RatingMin: DefaultRatingMin,
		RatingMax: DefaultRatingMax,
		SortBy:    resolveSortKey(values.Get("sortBy")),
		SortAsc:   strings.EqualFold(strings.TrimSpace(values.Get("sortOrder")), "asc"),
		Page:      DefaultPage,
		Limit:     DefaultLimit,
	}

	if s := strings.TrimSpace(values.Get("rating_min")); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil && v >= 0 && v <= 5 {
			q.RatingMin = v
		}
	}
	if s := strings.TrimSpace(values.Get("rating_max")); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil && v >= 0 && v <= 5 {
			q.RatingMax = v
		}
	}

	if s := strings.TrimSpace(values.Get("chapter_min")); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			q.ChapterMin = v
		}
	}
	if s := strings.TrimSpace(values.Get("chapter_max")); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			q.ChapterMax = &v
		}
	}

	if s := strings.TrimSpace(values.Get("page")); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			q.Page = v
		}
	}
	if s := strings.TrimSpace(values.Get("limit")); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 && v <= MaxLimit {
			q.Limit = v
		}
	}

	return q
}

// Values encodes the Query back into URL parameters. ParseQuery(q.Values())
// reproduces an equivalent query plan.
func (q Query) Values() url.Values {
	values := url.Values{}
	if q.Text != "" {
		values.Set("q", q.Text)
	}
	if len(q.Genres) > 0 {
		values.Set("genres", strings.Join(q.Genres, ","))
	}
	if len(q.Statuses) > 0 {
		values.Set("status", strings.Join(q.Statuses, ","))
	}
	if len(q.Tags) > 0 {
		values.Set("tags", strings.Join(q.Tags, ","))
	}
	values.Set("rating_min", strconv.FormatFloat(q.RatingMin, 'f', -1, 64))
	values.Set("rating_max", strconv.FormatFloat(q.RatingMax, 'f', -1, 64))
	values.Set("chapter_min", strconv.Itoa(q.ChapterMin))
	if q.ChapterMax != nil {
		values.Set("chapter_max", strconv.Itoa(*q.ChapterMax))
	}
	values.Set("sortBy", string(q.SortBy))
	if q.SortAsc {
		values.Set("sortOrder", "asc")
	} else {
		values.Set("sortOrder", "desc")
	}
	values.Set("page", strconv.Itoa(q.Page))
	values.Set("limit", strconv.Itoa(q.Limit))
	return values
}

// Terms returns the whitespace-split words of the free-text query, or an
// empty slice when there is none.
func (q Query) Terms() []string {
	if q.Text == "" {
		return []string{}
	}
	return strings.Fields(q.Text)
}

func resolveSortKey(raw string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(raw))) {
	case SortRating:
		return SortRating
	case SortPopularity:
		return SortPopularity
	case SortFeatured:
		return SortFeatured
	case SortNewest:
		return SortNewest
	case SortUpdated:
		return SortUpdated
	default:
		// unknown keys behave like relevance: natural order
		return SortRelevance
	}
}

func splitCSV(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
