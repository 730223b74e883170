package search

// Facet is a (name, count) pair along one categorical dimension.
type Facet struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// FacetGroups holds the two facet dimensions exposed by /search.
type FacetGroups struct {
	Genres []Facet `json:"genres"`
	Status []Facet `json:"status"`
}

// Rating is the aggregate rating attached to a projected result.
type Rating struct {
	Count   int64   `json:"count"`
	Average float64 `json:"average"`
}

// Result is the external shape of one matched novel.
type Result struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Author         string   `json:"author"`
	Description    string   `json:"description"`
	CoverImage     string   `json:"coverImage"`
	Genres         []string `json:"genres"`
	Tags           []string `json:"tags"`
	Views          int64    `json:"views"`
	Features       int64    `json:"features"`
	Followers      int64    `json:"followers"`
	Favorites      int64    `json:"favorites"`
	Rating         Rating   `json:"rating"`
	Chapters       int      `json:"chapters"`
	Status         string   `json:"status"`
	RelevanceScore float64  `json:"relevanceScore"`
	MatchedTerms   []string `json:"matchedTerms"`
	Excerpt        string   `json:"excerpt"`
}

// AppliedFilters echoes the active constraints back to the client.
type AppliedFilters struct {
	Query      string   `json:"query"`
	Genres     []string `json:"genres"`
	Status     []string `json:"status"`
	Tags       []string `json:"tags"`
	RatingMin  float64  `json:"ratingMin"`
	RatingMax  float64  `json:"ratingMax"`
	ChapterMin int      `json:"chapterMin"`
	ChapterMax *int     `json:"chapterMax,omitempty"`
	SortBy     SortKey  `json:"sortBy"`
	SortOrder  string   `json:"sortOrder"`
}

// Applied builds the filter echo for the searchInfo block.
func (q Query) Applied() AppliedFilters {
	order := "desc"
	if q.SortAsc {
		order = "asc"
	}
	return AppliedFilters{
		Query:      q.Text,
		Genres:     emptyIfNil(q.Genres),
		Status:     emptyIfNil(q.Statuses),
		Tags:       emptyIfNil(q.Tags),
		RatingMin:  q.RatingMin,
		RatingMax:  q.RatingMax,
		ChapterMin: q.ChapterMin,
		ChapterMax: q.ChapterMax,
		SortBy:     q.SortBy,
		SortOrder:  order,
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
