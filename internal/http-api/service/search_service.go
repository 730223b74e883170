package service

import (
	"context"
	"strings"
	"time"

	"novelhub/internal/http-api/models"
	"novelhub/internal/http-api/repository"
	"novelhub/internal/search"
)

// CatalogStore is the slice of the novel repository the search engine
// consumes: the filtered query, the catalog-wide facet groupings and
// the suggestion lookups.
type CatalogStore interface {
	Search(ctx context.Context, q search.Query, genreIDs []int64) ([]models.Novel, int64, error)
	FacetsByGenre(ctx context.Context) ([]search.Facet, error)
	FacetsByStatus(ctx context.Context) ([]search.Facet, error)
	SuggestTitles(ctx context.Context, partial string, limit int) ([]models.Novel, error)
	SuggestAuthors(ctx context.Context, partial string, limit int) ([]repository.AuthorCount, error)
}

// GenreLookup resolves genre names to records.
type GenreLookup interface {
	FindByNames(ctx context.Context, names []string) ([]models.Genre, error)
}

// SearchInfo is the metadata block of a search response.
type SearchInfo struct {
	Query          string                `json:"query"`
	ExecutionTime  int64                 `json:"executionTime"` // milliseconds
	AppliedFilters search.AppliedFilters `json:"appliedFilters"`
	Suggestions    []search.Suggestion   `json:"suggestions"`
}

// SearchResponse is the full /search response body.
type SearchResponse struct {
	Data       []search.Result    `json:"data"`
	Pagination search.Pagination  `json:"pagination"`
	SearchInfo SearchInfo         `json:"searchInfo"`
	Facets     search.FacetGroups `json:"facets"`
}

type SearchService interface {
	Search(ctx context.Context, q search.Query) (*SearchResponse, error)
	Suggest(ctx context.Context, partial string) ([]search.Suggestion, error)
}

type searchService struct {
	catalog CatalogStore
	genres  GenreLookup
}

func NewSearchService(catalog CatalogStore, genres GenreLookup) SearchService {
	return &searchService{catalog: catalog, genres: genres}
}

// Search runs the full pipeline: genre resolution, the filtered and
// paginated catalog query, result projection and the catalog-wide facet
// groupings. Facets deliberately ignore the active filter so the UI
// filter widgets keep stable counts.
func (s *searchService) Search(ctx context.Context, q search.Query) (*SearchResponse, error) {
	start := time.Now()

	genreIDs, err := s.resolveGenreIDs(ctx, q.Genres)
	if err != nil {
		return nil, err
	}

	novels, total, err := s.catalog.Search(ctx, q, genreIDs)
	if err != nil {
		return nil, err
	}

	results := make([]search.Result, 0, len(novels))
	for _, n := range novels {
		results = append(results, projectNovel(n, q))
	}

	genreFacets, err := s.catalog.FacetsByGenre(ctx)
	if err != nil {
		return nil, err
	}
	statusFacets, err := s.catalog.FacetsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	suggestions := []search.Suggestion{}
	if q.Text != "" {
		suggestions = search.QuerySuggestions(q.Text)
	}

	return &SearchResponse{
		Data:       results,
		Pagination: q.Paginate(total),
		SearchInfo: SearchInfo{
			Query:          q.Text,
			ExecutionTime:  time.Since(start).Milliseconds(),
			AppliedFilters: q.Applied(),
			Suggestions:    suggestions,
		},
		Facets: search.FacetGroups{
			Genres: genreFacets,
			Status: statusFacets,
		},
	}, nil
}

// Suggest assembles the canned query suggestions plus up to three
// matching novels and three matching authors.
func (s *searchService) Suggest(ctx context.Context, partial string) ([]search.Suggestion, error) {
	partial = strings.TrimSpace(partial)
	if partial == "" {
		return nil, search.ErrEmptyQuery
	}

	suggestions := search.QuerySuggestions(partial)

	novels, err := s.catalog.SuggestTitles(ctx, partial, search.MaxNovelSuggestions)
	if err != nil {
		return nil, err
	}
	for _, n := range novels {
		suggestions = append(suggestions, search.NovelSuggestion(
			n.ID, n.Title, deref(n.Author), deref(n.CoverURL), n.Views))
	}

	authors, err := s.catalog.SuggestAuthors(ctx, partial, search.MaxAuthorSuggestions)
	if err != nil {
		return nil, err
	}
	for _, a := range authors {
		suggestions = append(suggestions, search.AuthorSuggestion(a.Name, a.Count))
	}

	return suggestions, nil
}

// resolveGenreIDs maps requested genre names to ids. Names that don't
// resolve are dropped silently; the repository treats an active genre
// filter with zero resolved ids as matching nothing.
func (s *searchService) resolveGenreIDs(ctx context.Context, names []string) ([]int64, error) {
	if len(names) == 0 {
		return nil, nil
	}
	genres, err := s.genres.FindByNames(ctx, names)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(genres))
	for _, g := range genres {
		ids = append(ids, g.ID)
	}
	return ids, nil
}

// projectNovel shapes a catalog record into the external result form,
// attaching the query-dependent relevance score, matched terms and
// excerpt.
func projectNovel(n models.Novel, q search.Query) search.Result {
	author := deref(n.Author)
	description := deref(n.Description)
	tags := n.TagNames()

	return search.Result{
		ID:          n.ID,
		Title:       n.Title,
		Author:      author,
		Description: description,
		CoverImage:  deref(n.CoverURL),
		Genres:      n.GenreNames(),
		Tags:        tags,
		Views:       n.Views,
		Features:    n.Features,
		Followers:   n.Followers,
		Favorites:   n.Favorites,
		Rating: search.Rating{
			Count:   n.RatingCount,
			Average: n.RatingAverage,
		},
		Chapters:       n.TotalChapters,
		Status:         n.Status,
		RelevanceScore: search.Score(q.Text, n.Title, author, tags),
		MatchedTerms:   q.Terms(),
		Excerpt:        search.Excerpt(description),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
