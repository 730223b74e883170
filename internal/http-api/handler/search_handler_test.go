package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"novelhub/internal/http-api/handler"
	"novelhub/internal/http-api/service"
	"novelhub/internal/search"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- MOCK SERVICE ---

type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(ctx context.Context, q search.Query) (*service.SearchResponse, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SearchResponse), args.Error(1)
}

func (m *MockSearchService) Suggest(ctx context.Context, partial string) ([]search.Suggestion, error) {
	args := m.Called(ctx, partial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]search.Suggestion), args.Error(1)
}

func setupSearchRouter(mockService *MockSearchService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	h := handler.NewSearchHandler(mockService)
	h.RegisterRoutes(r.Group("/"))
	return r
}

// --- TESTS ---

func TestSearchHandler_Search(t *testing.T) {
	mockService := new(MockSearchService)
	r := setupSearchRouter(mockService)

	emptyResponse := &service.SearchResponse{
		Data: []search.Result{},
		Pagination: search.Pagination{
			CurrentPage: 1,
			TotalPages:  0,
			TotalCount:  0,
		},
		SearchInfo: service.SearchInfo{
			AppliedFilters: search.Query{RatingMax: 5, Page: 1, Limit: 20, SortBy: search.SortRelevance}.Applied(),
			Suggestions:    []search.Suggestion{},
		},
		Facets: search.FacetGroups{
			Genres: []search.Facet{{Name: "Fantasy", Count: 3}},
			Status: []search.Facet{{Name: "ongoing", Count: 2}},
		},
	}

	t.Run("DefaultsWithNoParameters", func(t *testing.T) {
		mockService.On("Search", mock.Anything, mock.MatchedBy(func(q search.Query) bool {
			return q.Text == "" && q.Page == 1 && q.Limit == 20 &&
				q.SortBy == search.SortRelevance && q.RatingMax == 5
		})).Return(emptyResponse, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/search", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Contains(t, response, "data")
		assert.Contains(t, response, "pagination")
		assert.Contains(t, response, "searchInfo")
		assert.Contains(t, response, "facets")

		pagination := response["pagination"].(map[string]interface{})
		assert.Equal(t, float64(1), pagination["currentPage"])
		mockService.AssertExpectations(t)
	})

	t.Run("ParametersReachService", func(t *testing.T) {
		mockService.On("Search", mock.Anything, mock.MatchedBy(func(q search.Query) bool {
			if q.Text != "dragon" || q.Page != 2 || q.Limit != 10 {
				return false
			}
			if q.SortBy != search.SortRating || !q.SortAsc {
				return false
			}
			if len(q.Genres) != 2 || q.Genres[0] != "Fantasy" {
				return false
			}
			return q.ChapterMax != nil && *q.ChapterMax == 300
		})).Return(emptyResponse, nil).Once()

		url := "/search?q=dragon&genres=Fantasy,Action&sortBy=rating&sortOrder=asc&chapter_max=300&page=2&limit=10"
		req, _ := http.NewRequest(http.MethodGet, url, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("MalformedParametersStillSucceed", func(t *testing.T) {
		mockService.On("Search", mock.Anything, mock.MatchedBy(func(q search.Query) bool {
			return q.Page == 1 && q.Limit == 20 && q.SortBy == search.SortRelevance
		})).Return(emptyResponse, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/search?page=abc&limit=-1&sortBy=bogus", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("ServiceError", func(t *testing.T) {
		mockService.On("Search", mock.Anything, mock.Anything).
			Return(nil, errors.New("db down")).Once()

		req, _ := http.NewRequest(http.MethodGet, "/search", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestSearchHandler_Suggest(t *testing.T) {
	mockService := new(MockSearchService)
	r := setupSearchRouter(mockService)

	t.Run("Success", func(t *testing.T) {
		id := int64(1)
		views := int64(900)
		suggestions := []search.Suggestion{
			{Text: "dragon system", Type: search.SuggestionQuery},
			{Text: "Dragon King", Type: search.SuggestionNovel, ID: &id, Popularity: &views},
		}
		mockService.On("Suggest", mock.Anything, "dragon").Return(suggestions, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/search/suggestions?q=dragon", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		list := response["suggestions"].([]interface{})
		require.Len(t, list, 2)

		first := list[0].(map[string]interface{})
		assert.Equal(t, "dragon system", first["text"])
		assert.Equal(t, "query", first["type"])
		// optional fields omitted for query-type suggestions
		assert.NotContains(t, first, "id")

		second := list[1].(map[string]interface{})
		assert.Equal(t, float64(1), second["id"])
		assert.Equal(t, float64(900), second["popularity"])
		mockService.AssertExpectations(t)
	})

	t.Run("MissingQuery", func(t *testing.T) {
		mockService.On("Suggest", mock.Anything, "").
			Return(nil, search.ErrEmptyQuery).Once()

		req, _ := http.NewRequest(http.MethodGet, "/search/suggestions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ServiceError", func(t *testing.T) {
		mockService.On("Suggest", mock.Anything, "x").
			Return(nil, errors.New("db down")).Once()

		req, _ := http.NewRequest(http.MethodGet, "/search/suggestions?q=x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
