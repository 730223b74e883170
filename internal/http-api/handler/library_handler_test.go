package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"novelhub/internal/http-api/dto"
	"novelhub/internal/http-api/handler"
	"novelhub/internal/http-api/models"
	"novelhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- MOCK SERVICE ---

type MockLibraryService struct {
	mock.Mock
}

func (m *MockLibraryService) Add(ctx context.Context, userID string, novelID int64) error {
	args := m.Called(ctx, userID, novelID)
	return args.Error(0)
}

func (m *MockLibraryService) Remove(ctx context.Context, userID string, novelID int64) error {
	args := m.Called(ctx, userID, novelID)
	return args.Error(0)
}

func (m *MockLibraryService) List(ctx context.Context, userID string) ([]models.UserLibrary, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.UserLibrary), args.Error(1)
}

func fakeUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func setupLibraryRouter(mockService *MockLibraryService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	h := handler.NewLibraryHandler(mockService)

	rg := r.Group("/api/library")
	if userID != "" {
		rg.Use(fakeUser(userID))
	}
	{
		rg.POST("", h.Add)
		rg.GET("", h.List)
		rg.DELETE("/:novel_id", h.Remove)
	}
	return r
}

// --- TESTS ---

func TestLibraryHandler_Add(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockLibraryService)
		r := setupLibraryRouter(mockService, "user-1")

		mockService.On("Add", mock.Anything, "user-1", int64(42)).Return(nil).Once()

		body, _ := json.Marshal(dto.AddToLibraryRequest{NovelID: 42})
		req, _ := http.NewRequest(http.MethodPost, "/api/library", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("AlreadyInLibrary", func(t *testing.T) {
		mockService := new(MockLibraryService)
		r := setupLibraryRouter(mockService, "user-1")

		mockService.On("Add", mock.Anything, "user-1", int64(42)).
			Return(service.ErrAlreadyInLibrary).Once()

		body, _ := json.Marshal(dto.AddToLibraryRequest{NovelID: 42})
		req, _ := http.NewRequest(http.MethodPost, "/api/library", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("NovelMissing", func(t *testing.T) {
		mockService := new(MockLibraryService)
		r := setupLibraryRouter(mockService, "user-1")

		mockService.On("Add", mock.Anything, "user-1", int64(99)).
			Return(service.ErrNovelNotFound).Once()

		body, _ := json.Marshal(dto.AddToLibraryRequest{NovelID: 99})
		req, _ := http.NewRequest(http.MethodPost, "/api/library", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		mockService := new(MockLibraryService)
		r := setupLibraryRouter(mockService, "")

		body, _ := json.Marshal(dto.AddToLibraryRequest{NovelID: 42})
		req, _ := http.NewRequest(http.MethodPost, "/api/library", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockService.AssertNotCalled(t, "Add")
	})
}

func TestLibraryHandler_List(t *testing.T) {
	mockService := new(MockLibraryService)
	r := setupLibraryRouter(mockService, "user-1")

	library := []models.UserLibrary{
		{
			ID:      1,
			UserID:  "user-1",
			NovelID: 42,
			AddedAt: time.Now(),
			Novel:   &models.Novel{ID: 42, Title: "Dragon King", Status: models.StatusOngoing},
		},
	}
	mockService.On("List", mock.Anything, "user-1").Return(library, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/library", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.LibraryListResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	require.Len(t, response.Items, 1)
	assert.Equal(t, 1, response.Total)
	assert.Equal(t, int64(42), response.Items[0].NovelID)
	assert.Equal(t, "Dragon King", response.Items[0].Novel.Title)
	mockService.AssertExpectations(t)
}

func TestLibraryHandler_Remove(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockLibraryService)
		r := setupLibraryRouter(mockService, "user-1")

		mockService.On("Remove", mock.Anything, "user-1", int64(42)).Return(nil).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/api/library/42", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("InvalidID", func(t *testing.T) {
		mockService := new(MockLibraryService)
		r := setupLibraryRouter(mockService, "user-1")

		req, _ := http.NewRequest(http.MethodDelete, "/api/library/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
