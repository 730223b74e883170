package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"novelhub/internal/http-api/service"
	"novelhub/internal/search"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	svc service.SearchService
}

func NewSearchHandler(svc service.SearchService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

func (h *SearchHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/search", h.Search)
	rg.GET("/search/suggestions", h.Suggest)
}

// Search handles GET /search with the full filter, sort, facet and
// pagination parameter set. Malformed parameters never fail the
// request; they degrade to defaults during parsing.
func (h *SearchHandler) Search(c *gin.Context) {
	q := search.ParseQuery(c.Request.URL.Query())

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	resp, err := h.svc.Search(ctx, q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Suggest handles GET /search/suggestions. The q parameter is required.
func (h *SearchHandler) Suggest(c *gin.Context) {
	partial := strings.TrimSpace(c.Query("q"))

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	suggestions, err := h.svc.Suggest(ctx, partial)
	if err != nil {
		if errors.Is(err, search.ErrEmptyQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "q query parameter is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "suggestions failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
