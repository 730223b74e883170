package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"novelhub/internal/http-api/dto"
	"novelhub/internal/http-api/middleware"
	"novelhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type LibraryHandler struct {
	svc service.LibraryService
}

func NewLibraryHandler(svc service.LibraryService) *LibraryHandler {
	return &LibraryHandler{svc: svc}
}

func (h *LibraryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/", middleware.RequireScopes("write:library"), h.Add)
	rg.GET("/", middleware.RequireScopes("read:library"), h.List)
	rg.DELETE("/:novel_id", middleware.RequireScopes("write:library"), h.Remove)
}

// Add a novel to the user's library
func (h *LibraryHandler) Add(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.AddToLibraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Add(ctx, userID.(string), req.NovelID); err != nil {
		if errors.Is(err, service.ErrAlreadyInLibrary) {
			c.JSON(http.StatusConflict, gin.H{"error": "novel already in library"})
			return
		}
		if errors.Is(err, service.ErrNovelNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "novel not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "novel added to library"})
}

// List the user's library
func (h *LibraryHandler) List(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	library, err := h.svc.List(ctx, userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]dto.LibraryResponse, 0, len(library))
	for _, item := range library {
		resp := dto.LibraryResponse{
			ID:      item.ID,
			NovelID: item.NovelID,
			AddedAt: item.AddedAt,
		}
		if item.Novel != nil {
			resp.Novel = dto.FromModelToResponse(*item.Novel)
		}
		items = append(items, resp)
	}

	c.JSON(http.StatusOK, dto.LibraryListResponse{
		Items: items,
		Total: len(items),
	})
}

// Remove a novel from the library
func (h *LibraryHandler) Remove(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	novelID, err := strconv.ParseInt(c.Param("novel_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid novel_id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Remove(ctx, userID.(string), novelID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
