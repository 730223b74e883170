package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"novelhub/internal/http-api/dto"
	"novelhub/internal/http-api/middleware"
	"novelhub/internal/http-api/models"
	"novelhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ChapterHandler struct {
	svc service.ChapterService
}

func NewChapterHandler(svc service.ChapterService) *ChapterHandler {
	return &ChapterHandler{svc: svc}
}

func (h *ChapterHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/:novel_id/chapters", middleware.RequireScopes("read:novels"), h.List)
	rg.GET("/:novel_id/chapters/:number", middleware.RequireScopes("read:novels"), h.Get)
	rg.POST("/:novel_id/chapters", middleware.RequireScopes("write:chapters"), middleware.RequireAdmin(), h.Create)
	rg.PUT("/:novel_id/chapters/:number", middleware.RequireScopes("write:chapters"), middleware.RequireAdmin(), h.Update)
}

// List returns the chapter index without content bodies.
func (h *ChapterHandler) List(c *gin.Context) {
	novelID, err := strconv.ParseInt(c.Param("novel_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid novel_id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	chapters, err := h.svc.ListByNovel(ctx, novelID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.ChapterListItem, 0, len(chapters))
	for _, ch := range chapters {
		resp = append(resp, dto.ChapterToListItem(ch))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp, "total": len(resp)})
}

func (h *ChapterHandler) Get(c *gin.Context) {
	novelID, err := strconv.ParseInt(c.Param("novel_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid novel_id"})
		return
	}
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chapter number"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	ch, err := h.svc.GetByNumber(ctx, novelID, number)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "chapter not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ChapterToResponse(*ch))
}

func (h *ChapterHandler) Create(c *gin.Context) {
	novelID, err := strconv.ParseInt(c.Param("novel_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid novel_id"})
		return
	}

	var in dto.CreateChapterDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	ch := models.Chapter{
		NovelID: novelID,
		Number:  in.Number,
		Title:   in.Title,
		Content: in.Content,
	}
	if err := h.svc.Create(ctx, &ch); err != nil {
		if errors.Is(err, service.ErrChapterExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dto.ChapterToResponse(ch))
}

func (h *ChapterHandler) Update(c *gin.Context) {
	novelID, err := strconv.ParseInt(c.Param("novel_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid novel_id"})
		return
	}
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chapter number"})
		return
	}

	var in dto.UpdateChapterDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	ch, err := h.svc.Update(ctx, novelID, number, in.Title, in.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ChapterToResponse(*ch))
}
