package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"novelhub/internal/http-api/dto"
	"novelhub/internal/http-api/middleware"
	"novelhub/internal/http-api/models"
	"novelhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type NovelHandler struct {
	svc service.NovelService
}

func NewNovelHandler(svc service.NovelService) *NovelHandler {
	return &NovelHandler{svc: svc}
}

func (h *NovelHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Public routes (any authenticated user)
	rg.GET("/", middleware.RequireScopes("read:novels"), h.List)
	rg.GET("/:novel_id", middleware.RequireScopes("read:novels"), h.Get)

	// Admin-only routes
	rg.POST("/", middleware.RequireScopes("read:novels", "write:novels"), middleware.RequireAdmin(), h.Create)
	rg.PUT("/:novel_id", middleware.RequireScopes("read:novels", "write:novels"), middleware.RequireAdmin(), h.Update)
	rg.DELETE("/:novel_id", middleware.RequireScopes("delete:novels"), middleware.RequireAdmin(), h.Delete)
}

func (h *NovelHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	page := 1
	pageSize := 20

	if p := c.Query("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			page = parsed
		}
	}

	if ps := c.Query("page_size"); ps != "" {
		if parsed, err := strconv.Atoi(ps); err == nil && parsed > 0 && parsed <= 100 {
			pageSize = parsed
		}
	}

	list, total, err := h.svc.GetAll(ctx, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.NovelBasicResponse, 0, len(list))
	for _, n := range list {
		resp = append(resp, dto.FromModelToBasicResponse(n))
	}

	c.JSON(http.StatusOK, gin.H{
		"data": resp,
		"pagination": gin.H{
			"page":        page,
			"page_size":   pageSize,
			"total":       total,
			"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		},
	})
}

func (h *NovelHandler) Get(c *gin.Context) {
	idStr := c.Param("novel_id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	n, err := h.svc.GetByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "novel not found"})
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToResponse(*n))
}

func (h *NovelHandler) Create(c *gin.Context) {
	var in dto.CreateNovelDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	model := in.ToModel()
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Create(ctx, &model); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Assign genres and tags if provided
	if len(in.GenreIDs) > 0 {
		if err := h.svc.ReplaceGenresForNovel(ctx, model.ID, in.GenreIDs); err != nil {
			c.JSON(http.StatusCreated, gin.H{
				"novel":   dto.FromModelToResponse(model),
				"warning": "Novel created but failed to assign some genres: " + err.Error(),
			})
			return
		}
	}
	if len(in.Tags) > 0 {
		if err := h.svc.ReplaceTagsForNovel(ctx, model.ID, in.Tags); err != nil {
			c.JSON(http.StatusCreated, gin.H{
				"novel":   dto.FromModelToResponse(model),
				"warning": "Novel created but failed to assign some tags: " + err.Error(),
			})
			return
		}
	}

	// Fetch the novel with associations to return complete data
	created, err := h.svc.GetByID(ctx, model.ID)
	if err != nil {
		c.JSON(http.StatusCreated, dto.FromModelToResponse(model))
		return
	}

	c.JSON(http.StatusCreated, dto.FromModelToResponse(*created))
}

func (h *NovelHandler) Update(c *gin.Context) {
	idStr := c.Param("novel_id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var in dto.UpdateNovelDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	// prepare model with provided fields only
	var n models.Novel
	in.ApplyTo(&n)

	if err := h.svc.Update(ctx, id, &n); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if in.GenreIDs != nil {
		if err := h.svc.ReplaceGenresForNovel(ctx, id, in.GenreIDs); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Novel updated but failed to update genres: " + err.Error(),
				"novel": id,
			})
			return
		}
	}
	if in.Tags != nil {
		if err := h.svc.ReplaceTagsForNovel(ctx, id, in.Tags); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Novel updated but failed to update tags: " + err.Error(),
				"novel": id,
			})
			return
		}
	}

	updated, err := h.svc.GetByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToResponse(*updated))
}

func (h *NovelHandler) Delete(c *gin.Context) {
	idStr := c.Param("novel_id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Delete(ctx, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
