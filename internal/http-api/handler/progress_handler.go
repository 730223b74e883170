package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"novelhub/internal/http-api/dto"
	"novelhub/internal/http-api/middleware"
	"novelhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	svc service.ProgressService
}

func NewProgressHandler(svc service.ProgressService) *ProgressHandler {
	return &ProgressHandler{svc: svc}
}

func (h *ProgressHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/", middleware.RequireScopes("write:progress"), h.Update)
	rg.GET("/", middleware.RequireScopes("read:progress"), h.ListByUser)
	rg.GET("/:novel_id", middleware.RequireScopes("read:progress"), h.Get)
}

// Update records the chapter the user last read.
func (h *ProgressHandler) Update(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Update(ctx, userID.(string), req.NovelID, req.CurrentChapter, req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "progress updated"})
}

func (h *ProgressHandler) Get(c *gin.Context) {
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

	p, err := h.svc.Get(ctx, userID.(string), novelID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no progress recorded"})
		return
	}
	c.JSON(http.StatusOK, dto.ProgressFromModel(*p))
}

func (h *ProgressHandler) ListByUser(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.GetByUser(ctx, userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.ProgressResponse, 0, len(list))
	for _, p := range list {
		resp = append(resp, dto.ProgressFromModel(p))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp, "total": len(resp)})
}
