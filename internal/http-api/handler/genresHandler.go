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

type GenreHandler struct {
	svc service.GenreService
}

func NewGenreHandler(svc service.GenreService) *GenreHandler {
	return &GenreHandler{svc: svc}
}

func (h *GenreHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.List)
	rg.GET("/:genre_id/novels", h.Novels)
	rg.POST("/", middleware.RequireScopes("write:genres"), middleware.RequireAdmin(), h.Create)
}

func (h *GenreHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	genres, err := h.svc.GetAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.GenreResponse, 0, len(genres))
	for _, g := range genres {
		resp = append(resp, dto.GenreFromModel(g))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp, "total": len(resp)})
}

func (h *GenreHandler) Novels(c *gin.Context) {
	idStr := c.Param("genre_id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid genre_id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	novels, err := h.svc.GetNovelsByGenre(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.NovelBasicResponse, 0, len(novels))
	for _, n := range novels {
		resp = append(resp, dto.FromModelToBasicResponse(n))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp, "total": len(resp)})
}

func (h *GenreHandler) Create(c *gin.Context) {
	var in dto.CreateGenreDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	g := models.Genre{Name: in.Name, Description: in.Description}
	if err := h.svc.Create(ctx, &g); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dto.GenreFromModel(g))
}
