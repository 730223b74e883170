package handler

import (
	"context"
	"net/http"
	"time"

	"novelhub/internal/http-api/dto"
	"novelhub/internal/http-api/middleware"
	"novelhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type NotificationPrefsHandler struct {
	svc service.NotificationPrefsService
}

func NewNotificationPrefsHandler(svc service.NotificationPrefsService) *NotificationPrefsHandler {
	return &NotificationPrefsHandler{svc: svc}
}

func (h *NotificationPrefsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/notifications", middleware.RequireScopes("read:profile"), h.Get)
	rg.PUT("/notifications", middleware.RequireScopes("write:profile"), h.Update)
}

func (h *NotificationPrefsHandler) Get(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	prefs, err := h.svc.Get(ctx, userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.PrefsFromModel(*prefs))
}

// Update applies a partial preferences change; omitted fields keep
// their current values.
func (h *NotificationPrefsHandler) Update(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.UpdatePrefsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	current, err := h.svc.Get(ctx, userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	req.ApplyTo(current)
	current.UserID = userID.(string)

	updated, err := h.svc.Update(ctx, current)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.PrefsFromModel(*updated))
}
