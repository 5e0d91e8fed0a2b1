package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListNotifications - GET /api/notifications
// Returns the caller's notifications plus broadcasts.
func (h *Handlers) ListNotifications(c *gin.Context) {
	v, exists := c.Get("user_id")
	userID, ok := v.(int64)
	if !exists || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	items, err := h.services.Notifications.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// MarkNotificationRead - PATCH /api/notifications/:id/read
func (h *Handlers) MarkNotificationRead(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	v, exists := c.Get("user_id")
	userID, okUser := v.(int64)
	if !exists || !okUser {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	if err := h.services.Notifications.MarkRead(c.Request.Context(), id, userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
