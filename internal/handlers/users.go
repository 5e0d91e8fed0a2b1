package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetMe - GET /api/users/me
func (h *Handlers) GetMe(c *gin.Context) {
	v, exists := c.Get("user_id")
	userID, ok := v.(int64)
	if !exists || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	user, err := h.services.Users.Profile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
