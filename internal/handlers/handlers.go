package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"tvusm/internal/apperror"
	"tvusm/internal/service"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	services *service.Services
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{services: services}
}

// respondError translates a service error to its HTTP shape. Internal
// errors are logged with detail and answered with a generic message.
func respondError(c *gin.Context, err error) {
	status := apperror.StatusOf(err)
	if status >= http.StatusInternalServerError {
		slog.Error("Request failed",
			"error", err,
			"method", c.Request.Method,
			"path", c.Request.URL.Path)
	}
	c.JSON(status, gin.H{"error": apperror.MessageOf(err)})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
