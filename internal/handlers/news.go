package handlers

import (
	"net/http"
	"strconv"

	"tvusm/internal/models"

	"github.com/gin-gonic/gin"
)

// CreateNews - POST /api/news
func (h *Handlers) CreateNews(c *gin.Context) {
	var req models.CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.services.News.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, article)
}

// ListNews - GET /api/news
// With a query parameter this becomes full-text search; otherwise a plain
// listing of published articles.
func (h *Handlers) ListNews(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	if page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be >= 1"})
		return
	}
	if pageSize < 1 || pageSize > 50 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pageSize must be between 1 and 50"})
		return
	}

	query := c.Query("query")
	category := c.Query("category")

	var (
		items []models.News
		err   error
	)
	if query != "" {
		items, err = h.services.News.Search(c.Request.Context(), query, category, page, pageSize)
	} else {
		items, err = h.services.News.List(c.Request.Context(), category, true, page, pageSize)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetNews - GET /api/news/:id
// Reading an article bumps its view counter once per viewer within the
// dedup window. The viewer key is the authenticated user when present,
// otherwise the client IP.
func (h *Handlers) GetNews(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	viewer := c.ClientIP()
	if v, exists := c.Get("user_id"); exists {
		if userID, ok := v.(int64); ok {
			viewer = "u" + strconv.FormatInt(userID, 10)
		}
	}

	article, err := h.services.News.Get(c.Request.Context(), id, viewer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// UpdateNews - PATCH /api/news/:id
func (h *Handlers) UpdateNews(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.services.News.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}
