package handlers

import (
	"net/http"
	"strconv"

	"tvusm/internal/models"

	"github.com/gin-gonic/gin"
)

// CreateMaintenance - POST /api/maintenances
func (h *Handlers) CreateMaintenance(c *gin.Context) {
	var req models.CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := h.services.Maintenances.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, m)
}

// ListMaintenances - GET /api/maintenances
func (h *Handlers) ListMaintenances(c *gin.Context) {
	courtID, _ := strconv.ParseInt(c.Query("court_id"), 10, 64)

	items, err := h.services.Maintenances.List(c.Request.Context(), courtID, c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetMaintenance - GET /api/maintenances/:id
func (h *Handlers) GetMaintenance(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	m, err := h.services.Maintenances.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

// UpdateMaintenance - PATCH /api/maintenances/:id
// Moving a job to in_progress takes its court out of the bookable pool.
func (h *Handlers) UpdateMaintenance(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := h.services.Maintenances.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}
