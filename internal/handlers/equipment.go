package handlers

import (
	"net/http"
	"strconv"

	"tvusm/internal/models"

	"github.com/gin-gonic/gin"
)

// CreateEquipment - POST /api/equipment
func (h *Handlers) CreateEquipment(c *gin.Context) {
	var req models.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	eq, err := h.services.Equipment.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, eq)
}

// ListEquipment - GET /api/equipment?venue_id=N
func (h *Handlers) ListEquipment(c *gin.Context) {
	venueID, _ := strconv.ParseInt(c.Query("venue_id"), 10, 64)

	items, err := h.services.Equipment.List(c.Request.Context(), venueID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetEquipment - GET /api/equipment/:id
func (h *Handlers) GetEquipment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	eq, err := h.services.Equipment.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, eq)
}

// UpdateEquipment - PATCH /api/equipment/:id
func (h *Handlers) UpdateEquipment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	eq, err := h.services.Equipment.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, eq)
}

// RentEquipment - POST /api/equipment/rentals
func (h *Handlers) RentEquipment(c *gin.Context) {
	var req models.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rental, err := h.services.Equipment.Rent(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rental)
}

// ReturnEquipment - PATCH /api/equipment/rentals/:id/return
func (h *Handlers) ReturnEquipment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.services.Equipment.Return(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
