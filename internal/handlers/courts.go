package handlers

import (
	"net/http"
	"strconv"

	"tvusm/internal/models"

	"github.com/gin-gonic/gin"
)

// Venues

// CreateVenue - POST /api/venues
func (h *Handlers) CreateVenue(c *gin.Context) {
	var req models.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	venue, err := h.services.Venues.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, venue)
}

// ListVenues - GET /api/venues
func (h *Handlers) ListVenues(c *gin.Context) {
	venues, err := h.services.Venues.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, venues)
}

// GetVenue - GET /api/venues/:id
func (h *Handlers) GetVenue(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	venue, err := h.services.Venues.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, venue)
}

// UpdateVenue - PATCH /api/venues/:id
func (h *Handlers) UpdateVenue(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	venue, err := h.services.Venues.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, venue)
}

// Courts

// CreateCourt - POST /api/courts
func (h *Handlers) CreateCourt(c *gin.Context) {
	var req models.CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	court, err := h.services.Courts.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, court)
}

// ListCourts - GET /api/courts
func (h *Handlers) ListCourts(c *gin.Context) {
	venueID, _ := strconv.ParseInt(c.Query("venue_id"), 10, 64)
	filter := models.CourtFilter{
		VenueID: venueID,
		Status:  c.Query("status"),
		Type:    c.Query("type"),
	}

	courts, err := h.services.Courts.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, courts)
}

// GetCourt - GET /api/courts/:id
func (h *Handlers) GetCourt(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	court, err := h.services.Courts.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, court)
}

// UpdateCourt - PATCH /api/courts/:id
func (h *Handlers) UpdateCourt(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	court, err := h.services.Courts.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, court)
}

// ListRelatedCourts - GET /api/courts/:id/related
// Returns every court whose slots contend with this one through the
// mapping table, the court itself included.
func (h *Handlers) ListRelatedCourts(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	courts, err := h.services.Courts.Related(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, courts)
}

// Court mappings

// CreateCourtMapping - POST /api/court-mappings
func (h *Handlers) CreateCourtMapping(c *gin.Context) {
	var req models.CreateCourtMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mapping, err := h.services.Mappings.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapping)
}

// ListCourtMappings - GET /api/court-mappings?court_id=N
func (h *Handlers) ListCourtMappings(c *gin.Context) {
	courtID, _ := strconv.ParseInt(c.Query("court_id"), 10, 64)
	if courtID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "court_id is required"})
		return
	}

	mappings, err := h.services.Mappings.ListByCourt(c.Request.Context(), courtID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mappings)
}

// DeleteCourtMapping - DELETE /api/court-mappings/:id
func (h *Handlers) DeleteCourtMapping(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.services.Mappings.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
