package handlers

import (
	"net/http"
	"strconv"

	"tvusm/internal/models"

	"github.com/gin-gonic/gin"
)

// CreateBooking - POST /api/bookings
// Books one or more slots on a court. When multiple slots are requested the
// whole batch succeeds or fails together; the response carries the first
// created booking.
func (h *Handlers) CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.services.Bookings.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// ListMyBookings - GET /api/bookings/my-bookings
func (h *Handlers) ListMyBookings(c *gin.Context) {
	v, exists := c.Get("user_id")
	userID, ok := v.(int64)
	if !exists || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	bookings, err := h.services.Bookings.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ListBookings - GET /api/bookings
// Admin listing with optional status, date and court_id filters.
func (h *Handlers) ListBookings(c *gin.Context) {
	courtID, _ := strconv.ParseInt(c.Query("court_id"), 10, 64)
	filter := models.BookingFilter{
		Status:  c.Query("status"),
		Date:    c.Query("date"),
		CourtID: courtID,
	}

	bookings, err := h.services.Bookings.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBooking - GET /api/bookings/:id
func (h *Handlers) GetBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	booking, err := h.services.Bookings.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// GetBookingByCode - GET /api/bookings/code/:code
// Lookup for guests who booked without an account and only hold the code.
func (h *Handlers) GetBookingByCode(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "booking code is required"})
		return
	}

	booking, err := h.services.Bookings.GetByCode(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// UpdateBooking - PATCH /api/bookings/:id
func (h *Handlers) UpdateBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.services.Bookings.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// CancelBooking - DELETE /api/bookings/:id
// Cancellation is a status transition; the row survives and the slot opens
// up for other renters.
func (h *Handlers) CancelBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	reason := c.DefaultQuery("reason", "Cancelled by user")

	if err := h.services.Bookings.Cancel(c.Request.Context(), id, reason); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// CheckAvailability - GET /api/bookings/availability
// Read-only probe; the answer can go stale the moment it is produced. The
// authoritative check runs inside booking creation.
func (h *Handlers) CheckAvailability(c *gin.Context) {
	courtID, _ := strconv.ParseInt(c.Query("court_id"), 10, 64)
	date := c.Query("date")
	startTime := c.Query("start_time")
	endTime := c.Query("end_time")

	if courtID == 0 || date == "" || startTime == "" || endTime == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "court_id, date, start_time and end_time are required"})
		return
	}

	resp, err := h.services.Bookings.IsAvailable(c.Request.Context(), courtID, date, startTime, endTime)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
