package handlers

import (
	"log/slog"
	"net/http"

	"tvusm/internal/models"

	"github.com/gin-gonic/gin"
)

// InitiatePayment - POST /api/payments/initiate
// Hands the booking off to the gateway and redirects the client to the
// hosted payment page.
func (h *Handlers) InitiatePayment(c *gin.Context) {
	var req models.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	paymentURL, err := h.services.Payments.Initiate(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", paymentURL)
	c.JSON(http.StatusFound, gin.H{"payment_url": paymentURL})
}

// CheckPayment - GET /api/payments/:id/status
// The :id here is the booking id; the gateway payment id is resolved from
// the booking row.
func (h *Handlers) CheckPayment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	status, err := h.services.Payments.Check(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// OnPaymentUpdates - POST /api/payments/notifications
// Webhook receiver for the payment gateway.
func (h *Handlers) OnPaymentUpdates(c *gin.Context) {
	var notification models.PaymentNotificationPayload
	if err := c.ShouldBindJSON(&notification); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.services.Payments.HandleNotification(c.Request.Context(), &notification); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// NotifyPaymentCompleted - GET /api/payments/success
// Return URL target; the authoritative state change arrives via webhook.
func (h *Handlers) NotifyPaymentCompleted(c *gin.Context) {
	orderID := c.Query("orderId")
	if orderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "orderId is required"})
		return
	}

	slog.Info("Payment completed for order", "order_id", orderID)
	c.Status(http.StatusOK)
}

// NotifyPaymentFailed - GET /api/payments/fail
func (h *Handlers) NotifyPaymentFailed(c *gin.Context) {
	orderID := c.Query("orderId")
	if orderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "orderId is required"})
		return
	}

	slog.Warn("Payment failed for order", "order_id", orderID)
	c.Status(http.StatusOK)
}
