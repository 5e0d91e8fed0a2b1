package consumers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"tvusm/internal/models"
	"tvusm/internal/repository"

	"github.com/nats-io/stan.go"
)

// Handlers turn published domain events into user notifications. Failures
// are logged and the message acknowledged anyway; notifications are best
// effort and redelivery loops help nobody.
type Handlers struct {
	repos *repository.Repositories
}

func NewHandlers(repos *repository.Repositories) *Handlers {
	return &Handlers{repos: repos}
}

func (h *Handlers) notify(ctx context.Context, userID *int64, notifType, title, message string) {
	n := &models.Notification{
		UserID:  userID,
		Type:    notifType,
		Title:   title,
		Message: message,
	}
	if err := h.repos.Notifications.Create(ctx, n); err != nil {
		slog.Error("Failed to create notification", "error", err, "type", notifType)
	}
}

func (h *Handlers) HandleBookingCreated(m *stan.Msg) {
	var event models.BookingCreatedEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal booking created event", "error", err)
		m.Ack()
		return
	}

	slog.Info("Processing booking created event",
		"booking_id", event.BookingID, "booking_code", event.BookingCode)

	h.notify(context.Background(), event.UserID, "booking_created",
		"Booking received",
		fmt.Sprintf("Your booking %s for %s %s-%s is pending payment.",
			event.BookingCode, event.Date, event.StartTime, event.EndTime))

	m.Ack()
}

func (h *Handlers) HandleBookingCancelled(m *stan.Msg) {
	var event models.BookingCancelledEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal booking cancelled event", "error", err)
		m.Ack()
		return
	}

	slog.Info("Processing booking cancelled event",
		"booking_id", event.BookingID, "reason", event.Reason)

	h.notify(context.Background(), event.UserID, "booking_cancelled",
		"Booking cancelled",
		fmt.Sprintf("Booking %d was cancelled: %s.", event.BookingID, event.Reason))

	m.Ack()
}

func (h *Handlers) HandlePaymentCompleted(m *stan.Msg) {
	var event models.PaymentCompletedEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal payment completed event", "error", err)
		m.Ack()
		return
	}

	slog.Info("Processing payment completed event",
		"booking_id", event.BookingID, "payment_id", event.PaymentID)

	ctx := context.Background()
	booking, err := h.repos.Bookings.GetByID(ctx, event.BookingID)
	if err != nil || booking == nil {
		slog.Error("Failed to get booking for payment notification",
			"error", err, "booking_id", event.BookingID)
		m.Ack()
		return
	}

	h.notify(ctx, booking.UserID, "payment_completed",
		"Payment confirmed",
		fmt.Sprintf("Payment for booking %s was received. See you on %s at %s.",
			booking.BookingCode, booking.Date, booking.StartTime))

	m.Ack()
}

func (h *Handlers) HandlePaymentFailed(m *stan.Msg) {
	var event models.PaymentFailedEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal payment failed event", "error", err)
		m.Ack()
		return
	}

	slog.Info("Processing payment failed event",
		"booking_id", event.BookingID, "reason", event.Reason)

	ctx := context.Background()
	booking, err := h.repos.Bookings.GetByID(ctx, event.BookingID)
	if err != nil || booking == nil {
		slog.Error("Failed to get booking for payment notification",
			"error", err, "booking_id", event.BookingID)
		m.Ack()
		return
	}

	h.notify(ctx, booking.UserID, "payment_failed",
		"Payment failed",
		fmt.Sprintf("Payment for booking %s did not go through (%s). The slot was released.",
			booking.BookingCode, event.Reason))

	m.Ack()
}

// HandleMaintenanceScheduled broadcasts scheduled maintenance to everyone.
func (h *Handlers) HandleMaintenanceScheduled(m *stan.Msg) {
	var event models.MaintenanceScheduledEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal maintenance scheduled event", "error", err)
		m.Ack()
		return
	}

	slog.Info("Processing maintenance scheduled event",
		"maintenance_id", event.MaintenanceID, "court_id", event.CourtID)

	h.notify(context.Background(), nil, "maintenance_scheduled",
		"Court maintenance scheduled",
		fmt.Sprintf("Court %d is scheduled for maintenance on %s.",
			event.CourtID, event.ScheduledDate))

	m.Ack()
}
