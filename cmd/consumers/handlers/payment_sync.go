package handlers

import (
	"context"
	"encoding/json"
	"log/slog"

	"tvusm/internal/external"
	"tvusm/internal/models"
	"tvusm/internal/repository"

	"github.com/nats-io/stan.go"
)

// PaymentSyncHandler reconciles initiated payments against the gateway.
// Webhooks occasionally get lost; on every payment.initiated event this
// handler asks the gateway for the current state and applies it if the
// webhook never arrived.
type PaymentSyncHandler struct {
	paymentClient *external.PaymentClient
	bookingRepo   *repository.BookingRepository
}

func NewPaymentSyncHandler(paymentClient *external.PaymentClient, bookingRepo *repository.BookingRepository) *PaymentSyncHandler {
	return &PaymentSyncHandler{
		paymentClient: paymentClient,
		bookingRepo:   bookingRepo,
	}
}

func (h *PaymentSyncHandler) HandlePaymentInitiated(msg *stan.Msg) {
	ctx := context.Background()

	var event models.PaymentInitiatedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		slog.Error("Failed to unmarshal payment initiated event", "error", err)
		msg.Ack()
		return
	}

	slog.Info("Reconciling payment", "payment_id", event.PaymentID, "booking_id", event.BookingID)

	booking, err := h.bookingRepo.GetByPaymentID(ctx, event.PaymentID)
	if err != nil {
		slog.Error("Failed to get booking by payment ID", "error", err, "payment_id", event.PaymentID)
		msg.Ack()
		return
	}
	if booking == nil {
		slog.Warn("No booking found for payment ID", "payment_id", event.PaymentID)
		msg.Ack()
		return
	}

	if booking.PaymentStatus != models.PaymentUnpaid {
		// Webhook already handled it
		msg.Ack()
		return
	}

	status, err := h.paymentClient.CheckPayment(event.PaymentID)
	if err != nil {
		slog.Error("Failed to check payment at gateway",
			"error", err, "payment_id", event.PaymentID)
		// Leave unacked so the check is retried after AckWait
		return
	}

	if status.Status == "completed" || status.Status == "CONFIRMED" {
		booking.PaymentStatus = models.PaymentPaid
		if booking.Status == models.BookingPending {
			booking.Status = models.BookingConfirmed
		}
		if err := h.bookingRepo.Update(ctx, booking); err != nil {
			slog.Error("Failed to update booking after reconciliation",
				"error", err, "booking_id", booking.ID)
			return
		}
		slog.Info("Reconciled missed payment completion",
			"booking_id", booking.ID, "payment_id", event.PaymentID)
	}

	msg.Ack()
}
