package service

import (
	"context"
	"fmt"
	"time"

	"tvusm/internal/apperror"
	"tvusm/internal/external"
	"tvusm/internal/logger"
	"tvusm/internal/messaging"
	"tvusm/internal/metrics"
	"tvusm/internal/models"
	"tvusm/internal/repository"

	"github.com/google/uuid"
)

type PaymentService struct {
	bookingRepo   *repository.BookingRepository
	paymentClient *external.PaymentClient
	natsClient    *messaging.NATSClient
}

func NewPaymentService(bookingRepo *repository.BookingRepository, paymentClient *external.PaymentClient, natsClient *messaging.NATSClient) *PaymentService {
	return &PaymentService{
		bookingRepo:   bookingRepo,
		paymentClient: paymentClient,
		natsClient:    natsClient,
	}
}

// Initiate hands an unpaid booking off to the payment gateway and returns
// the URL the client should redirect the renter to.
func (s *PaymentService) Initiate(ctx context.Context, req *models.InitiatePaymentRequest) (string, error) {
	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		return "", fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return "", apperror.NotFound("booking")
	}

	if booking.PaymentStatus != models.PaymentUnpaid {
		return "", apperror.InvalidRequest(fmt.Sprintf("booking payment is already %s", booking.PaymentStatus))
	}
	if !booking.Status.Blocking() {
		return "", apperror.InvalidRequest(fmt.Sprintf("cannot pay for a %s booking", booking.Status))
	}

	orderID := uuid.New().String()
	description := fmt.Sprintf("Court booking %s, %s %s-%s",
		booking.BookingCode, booking.Date, booking.StartTime, booking.EndTime)

	paymentResp, err := s.paymentClient.InitPayment(booking.TotalAmount, orderID, description, booking.RenterEmail)
	if err != nil {
		return "", fmt.Errorf("failed to initialize payment: %w", err)
	}

	booking.PaymentID = &paymentResp.PaymentID
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return "", fmt.Errorf("failed to update booking: %w", err)
	}

	metrics.PaymentsInitiated.Inc()

	event := models.PaymentInitiatedEvent{
		BookingID:   booking.ID,
		PaymentID:   paymentResp.PaymentID,
		TotalAmount: booking.TotalAmount,
		Timestamp:   time.Now(),
	}

	if err := s.natsClient.Publish(models.EventPaymentInitiated, event); err != nil {
		// Log error but don't fail the operation
		logger.WithContext(ctx).Error("Failed to publish payment initiated event",
			"error", err,
			"booking_id", booking.ID,
			"event_type", "payment.initiated")
	}

	return paymentResp.PaymentURL, nil
}

// HandleNotification processes the gateway webhook. A completed payment
// marks the booking paid and confirms it; a failed payment cancels the
// booking so the slot is released.
func (s *PaymentService) HandleNotification(ctx context.Context, notification *models.PaymentNotificationPayload) error {
	booking, err := s.bookingRepo.GetByPaymentID(ctx, notification.PaymentID)
	if err != nil {
		return fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return apperror.NotFound("booking")
	}

	logger.WithContext(ctx).Info("Received payment notification",
		"payment_id", notification.PaymentID,
		"booking_id", booking.ID,
		"status", notification.Status)

	switch notification.Status {
	case "completed", "CONFIRMED":
		if booking.PaymentStatus == models.PaymentPaid {
			return nil
		}
		booking.PaymentStatus = models.PaymentPaid
		if booking.Status == models.BookingPending {
			booking.Status = models.BookingConfirmed
		}
		if err := s.bookingRepo.Update(ctx, booking); err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}

		event := models.PaymentCompletedEvent{
			BookingID: booking.ID,
			PaymentID: notification.PaymentID,
			OrderID:   notification.OrderID,
			Timestamp: time.Now(),
		}
		if err := s.natsClient.Publish(models.EventPaymentCompleted, event); err != nil {
			logger.WithContext(ctx).Error("Failed to publish payment completed event",
				"error", err,
				"payment_id", notification.PaymentID,
				"event_type", "payment.completed")
		}

	case "failed", "REJECTED", "CANCELLED":
		if booking.Status.CanTransitionTo(models.BookingCancelled) {
			booking.Status = models.BookingCancelled
			if err := s.bookingRepo.Update(ctx, booking); err != nil {
				return fmt.Errorf("failed to update booking: %w", err)
			}
		}

		event := models.PaymentFailedEvent{
			BookingID: booking.ID,
			PaymentID: notification.PaymentID,
			OrderID:   notification.OrderID,
			Reason:    notification.Status,
			Timestamp: time.Now(),
		}
		if err := s.natsClient.Publish(models.EventPaymentFailed, event); err != nil {
			logger.WithContext(ctx).Error("Failed to publish payment failed event",
				"error", err,
				"payment_id", notification.PaymentID,
				"event_type", "payment.failed")
		}

	default:
		logger.WithContext(ctx).Warn("Ignoring payment notification with unknown status",
			"payment_id", notification.PaymentID,
			"status", notification.Status)
	}

	return nil
}

// Check asks the gateway for the current payment state of a booking.
func (s *PaymentService) Check(ctx context.Context, bookingID int64) (*external.PaymentCheckResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return nil, apperror.NotFound("booking")
	}
	if booking.PaymentID == nil {
		return nil, apperror.InvalidRequest("booking has no payment")
	}

	return s.paymentClient.CheckPayment(*booking.PaymentID)
}
