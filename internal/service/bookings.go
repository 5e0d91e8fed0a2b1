package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tvusm/internal/apperror"
	"tvusm/internal/external"
	"tvusm/internal/logger"
	"tvusm/internal/messaging"
	"tvusm/internal/metrics"
	"tvusm/internal/middleware"
	"tvusm/internal/models"
	"tvusm/internal/repository"

	"github.com/google/uuid"
)

type BookingService struct {
	bookingRepo   *repository.BookingRepository
	courtRepo     *repository.CourtRepository
	mappingRepo   *repository.CourtMappingRepository
	paymentClient *external.PaymentClient
	natsClient    *messaging.NATSClient
}

func NewBookingService(bookingRepo *repository.BookingRepository, courtRepo *repository.CourtRepository, mappingRepo *repository.CourtMappingRepository, paymentClient *external.PaymentClient, natsClient *messaging.NATSClient) *BookingService {
	return &BookingService{
		bookingRepo:   bookingRepo,
		courtRepo:     courtRepo,
		mappingRepo:   mappingRepo,
		paymentClient: paymentClient,
		natsClient:    natsClient,
	}
}

// Create books the requested slots. The request carries either one
// start_time/end_time pair or a selected_times list; each slot becomes its
// own booking row, all inserted atomically. The availability check covers
// every court related to the target through the mapping table, so booking a
// sub-court blocks its parent and vice versa. The first created booking is
// returned.
func (s *BookingService) Create(ctx context.Context, req *models.CreateBookingRequest) (*models.Booking, error) {
	court, err := s.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		return nil, fmt.Errorf("failed to get court: %w", err)
	}
	if court == nil {
		return nil, apperror.NotFound("court")
	}
	if !court.Status.Bookable() {
		return nil, apperror.InvalidRequest(fmt.Sprintf("court %s is %s and cannot be booked", court.Name, court.Status))
	}

	slots, err := resolveSlots(req)
	if err != nil {
		return nil, apperror.InvalidRequest(err.Error())
	}

	userID := req.UserID
	if id, ok := middleware.UserIDFromContext(ctx); ok {
		userID = &id
	}

	bookings := make([]*models.Booking, 0, len(slots))
	for _, slot := range slots {
		amount, err := models.SlotAmount(court.HourlyRate, slot.StartTime, slot.EndTime)
		if err != nil {
			return nil, apperror.InvalidRequest(err.Error())
		}

		var notes *string
		if req.Notes != "" {
			n := req.Notes
			notes = &n
		}

		bookings = append(bookings, &models.Booking{
			CourtID:       req.CourtID,
			UserID:        userID,
			Date:          req.Date,
			StartTime:     slot.StartTime,
			EndTime:       slot.EndTime,
			Status:        models.BookingPending,
			PaymentStatus: models.PaymentUnpaid,
			TotalAmount:   amount,
			RenterName:    req.RenterName,
			RenterEmail:   req.RenterEmail,
			RenterPhone:   req.RenterPhone,
			Notes:         notes,
			BookingCode:   newBookingCode(),
		})
	}

	relatedIDs, err := s.mappingRepo.RelatedCourtIDs(ctx, req.CourtID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve related courts: %w", err)
	}

	err = s.bookingRepo.CreateSlotsIfAvailable(ctx, relatedIDs, req.Date, bookings)
	if err != nil {
		if errors.Is(err, repository.ErrSlotConflict) {
			metrics.BookingConflicts.Inc()
			return nil, apperror.Conflict(err.Error())
		}
		return nil, fmt.Errorf("failed to create bookings: %w", err)
	}

	metrics.BookingsCreated.Add(float64(len(bookings)))

	for _, booking := range bookings {
		event := models.BookingCreatedEvent{
			BookingID:   booking.ID,
			CourtID:     booking.CourtID,
			UserID:      booking.UserID,
			Date:        booking.Date,
			StartTime:   booking.StartTime,
			EndTime:     booking.EndTime,
			BookingCode: booking.BookingCode,
			RenterEmail: booking.RenterEmail,
			Timestamp:   time.Now(),
		}

		if err := s.natsClient.Publish(models.EventBookingCreated, event); err != nil {
			// Log error but don't fail the operation
			logger.WithContext(ctx).Error("Failed to publish booking created event",
				"error", err,
				"booking_id", booking.ID,
				"event_type", "booking.created")
		}
	}

	return bookings[0], nil
}

// resolveSlots normalizes the two request shapes into an ordered slot list
// and validates each pair.
func resolveSlots(req *models.CreateBookingRequest) ([]models.Slot, error) {
	var slots []models.Slot
	if strings.TrimSpace(req.SelectedTimes) != "" {
		parsed, err := models.ParseSelectedTimes(req.SelectedTimes)
		if err != nil {
			return nil, err
		}
		slots = parsed
	} else {
		if req.StartTime == "" || req.EndTime == "" {
			return nil, fmt.Errorf("either selected_times or start_time and end_time must be provided")
		}
		slots = []models.Slot{{StartTime: req.StartTime, EndTime: req.EndTime}}
	}

	for _, slot := range slots {
		start, err := models.ParseHour(slot.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := models.ParseHour(slot.EndTime)
		if err != nil {
			return nil, err
		}
		if start >= end {
			return nil, fmt.Errorf("start time %q must be before end time %q", slot.StartTime, slot.EndTime)
		}
	}

	return slots, nil
}

func newBookingCode() string {
	return "BK-" + strings.ToUpper(uuid.New().String()[:8])
}

// IsAvailable is the read-only pre-flight probe. It answers from committed
// state without locking; the authoritative check happens inside Create.
func (s *BookingService) IsAvailable(ctx context.Context, courtID int64, date, startTime, endTime string) (*models.AvailabilityResponse, error) {
	court, err := s.courtRepo.GetByID(ctx, courtID)
	if err != nil {
		return nil, fmt.Errorf("failed to get court: %w", err)
	}
	if court == nil {
		return nil, apperror.NotFound("court")
	}

	if _, err := models.ParseHour(startTime); err != nil {
		return nil, apperror.InvalidRequest(err.Error())
	}
	if _, err := models.ParseHour(endTime); err != nil {
		return nil, apperror.InvalidRequest(err.Error())
	}

	relatedIDs, err := s.mappingRepo.RelatedCourtIDs(ctx, courtID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve related courts: %w", err)
	}

	existing, err := s.bookingRepo.GetBlocking(ctx, relatedIDs, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	conflict, err := models.FirstConflict(existing, startTime, endTime)
	if err != nil {
		return nil, apperror.InvalidRequest(err.Error())
	}

	return &models.AvailabilityResponse{
		CourtID:   courtID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Available: conflict == nil && court.Status.Bookable(),
	}, nil
}

func (s *BookingService) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return nil, apperror.NotFound("booking")
	}
	return booking, nil
}

// GetByCode looks a booking up by its public booking code. Guest bookings
// have no account to list under, so the code is the renter's handle.
func (s *BookingService) GetByCode(ctx context.Context, code string) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByBookingCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return nil, apperror.NotFound("booking")
	}
	return booking, nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID int64) ([]models.Booking, error) {
	bookings, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	return bookings, nil
}

func (s *BookingService) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// Update applies a partial update. Status changes are checked against the
// lifecycle transition table; invalid jumps are rejected.
func (s *BookingService) Update(ctx context.Context, id int64, req *models.UpdateBookingRequest) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return nil, apperror.NotFound("booking")
	}

	if req.Status != nil && *req.Status != booking.Status {
		if !req.Status.IsValid() {
			return nil, apperror.InvalidRequest(fmt.Sprintf("invalid status %q", *req.Status))
		}
		if !booking.Status.CanTransitionTo(*req.Status) {
			return nil, apperror.InvalidRequest(fmt.Sprintf("cannot change booking from %s to %s", booking.Status, *req.Status))
		}
		booking.Status = *req.Status
	}

	if req.PaymentStatus != nil && *req.PaymentStatus != booking.PaymentStatus {
		if !req.PaymentStatus.IsValid() {
			return nil, apperror.InvalidRequest(fmt.Sprintf("invalid payment status %q", *req.PaymentStatus))
		}
		if !booking.PaymentStatus.CanTransitionTo(*req.PaymentStatus) {
			return nil, apperror.InvalidRequest(fmt.Sprintf("cannot change payment from %s to %s", booking.PaymentStatus, *req.PaymentStatus))
		}
		booking.PaymentStatus = *req.PaymentStatus
	}

	if req.Notes != nil {
		booking.Notes = req.Notes
	}

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	return booking, nil
}

// Cancel transitions a booking to cancelled, which releases its slot for
// other renters. The row is kept. A paid booking gets its payment refunded
// at the gateway; a refund failure is logged and does not block the
// cancellation.
func (s *BookingService) Cancel(ctx context.Context, id int64, reason string) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return apperror.NotFound("booking")
	}

	if !booking.Status.CanTransitionTo(models.BookingCancelled) {
		return apperror.InvalidRequest(fmt.Sprintf("cannot cancel a %s booking", booking.Status))
	}

	if booking.PaymentStatus == models.PaymentPaid && booking.PaymentID != nil {
		if err := s.paymentClient.RefundPayment(*booking.PaymentID, booking.TotalAmount, reason); err != nil {
			// Log error but continue
			logger.WithContext(ctx).Error("Failed to refund payment during booking cancellation",
				"error", err,
				"payment_id", *booking.PaymentID)
		} else {
			booking.PaymentStatus = models.PaymentRefunded
		}
	}

	booking.Status = models.BookingCancelled

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	event := models.BookingCancelledEvent{
		BookingID: booking.ID,
		CourtID:   booking.CourtID,
		UserID:    booking.UserID,
		Reason:    reason,
		Timestamp: time.Now(),
	}

	if err := s.natsClient.Publish(models.EventBookingCancelled, event); err != nil {
		// Log error but don't fail the operation
		logger.WithContext(ctx).Error("Failed to publish booking cancelled event",
			"error", err,
			"booking_id", booking.ID,
			"event_type", "booking.cancelled")
	}

	return nil
}
