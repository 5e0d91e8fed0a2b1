package jobs

import (
	"context"
	"log/slog"
	"time"

	"tvusm/internal/messaging"
	"tvusm/internal/models"
	"tvusm/internal/repository"
)

// Pending bookings hold their slot while the renter pays. After this long
// without payment the hold is dropped.
const BookingExpirationTimeout = 30 * time.Minute

// BookingExpirationJob cancels pending bookings whose payment never arrived,
// which releases their slots back to the pool.
type BookingExpirationJob struct {
	bookingRepo *repository.BookingRepository
	natsClient  *messaging.NATSClient
	ticker      *time.Ticker
	done        chan bool
}

func NewBookingExpirationJob(bookingRepo *repository.BookingRepository, natsClient *messaging.NATSClient) *BookingExpirationJob {
	return &BookingExpirationJob{
		bookingRepo: bookingRepo,
		natsClient:  natsClient,
		done:        make(chan bool),
	}
}

// Start begins the background job that checks for expired bookings every minute.
func (j *BookingExpirationJob) Start(ctx context.Context) {
	slog.Info("Starting booking expiration job",
		"check_interval", "1m", "timeout", BookingExpirationTimeout)

	j.ticker = time.NewTicker(time.Minute)

	go j.checkExpiredBookings(ctx)

	go func() {
		for {
			select {
			case <-j.ticker.C:
				go j.checkExpiredBookings(ctx)
			case <-j.done:
				slog.Info("Booking expiration job stopped")
				return
			}
		}
	}()
}

func (j *BookingExpirationJob) Stop() {
	if j.ticker != nil {
		j.ticker.Stop()
	}
	close(j.done)
}

func (j *BookingExpirationJob) checkExpiredBookings(ctx context.Context) {
	cutoff := time.Now().Add(-BookingExpirationTimeout)

	expired, err := j.bookingRepo.GetExpiredPending(ctx, cutoff)
	if err != nil {
		slog.Error("Failed to get expired bookings", "error", err)
		return
	}

	if len(expired) == 0 {
		slog.Debug("No expired bookings found")
		return
	}

	slog.Info("Found expired bookings to process", "count", len(expired))

	for _, booking := range expired {
		if err := j.expireBooking(ctx, &booking); err != nil {
			slog.Error("Failed to expire booking",
				"error", err,
				"booking_id", booking.ID,
				"created_at", booking.CreatedAt)
		} else {
			slog.Info("Expired booking",
				"booking_id", booking.ID,
				"booking_code", booking.BookingCode,
				"elapsed_time", time.Since(booking.CreatedAt).String())
		}
	}
}

func (j *BookingExpirationJob) expireBooking(ctx context.Context, booking *models.Booking) error {
	booking.Status = models.BookingCancelled
	if err := j.bookingRepo.Update(ctx, booking); err != nil {
		return err
	}

	event := models.BookingCancelledEvent{
		BookingID: booking.ID,
		CourtID:   booking.CourtID,
		UserID:    booking.UserID,
		Reason:    "payment timeout",
		Timestamp: time.Now(),
	}

	if err := j.natsClient.Publish(models.EventBookingCancelled, event); err != nil {
		slog.Error("Failed to publish booking cancelled event",
			"error", err,
			"booking_id", booking.ID,
			"event_type", "booking.cancelled")
		// Expiration already committed; the event is best effort
	}

	return nil
}
