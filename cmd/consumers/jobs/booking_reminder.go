package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tvusm/internal/models"
	"tvusm/internal/repository"
)

// BookingReminderJob creates a reminder notification the day before each
// confirmed booking. It runs hourly and remembers the last date it covered
// so restarts within the same day do not double-notify from this process;
// true exactly-once would need a persisted marker, which this feature does
// not warrant.
type BookingReminderJob struct {
	bookingRepo      *repository.BookingRepository
	notificationRepo *repository.NotificationRepository
	ticker           *time.Ticker
	done             chan bool
	lastCovered      string
}

func NewBookingReminderJob(bookingRepo *repository.BookingRepository, notificationRepo *repository.NotificationRepository) *BookingReminderJob {
	return &BookingReminderJob{
		bookingRepo:      bookingRepo,
		notificationRepo: notificationRepo,
		done:             make(chan bool),
	}
}

func (j *BookingReminderJob) Start(ctx context.Context) {
	slog.Info("Starting booking reminder job", "check_interval", "1h")

	j.ticker = time.NewTicker(time.Hour)

	go j.sendReminders(ctx)

	go func() {
		for {
			select {
			case <-j.ticker.C:
				go j.sendReminders(ctx)
			case <-j.done:
				slog.Info("Booking reminder job stopped")
				return
			}
		}
	}()
}

func (j *BookingReminderJob) Stop() {
	if j.ticker != nil {
		j.ticker.Stop()
	}
	close(j.done)
}

func (j *BookingReminderJob) sendReminders(ctx context.Context) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	if tomorrow == j.lastCovered {
		return
	}

	bookings, err := j.bookingRepo.GetConfirmedByDate(ctx, tomorrow)
	if err != nil {
		slog.Error("Failed to get bookings for reminders", "error", err, "date", tomorrow)
		return
	}

	sent := 0
	for _, booking := range bookings {
		if booking.UserID == nil {
			continue
		}

		n := &models.Notification{
			UserID: booking.UserID,
			Type:   "booking_reminder",
			Title:  "Booking tomorrow",
			Message: fmt.Sprintf("Reminder: booking %s tomorrow (%s) from %s to %s.",
				booking.BookingCode, booking.Date, booking.StartTime, booking.EndTime),
		}

		if err := j.notificationRepo.Create(ctx, n); err != nil {
			slog.Error("Failed to create reminder notification",
				"error", err, "booking_id", booking.ID)
			continue
		}
		sent++
	}

	j.lastCovered = tomorrow
	if sent > 0 {
		slog.Info("Sent booking reminders", "date", tomorrow, "count", sent)
	}
}
