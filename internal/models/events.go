package models

import "time"

// NATS subjects published by the API and consumed by the worker.
const (
	EventBookingCreated       = "booking.created"
	EventBookingCancelled     = "booking.cancelled"
	EventPaymentInitiated     = "payment.initiated"
	EventPaymentCompleted     = "payment.completed"
	EventPaymentFailed        = "payment.failed"
	EventMaintenanceScheduled = "maintenance.scheduled"
)

// BookingCreatedEvent is published once per created booking row.
type BookingCreatedEvent struct {
	BookingID   int64     `json:"booking_id"`
	CourtID     int64     `json:"court_id"`
	UserID      *int64    `json:"user_id"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	BookingCode string    `json:"booking_code"`
	RenterEmail string    `json:"renter_email"`
	Timestamp   time.Time `json:"timestamp"`
}

type BookingCancelledEvent struct {
	BookingID int64     `json:"booking_id"`
	CourtID   int64     `json:"court_id"`
	UserID    *int64    `json:"user_id"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

type PaymentInitiatedEvent struct {
	BookingID   int64     `json:"booking_id"`
	PaymentID   string    `json:"payment_id"`
	TotalAmount int64     `json:"total_amount"`
	Timestamp   time.Time `json:"timestamp"`
}

type PaymentCompletedEvent struct {
	BookingID int64     `json:"booking_id"`
	PaymentID string    `json:"payment_id"`
	OrderID   string    `json:"order_id"`
	Timestamp time.Time `json:"timestamp"`
}

type PaymentFailedEvent struct {
	BookingID int64     `json:"booking_id"`
	PaymentID string    `json:"payment_id"`
	OrderID   string    `json:"order_id"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

type MaintenanceScheduledEvent struct {
	MaintenanceID int64     `json:"maintenance_id"`
	CourtID       int64     `json:"court_id"`
	ScheduledDate string    `json:"scheduled_date"`
	Timestamp     time.Time `json:"timestamp"`
}
