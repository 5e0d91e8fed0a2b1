package models

// BookingStatus is the lifecycle state of a booking. completed and cancelled
// are terminal; a booking row is never deleted, cancellation is a transition.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Blocking reports whether a booking in this state contends for its time
// slot. Cancelled and completed bookings never conflict with new requests.
func (s BookingStatus) Blocking() bool {
	return s == BookingPending || s == BookingConfirmed
}

func (s BookingStatus) CanTransitionTo(to BookingStatus) bool {
	switch s {
	case BookingPending:
		return to == BookingConfirmed || to == BookingCompleted || to == BookingCancelled
	case BookingConfirmed:
		return to == BookingCompleted || to == BookingCancelled
	default:
		return false
	}
}

// PaymentStatus tracks whether a booking has been paid for.
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentUnpaid, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

func (s PaymentStatus) CanTransitionTo(to PaymentStatus) bool {
	switch s {
	case PaymentUnpaid:
		return to == PaymentPaid
	case PaymentPaid:
		return to == PaymentRefunded
	default:
		return false
	}
}

// CourtStatus gates whether new bookings may target a court.
type CourtStatus string

const (
	CourtAvailable   CourtStatus = "available"
	CourtBooked      CourtStatus = "booked"
	CourtMaintenance CourtStatus = "maintenance"
)

func (s CourtStatus) IsValid() bool {
	switch s {
	case CourtAvailable, CourtBooked, CourtMaintenance:
		return true
	}
	return false
}

// Bookable reports whether new bookings may be created against the court.
func (s CourtStatus) Bookable() bool {
	return s == CourtAvailable
}

// MaintenanceStatus is the lifecycle state of a maintenance job.
type MaintenanceStatus string

const (
	MaintenanceScheduled  MaintenanceStatus = "scheduled"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
	MaintenanceCancelled  MaintenanceStatus = "cancelled"
)

func (s MaintenanceStatus) IsValid() bool {
	switch s {
	case MaintenanceScheduled, MaintenanceInProgress, MaintenanceCompleted, MaintenanceCancelled:
		return true
	}
	return false
}

func (s MaintenanceStatus) CanTransitionTo(to MaintenanceStatus) bool {
	switch s {
	case MaintenanceScheduled:
		return to == MaintenanceInProgress || to == MaintenanceCompleted || to == MaintenanceCancelled
	case MaintenanceInProgress:
		return to == MaintenanceCompleted || to == MaintenanceCancelled
	default:
		return false
	}
}
