package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusBlocking(t *testing.T) {
	assert.True(t, BookingPending.Blocking())
	assert.True(t, BookingConfirmed.Blocking())
	assert.False(t, BookingCompleted.Blocking())
	assert.False(t, BookingCancelled.Blocking())
}

func TestBookingStatusTransitions(t *testing.T) {
	assert.True(t, BookingPending.CanTransitionTo(BookingConfirmed))
	assert.True(t, BookingPending.CanTransitionTo(BookingCancelled))
	assert.True(t, BookingConfirmed.CanTransitionTo(BookingCompleted))
	assert.True(t, BookingConfirmed.CanTransitionTo(BookingCancelled))

	// terminal states stay terminal
	assert.False(t, BookingCancelled.CanTransitionTo(BookingPending))
	assert.False(t, BookingCancelled.CanTransitionTo(BookingConfirmed))
	assert.False(t, BookingCompleted.CanTransitionTo(BookingCancelled))

	assert.False(t, BookingConfirmed.CanTransitionTo(BookingPending))
}

func TestPaymentStatusTransitions(t *testing.T) {
	assert.True(t, PaymentUnpaid.CanTransitionTo(PaymentPaid))
	assert.True(t, PaymentPaid.CanTransitionTo(PaymentRefunded))

	assert.False(t, PaymentUnpaid.CanTransitionTo(PaymentRefunded))
	assert.False(t, PaymentRefunded.CanTransitionTo(PaymentPaid))
	assert.False(t, PaymentPaid.CanTransitionTo(PaymentUnpaid))
}

func TestCourtStatusBookable(t *testing.T) {
	assert.True(t, CourtAvailable.Bookable())
	assert.False(t, CourtBooked.Bookable())
	assert.False(t, CourtMaintenance.Bookable())
}

func TestMaintenanceStatusTransitions(t *testing.T) {
	assert.True(t, MaintenanceScheduled.CanTransitionTo(MaintenanceInProgress))
	assert.True(t, MaintenanceInProgress.CanTransitionTo(MaintenanceCompleted))
	assert.True(t, MaintenanceScheduled.CanTransitionTo(MaintenanceCancelled))

	assert.False(t, MaintenanceCompleted.CanTransitionTo(MaintenanceInProgress))
	assert.False(t, MaintenanceCancelled.CanTransitionTo(MaintenanceScheduled))
}

func TestStatusValidity(t *testing.T) {
	assert.True(t, BookingStatus("pending").IsValid())
	assert.False(t, BookingStatus("PENDING").IsValid())
	assert.False(t, BookingStatus("unknown").IsValid())

	assert.True(t, PaymentStatus("paid").IsValid())
	assert.False(t, PaymentStatus("completed").IsValid())

	assert.True(t, CourtStatus("maintenance").IsValid())
	assert.False(t, CourtStatus("closed").IsValid())
}
