package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"tvusm/internal/models"
)

func uniqueCode(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

func testDate() string {
	return time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

// TestBooking_ConflictOnSameSlot books a slot and verifies that a second
// request for the same slot is rejected with 409 while adjacent slots stay
// free.
func TestBooking_ConflictOnSameSlot(t *testing.T) {
	client := NewTestClient(t)

	venue := client.CreateVenue(t, "Main Hall "+uniqueCode("v"))
	court := client.CreateCourt(t, venue.ID, "Court A", uniqueCode("CA"), 150000)
	date := testDate()

	booking, status := client.CreateBooking(t, models.CreateBookingRequest{
		CourtID:     court.ID,
		Date:        date,
		StartTime:   "09:00",
		EndTime:     "10:00",
		RenterName:  "Alex",
		RenterEmail: "alex@example.com",
		RenterPhone: "0900000001",
	})
	if status != http.StatusCreated {
		t.Fatalf("Expected first booking to succeed, got %d", status)
	}
	if booking.TotalAmount != 150000 {
		t.Fatalf("Expected amount 150000, got %d", booking.TotalAmount)
	}

	_, status = client.CreateBooking(t, models.CreateBookingRequest{
		CourtID:     court.ID,
		Date:        date,
		StartTime:   "09:00",
		EndTime:     "10:00",
		RenterName:  "Kim",
		RenterEmail: "kim@example.com",
		RenterPhone: "0900000002",
	})
	if status != http.StatusConflict {
		t.Fatalf("Expected duplicate slot to be rejected with 409, got %d", status)
	}

	avail := client.CheckAvailability(t, court.ID, date, "10:00", "11:00")
	if !avail.Available {
		t.Fatal("Adjacent slot should be available")
	}

	avail = client.CheckAvailability(t, court.ID, date, "09:00", "10:00")
	if avail.Available {
		t.Fatal("Booked slot should not be available")
	}
}

// TestBooking_HierarchyBlocksParent maps two child courts onto a parent and
// verifies that booking a child blocks the parent, and vice versa.
func TestBooking_HierarchyBlocksParent(t *testing.T) {
	client := NewTestClient(t)

	venue := client.CreateVenue(t, "Arena "+uniqueCode("v"))
	parent := client.CreateCourt(t, venue.ID, "Full Court", uniqueCode("FC"), 300000)
	childA := client.CreateCourt(t, venue.ID, "Half A", uniqueCode("HA"), 150000)
	childB := client.CreateCourt(t, venue.ID, "Half B", uniqueCode("HB"), 150000)

	client.CreateMapping(t, parent.ID, childA.ID)
	client.CreateMapping(t, parent.ID, childB.ID)

	date := testDate()

	_, status := client.CreateBooking(t, models.CreateBookingRequest{
		CourtID:     childA.ID,
		Date:        date,
		StartTime:   "14:00",
		EndTime:     "15:00",
		RenterName:  "Sam",
		RenterEmail: "sam@example.com",
		RenterPhone: "0900000003",
	})
	if status != http.StatusCreated {
		t.Fatalf("Expected child booking to succeed, got %d", status)
	}

	// Parent is blocked by the child booking
	_, status = client.CreateBooking(t, models.CreateBookingRequest{
		CourtID:     parent.ID,
		Date:        date,
		StartTime:   "14:00",
		EndTime:     "15:00",
		RenterName:  "Lee",
		RenterEmail: "lee@example.com",
		RenterPhone: "0900000004",
	})
	if status != http.StatusConflict {
		t.Fatalf("Expected parent booking to conflict, got %d", status)
	}

	// The sibling half is independent of Half A
	_, status = client.CreateBooking(t, models.CreateBookingRequest{
		CourtID:     childB.ID,
		Date:        date,
		StartTime:   "14:00",
		EndTime:     "15:00",
		RenterName:  "Pat",
		RenterEmail: "pat@example.com",
		RenterPhone: "0900000005",
	})
	if status != http.StatusCreated {
		t.Fatalf("Expected sibling booking to succeed, got %d", status)
	}
}

// TestBooking_MultiSlotAllOrNothing requests two slots where one collides
// and verifies nothing is created.
func TestBooking_MultiSlotAllOrNothing(t *testing.T) {
	client := NewTestClient(t)

	venue := client.CreateVenue(t, "Gym "+uniqueCode("v"))
	court := client.CreateCourt(t, venue.ID, "Court B", uniqueCode("CB"), 100000)
	date := testDate()

	_, status := client.CreateBooking(t, models.CreateBookingRequest{
		CourtID:     court.ID,
		Date:        date,
		StartTime:   "10:00",
		EndTime:     "11:00",
		RenterName:  "Robin",
		RenterEmail: "robin@example.com",
		RenterPhone: "0900000006",
	})
	if status != http.StatusCreated {
		t.Fatalf("Expected seed booking to succeed, got %d", status)
	}

	// 09-10 is free but 10-11 collides; the batch must fail as a whole
	_, status = client.CreateBooking(t, models.CreateBookingRequest{
		CourtID:       court.ID,
		Date:          date,
		SelectedTimes: "09-10,10-11",
		RenterName:    "Casey",
		RenterEmail:   "casey@example.com",
		RenterPhone:   "0900000007",
	})
	if status != http.StatusConflict {
		t.Fatalf("Expected multi-slot batch to be rejected, got %d", status)
	}

	avail := client.CheckAvailability(t, court.ID, date, "09:00", "10:00")
	if !avail.Available {
		t.Fatal("09-10 should still be available after the failed batch")
	}
}

// TestBooking_CancelReleasesSlot cancels a booking and verifies the slot
// opens up again.
func TestBooking_CancelReleasesSlot(t *testing.T) {
	client := NewTestClient(t)

	venue := client.CreateVenue(t, "Annex "+uniqueCode("v"))
	court := client.CreateCourt(t, venue.ID, "Court C", uniqueCode("CC"), 120000)
	date := testDate()

	booking, status := client.CreateBooking(t, models.CreateBookingRequest{
		CourtID:     court.ID,
		Date:        date,
		StartTime:   "16:00",
		EndTime:     "17:00",
		RenterName:  "Jordan",
		RenterEmail: "jordan@example.com",
		RenterPhone: "0900000008",
	})
	if status != http.StatusCreated {
		t.Fatalf("Expected booking to succeed, got %d", status)
	}

	client.CancelBooking(t, booking.ID)

	got := client.GetBooking(t, booking.ID)
	if got.Status != models.BookingCancelled {
		t.Fatalf("Expected cancelled status, got %s", got.Status)
	}

	// The row survives but no longer blocks the slot
	avail := client.CheckAvailability(t, court.ID, date, "16:00", "17:00")
	if !avail.Available {
		t.Fatal("Cancelled slot should be available again")
	}
}
