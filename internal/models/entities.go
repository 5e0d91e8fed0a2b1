package models

import (
	"time"
)

// User represents an account in the system. Authentication itself is handled
// by the identity service; we only need the identity and role for ownership
// checks and notification targeting.
type User struct {
	UserID       int64     `json:"user_id" db:"user_id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     string    `json:"full_name" db:"full_name"`
	Phone        *string   `json:"phone" db:"phone"`
	Role         string    `json:"role" db:"role"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Venue is a sports facility grouping one or more courts.
type Venue struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Location    *string   `json:"location" db:"location"`
	Description *string   `json:"description" db:"description"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Court is a physical bookable playing surface.
type Court struct {
	ID          int64       `json:"id" db:"id"`
	VenueID     int64       `json:"venue_id" db:"venue_id"`
	Name        string      `json:"name" db:"name"`
	Code        string      `json:"code" db:"code"`
	Type        string      `json:"type" db:"type"`
	HourlyRate  int64       `json:"hourly_rate" db:"hourly_rate"`
	Status      CourtStatus `json:"status" db:"status"`
	Description *string     `json:"description" db:"description"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"`
}

// CourtMapping links a parent court to a child court that occupies
// overlapping physical space (a large court split into bookable sub-courts).
// A booking on either side of the relation blocks the other side.
type CourtMapping struct {
	ID            int64     `json:"id" db:"id"`
	ParentCourtID int64     `json:"parent_court_id" db:"parent_court_id"`
	ChildCourtID  int64     `json:"child_court_id" db:"child_court_id"`
	Position      *string   `json:"position" db:"position"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// Booking reserves one court for one contiguous time slot on one date.
// Times are stored as "HH:MM" strings and compared at whole-hour resolution.
type Booking struct {
	ID            int64         `json:"id" db:"id"`
	CourtID       int64         `json:"court_id" db:"court_id"`
	UserID        *int64        `json:"user_id" db:"user_id"`
	Date          string        `json:"date" db:"date"`
	StartTime     string        `json:"start_time" db:"start_time"`
	EndTime       string        `json:"end_time" db:"end_time"`
	Status        BookingStatus `json:"status" db:"status"`
	PaymentStatus PaymentStatus `json:"payment_status" db:"payment_status"`
	TotalAmount   int64         `json:"total_amount" db:"total_amount"`
	RenterName    string        `json:"renter_name" db:"renter_name"`
	RenterEmail   string        `json:"renter_email" db:"renter_email"`
	RenterPhone   string        `json:"renter_phone" db:"renter_phone"`
	Notes         *string       `json:"notes" db:"notes"`
	BookingCode   string        `json:"booking_code" db:"booking_code"`
	PaymentID     *string       `json:"payment_id" db:"payment_id"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`
}

// Equipment is rentable inventory attached to a venue.
type Equipment struct {
	ID                int64     `json:"id" db:"id"`
	VenueID           int64     `json:"venue_id" db:"venue_id"`
	Name              string    `json:"name" db:"name"`
	Code              string    `json:"code" db:"code"`
	Quantity          int       `json:"quantity" db:"quantity"`
	AvailableQuantity int       `json:"available_quantity" db:"available_quantity"`
	RentalFee         int64     `json:"rental_fee" db:"rental_fee"`
	Status            string    `json:"status" db:"status"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

// EquipmentRental tracks equipment handed out, optionally tied to a booking.
type EquipmentRental struct {
	ID          int64     `json:"id" db:"id"`
	EquipmentID int64     `json:"equipment_id" db:"equipment_id"`
	BookingID   *int64    `json:"booking_id" db:"booking_id"`
	Quantity    int       `json:"quantity" db:"quantity"`
	StartDate   string    `json:"start_date" db:"start_date"`
	EndDate     string    `json:"end_date" db:"end_date"`
	Status      string    `json:"status" db:"status"`
	TotalFee    int64     `json:"total_fee" db:"total_fee"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Maintenance is scheduled work on a court. While active it takes the court
// out of the bookable pool.
type Maintenance struct {
	ID            int64             `json:"id" db:"id"`
	CourtID       int64             `json:"court_id" db:"court_id"`
	Title         string            `json:"title" db:"title"`
	Description   *string           `json:"description" db:"description"`
	ScheduledDate string            `json:"scheduled_date" db:"scheduled_date"`
	Status        MaintenanceStatus `json:"status" db:"status"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at" db:"updated_at"`
}

// News is a published article with a deduplicated view counter.
type News struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Category  string    `json:"category" db:"category"`
	Published bool      `json:"published" db:"published"`
	ViewCount int64     `json:"view_count" db:"view_count"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Notification is a message for one user, or a broadcast when UserID is nil.
type Notification struct {
	ID        int64     `json:"id" db:"id"`
	UserID    *int64    `json:"user_id" db:"user_id"`
	Type      string    `json:"type" db:"type"`
	Title     string    `json:"title" db:"title"`
	Message   string    `json:"message" db:"message"`
	Read      bool      `json:"read" db:"read"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
