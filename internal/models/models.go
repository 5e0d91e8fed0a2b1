package models

// Request/response models for the HTTP API.

// CreateBookingRequest creates one booking per requested slot. Either a
// single start_time/end_time pair or a comma-separated selected_times list
// ("09-10,10-11") may be supplied. user_id is overwritten server-side from
// the authenticated identity when present.
type CreateBookingRequest struct {
	CourtID       int64  `json:"court_id" binding:"required"`
	Date          string `json:"date" binding:"required"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	SelectedTimes string `json:"selected_times"`
	RenterName    string `json:"renter_name" binding:"required"`
	RenterEmail   string `json:"renter_email" binding:"required"`
	RenterPhone   string `json:"renter_phone" binding:"required"`
	Notes         string `json:"notes"`
	UserID        *int64 `json:"user_id"`
}

// UpdateBookingRequest carries status transitions; nil fields are untouched.
type UpdateBookingRequest struct {
	Status        *BookingStatus `json:"status"`
	PaymentStatus *PaymentStatus `json:"payment_status"`
	Notes         *string        `json:"notes"`
}

// BookingFilter narrows admin/manager booking listings.
type BookingFilter struct {
	Status  string
	Date    string
	CourtID int64
}

type CreateVenueRequest struct {
	Name        string  `json:"name" binding:"required"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}

type UpdateVenueRequest struct {
	Name        *string `json:"name"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

type CreateCourtRequest struct {
	VenueID     int64   `json:"venue_id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Code        string  `json:"code" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	HourlyRate  int64   `json:"hourly_rate" binding:"required"`
	Description *string `json:"description"`
}

type UpdateCourtRequest struct {
	Name        *string      `json:"name"`
	Type        *string      `json:"type"`
	HourlyRate  *int64       `json:"hourly_rate"`
	Status      *CourtStatus `json:"status"`
	Description *string      `json:"description"`
}

type CourtFilter struct {
	VenueID int64
	Status  string
	Type    string
}

type CreateCourtMappingRequest struct {
	ParentCourtID int64   `json:"parent_court_id" binding:"required"`
	ChildCourtID  int64   `json:"child_court_id" binding:"required"`
	Position      *string `json:"position"`
}

type CreateEquipmentRequest struct {
	VenueID   int64  `json:"venue_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Code      string `json:"code" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
	RentalFee int64  `json:"rental_fee"`
}

type UpdateEquipmentRequest struct {
	Name      *string `json:"name"`
	Quantity  *int    `json:"quantity"`
	RentalFee *int64  `json:"rental_fee"`
	Status    *string `json:"status"`
}

type CreateRentalRequest struct {
	EquipmentID int64  `json:"equipment_id" binding:"required"`
	BookingID   *int64 `json:"booking_id"`
	Quantity    int    `json:"quantity" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
}

type CreateMaintenanceRequest struct {
	CourtID       int64   `json:"court_id" binding:"required"`
	Title         string  `json:"title" binding:"required"`
	Description   *string `json:"description"`
	ScheduledDate string  `json:"scheduled_date" binding:"required"`
}

type UpdateMaintenanceRequest struct {
	Status *MaintenanceStatus `json:"status"`
}

type CreateNewsRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category"`
}

type UpdateNewsRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Category  *string `json:"category"`
	Published *bool   `json:"published"`
}

type InitiatePaymentRequest struct {
	BookingID int64 `json:"booking_id" binding:"required"`
}

// PaymentNotificationPayload is the webhook body pushed by the payment
// gateway.
type PaymentNotificationPayload struct {
	PaymentID string         `json:"paymentId"`
	OrderID   string         `json:"orderId"`
	Status    string         `json:"status"`
	Timestamp string         `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

// AvailabilityResponse answers the pre-flight availability probe.
type AvailabilityResponse struct {
	CourtID   int64  `json:"court_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}
