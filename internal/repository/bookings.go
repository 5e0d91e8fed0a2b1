package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tvusm/internal/database"
	"tvusm/internal/models"

	"github.com/lib/pq"
)

// ErrSlotConflict is returned when a requested slot overlaps an existing
// blocking booking on any related court.
var ErrSlotConflict = errors.New("time slot already booked")

type BookingRepository struct {
	db *database.DB
}

func NewBookingRepository(db *database.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingColumns = `id, court_id, user_id, date, start_time, end_time, status, payment_status,
	       total_amount, renter_name, renter_email, renter_phone, notes, booking_code, payment_id,
	       created_at, updated_at`

func scanBooking(row interface{ Scan(...any) error }, b *models.Booking) error {
	return row.Scan(
		&b.ID,
		&b.CourtID,
		&b.UserID,
		&b.Date,
		&b.StartTime,
		&b.EndTime,
		&b.Status,
		&b.PaymentStatus,
		&b.TotalAmount,
		&b.RenterName,
		&b.RenterEmail,
		&b.RenterPhone,
		&b.Notes,
		&b.BookingCode,
		&b.PaymentID,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
}

// CreateSlotsIfAvailable runs the availability check and the inserts in one
// serializable transaction. Candidate rows across all related courts are
// locked with FOR UPDATE; a conflict on any requested slot rolls back the
// whole batch. Earlier slots in the same batch also block later ones.
func (r *BookingRepository) CreateSlotsIfAvailable(ctx context.Context, relatedCourtIDs []int64, date string, bookings []*models.Booking) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	existing, err := lockBlockingBookings(ctx, tx, relatedCourtIDs, date)
	if err != nil {
		return err
	}

	for _, booking := range bookings {
		conflict, err := models.FirstConflict(existing, booking.StartTime, booking.EndTime)
		if err != nil {
			return err
		}
		if conflict != nil {
			return fmt.Errorf("%w: %s-%s on %s collides with booking %d",
				ErrSlotConflict, booking.StartTime, booking.EndTime, date, conflict.ID)
		}

		query := `
			INSERT INTO bookings (court_id, user_id, date, start_time, end_time, status,
			                      payment_status, total_amount, renter_name, renter_email,
			                      renter_phone, notes, booking_code)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			RETURNING id, created_at, updated_at`

		err = tx.QueryRowContext(ctx, query,
			booking.CourtID,
			booking.UserID,
			booking.Date,
			booking.StartTime,
			booking.EndTime,
			booking.Status,
			booking.PaymentStatus,
			booking.TotalAmount,
			booking.RenterName,
			booking.RenterEmail,
			booking.RenterPhone,
			booking.Notes,
			booking.BookingCode,
		).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
		if err != nil {
			return err
		}

		// later slots in this batch must not overlap this one either
		existing = append(existing, *booking)
	}

	return tx.Commit()
}

func lockBlockingBookings(ctx context.Context, tx *sql.Tx, courtIDs []int64, date string) ([]models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE court_id = ANY($1) AND date = $2 AND status IN ('pending', 'confirmed')
		ORDER BY id
		FOR UPDATE`

	rows, err := tx.QueryContext(ctx, query, pq.Array(courtIDs), date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

// GetBlocking returns the pending/confirmed bookings on the given courts and
// date. This is the read-only flavor of the availability query used by the
// pre-flight probe; the authoritative check happens inside
// CreateSlotsIfAvailable.
func (r *BookingRepository) GetBlocking(ctx context.Context, courtIDs []int64, date string) ([]models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE court_id = ANY($1) AND date = $2 AND status IN ('pending', 'confirmed')
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(courtIDs), date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	booking := &models.Booking{}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	err := scanBooking(r.db.QueryRowContext(ctx, query, id), booking)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return booking, err
}

func (r *BookingRepository) GetByUserID(ctx context.Context, userID int64) ([]models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

func (r *BookingRepository) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	var args []any
	argIndex := 1

	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE 1=1`

	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, filter.Status)
		argIndex++
	}

	if filter.Date != "" {
		query += fmt.Sprintf(" AND date = $%d", argIndex)
		args = append(args, filter.Date)
		argIndex++
	}

	if filter.CourtID != 0 {
		query += fmt.Sprintf(" AND court_id = $%d", argIndex)
		args = append(args, filter.CourtID)
		argIndex++
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

func (r *BookingRepository) Update(ctx context.Context, booking *models.Booking) error {
	query := `
		UPDATE bookings
		SET status = $1, payment_status = $2, notes = $3, payment_id = $4, updated_at = NOW()
		WHERE id = $5`

	_, err := r.db.ExecContext(ctx, query,
		booking.Status,
		booking.PaymentStatus,
		booking.Notes,
		booking.PaymentID,
		booking.ID,
	)

	return err
}

func (r *BookingRepository) GetByPaymentID(ctx context.Context, paymentID string) (*models.Booking, error) {
	booking := &models.Booking{}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE payment_id = $1`

	err := scanBooking(r.db.QueryRowContext(ctx, query, paymentID), booking)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return booking, err
}

func (r *BookingRepository) GetByBookingCode(ctx context.Context, code string) (*models.Booking, error) {
	booking := &models.Booking{}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_code = $1`

	err := scanBooking(r.db.QueryRowContext(ctx, query, code), booking)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return booking, err
}

// GetExpiredPending returns pending unpaid bookings created before the
// cutoff. These are candidates for automatic cancellation.
func (r *BookingRepository) GetExpiredPending(ctx context.Context, before time.Time) ([]models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE status = 'pending' AND payment_status = 'unpaid' AND created_at < $1
		ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, before)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

// GetConfirmedByDate feeds the next-day reminder job.
func (r *BookingRepository) GetConfirmedByDate(ctx context.Context, date string) ([]models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE date = $1 AND status = 'confirmed'
		ORDER BY start_time ASC`

	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}
