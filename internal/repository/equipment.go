package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tvusm/internal/database"
	"tvusm/internal/models"
)

// ErrInsufficientStock is returned when a rental asks for more units than
// are currently available.
var ErrInsufficientStock = errors.New("not enough equipment available")

type EquipmentRepository struct {
	db *database.DB
}

func NewEquipmentRepository(db *database.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

func (r *EquipmentRepository) Create(ctx context.Context, eq *models.Equipment) error {
	query := `
		INSERT INTO equipment (venue_id, name, code, quantity, available_quantity, rental_fee, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		eq.VenueID,
		eq.Name,
		eq.Code,
		eq.Quantity,
		eq.AvailableQuantity,
		eq.RentalFee,
		eq.Status,
	).Scan(&eq.ID, &eq.CreatedAt, &eq.UpdatedAt)
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id int64) (*models.Equipment, error) {
	eq := &models.Equipment{}
	query := `
		SELECT id, venue_id, name, code, quantity, available_quantity, rental_fee, status, created_at, updated_at
		FROM equipment
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&eq.ID,
		&eq.VenueID,
		&eq.Name,
		&eq.Code,
		&eq.Quantity,
		&eq.AvailableQuantity,
		&eq.RentalFee,
		&eq.Status,
		&eq.CreatedAt,
		&eq.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return eq, err
}

func (r *EquipmentRepository) List(ctx context.Context, venueID int64) ([]models.Equipment, error) {
	var items []models.Equipment
	var args []any

	query := `
		SELECT id, venue_id, name, code, quantity, available_quantity, rental_fee, status, created_at, updated_at
		FROM equipment`

	if venueID != 0 {
		query += ` WHERE venue_id = $1`
		args = append(args, venueID)
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var eq models.Equipment
		err := rows.Scan(
			&eq.ID,
			&eq.VenueID,
			&eq.Name,
			&eq.Code,
			&eq.Quantity,
			&eq.AvailableQuantity,
			&eq.RentalFee,
			&eq.Status,
			&eq.CreatedAt,
			&eq.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, eq)
	}

	return items, rows.Err()
}

func (r *EquipmentRepository) Update(ctx context.Context, eq *models.Equipment) error {
	query := `
		UPDATE equipment
		SET name = $1, quantity = $2, available_quantity = $3, rental_fee = $4, status = $5, updated_at = $6
		WHERE id = $7`

	eq.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		eq.Name,
		eq.Quantity,
		eq.AvailableQuantity,
		eq.RentalFee,
		eq.Status,
		eq.UpdatedAt,
		eq.ID,
	)

	return err
}

// CreateRental decrements stock and records the rental in one transaction.
// The stock row is locked first so two concurrent rentals cannot both take
// the last unit.
func (r *EquipmentRepository) CreateRental(ctx context.Context, rental *models.EquipmentRental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var available int
	checkQuery := `SELECT available_quantity FROM equipment WHERE id = $1 FOR UPDATE`
	if err := tx.QueryRowContext(ctx, checkQuery, rental.EquipmentID).Scan(&available); err != nil {
		return err
	}

	if available < rental.Quantity {
		return fmt.Errorf("%w: requested %d, available %d", ErrInsufficientStock, rental.Quantity, available)
	}

	updateQuery := `UPDATE equipment SET available_quantity = available_quantity - $1, updated_at = NOW() WHERE id = $2`
	if _, err := tx.ExecContext(ctx, updateQuery, rental.Quantity, rental.EquipmentID); err != nil {
		return err
	}

	insertQuery := `
		INSERT INTO equipment_rentals (equipment_id, booking_id, quantity, start_date, end_date, status, total_fee)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err = tx.QueryRowContext(ctx, insertQuery,
		rental.EquipmentID,
		rental.BookingID,
		rental.Quantity,
		rental.StartDate,
		rental.EndDate,
		rental.Status,
		rental.TotalFee,
	).Scan(&rental.ID, &rental.CreatedAt)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// ReturnRental restores stock and marks the rental returned.
func (r *EquipmentRepository) ReturnRental(ctx context.Context, rentalID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var equipmentID int64
	var quantity int
	var status string
	query := `SELECT equipment_id, quantity, status FROM equipment_rentals WHERE id = $1 FOR UPDATE`
	err = tx.QueryRowContext(ctx, query, rentalID).Scan(&equipmentID, &quantity, &status)
	if err == sql.ErrNoRows {
		return sql.ErrNoRows
	}
	if err != nil {
		return err
	}

	if status == "returned" {
		return tx.Commit()
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE equipment_rentals SET status = 'returned' WHERE id = $1`, rentalID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE equipment SET available_quantity = available_quantity + $1, updated_at = NOW() WHERE id = $2`,
		quantity, equipmentID); err != nil {
		return err
	}

	return tx.Commit()
}
