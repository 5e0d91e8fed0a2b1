package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tvusm/internal/database"
	"tvusm/internal/models"
)

type CourtRepository struct {
	db *database.DB
}

func NewCourtRepository(db *database.DB) *CourtRepository {
	return &CourtRepository{db: db}
}

const courtColumns = `id, venue_id, name, code, type, hourly_rate, status, description, created_at, updated_at`

func scanCourt(row interface{ Scan(...any) error }, court *models.Court) error {
	return row.Scan(
		&court.ID,
		&court.VenueID,
		&court.Name,
		&court.Code,
		&court.Type,
		&court.HourlyRate,
		&court.Status,
		&court.Description,
		&court.CreatedAt,
		&court.UpdatedAt,
	)
}

func (r *CourtRepository) Create(ctx context.Context, court *models.Court) error {
	query := `
		INSERT INTO courts (venue_id, name, code, type, hourly_rate, status, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		court.VenueID,
		court.Name,
		court.Code,
		court.Type,
		court.HourlyRate,
		court.Status,
		court.Description,
	).Scan(&court.ID, &court.CreatedAt, &court.UpdatedAt)
}

func (r *CourtRepository) GetByID(ctx context.Context, id int64) (*models.Court, error) {
	court := &models.Court{}
	query := `SELECT ` + courtColumns + ` FROM courts WHERE id = $1`

	err := scanCourt(r.db.QueryRowContext(ctx, query, id), court)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return court, err
}

func (r *CourtRepository) List(ctx context.Context, filter models.CourtFilter) ([]models.Court, error) {
	var courts []models.Court
	var args []any
	argIndex := 1

	query := `SELECT ` + courtColumns + ` FROM courts WHERE 1=1`

	if filter.VenueID != 0 {
		query += fmt.Sprintf(" AND venue_id = $%d", argIndex)
		args = append(args, filter.VenueID)
		argIndex++
	}

	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, filter.Status)
		argIndex++
	}

	if filter.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", argIndex)
		args = append(args, filter.Type)
		argIndex++
	}

	query += " ORDER BY id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var court models.Court
		if err := scanCourt(rows, &court); err != nil {
			return nil, err
		}
		courts = append(courts, court)
	}

	return courts, rows.Err()
}

func (r *CourtRepository) Update(ctx context.Context, court *models.Court) error {
	query := `
		UPDATE courts
		SET name = $1, type = $2, hourly_rate = $3, status = $4, description = $5, updated_at = $6
		WHERE id = $7`

	court.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		court.Name,
		court.Type,
		court.HourlyRate,
		court.Status,
		court.Description,
		court.UpdatedAt,
		court.ID,
	)

	return err
}

func (r *CourtRepository) UpdateStatus(ctx context.Context, id int64, status models.CourtStatus) error {
	query := `UPDATE courts SET status = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, status, id)
	return err
}
