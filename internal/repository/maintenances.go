package repository

import (
	"context"
	"database/sql"
	"fmt"

	"tvusm/internal/database"
	"tvusm/internal/models"
)

type MaintenanceRepository struct {
	db *database.DB
}

func NewMaintenanceRepository(db *database.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

func (r *MaintenanceRepository) Create(ctx context.Context, m *models.Maintenance) error {
	query := `
		INSERT INTO maintenances (court_id, title, description, scheduled_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		m.CourtID,
		m.Title,
		m.Description,
		m.ScheduledDate,
		m.Status,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *MaintenanceRepository) GetByID(ctx context.Context, id int64) (*models.Maintenance, error) {
	m := &models.Maintenance{}
	query := `
		SELECT id, court_id, title, description, scheduled_date, status, created_at, updated_at
		FROM maintenances
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID,
		&m.CourtID,
		&m.Title,
		&m.Description,
		&m.ScheduledDate,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return m, err
}

func (r *MaintenanceRepository) List(ctx context.Context, courtID int64, status string) ([]models.Maintenance, error) {
	var items []models.Maintenance
	var args []any
	argIndex := 1

	query := `
		SELECT id, court_id, title, description, scheduled_date, status, created_at, updated_at
		FROM maintenances
		WHERE 1=1`

	if courtID != 0 {
		query += fmt.Sprintf(" AND court_id = $%d", argIndex)
		args = append(args, courtID)
		argIndex++
	}

	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, status)
	}

	query += ` ORDER BY scheduled_date ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var m models.Maintenance
		err := rows.Scan(
			&m.ID,
			&m.CourtID,
			&m.Title,
			&m.Description,
			&m.ScheduledDate,
			&m.Status,
			&m.CreatedAt,
			&m.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}

	return items, rows.Err()
}

func (r *MaintenanceRepository) UpdateStatus(ctx context.Context, id int64, status models.MaintenanceStatus) error {
	query := `UPDATE maintenances SET status = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, status, id)
	return err
}
