package repository

import (
	"context"
	"database/sql"
	"time"

	"tvusm/internal/database"
	"tvusm/internal/models"
)

type VenueRepository struct {
	db *database.DB
}

func NewVenueRepository(db *database.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

func (r *VenueRepository) Create(ctx context.Context, venue *models.Venue) error {
	query := `
		INSERT INTO venues (name, location, description, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		venue.Name,
		venue.Location,
		venue.Description,
		venue.Status,
	).Scan(&venue.ID, &venue.CreatedAt, &venue.UpdatedAt)
}

func (r *VenueRepository) GetByID(ctx context.Context, id int64) (*models.Venue, error) {
	venue := &models.Venue{}
	query := `
		SELECT id, name, location, description, status, created_at, updated_at
		FROM venues
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&venue.ID,
		&venue.Name,
		&venue.Location,
		&venue.Description,
		&venue.Status,
		&venue.CreatedAt,
		&venue.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return venue, err
}

func (r *VenueRepository) List(ctx context.Context) ([]models.Venue, error) {
	var venues []models.Venue
	query := `
		SELECT id, name, location, description, status, created_at, updated_at
		FROM venues
		ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var venue models.Venue
		err := rows.Scan(
			&venue.ID,
			&venue.Name,
			&venue.Location,
			&venue.Description,
			&venue.Status,
			&venue.CreatedAt,
			&venue.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		venues = append(venues, venue)
	}

	return venues, rows.Err()
}

func (r *VenueRepository) Update(ctx context.Context, venue *models.Venue) error {
	query := `
		UPDATE venues
		SET name = $1, location = $2, description = $3, status = $4, updated_at = $5
		WHERE id = $6`

	venue.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		venue.Name,
		venue.Location,
		venue.Description,
		venue.Status,
		venue.UpdatedAt,
		venue.ID,
	)

	return err
}
