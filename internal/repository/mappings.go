package repository

import (
	"context"
	"database/sql"

	"tvusm/internal/database"
	"tvusm/internal/models"

	"github.com/lib/pq"
)

type CourtMappingRepository struct {
	db *database.DB
}

func NewCourtMappingRepository(db *database.DB) *CourtMappingRepository {
	return &CourtMappingRepository{db: db}
}

// IsUniqueViolation reports whether err is the Postgres duplicate-key error,
// which the service layer surfaces as a conflict.
func IsUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return false
}

func (r *CourtMappingRepository) Create(ctx context.Context, mapping *models.CourtMapping) error {
	query := `
		INSERT INTO court_mappings (parent_court_id, child_court_id, position)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		mapping.ParentCourtID,
		mapping.ChildCourtID,
		mapping.Position,
	).Scan(&mapping.ID, &mapping.CreatedAt)
}

func (r *CourtMappingRepository) GetByID(ctx context.Context, id int64) (*models.CourtMapping, error) {
	mapping := &models.CourtMapping{}
	query := `
		SELECT id, parent_court_id, child_court_id, position, created_at
		FROM court_mappings
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&mapping.ID,
		&mapping.ParentCourtID,
		&mapping.ChildCourtID,
		&mapping.Position,
		&mapping.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return mapping, err
}

// ListByCourt returns every mapping row in which the court appears on either
// side of the relation.
func (r *CourtMappingRepository) ListByCourt(ctx context.Context, courtID int64) ([]models.CourtMapping, error) {
	var mappings []models.CourtMapping
	query := `
		SELECT id, parent_court_id, child_court_id, position, created_at
		FROM court_mappings
		WHERE parent_court_id = $1 OR child_court_id = $1
		ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, courtID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var mapping models.CourtMapping
		err := rows.Scan(
			&mapping.ID,
			&mapping.ParentCourtID,
			&mapping.ChildCourtID,
			&mapping.Position,
			&mapping.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		mappings = append(mappings, mapping)
	}

	return mappings, rows.Err()
}

// RelatedCourtIDs resolves the set of court ids that share physical space
// with courtID: both sides of every mapping row touching it, plus the court
// itself. With no mappings the result is the singleton set.
func (r *CourtMappingRepository) RelatedCourtIDs(ctx context.Context, courtID int64) ([]int64, error) {
	mappings, err := r.ListByCourt(ctx, courtID)
	if err != nil {
		return nil, err
	}
	return models.RelatedCourtSet(courtID, mappings), nil
}

func (r *CourtMappingRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM court_mappings WHERE id = $1`, id)
	return err
}
