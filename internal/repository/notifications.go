package repository

import (
	"context"
	"database/sql"

	"tvusm/internal/database"
	"tvusm/internal/models"
)

type NotificationRepository struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	query := `
		INSERT INTO notifications (user_id, type, title, message, read)
		VALUES ($1, $2, $3, $4, FALSE)
		RETURNING id, read, created_at`

	return r.db.QueryRowContext(ctx, query,
		n.UserID,
		n.Type,
		n.Title,
		n.Message,
	).Scan(&n.ID, &n.Read, &n.CreatedAt)
}

func (r *NotificationRepository) GetByID(ctx context.Context, id int64) (*models.Notification, error) {
	n := &models.Notification{}
	query := `
		SELECT id, user_id, type, title, message, read, created_at
		FROM notifications
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&n.ID,
		&n.UserID,
		&n.Type,
		&n.Title,
		&n.Message,
		&n.Read,
		&n.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return n, err
}

// ListByUser returns the user's notifications plus broadcasts, newest first.
// Broadcast rows carry a NULL user_id.
func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64) ([]models.Notification, error) {
	var items []models.Notification
	query := `
		SELECT id, user_id, type, title, message, read, created_at
		FROM notifications
		WHERE user_id = $1 OR user_id IS NULL
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var n models.Notification
		err := rows.Scan(
			&n.ID,
			&n.UserID,
			&n.Type,
			&n.Title,
			&n.Message,
			&n.Read,
			&n.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}

	return items, rows.Err()
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID int64) error {
	query := `UPDATE notifications SET read = TRUE WHERE id = $1 AND (user_id = $2 OR user_id IS NULL)`
	_, err := r.db.ExecContext(ctx, query, id, userID)
	return err
}
