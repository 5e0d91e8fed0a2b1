package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tvusm/internal/database"
	"tvusm/internal/models"
)

type NewsRepository struct {
	db *database.DB
}

func NewNewsRepository(db *database.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) Create(ctx context.Context, article *models.News) error {
	query := `
		INSERT INTO news (title, content, category, published)
		VALUES ($1, $2, $3, $4)
		RETURNING id, view_count, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		article.Title,
		article.Content,
		article.Category,
		article.Published,
	).Scan(&article.ID, &article.ViewCount, &article.CreatedAt, &article.UpdatedAt)
}

func (r *NewsRepository) GetByID(ctx context.Context, id int64) (*models.News, error) {
	article := &models.News{}
	query := `
		SELECT id, title, content, category, published, view_count, created_at, updated_at
		FROM news
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&article.ID,
		&article.Title,
		&article.Content,
		&article.Category,
		&article.Published,
		&article.ViewCount,
		&article.CreatedAt,
		&article.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return article, err
}

func (r *NewsRepository) List(ctx context.Context, category string, publishedOnly bool, page, pageSize int) ([]models.News, error) {
	var items []models.News
	var args []any
	argIndex := 1

	query := `
		SELECT id, title, content, category, published, view_count, created_at, updated_at
		FROM news
		WHERE 1=1`

	if publishedOnly {
		query += " AND published = TRUE"
	}

	if category != "" {
		query += fmt.Sprintf(" AND category = $%d", argIndex)
		args = append(args, category)
		argIndex++
	}

	query += " ORDER BY created_at DESC"

	if page > 0 && pageSize > 0 {
		offset := (page - 1) * pageSize
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
		args = append(args, pageSize, offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var article models.News
		err := rows.Scan(
			&article.ID,
			&article.Title,
			&article.Content,
			&article.Category,
			&article.Published,
			&article.ViewCount,
			&article.CreatedAt,
			&article.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, article)
	}

	return items, rows.Err()
}

func (r *NewsRepository) Update(ctx context.Context, article *models.News) error {
	query := `
		UPDATE news
		SET title = $1, content = $2, category = $3, published = $4, updated_at = $5
		WHERE id = $6`

	article.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		article.Title,
		article.Content,
		article.Category,
		article.Published,
		article.UpdatedAt,
		article.ID,
	)

	return err
}

func (r *NewsRepository) IncrementViewCount(ctx context.Context, id int64) error {
	query := `UPDATE news SET view_count = view_count + 1 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
