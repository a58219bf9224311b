package postgres

import (
	"context"
	"database/sql"

	"photocatalog/internal/domain"
)

type searchHistoryRepository struct {
	DB *sql.DB
}

// NewSearchHistoryRepository returns a domain.SearchHistoryRepository implemented with Postgres.
func NewSearchHistoryRepository(db *sql.DB) domain.SearchHistoryRepository {
	return &searchHistoryRepository{DB: db}
}

func (r *searchHistoryRepository) Create(ctx context.Context, e *domain.SearchHistoryEntry) error {
	query := `
		INSERT INTO search_history (user_id, query, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, e.UserID, e.Query, e.CreatedAt).Scan(&e.ID)
}

func (r *searchHistoryRepository) ListByUserID(ctx context.Context, userID int64) ([]*domain.SearchHistoryEntry, error) {
	query := `
		SELECT id, user_id, query, created_at
		FROM search_history
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.SearchHistoryEntry, 0)
	for rows.Next() {
		e := &domain.SearchHistoryEntry{}
		if err := rows.Scan(&e.ID, &e.UserID, &e.Query, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
