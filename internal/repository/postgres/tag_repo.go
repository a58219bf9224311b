package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"photocatalog/internal/domain"
)

type tagRepository struct {
	DB *sql.DB
}

// NewTagRepository returns a domain.TagRepository implemented with Postgres.
func NewTagRepository(db *sql.DB) domain.TagRepository {
	return &tagRepository{DB: db}
}

func (r *tagRepository) CreateForPhoto(ctx context.Context, photoID int64, names []string) error {
	for _, name := range names {
		if _, err := r.DB.ExecContext(ctx, `INSERT INTO tags (name, photo_id) VALUES ($1, $2)`, name, photoID); err != nil {
			return fmt.Errorf("insert tag %q: %w", name, err)
		}
	}
	return nil
}

// AddToPhoto runs the count check and the inserts in one transaction. The
// FOR UPDATE lock on the photo row serializes concurrent adders, so two
// batches cannot both pass the count check and jointly exceed the limit.
func (r *tagRepository) AddToPhoto(ctx context.Context, photoID int64, names []string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM photos WHERE id = $1 FOR UPDATE`, photoID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrPhotoNotFound
		}
		return err
	}

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM tags WHERE photo_id = $1`, photoID).Scan(&count); err != nil {
		return err
	}
	if count+len(names) > domain.MaxTagsPerPhoto {
		return domain.ErrTagLimitExceeded
	}

	for _, name := range names {
		if _, err := tx.ExecContext(ctx, `INSERT INTO tags (name, photo_id) VALUES ($1, $2)`, name, photoID); err != nil {
			return fmt.Errorf("insert tag %q: %w", name, err)
		}
	}
	return tx.Commit()
}

func (r *tagRepository) GetByName(ctx context.Context, name string) (*domain.Tag, error) {
	tag := &domain.Tag{}
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, name, photo_id FROM tags WHERE name = $1 LIMIT 1`, name,
	).Scan(&tag.ID, &tag.Name, &tag.PhotoID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTagNotFound
		}
		return nil, err
	}
	return tag, nil
}

func (r *tagRepository) CountByPhotoID(ctx context.Context, photoID int64) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM tags WHERE photo_id = $1`, photoID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
