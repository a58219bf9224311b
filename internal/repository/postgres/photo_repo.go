package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"photocatalog/internal/domain"

	"github.com/lib/pq"
)

type photoRepository struct {
	DB *sql.DB
}

// NewPhotoRepository returns a domain.PhotoRepository implemented with Postgres.
func NewPhotoRepository(db *sql.DB) domain.PhotoRepository {
	return &photoRepository{
		DB: db,
	}
}

func (r *photoRepository) Create(ctx context.Context, p *domain.Photo) error {
	query := `
		INSERT INTO photos (image_url, description, alt_description, date_saved, owner_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		p.ImageURL, p.Description, p.AltDescription, p.DateSaved, p.OwnerID,
	).Scan(&p.ID)
}

func (r *photoRepository) GetByID(ctx context.Context, id int64) (*domain.Photo, error) {
	query := `
		SELECT id, image_url, description, alt_description, date_saved, owner_id
		FROM photos
		WHERE id = $1
	`
	p := &domain.Photo{}
	var descNull, altNull sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.ImageURL, &descNull, &altNull, &p.DateSaved, &p.OwnerID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPhotoNotFound
		}
		return nil, err
	}
	p.Description = descNull.String
	p.AltDescription = altNull.String
	return p, nil
}

func (r *photoRepository) ListByTagName(ctx context.Context, tagName string, ownerID int64, order domain.SortOrder) ([]*domain.PhotoWithTags, error) {
	// ORDER BY direction cannot be a bind parameter; order is a validated
	// two-value enum, never caller input.
	direction := "ASC"
	if order == domain.SortDesc {
		direction = "DESC"
	}

	query := `
		SELECT p.id, p.image_url, p.description, p.alt_description, p.date_saved, p.owner_id,
		       array_agg(t.name ORDER BY t.id) AS tag_names
		FROM photos p
		JOIN tags t ON t.photo_id = p.id
		WHERE EXISTS (SELECT 1 FROM tags m WHERE m.photo_id = p.id AND m.name = $1)
	`
	args := []interface{}{tagName}
	if ownerID != 0 {
		query += ` AND p.owner_id = $2`
		args = append(args, ownerID)
	}
	query += `
		GROUP BY p.id
		ORDER BY p.date_saved ` + direction

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	photos := make([]*domain.PhotoWithTags, 0)
	for rows.Next() {
		p := &domain.PhotoWithTags{}
		var descNull, altNull sql.NullString
		var names pq.StringArray
		if err := rows.Scan(
			&p.ID, &p.ImageURL, &descNull, &altNull, &p.DateSaved, &p.OwnerID, &names,
		); err != nil {
			return nil, fmt.Errorf("scan photo row: %w", err)
		}
		p.Description = descNull.String
		p.AltDescription = altNull.String
		p.TagNames = []string(names)
		photos = append(photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return photos, nil
}
