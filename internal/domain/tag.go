package domain

import (
	"context"
	"errors"
)

// Tag cardinality and format limits, enforced at every mutation point.
const (
	MaxTagsPerPhoto  = 5
	MaxTagNameLength = 20
)

// Sentinel errors for tag operations.
var (
	ErrTagNotFound      = errors.New("tag not found")
	ErrInvalidTags      = errors.New("invalid tags")
	ErrTagLimitExceeded = errors.New("tag limit exceeded")
)

// Tag is a name attached to exactly one photo. Tags are owned by their photo:
// deleting a photo cascades to its tags (see db/schema.sql).
// swagger:model Tag
type Tag struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	PhotoID int64  `json:"photoId"`
}

// TagRepository defines storage for tags and the photo–tag ownership link.
type TagRepository interface {
	// CreateForPhoto inserts one tag row per name for a freshly created
	// photo. The caller has already validated the names and count.
	CreateForPhoto(ctx context.Context, photoID int64, names []string) error
	// AddToPhoto appends tags to an existing photo inside a single
	// transaction: it locks the photo row, counts existing tags, and
	// rejects the whole batch with ErrTagLimitExceeded if the total would
	// exceed MaxTagsPerPhoto. Returns ErrPhotoNotFound when the photo does
	// not exist.
	AddToPhoto(ctx context.Context, photoID int64, names []string) error
	// GetByName resolves a tag by exact, case-sensitive name.
	GetByName(ctx context.Context, name string) (*Tag, error)
	CountByPhotoID(ctx context.Context, photoID int64) (int, error)
}
