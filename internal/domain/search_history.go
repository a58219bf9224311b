package domain

import (
	"context"
	"time"
)

// SearchHistoryEntry records one tag search a user ran that produced results.
// Entries are append-only; this core never mutates or deletes them.
// swagger:model SearchHistoryEntry
type SearchHistoryEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Query     string    `json:"query"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewSearchHistoryEntry returns a new entry. ID is set by the repository on create.
func NewSearchHistoryEntry(userID int64, query string, createdAt time.Time) *SearchHistoryEntry {
	return &SearchHistoryEntry{
		UserID:    userID,
		Query:     query,
		CreatedAt: createdAt,
	}
}

// SearchHistoryRepository defines append-only storage for search history.
type SearchHistoryRepository interface {
	Create(ctx context.Context, entry *SearchHistoryEntry) error
	// ListByUserID returns the user's entries ordered by created_at
	// descending. A user with no entries gets an empty slice, not an error.
	ListByUserID(ctx context.Context, userID int64) ([]*SearchHistoryEntry, error)
}

// SearchService composes tag resolution, photo filtering, and history logging,
// and fronts the external image provider.
type SearchService interface {
	// SearchByTag resolves the tag, lists matching photos sorted by date
	// saved, and appends a history entry when userID is non-zero and the
	// result is non-empty. The history write is best-effort: its failure
	// never invalidates the photo response.
	SearchByTag(ctx context.Context, tagName string, order SortOrder, userID int64) ([]*PhotoWithTags, error)
	// SearchImages queries the external image provider. Provider failures
	// surface as ErrUpstream without provider detail.
	SearchImages(ctx context.Context, query string) ([]ImageResult, error)
	ListHistory(ctx context.Context, userID int64) ([]*SearchHistoryEntry, error)
}
