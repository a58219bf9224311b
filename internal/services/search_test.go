package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"photocatalog/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger so tests don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeHistoryRepo implements domain.SearchHistoryRepository for tests.
type fakeHistoryRepo struct {
	entries   []*domain.SearchHistoryEntry
	createErr error
	listErr   error
}

func (f *fakeHistoryRepo) Create(ctx context.Context, e *domain.SearchHistoryEntry) error {
	if f.createErr != nil {
		return f.createErr
	}
	e.ID = int64(len(f.entries) + 1)
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeHistoryRepo) ListByUserID(ctx context.Context, userID int64) ([]*domain.SearchHistoryEntry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.SearchHistoryEntry
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

// fakeImageSearcher implements domain.ImageSearcher for tests.
type fakeImageSearcher struct {
	results   []domain.ImageResult
	err       error
	lastQuery string
}

func (f *fakeImageSearcher) Search(ctx context.Context, query string) ([]domain.ImageResult, error) {
	f.lastQuery = query
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func newSearchFixture() (*fakePhotoRepo, *fakeTagRepo, *fakeHistoryRepo, *fakeImageSearcher, domain.SearchService) {
	photoRepo := newFakePhotoRepo()
	tagRepo := newFakeTagRepo()
	historyRepo := &fakeHistoryRepo{}
	searcher := &fakeImageSearcher{}
	svc := NewSearchService(photoRepo, tagRepo, historyRepo, searcher, testLogger, time.Second)
	return photoRepo, tagRepo, historyRepo, searcher, svc
}

func TestSearchService_SearchByTag(t *testing.T) {
	ctx := context.Background()
	t1 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	match := func(id int64, saved time.Time) *domain.PhotoWithTags {
		return &domain.PhotoWithTags{
			Photo: domain.Photo{
				ID:        id,
				ImageURL:  "https://images.unsplash.com/a",
				DateSaved: saved,
				OwnerID:   7,
			},
			TagNames: []string{"sunset"},
		}
	}

	t.Run("unknown tag returns not found and writes no history", func(t *testing.T) {
		_, _, historyRepo, _, svc := newSearchFixture()
		_, err := svc.SearchByTag(ctx, "sunset", domain.SortAsc, 7)
		require.ErrorIs(t, err, domain.ErrTagNotFound)
		assert.Empty(t, historyRepo.entries)
	})

	t.Run("empty result returns not found and writes no history", func(t *testing.T) {
		_, tagRepo, historyRepo, _, svc := newSearchFixture()
		tagRepo.byName["sunset"] = &domain.Tag{ID: 1, Name: "sunset", PhotoID: 9}
		_, err := svc.SearchByTag(ctx, "sunset", domain.SortAsc, 7)
		require.ErrorIs(t, err, domain.ErrNoPhotosFound)
		assert.Empty(t, historyRepo.entries)
	})

	t.Run("match with user logs exactly one entry", func(t *testing.T) {
		photoRepo, tagRepo, historyRepo, _, svc := newSearchFixture()
		tagRepo.byName["sunset"] = &domain.Tag{ID: 1, Name: "sunset", PhotoID: 1}
		photoRepo.listResult = []*domain.PhotoWithTags{match(2, t2), match(1, t1)}

		photos, err := svc.SearchByTag(ctx, "sunset", domain.SortDesc, 7)
		require.NoError(t, err)
		require.Len(t, photos, 2)
		assert.Equal(t, domain.SortDesc, photoRepo.lastOrder)
		assert.Equal(t, int64(7), photoRepo.lastOwnerID)

		require.Len(t, historyRepo.entries, 1)
		assert.Equal(t, int64(7), historyRepo.entries[0].UserID)
		assert.Equal(t, "sunset", historyRepo.entries[0].Query)
	})

	t.Run("match without user logs nothing", func(t *testing.T) {
		photoRepo, tagRepo, historyRepo, _, svc := newSearchFixture()
		tagRepo.byName["sunset"] = &domain.Tag{ID: 1, Name: "sunset", PhotoID: 1}
		photoRepo.listResult = []*domain.PhotoWithTags{match(1, t1)}

		photos, err := svc.SearchByTag(ctx, "sunset", domain.SortAsc, 0)
		require.NoError(t, err)
		require.Len(t, photos, 1)
		assert.Empty(t, historyRepo.entries)
		assert.Zero(t, photoRepo.lastOwnerID)
	})

	t.Run("history failure still returns photos", func(t *testing.T) {
		photoRepo, tagRepo, historyRepo, _, svc := newSearchFixture()
		tagRepo.byName["sunset"] = &domain.Tag{ID: 1, Name: "sunset", PhotoID: 1}
		photoRepo.listResult = []*domain.PhotoWithTags{match(1, t1)}
		historyRepo.createErr = errors.New("history table on fire")

		photos, err := svc.SearchByTag(ctx, "sunset", domain.SortAsc, 7)
		require.NoError(t, err)
		require.Len(t, photos, 1)
	})
}

func TestSearchService_SearchImages(t *testing.T) {
	ctx := context.Background()

	t.Run("maps provider results", func(t *testing.T) {
		_, _, _, searcher, svc := newSearchFixture()
		searcher.results = []domain.ImageResult{{ImageURL: "https://images.unsplash.com/a"}}

		results, err := svc.SearchImages(ctx, "mountains")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "mountains", searcher.lastQuery)
	})

	t.Run("provider failure surfaces as generic upstream error", func(t *testing.T) {
		_, _, _, searcher, svc := newSearchFixture()
		searcher.err = errors.New("401 from provider: bad access key")

		_, err := svc.SearchImages(ctx, "mountains")
		require.ErrorIs(t, err, domain.ErrUpstream)
		assert.NotContains(t, err.Error(), "access key", "provider detail must not leak")
	})
}

func TestSearchService_ListHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		_, _, historyRepo, _, svc := newSearchFixture()
		for i := 0; i < 3; i++ {
			require.NoError(t, historyRepo.Create(ctx, domain.NewSearchHistoryEntry(7, "q", time.Now())))
		}
		entries, err := svc.ListHistory(ctx, 7)
		require.NoError(t, err)
		require.Len(t, entries, 3)
	})

	t.Run("no entries yields empty slice, not nil", func(t *testing.T) {
		_, _, _, _, svc := newSearchFixture()
		entries, err := svc.ListHistory(ctx, 7)
		require.NoError(t, err)
		require.NotNil(t, entries)
		require.Empty(t, entries)
	})
}
