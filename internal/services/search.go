package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"photocatalog/internal/domain"
)

type searchService struct {
	photoRepo      domain.PhotoRepository
	tagRepo        domain.TagRepository
	historyRepo    domain.SearchHistoryRepository
	searcher       domain.ImageSearcher
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewSearchService returns the tag-scoped retrieval and provider search service.
func NewSearchService(photoRepo domain.PhotoRepository,
	tagRepo domain.TagRepository,
	historyRepo domain.SearchHistoryRepository,
	searcher domain.ImageSearcher,
	logger *slog.Logger,
	timeout time.Duration,
) domain.SearchService {
	return &searchService{
		photoRepo:      photoRepo,
		tagRepo:        tagRepo,
		historyRepo:    historyRepo,
		searcher:       searcher,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *searchService) SearchByTag(ctx context.Context, tagName string, order domain.SortOrder, userID int64) ([]*domain.PhotoWithTags, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.tagRepo.GetByName(ctx, tagName); err != nil {
		if errors.Is(err, domain.ErrTagNotFound) {
			return nil, domain.ErrTagNotFound
		}
		return nil, fmt.Errorf("resolve tag: %w", err)
	}

	photos, err := s.photoRepo.ListByTagName(ctx, tagName, userID, order)
	if err != nil {
		return nil, fmt.Errorf("list photos by tag: %w", err)
	}
	if len(photos) == 0 {
		return nil, domain.ErrNoPhotosFound
	}

	// History reflects searches that produced results, and only for known
	// callers. The write is best-effort: the photos still go back on failure.
	if userID != 0 {
		entry := domain.NewSearchHistoryEntry(userID, tagName, time.Now())
		if err := s.historyRepo.Create(ctx, entry); err != nil {
			s.logger.Warn("failed to record search history",
				"user_id", userID,
				"query", tagName,
				"err", err,
			)
		}
	}
	return photos, nil
}

func (s *searchService) SearchImages(ctx context.Context, query string) ([]domain.ImageResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	results, err := s.searcher.Search(ctx, query)
	if err != nil {
		s.logger.Error("image provider search failed", "query", query, "err", err)
		return nil, domain.ErrUpstream
	}
	return results, nil
}

func (s *searchService) ListHistory(ctx context.Context, userID int64) ([]*domain.SearchHistoryEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	entries, err := s.historyRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list search history: %w", err)
	}
	if entries == nil {
		entries = []*domain.SearchHistoryEntry{}
	}
	return entries, nil
}
