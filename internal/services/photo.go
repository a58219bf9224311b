package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"photocatalog/internal/domain"
)

type photoService struct {
	photoRepo      domain.PhotoRepository
	tagRepo        domain.TagRepository
	contextTimeout time.Duration
}

// NewPhotoService returns the photo save/tagging service.
func NewPhotoService(photoRepo domain.PhotoRepository, tagRepo domain.TagRepository, timeout time.Duration) domain.PhotoService {
	return &photoService{
		photoRepo:      photoRepo,
		tagRepo:        tagRepo,
		contextTimeout: timeout,
	}
}

// validateTagNames checks the per-name rules shared by photo save and tag add:
// trimmed non-empty, at most MaxTagNameLength characters.
func validateTagNames(names []string) error {
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: tags must be non-empty strings", domain.ErrInvalidTags)
		}
		if len(name) > domain.MaxTagNameLength {
			return fmt.Errorf("%w: each tag must be at most %d characters", domain.ErrInvalidTags, domain.MaxTagNameLength)
		}
	}
	return nil
}

func (s *photoService) SavePhoto(ctx context.Context, photo *domain.Photo, tagNames []string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !strings.HasPrefix(photo.ImageURL, domain.ImageURLPrefix) {
		return domain.ErrInvalidImageURL
	}
	if len(tagNames) > 0 {
		if len(tagNames) > domain.MaxTagsPerPhoto {
			return fmt.Errorf("%w: a photo can have at most %d tags", domain.ErrInvalidTags, domain.MaxTagsPerPhoto)
		}
		if err := validateTagNames(tagNames); err != nil {
			return err
		}
	}

	if photo.DateSaved.IsZero() {
		photo.DateSaved = time.Now()
	}
	if err := s.photoRepo.Create(ctx, photo); err != nil {
		return fmt.Errorf("create photo: %w", err)
	}

	if len(tagNames) > 0 {
		// Tag rows depend on the photo row. A failure here leaves the photo
		// saved without its tags; that partial state is accepted rather than
		// rolled back.
		if err := s.tagRepo.CreateForPhoto(ctx, photo.ID, tagNames); err != nil {
			return fmt.Errorf("create tags: %w", err)
		}
	}
	return nil
}

func (s *photoService) AddTags(ctx context.Context, photoID int64, tagNames []string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if len(tagNames) == 0 {
		return fmt.Errorf("%w: tags must be a non-empty list", domain.ErrInvalidTags)
	}
	if err := validateTagNames(tagNames); err != nil {
		return err
	}

	err := s.tagRepo.AddToPhoto(ctx, photoID, tagNames)
	if err != nil {
		if errors.Is(err, domain.ErrPhotoNotFound) || errors.Is(err, domain.ErrTagLimitExceeded) {
			return err
		}
		return fmt.Errorf("add tags: %w", err)
	}
	return nil
}
