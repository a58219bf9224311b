package domain

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ImageURLPrefix is the hosted-image URL prefix of the image provider.
// Photos may only be saved from this host; any other URL is rejected before
// a row is written.
const ImageURLPrefix = "https://images.unsplash.com/"

// Sentinel errors for photo operations.
var (
	ErrPhotoNotFound   = errors.New("photo not found")
	ErrInvalidImageURL = errors.New("invalid image URL")
	ErrNoPhotosFound   = errors.New("no photos found for tag")
)

// Photo represents a saved provider image.
// swagger:model Photo
type Photo struct {
	ID             int64     `json:"id"`
	ImageURL       string    `json:"imageUrl"`
	Description    string    `json:"description"`
	AltDescription string    `json:"altDescription"`
	DateSaved      time.Time `json:"dateSaved"`
	OwnerID        int64     `json:"userId"`
}

// NewPhoto returns a new Photo with the given fields. ID is set by the repository on create.
func NewPhoto(imageURL, description, altDescription string, ownerID int64, dateSaved time.Time) *Photo {
	return &Photo{
		ImageURL:       imageURL,
		Description:    description,
		AltDescription: altDescription,
		OwnerID:        ownerID,
		DateSaved:      dateSaved,
	}
}

// PhotoWithTags bundles a photo with all of its tag names, as returned by
// tag-scoped listing.
type PhotoWithTags struct {
	Photo
	TagNames []string `json:"tags"`
}

// ErrInvalidSortOrder is returned when a sort parameter is neither ASC nor DESC.
var ErrInvalidSortOrder = errors.New("invalid sort order")

// SortOrder is the direction photos are ordered by date saved.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// ParseSortOrder parses a sort parameter case-insensitively. An empty string
// defaults to ascending.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToUpper(s) {
	case "", string(SortAsc):
		return SortAsc, nil
	case string(SortDesc):
		return SortDesc, nil
	}
	return "", ErrInvalidSortOrder
}

// PhotoRepository defines the interface for photo storage.
type PhotoRepository interface {
	Create(ctx context.Context, photo *Photo) error
	GetByID(ctx context.Context, id int64) (*Photo, error)
	// ListByTagName returns all photos carrying a tag with the given name,
	// each with its full tag-name list, ordered by date saved in the given
	// direction. ownerID restricts the result to one owner when non-zero.
	ListByTagName(ctx context.Context, tagName string, ownerID int64, order SortOrder) ([]*PhotoWithTags, error)
}

// PhotoService defines the business logic for saving photos and tagging them.
type PhotoService interface {
	// SavePhoto validates the image URL and tag names, persists the photo,
	// then persists its tags. Tag persistence is a dependent write: if it
	// fails the photo row remains.
	SavePhoto(ctx context.Context, photo *Photo, tagNames []string) error
	// AddTags appends tags to an existing photo, enforcing the per-photo
	// tag limit against the live count.
	AddTags(ctx context.Context, photoID int64, tagNames []string) error
}
