package domain

import (
	"context"
	"errors"
)

// ErrUpstream is returned when the external image provider fails. Callers get
// this generic error; the provider's own error text stays in the logs.
var ErrUpstream = errors.New("image provider unavailable")

// ImageResult is one image returned by the external provider's search API.
// swagger:model ImageResult
type ImageResult struct {
	ImageURL       string `json:"imageUrl"`
	Description    string `json:"description"`
	AltDescription string `json:"altDescription"`
}

// ImageSearcher searches the external image provider (or a test double).
type ImageSearcher interface {
	Search(ctx context.Context, query string) ([]ImageResult, error)
}
