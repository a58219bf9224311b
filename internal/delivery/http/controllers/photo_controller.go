package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"photocatalog/internal/delivery/http/helpers"
	"photocatalog/internal/domain"
)

// SavePhotoRequest is the request body for POST /photos.
type SavePhotoRequest struct {
	ImageURL       string   `json:"imageUrl"`
	Description    string   `json:"description"`
	AltDescription string   `json:"altDescription"`
	Tags           []string `json:"tags"`
	UserID         int64    `json:"userId"`
}

// Validate implements Validator. URL-prefix and tag rules are enforced by the
// photo service; only field presence is checked here.
func (s SavePhotoRequest) Validate() []string {
	var errs []string
	if s.ImageURL == "" {
		errs = append(errs, "imageUrl is required")
	}
	if s.UserID <= 0 {
		errs = append(errs, "userId is required")
	}
	return errs
}

// AddTagsRequest is the request body for POST /photos/{photoID}/tags.
type AddTagsRequest struct {
	Tags []string `json:"tags"`
}

// Validate implements Validator.
func (a AddTagsRequest) Validate() []string {
	if len(a.Tags) == 0 {
		return []string{"tags must be a non-empty array"}
	}
	return nil
}

// MessageResponse is a success body carrying only a confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// PhotoResult is one photo in a tag search response.
type PhotoResult struct {
	ImageURL    string    `json:"imageUrl"`
	Description string    `json:"description"`
	DateSaved   time.Time `json:"dateSaved"`
	Tags        []string  `json:"tags"`
}

// SearchByTagResponse is the response body for GET /photos/tag/search.
type SearchByTagResponse struct {
	Photos []PhotoResult `json:"photos"`
}

// SearchImagesResponse is the response body for GET /photos/search.
type SearchImagesResponse struct {
	Photos []domain.ImageResult `json:"photos"`
}

// HistoryEntryResult is one entry in a search history response.
type HistoryEntryResult struct {
	Query     string    `json:"query"`
	Timestamp time.Time `json:"timestamp"`
}

// SearchHistoryResponse is the response body for GET /search-history.
type SearchHistoryResponse struct {
	SearchHistory []HistoryEntryResult `json:"searchHistory"`
}

// PhotoController handles photo save, tagging, and search endpoints.
type PhotoController struct {
	Logger *slog.Logger
	Photos domain.PhotoService
	Search domain.SearchService
}

func NewPhotoController(logger *slog.Logger, photos domain.PhotoService, search domain.SearchService) *PhotoController {
	return &PhotoController{
		Logger: logger,
		Photos: photos,
		Search: search,
	}
}

// SavePhoto godoc
// @Summary Save a photo
// @Description Save a provider-hosted photo with up to 5 optional tags. The image URL must start with the provider's hosted-image prefix.
// @Tags photos
// @Accept json
// @Produce json
// @Param photo body SavePhotoRequest true "Photo data"
// @Success 201 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /photos [post]
func (c *PhotoController) SavePhoto(w http.ResponseWriter, r *http.Request) {
	var req SavePhotoRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	photo := domain.NewPhoto(req.ImageURL, req.Description, req.AltDescription, req.UserID, time.Time{})
	if err := c.Photos.SavePhoto(r.Context(), photo, req.Tags); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidImageURL):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "Invalid image URL")
		case errors.Is(err, domain.ErrInvalidTags):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, MessageResponse{Message: "Photo saved successfully"})
}

// AddTags godoc
// @Summary Add tags to a photo
// @Description Append tags to an existing photo. A photo can carry at most 5 tags; the whole batch is rejected if it would exceed the limit.
// @Tags photos
// @Accept json
// @Produce json
// @Param photoID path int true "Photo ID"
// @Param tags body AddTagsRequest true "Tag names"
// @Success 201 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or tag_limit_exceeded"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /photos/{photoID}/tags [post]
func (c *PhotoController) AddTags(w http.ResponseWriter, r *http.Request) {
	photoID, err := strconv.ParseInt(r.PathValue("photoID"), 10, 64)
	if err != nil || photoID <= 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "photoID must be a positive integer")
		return
	}
	var req AddTagsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Photos.AddTags(r.Context(), photoID, req.Tags); err != nil {
		switch {
		case errors.Is(err, domain.ErrPhotoNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "Photo not found")
		case errors.Is(err, domain.ErrInvalidTags):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		case errors.Is(err, domain.ErrTagLimitExceeded):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeTagLimitExceeded, "A photo can have a maximum of 5 tags")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, MessageResponse{Message: "Tags added successfully"})
}

// SearchByTag godoc
// @Summary Search saved photos by tag
// @Description Find saved photos carrying the given tag, sorted by save date. Supplying userId restricts results to that user's photos and records the search in their history.
// @Tags search
// @Produce json
// @Param tags query string true "Tag name (exactly one)"
// @Param sort query string false "Sort order: ASC or DESC (default ASC)"
// @Param userId query int false "Restrict to this user's photos and log the search"
// @Success 200 {object} helpers.APIResponse "data contains the matching photos"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /photos/tag/search [get]
func (c *PhotoController) SearchByTag(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	tagValues := q["tags"]
	if len(tagValues) != 1 || tagValues[0] == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "a single tag must be provided")
		return
	}
	tagName := tagValues[0]

	order, err := domain.ParseSortOrder(q.Get("sort"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "Invalid sort order")
		return
	}

	var userID int64
	if s := q.Get("userId"); s != "" {
		userID, err = strconv.ParseInt(s, 10, 64)
		if err != nil || userID <= 0 {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "userId must be a positive integer")
			return
		}
	}

	photos, err := c.Search.SearchByTag(r.Context(), tagName, order, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTagNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "Tag not found")
		case errors.Is(err, domain.ErrNoPhotosFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "No photos found with the specified tag")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		}
		return
	}

	results := make([]PhotoResult, 0, len(photos))
	for _, p := range photos {
		results = append(results, PhotoResult{
			ImageURL:    p.ImageURL,
			Description: p.Description,
			DateSaved:   p.DateSaved,
			Tags:        p.TagNames,
		})
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SearchByTagResponse{Photos: results})
}

// SearchImages godoc
// @Summary Search the image provider
// @Description Free-text search against the external image provider. Provider failures surface as a generic upstream error.
// @Tags search
// @Produce json
// @Param query query string true "Search term"
// @Success 200 {object} helpers.APIResponse "data contains the provider results"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /photos/search [get]
func (c *PhotoController) SearchImages(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "A search term is required")
		return
	}
	results, err := c.Search.SearchImages(r.Context(), query)
	if err != nil {
		// Provider errors were already logged with detail by the service.
		helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeUpstreamError, "Failed to fetch images from the provider")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SearchImagesResponse{Photos: results})
}

// GetSearchHistory godoc
// @Summary Get a user's search history
// @Description Returns the user's tag searches, most recent first.
// @Tags search
// @Produce json
// @Param userId query int true "User ID"
// @Success 200 {object} helpers.APIResponse "data contains the search history"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /search-history [get]
func (c *PhotoController) GetSearchHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("userId"), 10, 64)
	if err != nil || userID <= 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "Valid userId is required")
		return
	}
	entries, err := c.Search.ListHistory(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		return
	}
	history := make([]HistoryEntryResult, 0, len(entries))
	for _, e := range entries {
		history = append(history, HistoryEntryResult{Query: e.Query, Timestamp: e.CreatedAt})
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SearchHistoryResponse{SearchHistory: history})
}
