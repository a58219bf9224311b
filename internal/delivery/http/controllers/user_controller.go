package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"photocatalog/internal/delivery/http/helpers"
	"photocatalog/internal/domain"
)

// emailRegexp matches a simple email format (local@domain with at least one dot in domain).
var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CreateUserRequest is the request body for POST /users.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Validate implements Validator.
func (c CreateUserRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Username) == "" {
		errs = append(errs, "username is required and must be a non-empty string")
	}
	if c.Email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegexp.MatchString(c.Email) {
		errs = append(errs, "invalid email format")
	}
	return errs
}

// CreateUserResponse is the response body for POST /users (201).
type CreateUserResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

// UserController handles user registration.
type UserController struct {
	Logger  *slog.Logger
	Service domain.UserService
}

func NewUserController(logger *slog.Logger, svc domain.UserService) *UserController {
	return &UserController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateUser godoc
// @Summary Register a new user
// @Description Create a user with a username and a unique email. A welcome email is sent best-effort.
// @Tags users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User data"
// @Success 201 {object} helpers.APIResponse "data contains the created user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users [post]
func (c *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	now := time.Now()
	user := domain.NewUser(strings.TrimSpace(req.Username), req.Email, now, now)
	if err := c.Service.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "Email already exists")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, CreateUserResponse{
		Message: "User created successfully",
		User:    user,
	})
}
