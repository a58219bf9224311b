package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"photocatalog/internal/domain"
)

type userService struct {
	userRepo       domain.UserRepository
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewUserService returns the user registration service.
func NewUserService(userRepo domain.UserRepository, emailService domain.EmailService, logger *slog.Logger, timeout time.Duration) domain.UserService {
	return &userService{
		userRepo:       userRepo,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *userService) CreateUser(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	_, err := s.userRepo.GetByEmail(ctx, user.Email)
	if err == nil {
		return domain.ErrDuplicateEmail
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("check existing user: %w", err)
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("create user: %w", err)
	}

	// Welcome email is best-effort: registration already succeeded.
	if s.emailService != nil {
		data := &domain.WelcomeEmailData{Email: user.Email, Username: user.Username}
		if err := s.emailService.SendWelcomeMessage(ctx, data); err != nil {
			s.logger.Warn("failed to send welcome email", "email", user.Email, "err", err)
		}
	}
	return nil
}
