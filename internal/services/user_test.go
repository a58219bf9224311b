package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"photocatalog/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo implements domain.UserRepository for tests.
type fakeUserRepo struct {
	byEmail   map[string]*domain.User
	createErr error
	getErr    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	u.ID = int64(len(f.byEmail) + 1)
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

// fakeEmailService implements domain.EmailService for tests.
type fakeEmailService struct {
	sent []*domain.WelcomeEmailData
	err  error
}

func (f *fakeEmailService) SendWelcomeMessage(ctx context.Context, data *domain.WelcomeEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}

func TestUserService_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user and sends welcome email", func(t *testing.T) {
		repo := newFakeUserRepo()
		emails := &fakeEmailService{}
		svc := NewUserService(repo, emails, testLogger, time.Second)

		user := domain.NewUser("ada", "ada@example.com", time.Time{}, time.Time{})
		require.NoError(t, svc.CreateUser(ctx, user))
		assert.NotZero(t, user.ID)
		assert.False(t, user.CreatedAt.IsZero())
		require.Len(t, emails.sent, 1)
		assert.Equal(t, "ada@example.com", emails.sent[0].Email)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewUserService(repo, &fakeEmailService{}, testLogger, time.Second)

		first := domain.NewUser("ada", "ada@example.com", time.Time{}, time.Time{})
		require.NoError(t, svc.CreateUser(ctx, first))

		second := domain.NewUser("other", "ada@example.com", time.Time{}, time.Time{})
		err := svc.CreateUser(ctx, second)
		require.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})

	t.Run("email failure does not fail registration", func(t *testing.T) {
		repo := newFakeUserRepo()
		emails := &fakeEmailService{err: errors.New("ses is down")}
		svc := NewUserService(repo, emails, testLogger, time.Second)

		user := domain.NewUser("ada", "ada@example.com", time.Time{}, time.Time{})
		require.NoError(t, svc.CreateUser(ctx, user))
	})

	t.Run("lookup failure surfaces", func(t *testing.T) {
		repo := newFakeUserRepo()
		repo.getErr = errors.New("db down")
		svc := NewUserService(repo, &fakeEmailService{}, testLogger, time.Second)

		user := domain.NewUser("ada", "ada@example.com", time.Time{}, time.Time{})
		require.Error(t, svc.CreateUser(ctx, user))
	})
}
