package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-blogr/internal/config"
	"github.com/MKhiriev/go-blogr/internal/logger"
	"github.com/MKhiriev/go-blogr/internal/store"
	"github.com/MKhiriev/go-blogr/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockUserRepository implements store.UserRepository for unit tests.
// Each method field can be overridden per test case.
type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
	findUserByIDFn       func(ctx context.Context, id int64) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return m.findUserByUsernameFn(ctx, username)
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return m.findUserByIDFn(ctx, id)
}

func testAppConfig() config.App {
	return config.App{
		SessionSignKey:  "test-sign-key",
		SessionIssuer:   "go-blogr-test",
		SessionDuration: time.Hour,
		BcryptCost:      bcrypt.MinCost,
	}
}

func newAuthService(repo store.UserRepository) AuthService {
	return NewAuthService(repo, testAppConfig(), logger.Nop())
}

func TestRegisterUser_Success(t *testing.T) {
	var stored models.User
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			stored = user
			user.UserID = 1
			return user, nil
		},
	}

	registered, err := newAuthService(repo).RegisterUser(context.Background(), "john", "secret")
	require.NoError(t, err)

	assert.Equal(t, int64(1), registered.UserID)
	assert.Equal(t, "john", registered.Username)

	// plaintext must never reach the repository
	assert.NotEqual(t, "secret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret")))
}

func TestRegisterUser_EmptyFields(t *testing.T) {
	svc := newAuthService(&mockUserRepository{})

	_, err := svc.RegisterUser(context.Background(), "", "secret")
	assert.ErrorIs(t, err, ErrInvalidData)

	_, err = svc.RegisterUser(context.Background(), "john", "")
	assert.ErrorIs(t, err, ErrInvalidData)
}

func TestRegisterUser_Duplicate(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrUsernameTaken
		},
	}

	_, err := newAuthService(repo).RegisterUser(context.Background(), "john", "secret")
	assert.ErrorIs(t, err, store.ErrUsernameTaken)
}

func registeredJohn(t *testing.T) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	return models.User{UserID: 1, Username: "john", PasswordHash: string(hash)}
}

func TestLogin_Success(t *testing.T) {
	john := registeredJohn(t)
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, username string) (models.User, error) {
			require.Equal(t, "john", username)
			return john, nil
		},
	}

	user, err := newAuthService(repo).Login(context.Background(), "john", "secret")
	require.NoError(t, err)
	assert.Equal(t, john.UserID, user.UserID)
}

func TestLogin_IndistinguishableFailures(t *testing.T) {
	john := registeredJohn(t)
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, username string) (models.User, error) {
			if username == "john" {
				return john, nil
			}
			return models.User{}, store.ErrUserNotFound
		},
	}
	svc := newAuthService(repo)

	_, wrongPassword := svc.Login(context.Background(), "john", "wrong")
	_, unknownUser := svc.Login(context.Background(), "ghost", "secret")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	// the two failure modes must not be tellable apart by message
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestLogin_RepositoryError(t *testing.T) {
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, errors.New("db down")
		},
	}

	_, err := newAuthService(repo).Login(context.Background(), "john", "secret")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestSession_RoundTrip(t *testing.T) {
	john := registeredJohn(t)
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, id int64) (models.User, error) {
			require.Equal(t, john.UserID, id)
			return john, nil
		},
	}
	svc := newAuthService(repo)

	token, err := svc.CreateSession(context.Background(), john)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	user, err := svc.ResolveSession(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, john.UserID, user.UserID)
	assert.Equal(t, john.Username, user.Username)
}

func TestResolveSession_InvalidToken(t *testing.T) {
	svc := newAuthService(&mockUserRepository{})

	_, err := svc.ResolveSession(context.Background(), "tampered.token.value")
	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestResolveSession_UnknownUser(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	svc := newAuthService(repo)

	token, err := svc.CreateSession(context.Background(), models.User{UserID: 99})
	require.NoError(t, err)

	_, err = svc.ResolveSession(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
