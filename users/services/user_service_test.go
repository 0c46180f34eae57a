package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gojobly/jobly/internal/auth/tokens"
	usererrors "github.com/gojobly/jobly/users/errors"
	"github.com/gojobly/jobly/users/models"
)

const testSecret = "test-secret-key"

func newTestService() (*MockUserRepository, *MockApplicationLister, UserService) {
	repo := new(MockUserRepository)
	applications := new(MockApplicationLister)
	svc := NewUserService(repo, applications, ServiceConfig{
		JWTSecret:        testSecret,
		TokenTTL:         time.Hour,
		BcryptCost:       bcrypt.MinCost,
		MinPasswordScore: 2,
	})
	return repo, applications, svc
}

func TestRegister(t *testing.T) {
	t.Run("hashes the password and returns a token", func(t *testing.T) {
		repo, _, svc := newTestService()
		password := "tr4ctor-beam-pine4pple"
		var capturedHash string
		repo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Username == "newuser" && !u.IsAdmin
		}), mock.AnythingOfType("string")).
			Run(func(args mock.Arguments) { capturedHash = args.String(2) }).
			Return(&models.User{Username: "newuser"}, nil)

		token, err := svc.Register(context.Background(), &models.RegisterRequest{
			Username: "newuser",
			Password: password,
			Email:    "new@example.com",
		})

		require.NoError(t, err)
		require.NotEqual(t, password, capturedHash)
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(capturedHash), []byte(password)))

		claims, err := tokens.ParseToken(token, testSecret)
		require.NoError(t, err)
		require.Equal(t, "newuser", claims.Username)
		require.False(t, claims.IsAdmin)
	})

	t.Run("rejects weak passwords before touching the repository", func(t *testing.T) {
		repo, _, svc := newTestService()

		_, err := svc.Register(context.Background(), &models.RegisterRequest{
			Username: "newuser",
			Password: "password",
		})

		require.ErrorIs(t, err, usererrors.ErrWeakPassword)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("surfaces duplicate username", func(t *testing.T) {
		repo, _, svc := newTestService()
		repo.On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, usererrors.ErrUserAlreadyExists)

		_, err := svc.Register(context.Background(), &models.RegisterRequest{
			Username: "taken",
			Password: "tr4ctor-beam-pine4pple",
		})

		require.ErrorIs(t, err, usererrors.ErrUserAlreadyExists)
	})
}

func TestAuthenticate(t *testing.T) {
	hash := func(t *testing.T, password string) string {
		t.Helper()
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		require.NoError(t, err)
		return string(h)
	}

	t.Run("valid credentials yield a token with the stored role", func(t *testing.T) {
		repo, _, svc := newTestService()
		repo.On("GetCredentials", mock.Anything, "admin").Return(&models.Credentials{
			Username:     "admin",
			PasswordHash: hash(t, "tr4ctor-beam-pine4pple"),
			IsAdmin:      true,
		}, nil)

		token, err := svc.Authenticate(context.Background(), &models.LoginRequest{
			Username: "admin",
			Password: "tr4ctor-beam-pine4pple",
		})

		require.NoError(t, err)
		claims, err := tokens.ParseToken(token, testSecret)
		require.NoError(t, err)
		require.Equal(t, "admin", claims.Username)
		require.True(t, claims.IsAdmin)
	})

	t.Run("wrong password fails as invalid credentials", func(t *testing.T) {
		repo, _, svc := newTestService()
		repo.On("GetCredentials", mock.Anything, "user").Return(&models.Credentials{
			Username:     "user",
			PasswordHash: hash(t, "tr4ctor-beam-pine4pple"),
		}, nil)

		_, err := svc.Authenticate(context.Background(), &models.LoginRequest{
			Username: "user",
			Password: "wrong",
		})

		require.ErrorIs(t, err, usererrors.ErrInvalidCredentials)
	})

	t.Run("unknown user fails the same way", func(t *testing.T) {
		repo, _, svc := newTestService()
		repo.On("GetCredentials", mock.Anything, "ghost").
			Return(nil, usererrors.ErrInvalidCredentials)

		_, err := svc.Authenticate(context.Background(), &models.LoginRequest{
			Username: "ghost",
			Password: "whatever",
		})

		require.ErrorIs(t, err, usererrors.ErrInvalidCredentials)
	})
}

func TestCreateUser(t *testing.T) {
	t.Run("admin creation can grant admin", func(t *testing.T) {
		repo, _, svc := newTestService()
		repo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.IsAdmin
		}), mock.AnythingOfType("string")).
			Return(&models.User{Username: "boss", IsAdmin: true}, nil)

		user, token, err := svc.CreateUser(context.Background(), &models.CreateUserRequest{
			Username: "boss",
			Password: "tr4ctor-beam-pine4pple",
			IsAdmin:  true,
		})

		require.NoError(t, err)
		require.True(t, user.IsAdmin)

		claims, err := tokens.ParseToken(token, testSecret)
		require.NoError(t, err)
		require.True(t, claims.IsAdmin)
	})
}

func TestGetUser(t *testing.T) {
	t.Run("includes applied job ids", func(t *testing.T) {
		repo, applications, svc := newTestService()
		repo.On("FindByUsername", mock.Anything, "user").
			Return(&models.User{Username: "user"}, nil)
		applications.On("ListJobIDs", mock.Anything, "user").
			Return([]int64{3, 7}, nil)

		detail, err := svc.GetUser(context.Background(), "user")

		require.NoError(t, err)
		require.Equal(t, []int64{3, 7}, detail.Applications)
	})

	t.Run("missing user skips the application lookup", func(t *testing.T) {
		repo, applications, svc := newTestService()
		repo.On("FindByUsername", mock.Anything, "ghost").
			Return(nil, usererrors.ErrUserNotFound)

		_, err := svc.GetUser(context.Background(), "ghost")

		require.ErrorIs(t, err, usererrors.ErrUserNotFound)
		applications.AssertNotCalled(t, "ListJobIDs", mock.Anything, mock.Anything)
	})
}

func TestUpdateUser(t *testing.T) {
	t.Run("hashes a new password before the repository sees it", func(t *testing.T) {
		repo, _, svc := newTestService()
		password := "tr4ctor-beam-pine4pple"
		repo.On("Update", mock.Anything, "user", mock.MatchedBy(func(updates map[string]interface{}) bool {
			stored, ok := updates["password"].(string)
			if !ok || stored == password {
				return false
			}
			return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
		})).Return(&models.User{Username: "user"}, nil)

		_, err := svc.UpdateUser(context.Background(), "user", map[string]interface{}{
			"password": password,
		})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("weak replacement password is rejected", func(t *testing.T) {
		repo, _, svc := newTestService()

		_, err := svc.UpdateUser(context.Background(), "user", map[string]interface{}{
			"password": "abc",
		})

		require.ErrorIs(t, err, usererrors.ErrWeakPassword)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("non-password fields pass through untouched", func(t *testing.T) {
		repo, _, svc := newTestService()
		updates := map[string]interface{}{"firstName": "Ada"}
		repo.On("Update", mock.Anything, "user", updates).
			Return(&models.User{Username: "user", FirstName: "Ada"}, nil)

		user, err := svc.UpdateUser(context.Background(), "user", updates)

		require.NoError(t, err)
		require.Equal(t, "Ada", user.FirstName)
	})
}

func TestDeleteUser(t *testing.T) {
	repo, _, svc := newTestService()
	repo.On("Delete", mock.Anything, "gone").Return(usererrors.ErrUserNotFound)

	err := svc.DeleteUser(context.Background(), "gone")

	require.ErrorIs(t, err, usererrors.ErrUserNotFound)
}
