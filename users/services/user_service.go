package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/nbutton23/zxcvbn-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/gojobly/jobly/internal/auth/tokens"
	usererrors "github.com/gojobly/jobly/users/errors"
	"github.com/gojobly/jobly/users/models"
	"github.com/gojobly/jobly/users/repository"
)

// userService implements UserService on top of the repository.
type userService struct {
	repo         repository.UserRepository
	applications ApplicationLister
	cfg          ServiceConfig
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepository, applications ApplicationLister, cfg ServiceConfig) UserService {
	return &userService{repo: repo, applications: applications, cfg: cfg}
}

// Register creates a non-admin account and returns a signed token for it.
func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (string, error) {
	if err := s.checkPasswordStrength(req.Password, req.Username, req.Email); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsAdmin:   false,
	}
	created, err := s.repo.Create(ctx, user, string(hash))
	if err != nil {
		return "", err
	}

	return tokens.CreateToken(created.Username, created.IsAdmin, s.cfg.JWTSecret, s.cfg.TokenTTL)
}

// Authenticate verifies credentials and returns a signed token. Bad username
// and bad password are indistinguishable to the caller.
func (s *userService) Authenticate(ctx context.Context, req *models.LoginRequest) (string, error) {
	creds, err := s.repo.GetCredentials(ctx, req.Username)
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", usererrors.ErrInvalidCredentials
		}
		return "", fmt.Errorf("compare password: %w", err)
	}

	return tokens.CreateToken(creds.Username, creds.IsAdmin, s.cfg.JWTSecret, s.cfg.TokenTTL)
}

// CreateUser is the admin path: it can grant admin and returns both the user
// and a token for it.
func (s *userService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, string, error) {
	if err := s.checkPasswordStrength(req.Password, req.Username, req.Email); err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsAdmin:   req.IsAdmin,
	}
	created, err := s.repo.Create(ctx, user, string(hash))
	if err != nil {
		return nil, "", err
	}

	token, err := tokens.CreateToken(created.Username, created.IsAdmin, s.cfg.JWTSecret, s.cfg.TokenTTL)
	if err != nil {
		return nil, "", err
	}
	return created, token, nil
}

// ListUsers returns all users.
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.FindAll(ctx)
}

// GetUser returns a user with the ids of jobs they applied to.
func (s *userService) GetUser(ctx context.Context, username string) (*models.UserDetail, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	applied, err := s.applications.ListJobIDs(ctx, username)
	if err != nil {
		return nil, err
	}

	return &models.UserDetail{User: *user, Applications: applied}, nil
}

// UpdateUser applies a partial update. A new password is strength-checked
// and hashed before it reaches the repository.
func (s *userService) UpdateUser(ctx context.Context, username string, updates map[string]interface{}) (*models.User, error) {
	if raw, ok := updates["password"]; ok {
		password, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%w: password must be a string", usererrors.ErrInvalidUserData)
		}
		if err := s.checkPasswordStrength(password, username, ""); err != nil {
			return nil, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		updates["password"] = string(hash)
	}

	return s.repo.Update(ctx, username, updates)
}

// DeleteUser removes an account.
func (s *userService) DeleteUser(ctx context.Context, username string) error {
	return s.repo.Delete(ctx, username)
}

// checkPasswordStrength scores the password with the account identifiers as
// penalized inputs.
func (s *userService) checkPasswordStrength(password string, userInputs ...string) error {
	inputs := make([]string, 0, len(userInputs))
	for _, input := range userInputs {
		if input != "" {
			inputs = append(inputs, input)
		}
	}

	result := zxcvbn.PasswordStrength(password, inputs)
	if result.Score < s.cfg.MinPasswordScore {
		return fmt.Errorf("%w: score %d, need at least %d",
			usererrors.ErrWeakPassword, result.Score, s.cfg.MinPasswordScore)
	}
	return nil
}
