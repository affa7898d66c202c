package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/walks-service/internal/auth"
	"github.com/spec-kit/walks-service/internal/domain"
	"github.com/spec-kit/walks-service/internal/repository"
)

// ErrInvalidCredentials signals a failed login attempt. Unknown username and
// wrong password are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService coordinates the login flow: credential verification, role
// loading and token issuance.
type AuthService struct {
	users  repository.UserRepository
	tokens *auth.TokenIssuer
}

// NewAuthService builds the service.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Authenticate verifies the credentials against the user store. The
// username match is case-insensitive; the password is checked against the
// stored bcrypt hash. On success the user's role names are attached and the
// password hash is cleared before the record is returned. A non-match
// returns (nil, nil) rather than an error.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if auth.ComparePassword(user.PasswordHash, password) != nil {
		return nil, nil
	}

	roles, err := s.users.GetRoleNames(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.Roles = roles
	user.PasswordHash = ""

	return user, nil
}

// Login authenticates and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(user)
}
