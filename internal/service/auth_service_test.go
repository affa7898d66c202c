package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/walks-service/internal/auth"
	"github.com/spec-kit/walks-service/internal/config"
	"github.com/spec-kit/walks-service/internal/domain"
)

type stubUserRepo struct {
	user     *domain.User
	roles    []string
	rolesErr error
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.user == nil || !strings.EqualFold(username, r.user.Username) {
		return nil, pgx.ErrNoRows
	}
	clone := *r.user
	return &clone, nil
}

func (r *stubUserRepo) GetRoleNames(_ context.Context, userID string) ([]string, error) {
	if r.rolesErr != nil {
		return nil, r.rolesErr
	}
	if r.user == nil || r.user.ID != userID {
		return nil, nil
	}
	return r.roles, nil
}

func newTestIssuer(t *testing.T) *auth.TokenIssuer {
	t.Helper()
	issuer, err := auth.NewTokenIssuer(config.AuthConfig{
		JWTSecret:             "test-secret",
		JWTIssuer:             "walks-service",
		JWTAudience:           "walks-clients",
		AccessTokenTTLMinutes: 15,
	})
	if err != nil {
		t.Fatalf("NewTokenIssuer: %v", err)
	}
	return issuer
}

func storedUser(t *testing.T, username, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return &domain.User{
		ID:           "user-1",
		Username:     username,
		PasswordHash: string(hash),
		FirstName:    "Grace",
		LastName:     "Hopper",
		EmailAddress: "grace@example.com",
	}
}

func TestAuthenticate_Success(t *testing.T) {
	repo := &stubUserRepo{user: storedUser(t, "grace", "s3cret"), roles: []string{"reader", "writer"}}
	svc := NewAuthService(repo, newTestIssuer(t))

	user, err := svc.Authenticate(context.Background(), "grace", "s3cret")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if user == nil {
		t.Fatal("expected user, got nil")
	}
	if user.PasswordHash != "" {
		t.Fatal("password hash must be cleared on the returned user")
	}
	if len(user.Roles) != 2 || user.Roles[0] != "reader" || user.Roles[1] != "writer" {
		t.Fatalf("unexpected roles: %v", user.Roles)
	}
}

func TestAuthenticate_CaseInsensitiveUsername(t *testing.T) {
	repo := &stubUserRepo{user: storedUser(t, "grace", "s3cret"), roles: []string{"reader"}}
	svc := NewAuthService(repo, newTestIssuer(t))

	user, err := svc.Authenticate(context.Background(), "GRACE", "s3cret")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if user == nil {
		t.Fatal("expected case-insensitive username match")
	}
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	repo := &stubUserRepo{user: storedUser(t, "grace", "s3cret")}
	svc := NewAuthService(repo, newTestIssuer(t))

	user, err := svc.Authenticate(context.Background(), "grace", "wrong")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if user != nil {
		t.Fatal("expected absent result for wrong password")
	}
}

func TestAuthenticate_UnknownUsername(t *testing.T) {
	repo := &stubUserRepo{user: storedUser(t, "grace", "s3cret")}
	svc := NewAuthService(repo, newTestIssuer(t))

	user, err := svc.Authenticate(context.Background(), "ghost", "s3cret")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if user != nil {
		t.Fatal("expected absent result for unknown username")
	}
}

func TestAuthenticate_StorageFailurePropagates(t *testing.T) {
	repo := &stubUserRepo{user: storedUser(t, "grace", "s3cret"), rolesErr: errors.New("connection reset")}
	svc := NewAuthService(repo, newTestIssuer(t))

	if _, err := svc.Authenticate(context.Background(), "grace", "s3cret"); err == nil {
		t.Fatal("expected storage error to propagate")
	}
}

func TestLogin_IssuesParseableToken(t *testing.T) {
	issuer := newTestIssuer(t)
	repo := &stubUserRepo{user: storedUser(t, "grace", "s3cret"), roles: []string{"writer"}}
	svc := NewAuthService(repo, issuer)

	token, err := svc.Login(context.Background(), "grace", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	claims, err := issuer.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.Email != "grace@example.com" {
		t.Fatalf("unexpected email claim: %s", claims.Email)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != "writer" {
		t.Fatalf("unexpected role claims: %v", claims.Roles)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	repo := &stubUserRepo{user: storedUser(t, "grace", "s3cret")}
	svc := NewAuthService(repo, newTestIssuer(t))

	if _, err := svc.Login(context.Background(), "grace", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
