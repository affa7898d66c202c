package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/walks-service/internal/config"
	"github.com/spec-kit/walks-service/internal/domain"
)

// TokenIssuer builds and validates signed bearer tokens.
type TokenIssuer struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

// NewTokenIssuer builds an issuer from config. Missing key material is a
// configuration error; the process must refuse to start rather than fail
// per request.
func NewTokenIssuer(cfg config.AuthConfig) (*TokenIssuer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("token issuer: %w", err)
	}

	ttlMinutes := cfg.AccessTokenTTLMinutes
	if ttlMinutes <= 0 {
		ttlMinutes = 15
	}

	return &TokenIssuer{
		secret:   []byte(cfg.JWTSecret),
		issuer:   cfg.JWTIssuer,
		audience: cfg.JWTAudience,
		ttl:      time.Duration(ttlMinutes) * time.Minute,
		now:      time.Now,
	}, nil
}

// Claims describes the JWT payload.
type Claims struct {
	GivenName  string   `json:"given_name"`
	FamilyName string   `json:"family_name"`
	Email      string   `json:"email"`
	Roles      []string `json:"roles"`
	jwt.RegisteredClaims
}

// Can reports whether the token grants the named capability. Authorization
// is a straight membership check against the role claims.
func (c *Claims) Can(capability Capability) bool {
	for _, role := range c.Roles {
		if role == string(capability) {
			return true
		}
	}
	return false
}

// Issue signs a token for the authenticated user. One role claim entry per
// role, order preserved, duplicates kept.
func (ti *TokenIssuer) Issue(user *domain.User) (string, error) {
	issuedAt := ti.now()
	claims := &Claims{
		GivenName:  user.FirstName,
		FamilyName: user.LastName,
		Email:      user.EmailAddress,
		Roles:      user.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ti.issuer,
			Audience:  jwt.ClaimStrings{ti.audience},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ti.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ti.secret)
}

// Parse validates a token string and returns its claims.
func (ti *TokenIssuer) Parse(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return ti.secret, nil
	}, jwt.WithIssuer(ti.issuer), jwt.WithAudience(ti.audience))
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
