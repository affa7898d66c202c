package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/walks-service/pkg/util"
)

const claimsKey = "auth_claims"

// BearerMiddleware validates bearer tokens and stores claims on the request.
type BearerMiddleware struct {
	tokens *TokenIssuer
}

// NewBearerMiddleware constructs middleware.
func NewBearerMiddleware(tokens *TokenIssuer) *BearerMiddleware {
	return &BearerMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *BearerMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return util.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return util.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.Parse(parts[1])
	if err != nil {
		return util.NewUnauthorized("invalid token")
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

// ClaimsFromContext retrieves the authenticated caller's claims.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*Claims)
	return claims, ok
}
