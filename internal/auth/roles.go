package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/walks-service/pkg/util"
)

// Capability names an action class a caller may perform. Capabilities map
// onto role claims carried by the bearer token.
type Capability string

const (
	CapabilityRead  Capability = "reader"
	CapabilityWrite Capability = "writer"
)

// RequireCapability gates a route on the caller's role claims.
func RequireCapability(capability Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			return util.NewUnauthorized("authentication required")
		}
		if !claims.Can(capability) {
			return util.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}
