package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/walks-service/internal/api/http/handlers"
	"github.com/spec-kit/walks-service/internal/auth"
	"github.com/spec-kit/walks-service/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health           *handlers.HealthHandler
	Auth             *handlers.AuthHandler
	Regions          *handlers.RegionsHandler
	Walks            *handlers.WalksHandler
	WalkDifficulties *handlers.WalkDifficultiesHandler
	Bearer           *auth.BearerMiddleware
	Metrics          *observability.Metrics
}

// RegisterRoutes wires HTTP routes. Walks carry role-gated access: reads
// need the reader capability, mutations the writer capability.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Metrics.Handler())

	app.Post("/auth/login", cfg.Auth.Login)

	regions := app.Group("/regions")
	regions.Get("/", cfg.Regions.List)
	regions.Get("/:id", cfg.Regions.Get)
	regions.Post("/", cfg.Regions.Create)
	regions.Put("/:id", cfg.Regions.Update)
	regions.Delete("/:id", cfg.Regions.Delete)

	walks := app.Group("/walks", cfg.Bearer.Handle)
	walks.Get("/", auth.RequireCapability(auth.CapabilityRead), cfg.Walks.List)
	walks.Get("/:id", auth.RequireCapability(auth.CapabilityRead), cfg.Walks.Get)
	walks.Post("/", auth.RequireCapability(auth.CapabilityWrite), cfg.Walks.Create)
	walks.Put("/:id", auth.RequireCapability(auth.CapabilityWrite), cfg.Walks.Update)
	walks.Delete("/:id", auth.RequireCapability(auth.CapabilityWrite), cfg.Walks.Delete)

	difficulties := app.Group("/walkdifficulty")
	difficulties.Get("/", cfg.WalkDifficulties.List)
	difficulties.Get("/:id", cfg.WalkDifficulties.Get)
	difficulties.Post("/", cfg.WalkDifficulties.Create)
	difficulties.Put("/:id", cfg.WalkDifficulties.Update)
	difficulties.Delete("/:id", cfg.WalkDifficulties.Delete)
}
