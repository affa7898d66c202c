package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/walks-service/internal/api/dto"
	"github.com/spec-kit/walks-service/internal/domain"
	"github.com/spec-kit/walks-service/internal/repository"
	"github.com/spec-kit/walks-service/internal/validation"
	"github.com/spec-kit/walks-service/pkg/util"
)

// WalksHandler exposes CRUD endpoints for walks.
type WalksHandler struct {
	walks     repository.WalkRepository
	validator *validation.WalkValidator
}

// NewWalksHandler constructs handler.
func NewWalksHandler(walks repository.WalkRepository, validator *validation.WalkValidator) *WalksHandler {
	return &WalksHandler{walks: walks, validator: validator}
}

// List handles GET /walks.
func (h *WalksHandler) List(c *fiber.Ctx) error {
	walks, err := h.walks.GetAll(c.Context())
	if err != nil {
		return util.MapError(err)
	}

	resp := make([]dto.WalkResponse, 0, len(walks))
	for i := range walks {
		resp = append(resp, walkResponse(&walks[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Get handles GET /walks/:id.
func (h *WalksHandler) Get(c *fiber.Ctx) error {
	walk, err := h.walks.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("walk", nil)
		}
		return util.MapError(err)
	}
	return c.JSON(fiber.Map{"data": walkResponse(walk)})
}

// Create handles POST /walks.
func (h *WalksHandler) Create(c *fiber.Ctx) error {
	var req dto.AddWalkRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	fieldErrors, err := h.validator.ValidateAdd(c.Context(), &req)
	if err != nil {
		return util.MapError(err)
	}
	if len(fieldErrors) > 0 {
		return util.NewValidationError("validation failed", fieldErrors.Details())
	}

	walk := &domain.Walk{
		Name:             req.Name,
		Length:           req.Length,
		RegionID:         req.RegionID,
		WalkDifficultyID: req.WalkDifficultyID,
	}
	if err := h.walks.Create(c.Context(), walk); err != nil {
		return util.MapError(err)
	}

	c.Location(fmt.Sprintf("/walks/%s", walk.ID))
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": walkResponse(walk)})
}

// Update handles PUT /walks/:id.
func (h *WalksHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateWalkRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	fieldErrors, err := h.validator.ValidateUpdate(c.Context(), &req)
	if err != nil {
		return util.MapError(err)
	}
	if len(fieldErrors) > 0 {
		return util.NewValidationError("validation failed", fieldErrors.Details())
	}

	walk := &domain.Walk{
		Name:             req.Name,
		Length:           req.Length,
		RegionID:         req.RegionID,
		WalkDifficultyID: req.WalkDifficultyID,
	}
	updated, err := h.walks.Update(c.Context(), c.Params("id"), walk)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("walk", nil)
		}
		return util.MapError(err)
	}
	return c.JSON(fiber.Map{"data": walkResponse(updated)})
}

// Delete handles DELETE /walks/:id.
func (h *WalksHandler) Delete(c *fiber.Ctx) error {
	removed, err := h.walks.Delete(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("walk", nil)
		}
		return util.MapError(err)
	}
	return c.JSON(fiber.Map{"data": walkResponse(removed)})
}

func walkResponse(walk *domain.Walk) dto.WalkResponse {
	return dto.WalkResponse{
		ID:               walk.ID,
		Name:             walk.Name,
		Length:           walk.Length,
		RegionID:         walk.RegionID,
		WalkDifficultyID: walk.WalkDifficultyID,
	}
}
