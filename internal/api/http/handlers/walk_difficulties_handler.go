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

// WalkDifficultiesHandler exposes CRUD endpoints for difficulty grades.
type WalkDifficultiesHandler struct {
	difficulties repository.WalkDifficultyRepository
	validator    *validation.WalkDifficultyValidator
}

// NewWalkDifficultiesHandler constructs handler.
func NewWalkDifficultiesHandler(difficulties repository.WalkDifficultyRepository, validator *validation.WalkDifficultyValidator) *WalkDifficultiesHandler {
	return &WalkDifficultiesHandler{difficulties: difficulties, validator: validator}
}

// List handles GET /walkdifficulty.
func (h *WalkDifficultiesHandler) List(c *fiber.Ctx) error {
	difficulties, err := h.difficulties.GetAll(c.Context())
	if err != nil {
		return util.MapError(err)
	}

	resp := make([]dto.WalkDifficultyResponse, 0, len(difficulties))
	for i := range difficulties {
		resp = append(resp, difficultyResponse(&difficulties[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Get handles GET /walkdifficulty/:id.
func (h *WalkDifficultiesHandler) Get(c *fiber.Ctx) error {
	difficulty, err := h.difficulties.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("walk difficulty", nil)
		}
		return util.MapError(err)
	}
	return c.JSON(fiber.Map{"data": difficultyResponse(difficulty)})
}

// Create handles POST /walkdifficulty.
func (h *WalkDifficultiesHandler) Create(c *fiber.Ctx) error {
	var req dto.AddWalkDifficultyRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if fieldErrors := h.validator.ValidateAdd(&req); len(fieldErrors) > 0 {
		return util.NewValidationError("validation failed", fieldErrors.Details())
	}

	difficulty := &domain.WalkDifficulty{Code: req.Code}
	if err := h.difficulties.Create(c.Context(), difficulty); err != nil {
		return util.MapError(err)
	}

	c.Location(fmt.Sprintf("/walkdifficulty/%s", difficulty.ID))
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": difficultyResponse(difficulty)})
}

// Update handles PUT /walkdifficulty/:id.
func (h *WalkDifficultiesHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateWalkDifficultyRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if fieldErrors := h.validator.ValidateUpdate(&req); len(fieldErrors) > 0 {
		return util.NewValidationError("validation failed", fieldErrors.Details())
	}

	difficulty := &domain.WalkDifficulty{Code: req.Code}
	updated, err := h.difficulties.Update(c.Context(), c.Params("id"), difficulty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("walk difficulty", nil)
		}
		return util.MapError(err)
	}
	return c.JSON(fiber.Map{"data": difficultyResponse(updated)})
}

// Delete handles DELETE /walkdifficulty/:id.
func (h *WalkDifficultiesHandler) Delete(c *fiber.Ctx) error {
	removed, err := h.difficulties.Delete(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("walk difficulty", nil)
		}
		return util.MapError(err)
	}
	return c.JSON(fiber.Map{"data": difficultyResponse(removed)})
}

func difficultyResponse(difficulty *domain.WalkDifficulty) dto.WalkDifficultyResponse {
	return dto.WalkDifficultyResponse{ID: difficulty.ID, Code: difficulty.Code}
}
