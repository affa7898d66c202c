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

// RegionsHandler exposes CRUD endpoints for regions.
type RegionsHandler struct {
	regions   repository.RegionRepository
	validator *validation.RegionValidator
}

// NewRegionsHandler constructs handler.
func NewRegionsHandler(regions repository.RegionRepository, validator *validation.RegionValidator) *RegionsHandler {
	return &RegionsHandler{regions: regions, validator: validator}
}

// List handles GET /regions.
func (h *RegionsHandler) List(c *fiber.Ctx) error {
	regions, err := h.regions.GetAll(c.Context())
	if err != nil {
		return util.MapError(err)
	}

	resp := make([]dto.RegionResponse, 0, len(regions))
	for i := range regions {
		resp = append(resp, regionResponse(&regions[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Get handles GET /regions/:id.
func (h *RegionsHandler) Get(c *fiber.Ctx) error {
	region, err := h.regions.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("region", nil)
		}
		return util.MapError(err)
	}
	return c.JSON(fiber.Map{"data": regionResponse(region)})
}

// Create handles POST /regions.
func (h *RegionsHandler) Create(c *fiber.Ctx) error {
	var req dto.AddRegionRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if fieldErrors := h.validator.ValidateAdd(&req); len(fieldErrors) > 0 {
		return util.NewValidationError("validation failed", fieldErrors.Details())
	}

	region := &domain.Region{
		Code:       req.Code,
		Name:       req.Name,
		Area:       req.Area,
		Lat:        req.Lat,
		Long:       req.Long,
		Population: req.Population,
	}
	if err := h.regions.Create(c.Context(), region); err != nil {
		return util.MapError(err)
	}

	c.Location(fmt.Sprintf("/regions/%s", region.ID))
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": regionResponse(region)})
}

// Update handles PUT /regions/:id.
func (h *RegionsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateRegionRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if fieldErrors := h.validator.ValidateUpdate(&req); len(fieldErrors) > 0 {
		return util.NewValidationError("validation failed", fieldErrors.Details())
	}

	region := &domain.Region{
		Code:       req.Code,
		Name:       req.Name,
		Area:       req.Area,
		Lat:        req.Lat,
		Long:       req.Long,
		Population: req.Population,
	}
	updated, err := h.regions.Update(c.Context(), c.Params("id"), region)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("region", nil)
		}
		return util.MapError(err)
	}
	return c.JSON(fiber.Map{"data": regionResponse(updated)})
}

// Delete handles DELETE /regions/:id.
func (h *RegionsHandler) Delete(c *fiber.Ctx) error {
	removed, err := h.regions.Delete(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("region", nil)
		}
		return util.MapError(err)
	}
	return c.JSON(fiber.Map{"data": regionResponse(removed)})
}

func regionResponse(region *domain.Region) dto.RegionResponse {
	return dto.RegionResponse{
		ID:         region.ID,
		Code:       region.Code,
		Name:       region.Name,
		Area:       region.Area,
		Lat:        region.Lat,
		Long:       region.Long,
		Population: region.Population,
	}
}
