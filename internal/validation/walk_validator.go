package validation

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/walks-service/internal/api/dto"
	"github.com/spec-kit/walks-service/internal/repository"
)

// WalkValidator applies field rules to walk requests. Foreign keys are
// verified against the region and walk-difficulty repositories; a storage
// failure during lookup propagates as the second return value.
type WalkValidator struct {
	v            *validator.Validate
	regions      repository.RegionRepository
	difficulties repository.WalkDifficultyRepository
}

// NewWalkValidator builds the validator.
func NewWalkValidator(regions repository.RegionRepository, difficulties repository.WalkDifficultyRepository) *WalkValidator {
	return &WalkValidator{v: newValidate(), regions: regions, difficulties: difficulties}
}

// ValidateAdd checks a create request, including foreign key resolution.
func (wv *WalkValidator) ValidateAdd(ctx context.Context, req *dto.AddWalkRequest) (FieldErrors, error) {
	if req == nil {
		return nilRequestErrors(), nil
	}

	fieldErrors := collect(wv.v.Struct(req))
	if err := wv.checkReferences(ctx, req.RegionID, req.WalkDifficultyID, fieldErrors); err != nil {
		return nil, err
	}
	return fieldErrors, nil
}

// ValidateUpdate checks an update request. Same rules as create.
func (wv *WalkValidator) ValidateUpdate(ctx context.Context, req *dto.UpdateWalkRequest) (FieldErrors, error) {
	if req == nil {
		return nilRequestErrors(), nil
	}

	fieldErrors := collect(wv.v.Struct(req))
	if err := wv.checkReferences(ctx, req.RegionID, req.WalkDifficultyID, fieldErrors); err != nil {
		return nil, err
	}
	return fieldErrors, nil
}

// checkReferences resolves both foreign keys, skipping ids already flagged
// by the scalar rules.
func (wv *WalkValidator) checkReferences(ctx context.Context, regionID, difficultyID string, fieldErrors FieldErrors) error {
	if _, flagged := fieldErrors["regionId"]; !flagged && regionID != "" {
		if _, err := wv.regions.GetByID(ctx, regionID); err != nil {
			if !errors.Is(err, pgx.ErrNoRows) {
				return err
			}
			fieldErrors["regionId"] = "regionId does not reference an existing region"
		}
	}

	if _, flagged := fieldErrors["walkDifficultyId"]; !flagged && difficultyID != "" {
		if _, err := wv.difficulties.GetByID(ctx, difficultyID); err != nil {
			if !errors.Is(err, pgx.ErrNoRows) {
				return err
			}
			fieldErrors["walkDifficultyId"] = "walkDifficultyId does not reference an existing walk difficulty"
		}
	}

	return nil
}
