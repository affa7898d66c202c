package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/spec-kit/walks-service/internal/api/dto"
)

// RegionValidator applies field rules to region requests.
type RegionValidator struct {
	v *validator.Validate
}

// NewRegionValidator builds the validator.
func NewRegionValidator() *RegionValidator {
	return &RegionValidator{v: newValidate()}
}

// ValidateAdd checks a create request.
func (rv *RegionValidator) ValidateAdd(req *dto.AddRegionRequest) FieldErrors {
	if req == nil {
		return nilRequestErrors()
	}
	return collect(rv.v.Struct(req))
}

// ValidateUpdate checks an update request. Same rules as create.
func (rv *RegionValidator) ValidateUpdate(req *dto.UpdateRegionRequest) FieldErrors {
	if req == nil {
		return nilRequestErrors()
	}
	return collect(rv.v.Struct(req))
}
