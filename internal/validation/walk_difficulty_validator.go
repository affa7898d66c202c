package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/spec-kit/walks-service/internal/api/dto"
)

// WalkDifficultyValidator applies field rules to difficulty requests.
type WalkDifficultyValidator struct {
	v *validator.Validate
}

// NewWalkDifficultyValidator builds the validator.
func NewWalkDifficultyValidator() *WalkDifficultyValidator {
	return &WalkDifficultyValidator{v: newValidate()}
}

// ValidateAdd checks a create request.
func (dv *WalkDifficultyValidator) ValidateAdd(req *dto.AddWalkDifficultyRequest) FieldErrors {
	if req == nil {
		return nilRequestErrors()
	}
	return collect(dv.v.Struct(req))
}

// ValidateUpdate checks an update request.
func (dv *WalkDifficultyValidator) ValidateUpdate(req *dto.UpdateWalkDifficultyRequest) FieldErrors {
	if req == nil {
		return nilRequestErrors()
	}
	return collect(dv.v.Struct(req))
}
