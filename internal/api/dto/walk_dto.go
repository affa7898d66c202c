package dto

// WalkResponse is the wire shape for a walk.
type WalkResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Length           float64 `json:"length"`
	RegionID         string  `json:"regionId"`
	WalkDifficultyID string  `json:"walkDifficultyId"`
}

// AddWalkRequest payload for creating a walk. The foreign keys are checked
// against the repositories by the walk validator, not by these tags.
type AddWalkRequest struct {
	Name             string  `json:"name" validate:"required"`
	Length           float64 `json:"length" validate:"gt=0"`
	RegionID         string  `json:"regionId" validate:"required"`
	WalkDifficultyID string  `json:"walkDifficultyId" validate:"notblank"`
}

// UpdateWalkRequest payload for replacing a walk's fields.
type UpdateWalkRequest struct {
	Name             string  `json:"name" validate:"required"`
	Length           float64 `json:"length" validate:"gt=0"`
	RegionID         string  `json:"regionId" validate:"required"`
	WalkDifficultyID string  `json:"walkDifficultyId" validate:"notblank"`
}
