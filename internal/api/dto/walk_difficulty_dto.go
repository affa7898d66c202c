package dto

// WalkDifficultyResponse is the wire shape for a walk difficulty.
type WalkDifficultyResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
}

// AddWalkDifficultyRequest payload for creating a difficulty grade.
type AddWalkDifficultyRequest struct {
	Code string `json:"code" validate:"notblank"`
}

// UpdateWalkDifficultyRequest payload for replacing a difficulty grade.
type UpdateWalkDifficultyRequest struct {
	Code string `json:"code" validate:"notblank"`
}
