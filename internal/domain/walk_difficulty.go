package domain

// WalkDifficulty is reference data grading walks (e.g. "Easy", "Hard").
type WalkDifficulty struct {
	ID   string
	Code string
}
