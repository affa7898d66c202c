package domain

// Walk is a walking track within a region. RegionID and WalkDifficultyID
// must reference existing rows; the request validators enforce this.
type Walk struct {
	ID               string
	Name             string
	Length           float64
	RegionID         string
	WalkDifficultyID string
}
