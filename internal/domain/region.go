package domain

// Region is a geographic region that walks belong to.
type Region struct {
	ID         string
	Code       string
	Name       string
	Area       float64
	Lat        float64
	Long       float64
	Population int64
}
