package dto

// RegionResponse is the wire shape for a region.
type RegionResponse struct {
	ID         string  `json:"id"`
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Area       float64 `json:"area"`
	Lat        float64 `json:"lat"`
	Long       float64 `json:"long"`
	Population int64   `json:"population"`
}

// AddRegionRequest payload for creating a region.
//
// TODO: the gt=0 rules on lat/long reject southern and western hemisphere
// coordinates; changing them needs product sign-off.
type AddRegionRequest struct {
	Code       string  `json:"code" validate:"notblank"`
	Name       string  `json:"name" validate:"required"`
	Area       float64 `json:"area" validate:"gt=0"`
	Lat        float64 `json:"lat" validate:"gt=0"`
	Long       float64 `json:"long" validate:"gt=0"`
	Population int64   `json:"population" validate:"gte=0"`
}

// UpdateRegionRequest payload for replacing a region's fields.
type UpdateRegionRequest struct {
	Code       string  `json:"code" validate:"notblank"`
	Name       string  `json:"name" validate:"required"`
	Area       float64 `json:"area" validate:"gt=0"`
	Lat        float64 `json:"lat" validate:"gt=0"`
	Long       float64 `json:"long" validate:"gt=0"`
	Population int64   `json:"population" validate:"gte=0"`
}
