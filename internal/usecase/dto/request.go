package dto

// LookupRequest - запрос "что за место рядом с координатой"
type LookupRequest struct {
	Lat    float64 `json:"lat" validate:"min=-90,max=90"`
	Lng    float64 `json:"lng" validate:"min=-180,max=180"`
	Radius int     `json:"radius" validate:"omitempty,min=100,max=30000"` // meters
	Limit  int     `json:"limit" validate:"omitempty,min=1,max=20"`
	Lang   string  `json:"lang" validate:"omitempty,min=2,max=10"` // ISO 639-1
}

// SpeakRequest - запрос на озвучивание текста
type SpeakRequest struct {
	Text string `json:"text" validate:"required,min=1"`
	Lang string `json:"lang" validate:"omitempty,min=2,max=10"`
}
