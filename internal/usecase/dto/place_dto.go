package dto

// CoordinatesDTO - координаты места
type CoordinatesDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PlaceDTO - итоговая карточка места на целевом языке.
// IsFallback = true, когда нативной статьи не было и контент взят из
// референсного языка (возможно, с переводом).
type PlaceDTO struct {
	Title            string         `json:"title"`
	NormalizedTitle  string         `json:"normalized_title"`
	Description      string         `json:"description,omitempty"`
	Coordinates      CoordinatesDTO `json:"coordinates"`
	PageURL          string         `json:"page_url,omitempty"`
	ThumbnailURL     string         `json:"thumbnail_url,omitempty"`
	OriginalImageURL string         `json:"original_image_url,omitempty"`
	PageID           int64          `json:"pageid"`
	QID              string         `json:"qid,omitempty"`
	Lang             string         `json:"lang"`
	DistanceMeters   float64        `json:"distance_meters"`
	IsFallback       bool           `json:"is_fallback"`
	ShortSummary     string         `json:"short_summary"`
	MoreSummary      string         `json:"more_summary"`
}
