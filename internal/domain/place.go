package domain

// Coordinate - координаты точки (WGS84)
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid проверяет, что координаты находятся в допустимых пределах
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// CanonicalID - языконезависимый ключ сущности (Wikidata QID, например "Q243")
type CanonicalID string

// IsZero возвращает true, если у сущности нет канонического идентификатора
func (id CanonicalID) IsZero() bool {
	return id == ""
}

// Candidate - сущность рядом с точкой, найденная через geosearch
// в референсном языке. Порядок кандидатов задаётся источником и
// не пересортировывается.
type Candidate struct {
	PageID         int64   `json:"pageid"`
	Title          string  `json:"title"`
	Lat            float64 `json:"lat"`
	Lng            float64 `json:"lng"`
	DistanceMeters float64 `json:"distance_meters"`
}

// LocalizedContent - контент сущности на конкретном языке.
// Fallback = true, когда нативной статьи на целевом языке нет и контент
// взят из референсного языка.
type LocalizedContent struct {
	Title            string `json:"title"`
	NormalizedTitle  string `json:"normalized_title"`
	Description      string `json:"description"`
	Extract          string `json:"extract"`
	PageURL          string `json:"page_url"`
	ThumbnailURL     string `json:"thumbnail_url,omitempty"`
	OriginalImageURL string `json:"original_image_url,omitempty"`
	Lang             string `json:"lang"`
	Fallback         bool   `json:"fallback"`
}
