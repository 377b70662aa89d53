package domain

import "github.com/google/uuid"

// Stream names
const (
	StreamLookupPrefetch = "stream:lookup:prefetch"
)

// PrefetchTask - задача на прогрев кеша lookup-ответов для точки.
// Публикуется API после cache-miss, обрабатывается prefetch-воркером.
type PrefetchTask struct {
	TaskID       uuid.UUID `json:"task_id"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	RadiusMeters int       `json:"radius_meters"`
	Limit        int       `json:"limit"`
	Langs        []string  `json:"langs,omitempty"`
}

// HasCoordinates проверяет, что у задачи валидные координаты
func (t *PrefetchTask) HasCoordinates() bool {
	return Coordinate{Lat: t.Lat, Lng: t.Lng}.Valid()
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
