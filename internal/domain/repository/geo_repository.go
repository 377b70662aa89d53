package repository

import (
	"context"

	"github.com/tourist-guide/internal/domain"
)

// GeoRepository определяет методы геопоиска по референсному источнику.
// Поиск всегда идёт по референсному языку - от языка пользователя набор
// и порядок кандидатов зависеть не должны.
type GeoRepository interface {
	// FindNearby возвращает кандидатов рядом с точкой в порядке источника.
	// Пустой срез - не ошибка, а "в радиусе ничего нет".
	FindNearby(ctx context.Context, coord domain.Coordinate, radiusMeters, limit int) ([]domain.Candidate, error)
}
