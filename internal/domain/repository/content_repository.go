package repository

import (
	"context"

	"github.com/tourist-guide/internal/domain"
)

// ContentRepository определяет получение контента на конкретном языке.
// Отсутствие страницы на языке возвращается как (nil, false, nil), а не
// как ошибка: вызывающий код не должен путать "нет статьи" и "сеть упала".
type ContentRepository interface {
	// GetSummary возвращает краткий контент страницы (title, description,
	// extract, ссылки, изображения)
	GetSummary(ctx context.Context, title, lang string) (*domain.LocalizedContent, bool, error)

	// GetExtract возвращает полный текст статьи без разметки
	GetExtract(ctx context.Context, title, lang string) (string, bool, error)
}
