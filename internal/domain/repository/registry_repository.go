package repository

import (
	"context"

	"github.com/tourist-guide/internal/domain"
)

// RegistryRepository определяет доступ к кросс-языковому реестру сущностей
type RegistryRepository interface {
	// TitleInLanguage возвращает заголовок страницы сущности на языке lang.
	// Второе значение false - на этом языке страницы нет.
	TitleInLanguage(ctx context.Context, id domain.CanonicalID, lang string) (string, bool, error)
}
