package repository

import (
	"context"

	"github.com/tourist-guide/internal/domain"
)

// IdentityRepository определяет lookup канонического идентификатора
// по сущности референсного языка
type IdentityRepository interface {
	// ResolveIdentity возвращает CanonicalID для pageID референсного языка.
	// Второе значение false - у сущности нет кросс-языкового ключа,
	// это ожидаемый случай, а не ошибка.
	ResolveIdentity(ctx context.Context, pageID int64) (domain.CanonicalID, bool, error)
}
