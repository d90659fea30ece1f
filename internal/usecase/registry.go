package usecase

import (
	"context"
	"sort"

	"github.com/DRSN-tech/bookstore-backend/internal/domain"
	"github.com/DRSN-tech/bookstore-backend/pkg/e"
)

// CatalogLookup возвращает сущность каталога по числовому id.
type CatalogLookup func(ctx context.Context, id int64) (*domain.CatalogItem, error)

// CatalogRegistry сопоставляет строковый дискриминатор типа каталога с
// функцией поиска. Новый продаваемый тип подключается одной регистрацией,
// без рефлексии и без изменения корзины.
type CatalogRegistry struct {
	lookups map[string]CatalogLookup
}

func NewCatalogRegistry() *CatalogRegistry {
	return &CatalogRegistry{
		lookups: make(map[string]CatalogLookup),
	}
}

// Register привязывает функцию поиска к дискриминатору типа.
// Регистрация происходит один раз при сборке приложения.
func (r *CatalogRegistry) Register(ctType string, lookup CatalogLookup) {
	r.lookups[ctType] = lookup
}

// Resolve разрешает полиморфную ссылку в сущность каталога.
// Возвращает e.ErrUnknownCatalogType для незарегистрированного типа.
func (r *CatalogRegistry) Resolve(ctx context.Context, ref domain.ProductRef) (*domain.CatalogItem, error) {
	lookup, ok := r.lookups[ref.Type]
	if !ok {
		return nil, e.Wrap(ref.Type, e.ErrUnknownCatalogType)
	}

	return lookup(ctx, ref.ID)
}

// Types возвращает зарегистрированные дискриминаторы в стабильном порядке.
func (r *CatalogRegistry) Types() []string {
	types := make([]string, 0, len(r.lookups))
	for t := range r.lookups {
		types = append(types, t)
	}
	sort.Strings(types)

	return types
}
