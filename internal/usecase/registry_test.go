package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/bookstore-backend/internal/domain"
	"github.com/DRSN-tech/bookstore-backend/pkg/e"
	"github.com/stretchr/testify/require"
)

func TestRegistryResolve(t *testing.T) {
	fixture := newCatalogFixture()
	fixture.add(1, "dune", 100000, 10)
	registry := fixture.registry()

	item, err := registry.Resolve(context.Background(), domain.NewProductRef(domain.CatalogTypeProduct, 1))
	require.NoError(t, err)
	require.Equal(t, "dune", item.Title)

	_, err = registry.Resolve(context.Background(), domain.NewProductRef(domain.CatalogTypeProduct, 2))
	require.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestRegistryUnknownType(t *testing.T) {
	registry := NewCatalogRegistry()

	_, err := registry.Resolve(context.Background(), domain.NewProductRef("subscription", 1))
	require.ErrorIs(t, err, e.ErrUnknownCatalogType)
}

func TestRegistryTypesStableOrder(t *testing.T) {
	fixture := newCatalogFixture()
	registry := fixture.registry()
	registry.Register("audiobook", fixture.lookup)

	require.Equal(t, []string{"audiobook", domain.CatalogTypeProduct}, registry.Types())
}
