package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/bookstore-backend/internal/domain"
	"github.com/DRSN-tech/bookstore-backend/pkg/e"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateOpenCartIdempotent(t *testing.T) {
	store := newFakeStore()
	fixture := newCatalogFixture()
	uc := newCartUCForTest(store, fixture)

	key := domain.NewCustomerOwnerKey(7)

	first, err := uc.GetOrCreateOpenCart(context.Background(), key)
	require.NoError(t, err)

	second, err := uc.GetOrCreateOpenCart(context.Background(), key)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Len(t, store.carts, 1)
}

func TestGetOrCreateOpenCartSeparatesOwners(t *testing.T) {
	store := newFakeStore()
	fixture := newCatalogFixture()
	uc := newCartUCForTest(store, fixture)

	customerCart, err := uc.GetOrCreateOpenCart(context.Background(), domain.NewCustomerOwnerKey(7))
	require.NoError(t, err)

	anonCart, err := uc.GetOrCreateOpenCart(context.Background(), domain.NewAnonymousOwnerKey("session-a"))
	require.NoError(t, err)

	require.NotEqual(t, customerCart.ID, anonCart.ID)
	require.True(t, anonCart.ForAnonymousUser)
	require.False(t, customerCart.ForAnonymousUser)
}

func TestAddItemTwiceBumpsQuantity(t *testing.T) {
	store := newFakeStore()
	fixture := newCatalogFixture()
	fixture.add(1, "dune", 100000, 10) // 1000.00 за штуку

	uc := newCartUCForTest(store, fixture)
	cart, err := uc.GetOrCreateOpenCart(context.Background(), domain.NewCustomerOwnerKey(7))
	require.NoError(t, err)

	ref := domain.NewProductRef(domain.CatalogTypeProduct, 1)

	_, err = uc.AddItem(context.Background(), cart, ref)
	require.NoError(t, err)

	item, err := uc.AddItem(context.Background(), cart, ref)
	require.NoError(t, err)

	require.Len(t, store.items, 1)
	require.Equal(t, int32(2), item.Qty)
	require.Equal(t, int64(200000), item.FinalPrice)
	require.Equal(t, int32(2), cart.TotalProducts)
	require.Equal(t, int64(200000), cart.FinalPrice)
}

func TestAddItemUnknownProduct(t *testing.T) {
	store := newFakeStore()
	fixture := newCatalogFixture()
	uc := newCartUCForTest(store, fixture)

	cart, err := uc.GetOrCreateOpenCart(context.Background(), domain.NewCustomerOwnerKey(7))
	require.NoError(t, err)

	_, err = uc.AddItem(context.Background(), cart, domain.NewProductRef(domain.CatalogTypeProduct, 42))
	require.ErrorIs(t, err, e.ErrProductNotFound)
	require.Empty(t, store.items)
}

func TestAddItemUnknownCatalogType(t *testing.T) {
	store := newFakeStore()
	fixture := newCatalogFixture()
	uc := newCartUCForTest(store, fixture)

	cart, err := uc.GetOrCreateOpenCart(context.Background(), domain.NewCustomerOwnerKey(7))
	require.NoError(t, err)

	_, err = uc.AddItem(context.Background(), cart, domain.NewProductRef("subscription", 1))
	require.ErrorIs(t, err, e.ErrUnknownCatalogType)
}

func TestAddItemClosedCart(t *testing.T) {
	store := newFakeStore()
	fixture := newCatalogFixture()
	fixture.add(1, "dune", 100000, 10)
	uc := newCartUCForTest(store, fixture)

	cart, err := uc.GetOrCreateOpenCart(context.Background(), domain.NewCustomerOwnerKey(7))
	require.NoError(t, err)
	cart.InOrder = true

	_, err = uc.AddItem(context.Background(), cart, domain.NewProductRef(domain.CatalogTypeProduct, 1))
	require.ErrorIs(t, err, e.ErrCartAlreadyOrdered)
}

func TestRemoveItemMissing(t *testing.T) {
	store := newFakeStore()
	fixture := newCatalogFixture()
	uc := newCartUCForTest(store, fixture)

	cart, err := uc.GetOrCreateOpenCart(context.Background(), domain.NewCustomerOwnerKey(7))
	require.NoError(t, err)

	err = uc.RemoveItem(context.Background(), cart, domain.NewProductRef(domain.CatalogTypeProduct, 1))
	require.ErrorIs(t, err, e.ErrCartItemNotFound)
}

func TestRemoveItemRecomputesTotals(t *testing.T) {
	store := newFakeStore()
	fixture := newCatalogFixture()
	fixture.add(1, "dune", 100000, 10)
	fixture.add(2, "solaris", 50000, 10)
	uc := newCartUCForTest(store, fixture)

	cart, err := uc.GetOrCreateOpenCart(context.Background(), domain.NewCustomerOwnerKey(7))
	require.NoError(t, err)

	_, err = uc.AddItem(context.Background(), cart, domain.NewProductRef(domain.CatalogTypeProduct, 1))
	require.NoError(t, err)
	_, err = uc.AddItem(context.Background(), cart, domain.NewProductRef(domain.CatalogTypeProduct, 2))
	require.NoError(t, err)

	err = uc.RemoveItem(context.Background(), cart, domain.NewProductRef(domain.CatalogTypeProduct, 1))
	require.NoError(t, err)

	require.Equal(t, int32(1), cart.TotalProducts)
	require.Equal(t, int64(50000), cart.FinalPrice)
}

func TestSetItemQuantityValidation(t *testing.T) {
	store := newFakeStore()
	fixture := newCatalogFixture()
	fixture.add(1, "dune", 100000, 3)
	uc := newCartUCForTest(store, fixture)

	cart, err := uc.GetOrCreateOpenCart(context.Background(), domain.NewCustomerOwnerKey(7))
	require.NoError(t, err)

	ref := domain.NewProductRef(domain.CatalogTypeProduct, 1)
	_, err = uc.AddItem(context.Background(), cart, ref)
	require.NoError(t, err)

	err = uc.SetItemQuantity(context.Background(), cart, ref, 0)
	require.ErrorIs(t, err, e.ErrQuantityNotPositive)

	// Запрос сверх остатка отклоняется без изменения состояния
	err = uc.SetItemQuantity(context.Background(), cart, ref, 5)
	require.ErrorIs(t, err, e.ErrQuantityExceedsStock)

	items, err := uc.GetItems(context.Background(), cart.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, int32(1), items[0].Qty)

	err = uc.SetItemQuantity(context.Background(), cart, ref, 3)
	require.NoError(t, err)

	require.Equal(t, int32(3), cart.TotalProducts)
	require.Equal(t, int64(300000), cart.FinalPrice)
}

func TestRecomputeTracksLivePrice(t *testing.T) {
	store := newFakeStore()
	fixture := newCatalogFixture()
	fixture.add(1, "dune", 100000, 10)
	uc := newCartUCForTest(store, fixture)

	cart, err := uc.GetOrCreateOpenCart(context.Background(), domain.NewCustomerOwnerKey(7))
	require.NoError(t, err)

	ref := domain.NewProductRef(domain.CatalogTypeProduct, 1)
	_, err = uc.AddItem(context.Background(), cart, ref)
	require.NoError(t, err)
	require.Equal(t, int64(100000), cart.FinalPrice)

	// Цена в каталоге изменилась
	fixture.add(1, "dune", 120000, 10)

	items, err := uc.Recompute(context.Background(), cart)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, int64(120000), items[0].FinalPrice)
	require.Equal(t, int64(120000), cart.FinalPrice)
}

func TestRecomputeDropsVanishedProducts(t *testing.T) {
	store := newFakeStore()
	fixture := newCatalogFixture()
	fixture.add(1, "dune", 100000, 10)
	fixture.add(2, "solaris", 50000, 10)
	uc := newCartUCForTest(store, fixture)

	cart, err := uc.GetOrCreateOpenCart(context.Background(), domain.NewCustomerOwnerKey(7))
	require.NoError(t, err)

	_, err = uc.AddItem(context.Background(), cart, domain.NewProductRef(domain.CatalogTypeProduct, 1))
	require.NoError(t, err)
	_, err = uc.AddItem(context.Background(), cart, domain.NewProductRef(domain.CatalogTypeProduct, 2))
	require.NoError(t, err)

	// Товар сняли с продажи
	fixture.remove(1)

	items, err := uc.Recompute(context.Background(), cart)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, int64(2), items[0].ProductID)
	require.Equal(t, int32(1), cart.TotalProducts)
	require.Equal(t, int64(50000), cart.FinalPrice)
	require.Len(t, store.items, 1)
}

// Сценарий анонимного посетителя: корзина по токену сессии, добавление,
// изменение количества, итоговые агрегаты.
func TestAnonymousCartScenario(t *testing.T) {
	store := newFakeStore()
	fixture := newCatalogFixture()
	fixture.add(1, "dune", 159900, 5)
	fixture.add(2, "solaris", 89900, 5)
	uc := newCartUCForTest(store, fixture)

	key := domain.NewAnonymousOwnerKey("browser-session")

	cart, err := uc.GetOrCreateOpenCart(context.Background(), key)
	require.NoError(t, err)
	require.True(t, cart.ForAnonymousUser)
	require.Nil(t, cart.CustomerID)

	_, err = uc.AddItem(context.Background(), cart, domain.NewProductRef(domain.CatalogTypeProduct, 1))
	require.NoError(t, err)
	_, err = uc.AddItem(context.Background(), cart, domain.NewProductRef(domain.CatalogTypeProduct, 2))
	require.NoError(t, err)

	err = uc.SetItemQuantity(context.Background(), cart, domain.NewProductRef(domain.CatalogTypeProduct, 2), 3)
	require.NoError(t, err)

	require.Equal(t, int32(4), cart.TotalProducts)
	require.Equal(t, int64(159900+3*89900), cart.FinalPrice)

	// Та же сессия видит ту же корзину
	again, err := uc.GetOrCreateOpenCart(context.Background(), key)
	require.NoError(t, err)
	require.Equal(t, cart.ID, again.ID)
}
