package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/bookstore-backend/internal/domain"
	"github.com/DRSN-tech/bookstore-backend/pkg/e"
	"github.com/stretchr/testify/require"
)

func orderFixture(t *testing.T) (*fakeStore, *catalogFixture, *CartUseCase, *OrderUseCase, *fakeMailer) {
	t.Helper()

	store := newFakeStore()
	fixture := newCatalogFixture()
	fixture.add(1, "dune", 100000, 10)

	mailer := &fakeMailer{}
	cartUC := newCartUCForTest(store, fixture)
	orderUC := NewOrderUC(store, store, cartUC, &snapshotTransactor{store: store}, mailer, nopLogger{})

	return store, fixture, cartUC, orderUC, mailer
}

func validOrderReq() *PlaceOrderReq {
	return &PlaceOrderReq{
		FirstName:  "Ivan",
		LastName:   "Petrov",
		Phone:      "+79990001122",
		Address:    "ivan@example.com",
		BuyingType: domain.BuyingTypeDelivery,
		OrderDate:  time.Now().AddDate(0, 0, 1),
	}
}

func authIdentity(customerID int64) *Identity {
	return &Identity{
		Key: domain.NewCustomerOwnerKey(customerID),
		Customer: &domain.Customer{
			ID:        customerID,
			UserID:    100 + customerID,
			FirstName: "Anna",
			LastName:  "Sidorova",
		},
	}
}

func TestPlaceOrderSuccess(t *testing.T) {
	store, _, cartUC, orderUC, mailer := orderFixture(t)

	cart, err := cartUC.GetOrCreateOpenCart(context.Background(), domain.NewCustomerOwnerKey(1))
	require.NoError(t, err)
	_, err = cartUC.AddItem(context.Background(), cart, domain.NewProductRef(domain.CatalogTypeProduct, 1))
	require.NoError(t, err)

	order, err := orderUC.PlaceOrder(context.Background(), cart, validOrderReq(), authIdentity(1))
	require.NoError(t, err)

	// Имя берётся из записи покупателя, не из формы
	require.Equal(t, "Anna", order.FirstName)
	require.Equal(t, "Sidorova", order.LastName)
	require.Equal(t, domain.OrderStatusNew, order.Status)
	require.Equal(t, cart.ID, order.CartID)

	// Корзина закрыта безвозвратно
	require.True(t, cart.InOrder)
	require.True(t, store.carts[cart.ID].InOrder)

	// Уведомление ушло на адрес из заказа
	require.Len(t, mailer.sent, 1)
	require.Equal(t, []string{order.Address}, mailer.sent[0].To)
}

func TestPlaceOrderAnonymousUsesFormNames(t *testing.T) {
	_, _, cartUC, orderUC, _ := orderFixture(t)

	key := domain.NewAnonymousOwnerKey("session-x")
	cart, err := cartUC.GetOrCreateOpenCart(context.Background(), key)
	require.NoError(t, err)
	_, err = cartUC.AddItem(context.Background(), cart, domain.NewProductRef(domain.CatalogTypeProduct, 1))
	require.NoError(t, err)

	identity := &Identity{Key: key}

	order, err := orderUC.PlaceOrder(context.Background(), cart, validOrderReq(), identity)
	require.NoError(t, err)
	require.Equal(t, "Ivan", order.FirstName)
	require.Nil(t, order.CustomerID)
}

func TestPlaceOrderAnonymousMissingNames(t *testing.T) {
	_, _, cartUC, orderUC, _ := orderFixture(t)

	key := domain.NewAnonymousOwnerKey("session-x")
	cart, err := cartUC.GetOrCreateOpenCart(context.Background(), key)
	require.NoError(t, err)

	req := validOrderReq()
	req.FirstName = "  "

	_, err = orderUC.PlaceOrder(context.Background(), cart, req, &Identity{Key: key})
	require.ErrorIs(t, err, e.ErrFirstNameRequired)
	require.False(t, cart.InOrder)
}

func TestPlaceOrderValidation(t *testing.T) {
	_, _, cartUC, orderUC, _ := orderFixture(t)

	cart, err := cartUC.GetOrCreateOpenCart(context.Background(), domain.NewCustomerOwnerKey(1))
	require.NoError(t, err)

	cases := []struct {
		name    string
		mutate  func(*PlaceOrderReq)
		wantErr error
	}{
		{"no phone", func(r *PlaceOrderReq) { r.Phone = "" }, e.ErrPhoneRequired},
		{"no address", func(r *PlaceOrderReq) { r.Address = "" }, e.ErrAddressRequired},
		{"bad buying type", func(r *PlaceOrderReq) { r.BuyingType = "teleport" }, e.ErrInvalidBuyingType},
		{"no date", func(r *PlaceOrderReq) { r.OrderDate = time.Time{} }, e.ErrMissingFields},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validOrderReq()
			tc.mutate(req)

			_, err := orderUC.PlaceOrder(context.Background(), cart, req, authIdentity(1))
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestPlaceOrderDateInPast(t *testing.T) {
	_, _, cartUC, orderUC, _ := orderFixture(t)

	cart, err := cartUC.GetOrCreateOpenCart(context.Background(), domain.NewCustomerOwnerKey(1))
	require.NoError(t, err)

	req := validOrderReq()
	req.OrderDate = time.Now().AddDate(0, 0, -1)

	_, err = orderUC.PlaceOrder(context.Background(), cart, req, authIdentity(1))
	require.ErrorIs(t, err, e.ErrOrderDateInPast)
	require.False(t, cart.InOrder)
}

func TestPlaceOrderTodayAllowed(t *testing.T) {
	_, _, cartUC, orderUC, _ := orderFixture(t)

	cart, err := cartUC.GetOrCreateOpenCart(context.Background(), domain.NewCustomerOwnerKey(1))
	require.NoError(t, err)

	req := validOrderReq()
	req.OrderDate = time.Now()

	_, err = orderUC.PlaceOrder(context.Background(), cart, req, authIdentity(1))
	require.NoError(t, err)
}

func TestPlaceOrderTwice(t *testing.T) {
	_, _, cartUC, orderUC, _ := orderFixture(t)

	cart, err := cartUC.GetOrCreateOpenCart(context.Background(), domain.NewCustomerOwnerKey(1))
	require.NoError(t, err)

	_, err = orderUC.PlaceOrder(context.Background(), cart, validOrderReq(), authIdentity(1))
	require.NoError(t, err)

	_, err = orderUC.PlaceOrder(context.Background(), cart, validOrderReq(), authIdentity(1))
	require.ErrorIs(t, err, e.ErrCartAlreadyOrdered)
}

func TestPlaceOrderMailerFailureKeepsOrder(t *testing.T) {
	store, _, cartUC, orderUC, mailer := orderFixture(t)
	mailer.fail = true

	cart, err := cartUC.GetOrCreateOpenCart(context.Background(), domain.NewCustomerOwnerKey(1))
	require.NoError(t, err)

	order, err := orderUC.PlaceOrder(context.Background(), cart, validOrderReq(), authIdentity(1))
	require.NoError(t, err)
	require.NotNil(t, store.orders[order.ID])
	require.True(t, cart.InOrder)
}

func TestPlaceOrderRollbackOnStorageFailure(t *testing.T) {
	store, _, cartUC, orderUC, mailer := orderFixture(t)

	cart, err := cartUC.GetOrCreateOpenCart(context.Background(), domain.NewCustomerOwnerKey(1))
	require.NoError(t, err)
	_, err = cartUC.AddItem(context.Background(), cart, domain.NewProductRef(domain.CatalogTypeProduct, 1))
	require.NoError(t, err)

	store.failOrderCreate = true

	_, err = orderUC.PlaceOrder(context.Background(), cart, validOrderReq(), authIdentity(1))
	require.Error(t, err)

	// Транзакция откатилась: корзина осталась открытой, заказа нет
	require.False(t, store.carts[cart.ID].InOrder)
	require.Empty(t, store.orders)
	require.Empty(t, mailer.sent)
}

func TestListOrders(t *testing.T) {
	store, _, cartUC, orderUC, _ := orderFixture(t)

	identity := authIdentity(1)

	cart, err := cartUC.GetOrCreateOpenCart(context.Background(), identity.Key)
	require.NoError(t, err)
	first, err := orderUC.PlaceOrder(context.Background(), cart, validOrderReq(), identity)
	require.NoError(t, err)

	// После оформления открывается новая корзина
	cart, err = cartUC.GetOrCreateOpenCart(context.Background(), identity.Key)
	require.NoError(t, err)
	second, err := orderUC.PlaceOrder(context.Background(), cart, validOrderReq(), identity)
	require.NoError(t, err)
	require.NotEqual(t, first.CartID, second.CartID)

	orders, err := orderUC.ListOrders(context.Background(), identity)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.Equal(t, second.ID, orders[0].ID)

	require.Len(t, store.orders, 2)
}

func TestListOrdersAnonymous(t *testing.T) {
	_, _, _, orderUC, _ := orderFixture(t)

	_, err := orderUC.ListOrders(context.Background(), &Identity{Key: domain.NewAnonymousOwnerKey("s")})
	require.ErrorIs(t, err, e.ErrAuthRequired)
}
