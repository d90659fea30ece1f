package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/DRSN-tech/bookstore-backend/internal/domain"
	"github.com/DRSN-tech/bookstore-backend/pkg/e"
)

// fakeStore — хранилище в памяти для тестов. Реализует репозитории корзин,
// позиций, заказов и покупателей.
type fakeStore struct {
	carts     map[int64]*domain.Cart
	items     map[int64]*domain.CartItem
	orders    map[int64]*domain.Order
	customers map[int64]*domain.Customer // по user_id
	nextID    int64

	failOrderCreate bool
	failMarkOrdered bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		carts:     make(map[int64]*domain.Cart),
		items:     make(map[int64]*domain.CartItem),
		orders:    make(map[int64]*domain.Order),
		customers: make(map[int64]*domain.Customer),
	}
}

func (s *fakeStore) id() int64 {
	s.nextID++
	return s.nextID
}

// CustomerRepository

func (s *fakeStore) GetOrCreateByUserID(_ context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if existing, ok := s.customers[customer.UserID]; ok {
		existing.FirstName = customer.FirstName
		existing.LastName = customer.LastName
		c := *existing
		return &c, nil
	}

	created := *customer
	created.ID = s.id()
	s.customers[customer.UserID] = &created

	c := created
	return &c, nil
}

// CartRepository

func (s *fakeStore) GetOrCreateOpenCart(_ context.Context, key domain.OwnerKey) (*domain.Cart, error) {
	for _, cart := range s.carts {
		if cart.InOrder {
			continue
		}
		if !key.Anonymous() && cart.CustomerID != nil && *cart.CustomerID == *key.CustomerID {
			c := *cart
			return &c, nil
		}
		if key.Anonymous() && cart.SessionToken != nil && *cart.SessionToken == key.SessionToken {
			c := *cart
			return &c, nil
		}
	}

	cart := &domain.Cart{ID: s.id()}
	if key.Anonymous() {
		token := key.SessionToken
		cart.SessionToken = &token
		cart.ForAnonymousUser = true
	} else {
		id := *key.CustomerID
		cart.CustomerID = &id
	}
	s.carts[cart.ID] = cart

	c := *cart
	return &c, nil
}

func (s *fakeStore) UpdateTotals(_ context.Context, cartID int64, totalProducts int32, finalPrice int64) error {
	cart, ok := s.carts[cartID]
	if !ok {
		return e.ErrCartNotFound
	}

	cart.TotalProducts = totalProducts
	cart.FinalPrice = finalPrice
	return nil
}

func (s *fakeStore) MarkOrdered(_ context.Context, cartID int64) error {
	if s.failMarkOrdered {
		return fmt.Errorf("storage unavailable")
	}

	cart, ok := s.carts[cartID]
	if !ok || cart.InOrder {
		return e.ErrCartAlreadyOrdered
	}

	cart.InOrder = true
	return nil
}

func (s *fakeStore) Delete(_ context.Context, cartID int64) error {
	for id, item := range s.items {
		if item.CartID == cartID {
			delete(s.items, id)
		}
	}
	delete(s.carts, cartID)
	return nil
}

// CartItemRepository

func (s *fakeStore) Upsert(_ context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	for _, existing := range s.items {
		if existing.CartID == item.CartID && existing.ProductType == item.ProductType && existing.ProductID == item.ProductID {
			existing.Qty++
			c := *existing
			return &c, nil
		}
	}

	created := *item
	created.ID = s.id()
	s.items[created.ID] = &created

	c := created
	return &c, nil
}

func (s *fakeStore) Get(_ context.Context, cartID int64, ref domain.ProductRef) (*domain.CartItem, error) {
	for _, item := range s.items {
		if item.CartID == cartID && item.ProductType == ref.Type && item.ProductID == ref.ID {
			c := *item
			return &c, nil
		}
	}

	return nil, e.ErrCartItemNotFound
}

func (s *fakeStore) DeleteItem(ctx context.Context, cartID int64, ref domain.ProductRef) error {
	for id, item := range s.items {
		if item.CartID == cartID && item.ProductType == ref.Type && item.ProductID == ref.ID {
			delete(s.items, id)
			return nil
		}
	}

	return e.ErrCartItemNotFound
}

func (s *fakeStore) DeleteByID(_ context.Context, itemID int64) error {
	delete(s.items, itemID)
	return nil
}

func (s *fakeStore) SetQty(_ context.Context, itemID int64, qty int32) error {
	item, ok := s.items[itemID]
	if !ok {
		return e.ErrCartItemNotFound
	}

	item.Qty = qty
	return nil
}

func (s *fakeStore) SetFinalPrice(_ context.Context, itemID int64, finalPrice int64) error {
	item, ok := s.items[itemID]
	if !ok {
		return e.ErrCartItemNotFound
	}

	item.FinalPrice = finalPrice
	return nil
}

func (s *fakeStore) ListByCart(_ context.Context, cartID int64) ([]domain.CartItem, error) {
	var result []domain.CartItem
	for _, item := range s.items {
		if item.CartID == cartID {
			result = append(result, *item)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// OrderRepository

func (s *fakeStore) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if s.failOrderCreate {
		return nil, fmt.Errorf("storage unavailable")
	}

	created := *order
	created.ID = s.id()
	s.orders[created.ID] = &created

	c := created
	return &c, nil
}

func (s *fakeStore) ListByCustomer(_ context.Context, customerID int64) ([]domain.Order, error) {
	var result []domain.Order
	for _, order := range s.orders {
		if order.CustomerID != nil && *order.CustomerID == customerID {
			result = append(result, *order)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

// cartItemAdapter разводит одноимённые методы Delete корзин и позиций.
type cartItemAdapter struct {
	*fakeStore
}

func (a cartItemAdapter) Delete(ctx context.Context, cartID int64, ref domain.ProductRef) error {
	return a.DeleteItem(ctx, cartID, ref)
}

// snapshotTransactor эмулирует атомарность: перед fn снимается копия
// состояния, при ошибке состояние восстанавливается.
type snapshotTransactor struct {
	store *fakeStore
}

func (t *snapshotTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	carts := make(map[int64]*domain.Cart, len(t.store.carts))
	for id, cart := range t.store.carts {
		c := *cart
		carts[id] = &c
	}
	items := make(map[int64]*domain.CartItem, len(t.store.items))
	for id, item := range t.store.items {
		c := *item
		items[id] = &c
	}
	orders := make(map[int64]*domain.Order, len(t.store.orders))
	for id, order := range t.store.orders {
		c := *order
		orders[id] = &c
	}
	nextID := t.store.nextID

	if err := fn(ctx); err != nil {
		t.store.carts = carts
		t.store.items = items
		t.store.orders = orders
		t.store.nextID = nextID
		return err
	}

	return nil
}

// fakeMailer собирает отправленные письма.
type fakeMailer struct {
	sent []*MailMessage
	fail bool
}

func (m *fakeMailer) Send(_ context.Context, msg *MailMessage) error {
	if m.fail {
		return fmt.Errorf("broker unavailable")
	}

	m.sent = append(m.sent, msg)
	return nil
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...any)        {}
func (nopLogger) Warnf(string, ...any)        {}
func (nopLogger) Errorf(error, string, ...any) {}

// catalogFixture — каталог в памяти для реестра.
type catalogFixture struct {
	items map[int64]*domain.CatalogItem
}

func newCatalogFixture() *catalogFixture {
	return &catalogFixture{items: make(map[int64]*domain.CatalogItem)}
}

func (f *catalogFixture) add(id int64, title string, price int64, quantity int32) {
	f.items[id] = &domain.CatalogItem{
		Ref:      domain.NewProductRef(domain.CatalogTypeProduct, id),
		Title:    title,
		Slug:     title,
		Price:    price,
		Quantity: quantity,
	}
}

func (f *catalogFixture) remove(id int64) {
	delete(f.items, id)
}

func (f *catalogFixture) lookup(_ context.Context, id int64) (*domain.CatalogItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}

	c := *item
	return &c, nil
}

func (f *catalogFixture) registry() *CatalogRegistry {
	r := NewCatalogRegistry()
	r.Register(domain.CatalogTypeProduct, f.lookup)
	return r
}

func newCartUCForTest(store *fakeStore, fixture *catalogFixture) *CartUseCase {
	return NewCartUC(store, cartItemAdapter{store}, fixture.registry(), &snapshotTransactor{store: store}, nopLogger{})
}
