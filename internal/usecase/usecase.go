package usecase

import (
	"context"

	"github.com/DRSN-tech/bookstore-backend/internal/domain"
)

type IdentityUC interface {
	Resolve(ctx context.Context, auth *AuthState) (*Identity, error)
}

type CartUC interface {
	GetOrCreateOpenCart(ctx context.Context, key domain.OwnerKey) (*domain.Cart, error)
	GetItems(ctx context.Context, cartID int64) ([]domain.CartItem, error)
	AddItem(ctx context.Context, cart *domain.Cart, ref domain.ProductRef) (*domain.CartItem, error)
	RemoveItem(ctx context.Context, cart *domain.Cart, ref domain.ProductRef) error
	SetItemQuantity(ctx context.Context, cart *domain.Cart, ref domain.ProductRef, qty int32) error
}

type OrderUC interface {
	PlaceOrder(ctx context.Context, cart *domain.Cart, req *PlaceOrderReq, identity *Identity) (*domain.Order, error)
	// ListOrders возвращает историю заказов покупателя. Для анонимов
	// возвращает e.ErrAuthRequired.
	ListOrders(ctx context.Context, identity *Identity) ([]domain.Order, error)
}

type CatalogUC interface {
	MainPage(ctx context.Context) (*MainPageRes, error)
	CategoryDetail(ctx context.Context, slug string) (*CategoryDetailRes, error)
	ProductDetail(ctx context.Context, ctType, slug string) (*ProductDetailRes, error)
	ResolveItems(ctx context.Context, refs []domain.ProductRef) (*ResolveItemsRes, error)
}

type ContactUC interface {
	SendMessage(ctx context.Context, req *SendMessageReq) error
}
