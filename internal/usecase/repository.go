package usecase

import (
	"context"

	"github.com/DRSN-tech/bookstore-backend/internal/domain"
)

type CustomerRepository interface {
	// GetOrCreateByUserID идемпотентно создаёт покупателя для внешнего
	// пользователя. Повторные вызовы возвращают одну и ту же запись.
	GetOrCreateByUserID(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
}

type CartRepository interface {
	// GetOrCreateOpenCart возвращает единственную открытую корзину владельца,
	// создавая её при отсутствии. Безопасно при конкурентных вызовах.
	GetOrCreateOpenCart(ctx context.Context, key domain.OwnerKey) (*domain.Cart, error)
	// UpdateTotals сохраняет агрегаты корзины после пересчёта.
	UpdateTotals(ctx context.Context, cartID int64, totalProducts int32, finalPrice int64) error
	// MarkOrdered закрывает корзину. Возвращает e.ErrCartAlreadyOrdered,
	// если корзина уже закрыта.
	MarkOrdered(ctx context.Context, cartID int64) error
	// Delete удаляет корзину вместе с её позициями (явный каскад).
	Delete(ctx context.Context, cartID int64) error
}

type CartItemRepository interface {
	// Upsert создаёт позицию с qty = 1 либо увеличивает qty существующей на 1.
	Upsert(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error)
	Get(ctx context.Context, cartID int64, ref domain.ProductRef) (*domain.CartItem, error)
	// Delete возвращает e.ErrCartItemNotFound, если позиции нет.
	Delete(ctx context.Context, cartID int64, ref domain.ProductRef) error
	DeleteByID(ctx context.Context, itemID int64) error
	SetQty(ctx context.Context, itemID int64, qty int32) error
	SetFinalPrice(ctx context.Context, itemID int64, finalPrice int64) error
	ListByCart(ctx context.Context, cartID int64) ([]domain.CartItem, error)
}

type ProductRepository interface {
	// GetCatalogItem возвращает срез данных товара для корзины (живая цена и остаток).
	GetCatalogItem(ctx context.Context, id int64) (*domain.CatalogItem, error)
	GetCatalogItems(ctx context.Context, ids []int64) ([]domain.CatalogItem, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	// Latest возвращает последние добавленные товары для витрины.
	Latest(ctx context.Context, limit int) ([]domain.Product, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error)
	// Related возвращает товары той же категории, исключая сам товар.
	Related(ctx context.Context, categoryID, excludeID int64, limit int) ([]domain.Product, error)
}

type CategoryRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	// ListWithCounts возвращает категории с количеством товаров в каждой.
	ListWithCounts(ctx context.Context) ([]domain.CategorySummary, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error)
}

type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) (*domain.Contact, error)
}

type CacheRepository interface {
	// GetCatalogItems возвращает закэшированные сущности каталога по ссылкам,
	// пропуская промахи.
	GetCatalogItems(ctx context.Context, refs []domain.ProductRef) (map[domain.ProductRef]domain.CatalogItem, error)
	SetCatalogItems(ctx context.Context, items []domain.CatalogItem) error
}

type ImageRepository interface {
	// PresignedURL возвращает временную ссылку на объект изображения в S3.
	PresignedURL(ctx context.Context, objectKey string) (string, error)
}
