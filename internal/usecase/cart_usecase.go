package usecase

import (
	"context"
	"errors"

	"github.com/DRSN-tech/bookstore-backend/internal/domain"
	"github.com/DRSN-tech/bookstore-backend/pkg/e"
	"github.com/DRSN-tech/bookstore-backend/pkg/logger"
)

// CartUseCase реализует работу с открытой корзиной: поиск-или-создание,
// управление позициями и пересчёт цен.
type CartUseCase struct {
	cartRepo   CartRepository
	itemRepo   CartItemRepository
	registry   *CatalogRegistry
	transactor Transactor
	logger     logger.Logger
}

func NewCartUC(
	cartRepo CartRepository,
	itemRepo CartItemRepository,
	registry *CatalogRegistry,
	transactor Transactor,
	logger logger.Logger,
) *CartUseCase {
	return &CartUseCase{
		cartRepo:   cartRepo,
		itemRepo:   itemRepo,
		registry:   registry,
		transactor: transactor,
		logger:     logger,
	}
}

// GetOrCreateOpenCart возвращает открытую корзину владельца, создавая её
// при первом обращении. Повторные вызовы в пределах "открытой" жизни
// корзины возвращают ту же запись.
func (c *CartUseCase) GetOrCreateOpenCart(ctx context.Context, key domain.OwnerKey) (*domain.Cart, error) {
	const op = "CartUseCase.GetOrCreateOpenCart"

	cart, err := c.cartRepo.GetOrCreateOpenCart(ctx, key)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return cart, nil
}

// GetItems возвращает позиции корзины.
func (c *CartUseCase) GetItems(ctx context.Context, cartID int64) ([]domain.CartItem, error) {
	const op = "CartUseCase.GetItems"

	items, err := c.itemRepo.ListByCart(ctx, cartID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return items, nil
}

// AddItem добавляет сущность каталога в корзину: создаёт позицию с qty = 1
// либо увеличивает существующую на 1. Возвращает e.ErrProductNotFound, если
// ссылка не разрешается. Мутация и пересчёт выполняются в одной транзакции.
func (c *CartUseCase) AddItem(ctx context.Context, cart *domain.Cart, ref domain.ProductRef) (*domain.CartItem, error) {
	const op = "CartUseCase.AddItem"

	if cart.InOrder {
		return nil, e.Wrap(op, e.ErrCartAlreadyOrdered)
	}

	unit, err := c.registry.Resolve(ctx, ref)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var added *domain.CartItem
	err = c.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		upserted, err := c.itemRepo.Upsert(ctx, &domain.CartItem{
			CartID:      cart.ID,
			CustomerID:  cart.CustomerID,
			ProductType: ref.Type,
			ProductID:   ref.ID,
			Qty:         1,
			FinalPrice:  unit.Price,
		})
		if err != nil {
			return err
		}

		items, err := c.Recompute(ctx, cart)
		if err != nil {
			return err
		}

		added = upserted
		for i := range items {
			if items[i].ID == upserted.ID {
				added = &items[i]
				break
			}
		}

		return nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return added, nil
}

// RemoveItem удаляет позицию корзины. Возвращает e.ErrCartItemNotFound,
// если такой позиции в корзине нет.
func (c *CartUseCase) RemoveItem(ctx context.Context, cart *domain.Cart, ref domain.ProductRef) error {
	const op = "CartUseCase.RemoveItem"

	if cart.InOrder {
		return e.Wrap(op, e.ErrCartAlreadyOrdered)
	}

	err := c.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := c.itemRepo.Delete(ctx, cart.ID, ref); err != nil {
			return err
		}

		_, err := c.Recompute(ctx, cart)
		return err
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// SetItemQuantity устанавливает количество позиции. Запрос сверх остатка
// на складе отклоняется с e.ErrQuantityExceedsStock без изменения состояния —
// количество не урезается молча.
func (c *CartUseCase) SetItemQuantity(ctx context.Context, cart *domain.Cart, ref domain.ProductRef, qty int32) error {
	const op = "CartUseCase.SetItemQuantity"

	if cart.InOrder {
		return e.Wrap(op, e.ErrCartAlreadyOrdered)
	}

	if qty < 1 {
		return e.Wrap(op, e.ErrQuantityNotPositive)
	}

	unit, err := c.registry.Resolve(ctx, ref)
	if err != nil {
		return e.Wrap(op, err)
	}

	if qty > unit.Quantity {
		return e.Wrap(op, e.ErrQuantityExceedsStock)
	}

	err = c.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		item, err := c.itemRepo.Get(ctx, cart.ID, ref)
		if err != nil {
			return err
		}

		if err := c.itemRepo.SetQty(ctx, item.ID, qty); err != nil {
			return err
		}

		_, err = c.Recompute(ctx, cart)
		return err
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// Recompute пересчитывает производные поля корзины: final_price каждой
// позиции от живой цены каталога и агрегаты самой корзины. Позиции,
// чей товар исчез из каталога, удаляются (явный каскад вместо ORM).
// Возвращает актуальный список позиций.
func (c *CartUseCase) Recompute(ctx context.Context, cart *domain.Cart) ([]domain.CartItem, error) {
	const op = "CartUseCase.Recompute"

	items, err := c.itemRepo.ListByCart(ctx, cart.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var (
		totalProducts int32
		finalPrice    int64
	)

	result := make([]domain.CartItem, 0, len(items))
	for _, item := range items {
		unit, err := c.registry.Resolve(ctx, domain.NewProductRef(item.ProductType, item.ProductID))
		if errors.Is(err, e.ErrProductNotFound) {
			c.logger.Warnf("dropping cart item %d: product %s/%d is gone", item.ID, item.ProductType, item.ProductID)
			if err := c.itemRepo.DeleteByID(ctx, item.ID); err != nil {
				return nil, e.Wrap(op, err)
			}
			continue
		}
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		price := int64(item.Qty) * unit.Price
		if price != item.FinalPrice {
			if err := c.itemRepo.SetFinalPrice(ctx, item.ID, price); err != nil {
				return nil, e.Wrap(op, err)
			}
			item.FinalPrice = price
		}

		totalProducts += item.Qty
		finalPrice += item.FinalPrice
		result = append(result, item)
	}

	if err := c.cartRepo.UpdateTotals(ctx, cart.ID, totalProducts, finalPrice); err != nil {
		return nil, e.Wrap(op, err)
	}

	cart.TotalProducts = totalProducts
	cart.FinalPrice = finalPrice

	return result, nil
}
