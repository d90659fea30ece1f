package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/DRSN-tech/bookstore-backend/internal/domain"
	"github.com/DRSN-tech/bookstore-backend/pkg/e"
	"github.com/DRSN-tech/bookstore-backend/pkg/logger"
)

// CartPricer — пересчёт производных полей корзины. Реализуется CartUseCase.
type CartPricer interface {
	Recompute(ctx context.Context, cart *domain.Cart) ([]domain.CartItem, error)
}

// OrderUseCase превращает открытую корзину в заказ: валидация формы,
// проверка даты получения и атомарное закрытие корзины с созданием заказа.
type OrderUseCase struct {
	orderRepo  OrderRepository
	cartRepo   CartRepository
	pricer     CartPricer
	transactor Transactor
	mailer     MailerInfra
	logger     logger.Logger
}

func NewOrderUC(
	orderRepo OrderRepository,
	cartRepo CartRepository,
	pricer CartPricer,
	transactor Transactor,
	mailer MailerInfra,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:  orderRepo,
		cartRepo:   cartRepo,
		pricer:     pricer,
		transactor: transactor,
		mailer:     mailer,
		logger:     logger,
	}
}

// PlaceOrder оформляет заказ из открытой корзины.
//
// Для авторизованного покупателя имя и фамилия берутся из его записи,
// поля формы игнорируются; аноним обязан указать их в форме. Дата получения
// раньше сегодняшней отклоняется до каких-либо записей в хранилище.
// Закрытие корзины, финальный пересчёт и создание заказа выполняются в
// одной транзакции; почтовое уведомление уходит после коммита и его сбой
// заказ не отменяет.
func (o *OrderUseCase) PlaceOrder(ctx context.Context, cart *domain.Cart, req *PlaceOrderReq, identity *Identity) (*domain.Order, error) {
	const op = "OrderUseCase.PlaceOrder"

	if cart.InOrder {
		return nil, e.Wrap(op, e.ErrCartAlreadyOrdered)
	}

	firstName, lastName := req.FirstName, req.LastName
	if !identity.Anonymous() {
		firstName, lastName = identity.Customer.FirstName, identity.Customer.LastName
	}

	if err := validateSubmission(firstName, lastName, req); err != nil {
		return nil, e.Wrap(op, err)
	}

	if dateBefore(req.OrderDate, time.Now()) {
		return nil, e.Wrap(op, e.ErrOrderDateInPast)
	}

	var customerID *int64
	if identity.Customer != nil {
		customerID = &identity.Customer.ID
	}

	var order *domain.Order
	err := o.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		// Финальный снимок корзины перед закрытием
		if _, err := o.pricer.Recompute(ctx, cart); err != nil {
			return err
		}

		if err := o.cartRepo.MarkOrdered(ctx, cart.ID); err != nil {
			return err
		}

		created, err := o.orderRepo.Create(ctx, &domain.Order{
			CustomerID: customerID,
			FirstName:  firstName,
			LastName:   lastName,
			Phone:      req.Phone,
			CartID:     cart.ID,
			Address:    req.Address,
			Status:     domain.OrderStatusNew,
			BuyingType: req.BuyingType,
			Comment:    req.Comment,
			OrderDate:  req.OrderDate,
		})
		if err != nil {
			return err
		}

		order = created
		return nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	cart.InOrder = true

	// Уведомление вне транзакции: сбой доставки логируется и не влияет на заказ
	msg := NewMailMessage(
		"Вы оформили заказ",
		fmt.Sprintf(
			"Вы оформили заказ №%d на нашем сайте, заказ приедет к вам %s",
			order.ID,
			order.OrderDate.Format("02.01.2006"),
		),
		"",
		[]string{order.Address},
	)
	if err := o.mailer.Send(ctx, msg); err != nil {
		o.logger.Warnf("order %d: notification delivery failed: %v", order.ID, e.Wrap(op, err))
	}

	return order, nil
}

// ListOrders возвращает историю заказов покупателя, новые первыми.
// История доступна только авторизованным: анонимные заказы не привязаны
// к владельцу.
func (o *OrderUseCase) ListOrders(ctx context.Context, identity *Identity) ([]domain.Order, error) {
	const op = "OrderUseCase.ListOrders"

	if identity.Anonymous() {
		return nil, e.Wrap(op, e.ErrAuthRequired)
	}

	orders, err := o.orderRepo.ListByCustomer(ctx, identity.Customer.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return orders, nil
}

// validateSubmission проверяет обязательные поля формы оформления заказа.
func validateSubmission(firstName, lastName string, req *PlaceOrderReq) error {
	if strings.TrimSpace(firstName) == "" {
		return e.ErrFirstNameRequired
	}

	if strings.TrimSpace(lastName) == "" {
		return e.ErrLastNameRequired
	}

	if strings.TrimSpace(req.Phone) == "" {
		return e.ErrPhoneRequired
	}

	if strings.TrimSpace(req.Address) == "" {
		return e.ErrAddressRequired
	}

	if !domain.ValidBuyingType(req.BuyingType) {
		return e.ErrInvalidBuyingType
	}

	if req.OrderDate.IsZero() {
		return e.ErrMissingFields
	}

	return nil
}

// dateBefore сравнивает только календарные даты, время суток не учитывается.
func dateBefore(d, now time.Time) bool {
	y, m, day := now.Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, now.Location())
	date := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())

	return date.Before(today)
}
