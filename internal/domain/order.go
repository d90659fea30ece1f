package domain

import "time"

// Статусы заказа
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusReady      OrderStatus = "ready"
	OrderStatusCompleted  OrderStatus = "completed"
)

// Способ получения заказа
type BuyingType string

const (
	BuyingTypeSelf     BuyingType = "self"
	BuyingTypeDelivery BuyingType = "delivery"
)

// ValidBuyingType проверяет значение способа получения из пользовательского ввода.
func ValidBuyingType(t BuyingType) bool {
	return t == BuyingTypeSelf || t == BuyingTypeDelivery
}

// Order описывает оформленный заказ. Создаётся один раз из закрываемой
// корзины; статус меняется внешним админ-контуром.
type Order struct {
	ID         int64
	CustomerID *int64 // nil для анонимных заказов
	FirstName  string
	LastName   string
	Phone      string
	CartID     int64
	Address    string
	Status     OrderStatus
	BuyingType BuyingType
	Comment    string
	CreatedAt  time.Time
	OrderDate  time.Time // выбранная покупателем дата получения (только дата)
}
