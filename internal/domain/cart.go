package domain

import "time"

// OwnerKey — ключ владельца корзины: id покупателя для авторизованных,
// токен сессии для анонимных. Ровно одно из двух.
type OwnerKey struct {
	CustomerID   *int64
	SessionToken string
}

func NewCustomerOwnerKey(customerID int64) OwnerKey {
	return OwnerKey{CustomerID: &customerID}
}

func NewAnonymousOwnerKey(sessionToken string) OwnerKey {
	return OwnerKey{SessionToken: sessionToken}
}

// Anonymous сообщает, принадлежит ли ключ анонимной сессии.
func (k OwnerKey) Anonymous() bool {
	return k.CustomerID == nil
}

// Cart описывает корзину. Открытая корзина (InOrder = false) — единственная
// на владельца; после оформления заказа закрывается безвозвратно.
type Cart struct {
	ID               int64
	CustomerID       *int64  // nil для анонимных корзин
	SessionToken     *string // nil для корзин покупателей
	TotalProducts    int32
	FinalPrice       int64 // копейки
	InOrder          bool
	ForAnonymousUser bool
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

// CartItem описывает позицию корзины: полиморфная ссылка на сущность
// каталога плюс количество. FinalPrice всегда производная величина
// (qty * живая цена на момент последнего пересчёта).
type CartItem struct {
	ID          int64
	CartID      int64
	CustomerID  *int64 // nil для позиций анонимной корзины
	ProductType string
	ProductID   int64
	Qty         int32
	FinalPrice  int64 // копейки
}
