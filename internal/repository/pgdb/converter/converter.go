//go:generate goverter gen github.com/DRSN-tech/bookstore-backend/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/DRSN-tech/bookstore-backend/internal/domain"
)

// CategoryConverter преобразует сущности Category между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type CategoryConverter interface {
	ToEntity(model *CategoryModel) *domain.Category
}

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type ProductConverter interface {
	ToEntity(model *ProductModel) *domain.Product
	ToArrEntity(models []*ProductModel) []domain.Product
}

// CustomerConverter преобразует сущности Customer между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
type CustomerConverter interface {
	ToEntity(model *CustomerModel) *domain.Customer
}

// CartConverter преобразует сущности Cart между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type CartConverter interface {
	ToEntity(model *CartModel) *domain.Cart
}

// CartItemConverter преобразует сущности CartItem между domain и моделью PostgreSQL.
// goverter:converter
type CartItemConverter interface {
	ToEntity(model *CartItemModel) *domain.CartItem
	ToArrEntity(models []*CartItemModel) []domain.CartItem
}

// OrderConverter преобразует сущности Order между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertOrderStatus
// goverter:extend ConvertBuyingType
type OrderConverter interface {
	ToEntity(model *OrderModel) *domain.Order
	ToArrEntity(models []*OrderModel) []domain.Order
}

// ContactConverter преобразует сущности Contact между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
type ContactConverter interface {
	ToEntity(model *ContactModel) *domain.Contact
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertOrderStatus(s string) domain.OrderStatus {
	return domain.OrderStatus(s)
}

func ConvertBuyingType(t string) domain.BuyingType {
	return domain.BuyingType(t)
}
