package domain

import "time"

// Customer описывает покупателя, привязанного к внешнему пользователю.
// Создаётся лениво при первом обращении авторизованного пользователя к корзине.
type Customer struct {
	ID        int64
	UserID    int64 // id во внешней системе аутентификации
	FirstName string
	LastName  string
	Phone     string
	Address   string
	CreatedAt time.Time
}

func NewCustomer(userID int64, firstName, lastName string) *Customer {
	return &Customer{
		UserID:    userID,
		FirstName: firstName,
		LastName:  lastName,
	}
}
