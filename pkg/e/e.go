package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")

	// Ошибки каталога
	ErrProductNotFound    = fmt.Errorf("product not found")
	ErrCategoryNotFound   = fmt.Errorf("category not found")
	ErrUnknownCatalogType = fmt.Errorf("unknown catalog type")

	// Ошибки корзины
	ErrCartNotFound         = fmt.Errorf("cart not found")
	ErrCartItemNotFound     = fmt.Errorf("cart item not found")
	ErrCartAlreadyOrdered   = fmt.Errorf("cart is already ordered")
	ErrQuantityExceedsStock = fmt.Errorf("requested quantity exceeds stock")
	ErrQuantityNotPositive  = fmt.Errorf("quantity must be positive")

	// Ошибки оформления заказа
	ErrFirstNameRequired = fmt.Errorf("first name is required")
	ErrLastNameRequired  = fmt.Errorf("last name is required")
	ErrPhoneRequired     = fmt.Errorf("phone is required")
	ErrAddressRequired   = fmt.Errorf("address is required")
	ErrInvalidBuyingType = fmt.Errorf("invalid buying type")
	ErrOrderDateInPast   = fmt.Errorf("order date is in the past")

	// Ошибки доступа
	ErrAuthRequired = fmt.Errorf("authentication required")

	// Ошибки формы контактов
	ErrContactNameRequired    = fmt.Errorf("contact name is required")
	ErrContactAddressRequired = fmt.Errorf("contact address is required")
	ErrContactMessageRequired = fmt.Errorf("contact message is required")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")
	ErrMissingFields    = fmt.Errorf("missing required fields")
	ErrInvalidPrice     = fmt.Errorf("invalid price")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
