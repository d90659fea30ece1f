package domain

import "time"

// Contact — заявка из формы обратной связи. Живёт отдельно от корзин и заказов.
type Contact struct {
	ID        int64
	Name      string
	Address   string
	Comment   string
	CreatedAt time.Time
}

func NewContact(name, address, comment string) *Contact {
	return &Contact{
		Name:    name,
		Address: address,
		Comment: comment,
	}
}
