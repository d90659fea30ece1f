package usecase

import (
	"context"

	"github.com/DRSN-tech/bookstore-backend/internal/domain"
	"github.com/DRSN-tech/bookstore-backend/pkg/e"
)

// IdentityUseCase разрешает состояние аутентификации запроса в ключ
// владельца корзины.
type IdentityUseCase struct {
	customerRepo CustomerRepository
}

func NewIdentityUC(customerRepo CustomerRepository) *IdentityUseCase {
	return &IdentityUseCase{customerRepo: customerRepo}
}

// Resolve возвращает ключ владельца корзины. Для авторизованного запроса
// лениво создаёт запись покупателя; повторное обращение того же
// пользователя не создаёт вторую запись (уникальный индекс по user_id).
// Для анонимного запроса ключом служит токен сессии.
func (i *IdentityUseCase) Resolve(ctx context.Context, auth *AuthState) (*Identity, error) {
	const op = "IdentityUseCase.Resolve"

	if auth.UserID == nil {
		return &Identity{Key: domain.NewAnonymousOwnerKey(auth.SessionToken)}, nil
	}

	customer, err := i.customerRepo.GetOrCreateByUserID(
		ctx,
		domain.NewCustomer(*auth.UserID, auth.FirstName, auth.LastName),
	)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &Identity{
		Key:      domain.NewCustomerOwnerKey(customer.ID),
		Customer: customer,
	}, nil
}
