package pgdb

import (
	"context"

	"github.com/DRSN-tech/bookstore-backend/internal/domain"
	"github.com/DRSN-tech/bookstore-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/bookstore-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CustomerRepo реализует репозиторий покупателей поверх PostgreSQL.
type CustomerRepo struct {
	pool *pgxpool.Pool
	conv converter.CustomerConverter
}

func NewCustomerRepo(pool *pgxpool.Pool, conv converter.CustomerConverter) *CustomerRepo {
	return &CustomerRepo{pool: pool, conv: conv}
}

// GetOrCreateByUserID идемпотентно создаёт покупателя по внешнему user_id.
// Уникальный индекс по user_id гарантирует одну запись на пользователя
// даже при конкурентном первом обращении; имя обновляется из системы
// аутентификации при каждом обращении.
func (c *CustomerRepo) GetOrCreateByUserID(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	query := `
		INSERT INTO customers (user_id, first_name, last_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name
		RETURNING id, user_id, first_name, last_name, phone, address, created_at;
	`

	var model converter.CustomerModel
	err := q(ctx, c.pool).QueryRow(ctx, query, customer.UserID, customer.FirstName, customer.LastName).
		Scan(
			&model.ID, &model.UserID, &model.FirstName, &model.LastName,
			&model.Phone, &model.Address, &model.CreatedAt,
		)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}
