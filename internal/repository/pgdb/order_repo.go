package pgdb

import (
	"context"

	"github.com/DRSN-tech/bookstore-backend/internal/domain"
	"github.com/DRSN-tech/bookstore-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/bookstore-backend/pkg/e"
	"github.com/DRSN-tech/bookstore-backend/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
type OrderRepo struct {
	pool *pgxpool.Pool
	conv converter.OrderConverter
}

func NewOrderRepo(pool *pgxpool.Pool, conv converter.OrderConverter) *OrderRepo {
	return &OrderRepo{pool: pool, conv: conv}
}

const orderColumns = `id, customer_id, first_name, last_name, phone, cart_id, address, status, buying_type, comment, created_at, order_date`

// Create создаёт заказ в рамках транзакции оформления. Уникальный индекс
// по cart_id не даёт оформить одну корзину дважды.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO orders (customer_id, first_name, last_name, phone, cart_id, address, status, buying_type, comment, order_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + orderColumns + `;
	`

	var model converter.OrderModel
	err = tx.QueryRow(ctx, query,
		order.CustomerID, order.FirstName, order.LastName, order.Phone,
		order.CartID, order.Address, order.Status, order.BuyingType,
		order.Comment, order.OrderDate,
	).Scan(
		&model.ID, &model.CustomerID, &model.FirstName, &model.LastName,
		&model.Phone, &model.CartID, &model.Address, &model.Status,
		&model.BuyingType, &model.Comment, &model.CreatedAt, &model.OrderDate,
	)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(&model), nil
}

// ListByCustomer возвращает историю заказов покупателя, новые первыми.
func (o *OrderRepo) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE customer_id = $1
		ORDER BY created_at DESC;
	`

	rows, err := o.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var models []*converter.OrderModel
	for rows.Next() {
		var model converter.OrderModel
		if err := rows.Scan(
			&model.ID, &model.CustomerID, &model.FirstName, &model.LastName,
			&model.Phone, &model.CartID, &model.Address, &model.Status,
			&model.BuyingType, &model.Comment, &model.CreatedAt, &model.OrderDate,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, &model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToArrEntity(models), nil
}
