package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/bookstore-backend/internal/domain"
	"github.com/DRSN-tech/bookstore-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/bookstore-backend/pkg/e"
	"github.com/DRSN-tech/bookstore-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CartRepo реализует репозиторий корзин поверх PostgreSQL.
type CartRepo struct {
	pool *pgxpool.Pool
	conv converter.CartConverter
}

func NewCartRepo(pool *pgxpool.Pool, conv converter.CartConverter) *CartRepo {
	return &CartRepo{pool: pool, conv: conv}
}

const cartColumns = `id, customer_id, session_token, total_products, final_price, in_order, for_anonymous_user, created_at, updated_at`

// GetOrCreateOpenCart идемпотентно возвращает открытую корзину владельца.
// Частичные уникальные индексы по (customer_id) и (session_token) для
// открытых корзин исключают дубликаты при конкурентных вызовах.
func (c *CartRepo) GetOrCreateOpenCart(ctx context.Context, key domain.OwnerKey) (*domain.Cart, error) {
	var (
		query string
		arg   any
	)

	if key.Anonymous() {
		arg = key.SessionToken
		query = `
			WITH new_cart AS (
				INSERT INTO carts (session_token, for_anonymous_user)
				VALUES ($1, TRUE)
				ON CONFLICT (session_token) WHERE NOT in_order DO NOTHING
				RETURNING ` + cartColumns + `
			)
			SELECT ` + cartColumns + ` FROM new_cart

			UNION ALL

			SELECT ` + cartColumns + `
			FROM carts
			WHERE session_token = $1
			  AND NOT in_order
			  AND NOT EXISTS (SELECT 1 FROM new_cart);
		`
	} else {
		arg = *key.CustomerID
		query = `
			WITH new_cart AS (
				INSERT INTO carts (customer_id)
				VALUES ($1)
				ON CONFLICT (customer_id) WHERE NOT in_order DO NOTHING
				RETURNING ` + cartColumns + `
			)
			SELECT ` + cartColumns + ` FROM new_cart

			UNION ALL

			SELECT ` + cartColumns + `
			FROM carts
			WHERE customer_id = $1
			  AND NOT in_order
			  AND NOT EXISTS (SELECT 1 FROM new_cart);
		`
	}

	model, err := c.scanCart(q(ctx, c.pool).QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		// Параллельная вставка успела раньше и ещё не была видна
		// снимку запроса; повторное чтение её находит.
		return c.getOpen(ctx, key)
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(model), nil
}

// UpdateTotals сохраняет агрегаты корзины после пересчёта.
func (c *CartRepo) UpdateTotals(ctx context.Context, cartID int64, totalProducts int32, finalPrice int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE carts
		SET total_products = $2, final_price = $3, updated_at = NOW()
		WHERE id = $1;
	`

	if _, err := tx.Exec(ctx, query, cartID, totalProducts, finalPrice); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// MarkOrdered безвозвратно закрывает корзину.
func (c *CartRepo) MarkOrdered(ctx context.Context, cartID int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE carts
		SET in_order = TRUE, updated_at = NOW()
		WHERE id = $1 AND NOT in_order;
	`

	result, err := tx.Exec(ctx, query, cartID)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrCartAlreadyOrdered)
	}

	return nil
}

// Delete удаляет корзину вместе с позициями. Каскад выполняется явно,
// одной транзакцией, без опоры на ORM.
func (c *CartRepo) Delete(ctx context.Context, cartID int64) error {
	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1;`, cartID); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM carts WHERE id = $1;`, cartID); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *CartRepo) getOpen(ctx context.Context, key domain.OwnerKey) (*domain.Cart, error) {
	var (
		query string
		arg   any
	)

	if key.Anonymous() {
		arg = key.SessionToken
		query = `SELECT ` + cartColumns + ` FROM carts WHERE session_token = $1 AND NOT in_order;`
	} else {
		arg = *key.CustomerID
		query = `SELECT ` + cartColumns + ` FROM carts WHERE customer_id = $1 AND NOT in_order;`
	}

	model, err := c.scanCart(q(ctx, c.pool).QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrCartNotFound)
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(model), nil
}

func (c *CartRepo) scanCart(row pgx.Row) (*converter.CartModel, error) {
	var model converter.CartModel
	err := row.Scan(
		&model.ID, &model.CustomerID, &model.SessionToken,
		&model.TotalProducts, &model.FinalPrice,
		&model.InOrder, &model.ForAnonymousUser,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &model, nil
}
