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

// CartItemRepo реализует репозиторий позиций корзины поверх PostgreSQL.
type CartItemRepo struct {
	pool *pgxpool.Pool
	conv converter.CartItemConverter
}

func NewCartItemRepo(pool *pgxpool.Pool, conv converter.CartItemConverter) *CartItemRepo {
	return &CartItemRepo{pool: pool, conv: conv}
}

const cartItemColumns = `id, cart_id, customer_id, product_type, product_id, qty, final_price`

// Upsert создаёт позицию с qty = 1 либо увеличивает qty существующей на 1.
// Уникальный индекс (cart_id, product_type, product_id) гарантирует одну
// позицию на товар даже при конкурентных добавлениях.
func (r *CartItemRepo) Upsert(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO cart_items (cart_id, customer_id, product_type, product_id, qty, final_price)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (cart_id, product_type, product_id)
		DO UPDATE SET qty = cart_items.qty + 1
		RETURNING ` + cartItemColumns + `;
	`

	model, err := r.scanItem(tx.QueryRow(ctx, query,
		item.CartID, item.CustomerID, item.ProductType, item.ProductID, item.Qty, item.FinalPrice,
	))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToEntity(model), nil
}

func (r *CartItemRepo) Get(ctx context.Context, cartID int64, ref domain.ProductRef) (*domain.CartItem, error) {
	query := `
		SELECT ` + cartItemColumns + `
		FROM cart_items
		WHERE cart_id = $1 AND product_type = $2 AND product_id = $3;
	`

	model, err := r.scanItem(q(ctx, r.pool).QueryRow(ctx, query, cartID, ref.Type, ref.ID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrCartItemNotFound)
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToEntity(model), nil
}

// Delete удаляет позицию по ссылке на товар.
func (r *CartItemRepo) Delete(ctx context.Context, cartID int64, ref domain.ProductRef) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `DELETE FROM cart_items WHERE cart_id = $1 AND product_type = $2 AND product_id = $3;`

	result, err := tx.Exec(ctx, query, cartID, ref.Type, ref.ID)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrCartItemNotFound)
	}

	return nil
}

func (r *CartItemRepo) DeleteByID(ctx context.Context, itemID int64) error {
	if _, err := q(ctx, r.pool).Exec(ctx, `DELETE FROM cart_items WHERE id = $1;`, itemID); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (r *CartItemRepo) SetQty(ctx context.Context, itemID int64, qty int32) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	result, err := tx.Exec(ctx, `UPDATE cart_items SET qty = $2 WHERE id = $1;`, itemID, qty)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrCartItemNotFound)
	}

	return nil
}

func (r *CartItemRepo) SetFinalPrice(ctx context.Context, itemID int64, finalPrice int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if _, err := tx.Exec(ctx, `UPDATE cart_items SET final_price = $2 WHERE id = $1;`, itemID, finalPrice); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// ListByCart возвращает позиции корзины в порядке добавления.
func (r *CartItemRepo) ListByCart(ctx context.Context, cartID int64) ([]domain.CartItem, error) {
	query := `
		SELECT ` + cartItemColumns + `
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY id;
	`

	rows, err := q(ctx, r.pool).Query(ctx, query, cartID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var models []*converter.CartItemModel
	for rows.Next() {
		var model converter.CartItemModel
		if err := rows.Scan(
			&model.ID, &model.CartID, &model.CustomerID,
			&model.ProductType, &model.ProductID,
			&model.Qty, &model.FinalPrice,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, &model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToArrEntity(models), nil
}

func (r *CartItemRepo) scanItem(row pgx.Row) (*converter.CartItemModel, error) {
	var model converter.CartItemModel
	err := row.Scan(
		&model.ID, &model.CartID, &model.CustomerID,
		&model.ProductType, &model.ProductID,
		&model.Qty, &model.FinalPrice,
	)
	if err != nil {
		return nil, err
	}

	return &model, nil
}
