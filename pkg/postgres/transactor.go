package postgres

import (
	"context"

	"github.com/DRSN-tech/bookstore-backend/pkg/e"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

// TxManager открывает транзакцию pgx и прокладывает её в контекст,
// откуда репозитории достают её через pkg/tr.
type TxManager struct {
	pool transaction.Transactional
}

func NewTxManager(pool transaction.Transactional) *TxManager {
	return &TxManager{pool: pool}
}

// WithinTransaction выполняет fn внутри одной транзакции.
// При ошибке fn транзакция откатывается целиком.
func (m *TxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	const op = "TxManager.WithinTransaction"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, m.pool)
	if err != nil {
		return e.Wrap(op, err)
	}

	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	if err := fn(ctx); err != nil {
		if tx.IsActive() {
			tx.Rollback(ctx)
		}

		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
