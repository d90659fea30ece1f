package pgdb

import (
	"context"

	"github.com/DRSN-tech/bookstore-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier — общий срез возможностей pgxpool.Pool и pgx.Tx, позволяющий
// методам репозиториев работать и в транзакции, и вне её.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// q возвращает транзакцию из контекста, если она там есть, иначе пул.
func q(ctx context.Context, pool *pgxpool.Pool) querier {
	if tx, err := tr.TxFromCtx(ctx); err == nil {
		return tx
	}

	return pool
}
