package pgdb

import (
	"context"

	"github.com/DRSN-tech/bookstore-backend/internal/domain"
	"github.com/DRSN-tech/bookstore-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/bookstore-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ContactRepo реализует репозиторий обращений формы обратной связи.
type ContactRepo struct {
	pool *pgxpool.Pool
	conv converter.ContactConverter
}

func NewContactRepo(pool *pgxpool.Pool, conv converter.ContactConverter) *ContactRepo {
	return &ContactRepo{pool: pool, conv: conv}
}

func (c *ContactRepo) Create(ctx context.Context, contact *domain.Contact) (*domain.Contact, error) {
	query := `
		INSERT INTO contacts (name, address, comment)
		VALUES ($1, $2, $3)
		RETURNING id, name, address, comment, created_at;
	`

	var model converter.ContactModel
	err := c.pool.QueryRow(ctx, query, contact.Name, contact.Address, contact.Comment).
		Scan(&model.ID, &model.Name, &model.Address, &model.Comment, &model.CreatedAt)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}
