package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/bookstore-backend/internal/domain"
	"github.com/DRSN-tech/bookstore-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/bookstore-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CategoryRepo — читающий репозиторий жанров.
type CategoryRepo struct {
	pool *pgxpool.Pool
	conv converter.CategoryConverter
}

func NewCategoryRepo(pool *pgxpool.Pool, conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{pool: pool, conv: conv}
}

func (c *CategoryRepo) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	query := `SELECT id, name, slug, image_key, created_at, updated_at FROM categories WHERE slug = $1;`

	var model converter.CategoryModel
	err := c.pool.QueryRow(ctx, query, slug).Scan(
		&model.ID, &model.Name, &model.Slug, &model.ImageKey,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// ListWithCounts возвращает жанры с числом товаров в каждом, для меню витрины.
func (c *CategoryRepo) ListWithCounts(ctx context.Context) ([]domain.CategorySummary, error) {
	query := `
		SELECT c.id, c.name, c.slug, c.image_key, COUNT(p.id)
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		GROUP BY c.id, c.name, c.slug, c.image_key
		ORDER BY c.name;
	`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var result []domain.CategorySummary
	for rows.Next() {
		var s domain.CategorySummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Slug, &s.ImageKey, &s.ProductCount); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
