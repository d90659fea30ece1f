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

// ProductRepo — читающий репозиторий товаров. Каталог ведётся внешним
// админ-контуром; ядро витрины и корзины только читает его.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{pool: pool, conv: conv}
}

const productColumns = `id, category_id, title, slug, image_key, description, price, author, length, quantity, created_at, updated_at`

// GetCatalogItem возвращает срез данных товара для корзины: живую цену,
// остаток и атрибуты для отображения. Сигнатура совместима с
// usecase.CatalogLookup.
func (p *ProductRepo) GetCatalogItem(ctx context.Context, id int64) (*domain.CatalogItem, error) {
	query := `SELECT id, title, slug, price, quantity, image_key FROM products WHERE id = $1;`

	item, err := scanCatalogItem(q(ctx, p.pool).QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return item, nil
}

// GetCatalogItems возвращает срезы данных товаров по идентификаторам.
// Отсутствующие id просто не попадают в результат.
func (p *ProductRepo) GetCatalogItems(ctx context.Context, ids []int64) ([]domain.CatalogItem, error) {
	query := `SELECT id, title, slug, price, quantity, image_key FROM products WHERE id = ANY($1);`

	rows, err := p.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.CatalogItem, 0, len(ids))
	for rows.Next() {
		item, err := scanCatalogItem(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (p *ProductRepo) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE slug = $1;`

	model, err := p.scanProduct(p.pool.QueryRow(ctx, query, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// Latest возвращает последние добавленные товары для главной страницы.
func (p *ProductRepo) Latest(ctx context.Context, limit int) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id DESC LIMIT $1;`

	return p.list(ctx, query, limit)
}

func (p *ProductRepo) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category_id = $1 ORDER BY title;`

	return p.list(ctx, query, categoryID)
}

// Related возвращает случайные товары той же категории, исключая сам товар.
func (p *ProductRepo) Related(ctx context.Context, categoryID, excludeID int64, limit int) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE category_id = $1 AND id <> $2
		ORDER BY RANDOM()
		LIMIT $3;
	`

	return p.list(ctx, query, categoryID, excludeID, limit)
}

func (p *ProductRepo) list(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var models []*converter.ProductModel
	for rows.Next() {
		model, err := p.scanProduct(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

func (p *ProductRepo) scanProduct(row pgx.Row) (*converter.ProductModel, error) {
	var model converter.ProductModel
	err := row.Scan(
		&model.ID, &model.CategoryID, &model.Title, &model.Slug,
		&model.ImageKey, &model.Description, &model.Price,
		&model.Author, &model.Length, &model.Quantity,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &model, nil
}

func scanCatalogItem(row pgx.Row) (*domain.CatalogItem, error) {
	var item domain.CatalogItem
	err := row.Scan(
		&item.Ref.ID, &item.Title, &item.Slug,
		&item.Price, &item.Quantity, &item.ImageKey,
	)
	if err != nil {
		return nil, err
	}

	item.Ref.Type = domain.CatalogTypeProduct
	return &item, nil
}
