package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/bookstore-backend/internal/domain"
	"github.com/DRSN-tech/bookstore-backend/pkg/e"
	"github.com/DRSN-tech/bookstore-backend/pkg/logger"
)

// latestLimit — сколько последних поступлений показывает главная страница.
const latestLimit = 4

// relatedLimit — сколько похожих товаров показывает карточка.
const relatedLimit = 4

// CatalogUseCase — читающая сторона каталога: витрина, карточки,
// разрешение ссылок корзины в данные товара (с кэшем).
type CatalogUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	cacheRepo    CacheRepository
	imageRepo    ImageRepository
	registry     *CatalogRegistry
	logger       logger.Logger
}

func NewCatalogUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	cacheRepo CacheRepository,
	imageRepo ImageRepository,
	registry *CatalogRegistry,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		cacheRepo:    cacheRepo,
		imageRepo:    imageRepo,
		registry:     registry,
		logger:       logger,
	}
}

// MainPage возвращает категории с количеством товаров и последние поступления.
func (c *CatalogUseCase) MainPage(ctx context.Context) (*MainPageRes, error) {
	const op = "CatalogUseCase.MainPage"

	categories, err := c.categoryRepo.ListWithCounts(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	products, err := c.productRepo.Latest(ctx, latestLimit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &MainPageRes{
		Categories: c.categoryViews(ctx, categories),
		Products:   c.productViews(ctx, products),
	}, nil
}

// CategoryDetail возвращает категорию по slug вместе с её товарами.
func (c *CatalogUseCase) CategoryDetail(ctx context.Context, slug string) (*CategoryDetailRes, error) {
	const op = "CatalogUseCase.CategoryDetail"

	category, err := c.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	products, err := c.productRepo.ListByCategory(ctx, category.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &CategoryDetailRes{
		Category: CategoryView{
			Category:     *category,
			ProductCount: int64(len(products)),
			ImageURL:     c.imageURL(ctx, category.ImageKey),
		},
		Products: c.productViews(ctx, products),
	}, nil
}

// ProductDetail возвращает карточку товара по (тип, slug) и похожие товары
// той же категории.
func (c *CatalogUseCase) ProductDetail(ctx context.Context, ctType, slug string) (*ProductDetailRes, error) {
	const op = "CatalogUseCase.ProductDetail"

	if _, ok := c.registryType(ctType); !ok {
		return nil, e.Wrap(op, e.ErrUnknownCatalogType)
	}

	product, err := c.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	related, err := c.productRepo.Related(ctx, product.CategoryID, product.ID, relatedLimit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &ProductDetailRes{
		Product:  *product,
		Ref:      domain.NewProductRef(ctType, product.ID),
		ImageURL: c.imageURL(ctx, product.ImageKey),
		Related:  c.productViews(ctx, related),
	}, nil
}

// ResolveItems разрешает полиморфные ссылки корзины в данные каталога.
// Сначала читается кэш; промахи добираются из БД и фоново докэшируются.
// Ссылки на исчезнувшие товары возвращаются отдельным списком.
func (c *CatalogUseCase) ResolveItems(ctx context.Context, refs []domain.ProductRef) (*ResolveItemsRes, error) {
	const op = "CatalogUseCase.ResolveItems"

	cached, err := c.cacheRepo.GetCatalogItems(ctx, refs)
	if err != nil {
		c.logger.Warnf("catalog cache read failed: %v", e.Wrap(op, err))
		cached = map[domain.ProductRef]domain.CatalogItem{}
	}

	var productIDs []int64
	for _, ref := range refs {
		if _, ok := cached[ref]; ok {
			continue
		}
		if ref.Type == domain.CatalogTypeProduct {
			productIDs = append(productIDs, ref.ID)
		}
	}

	fromDB := make(map[domain.ProductRef]domain.CatalogItem)
	if len(productIDs) > 0 {
		items, err := c.productRepo.GetCatalogItems(ctx, productIDs)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		for _, item := range items {
			fromDB[item.Ref] = item
		}

		// Фоновое докэширование найденного
		go func(items []domain.CatalogItem) {
			bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := c.cacheRepo.SetCatalogItems(bgCtx, items); err != nil {
				c.logger.Warnf("catalog cache write failed: %v", e.Wrap(op, err))
			}
		}(items)
	}

	result := make([]domain.CatalogItem, 0, len(refs))
	notFound := make([]domain.ProductRef, 0)
	for _, ref := range refs {
		if item, ok := cached[ref]; ok {
			result = append(result, item)
			continue
		}

		if item, ok := fromDB[ref]; ok {
			result = append(result, item)
			continue
		}

		// Типы помимо product идут по одному через реестр
		if ref.Type != domain.CatalogTypeProduct {
			item, err := c.registry.Resolve(ctx, ref)
			if err == nil {
				result = append(result, *item)
				continue
			}
		}

		notFound = append(notFound, ref)
	}

	return NewResolveItemsRes(result, notFound), nil
}

func (c *CatalogUseCase) registryType(ctType string) (string, bool) {
	for _, t := range c.registry.Types() {
		if t == ctType {
			return t, true
		}
	}

	return "", false
}

// imageURL возвращает временную ссылку на изображение либо пустую строку.
// Недоступность хранилища изображений не валит запрос каталога.
func (c *CatalogUseCase) imageURL(ctx context.Context, key string) string {
	if key == "" {
		return ""
	}

	url, err := c.imageRepo.PresignedURL(ctx, key)
	if err != nil {
		c.logger.Warnf("failed to presign image %s: %v", key, err)
		return ""
	}

	return url
}

func (c *CatalogUseCase) productViews(ctx context.Context, products []domain.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, ProductView{
			Product:  p,
			ImageURL: c.imageURL(ctx, p.ImageKey),
		})
	}

	return views
}

func (c *CatalogUseCase) categoryViews(ctx context.Context, categories []domain.CategorySummary) []CategoryView {
	views := make([]CategoryView, 0, len(categories))
	for _, cat := range categories {
		views = append(views, CategoryView{
			Category:     cat.Category,
			ProductCount: cat.ProductCount,
			ImageURL:     c.imageURL(ctx, cat.ImageKey),
		})
	}

	return views
}
