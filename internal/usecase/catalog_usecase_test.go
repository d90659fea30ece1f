package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/DRSN-tech/bookstore-backend/internal/domain"
	"github.com/DRSN-tech/bookstore-backend/pkg/e"
	"github.com/stretchr/testify/require"
)

type fakeProductRepo struct {
	fixture *catalogFixture
	bySlug  map[string]*domain.Product
	byCat   map[int64][]domain.Product
	latest  []domain.Product
}

func newFakeProductRepo(fixture *catalogFixture) *fakeProductRepo {
	return &fakeProductRepo{
		fixture: fixture,
		bySlug:  make(map[string]*domain.Product),
		byCat:   make(map[int64][]domain.Product),
	}
}

func (r *fakeProductRepo) GetCatalogItem(ctx context.Context, id int64) (*domain.CatalogItem, error) {
	return r.fixture.lookup(ctx, id)
}

func (r *fakeProductRepo) GetCatalogItems(ctx context.Context, ids []int64) ([]domain.CatalogItem, error) {
	result := make([]domain.CatalogItem, 0, len(ids))
	for _, id := range ids {
		if item, err := r.fixture.lookup(ctx, id); err == nil {
			result = append(result, *item)
		}
	}

	return result, nil
}

func (r *fakeProductRepo) GetBySlug(_ context.Context, slug string) (*domain.Product, error) {
	p, ok := r.bySlug[slug]
	if !ok {
		return nil, e.ErrProductNotFound
	}

	c := *p
	return &c, nil
}

func (r *fakeProductRepo) Latest(_ context.Context, limit int) ([]domain.Product, error) {
	if len(r.latest) > limit {
		return r.latest[:limit], nil
	}

	return r.latest, nil
}

func (r *fakeProductRepo) ListByCategory(_ context.Context, categoryID int64) ([]domain.Product, error) {
	return r.byCat[categoryID], nil
}

func (r *fakeProductRepo) Related(_ context.Context, categoryID, excludeID int64, limit int) ([]domain.Product, error) {
	var result []domain.Product
	for _, p := range r.byCat[categoryID] {
		if p.ID != excludeID && len(result) < limit {
			result = append(result, p)
		}
	}

	return result, nil
}

type fakeCategoryRepo struct {
	bySlug    map[string]*domain.Category
	summaries []domain.CategorySummary
}

func (r *fakeCategoryRepo) GetBySlug(_ context.Context, slug string) (*domain.Category, error) {
	c, ok := r.bySlug[slug]
	if !ok {
		return nil, e.ErrCategoryNotFound
	}

	cc := *c
	return &cc, nil
}

func (r *fakeCategoryRepo) ListWithCounts(_ context.Context) ([]domain.CategorySummary, error) {
	return r.summaries, nil
}

type fakeCacheRepo struct {
	mu   sync.Mutex
	data map[domain.ProductRef]domain.CatalogItem
	fail bool
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{data: make(map[domain.ProductRef]domain.CatalogItem)}
}

func (r *fakeCacheRepo) GetCatalogItems(_ context.Context, refs []domain.ProductRef) (map[domain.ProductRef]domain.CatalogItem, error) {
	if r.fail {
		return nil, e.ErrInternalServerError
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	result := make(map[domain.ProductRef]domain.CatalogItem)
	for _, ref := range refs {
		if item, ok := r.data[ref]; ok {
			result[ref] = item
		}
	}

	return result, nil
}

func (r *fakeCacheRepo) SetCatalogItems(_ context.Context, items []domain.CatalogItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		r.data[item.Ref] = item
	}

	return nil
}

type fakeImageRepo struct {
	fail bool
}

func (r *fakeImageRepo) PresignedURL(_ context.Context, objectKey string) (string, error) {
	if r.fail {
		return "", e.ErrInternalServerError
	}

	return "https://img.example.com/" + objectKey, nil
}

func catalogUCForTest(fixture *catalogFixture, productRepo *fakeProductRepo,
	categoryRepo *fakeCategoryRepo, cacheRepo *fakeCacheRepo, imageRepo *fakeImageRepo) *CatalogUseCase {
	return NewCatalogUC(productRepo, categoryRepo, cacheRepo, imageRepo, fixture.registry(), nopLogger{})
}

func TestResolveItemsCacheHit(t *testing.T) {
	fixture := newCatalogFixture()
	productRepo := newFakeProductRepo(fixture)
	cacheRepo := newFakeCacheRepo()

	ref := domain.NewProductRef(domain.CatalogTypeProduct, 1)
	cacheRepo.data[ref] = domain.CatalogItem{Ref: ref, Title: "cached", Price: 500}

	uc := catalogUCForTest(fixture, productRepo, &fakeCategoryRepo{}, cacheRepo, &fakeImageRepo{})

	res, err := uc.ResolveItems(context.Background(), []domain.ProductRef{ref})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	require.Equal(t, "cached", res.Items[0].Title)
	require.Empty(t, res.NotFound)
}

func TestResolveItemsCacheMissFallsBackToDB(t *testing.T) {
	fixture := newCatalogFixture()
	fixture.add(1, "dune", 100000, 10)
	productRepo := newFakeProductRepo(fixture)

	uc := catalogUCForTest(fixture, productRepo, &fakeCategoryRepo{}, newFakeCacheRepo(), &fakeImageRepo{})

	ref := domain.NewProductRef(domain.CatalogTypeProduct, 1)
	res, err := uc.ResolveItems(context.Background(), []domain.ProductRef{ref})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	require.Equal(t, "dune", res.Items[0].Title)
}

func TestResolveItemsNotFound(t *testing.T) {
	fixture := newCatalogFixture()
	fixture.add(1, "dune", 100000, 10)
	productRepo := newFakeProductRepo(fixture)

	uc := catalogUCForTest(fixture, productRepo, &fakeCategoryRepo{}, newFakeCacheRepo(), &fakeImageRepo{})

	known := domain.NewProductRef(domain.CatalogTypeProduct, 1)
	gone := domain.NewProductRef(domain.CatalogTypeProduct, 99)

	res, err := uc.ResolveItems(context.Background(), []domain.ProductRef{known, gone})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	require.Equal(t, []domain.ProductRef{gone}, res.NotFound)
}

func TestResolveItemsCacheFailureNotFatal(t *testing.T) {
	fixture := newCatalogFixture()
	fixture.add(1, "dune", 100000, 10)
	productRepo := newFakeProductRepo(fixture)
	cacheRepo := newFakeCacheRepo()
	cacheRepo.fail = true

	uc := catalogUCForTest(fixture, productRepo, &fakeCategoryRepo{}, cacheRepo, &fakeImageRepo{})

	ref := domain.NewProductRef(domain.CatalogTypeProduct, 1)
	res, err := uc.ResolveItems(context.Background(), []domain.ProductRef{ref})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
}

func TestMainPage(t *testing.T) {
	fixture := newCatalogFixture()
	productRepo := newFakeProductRepo(fixture)
	productRepo.latest = []domain.Product{
		{ID: 5, Title: "dune", Slug: "dune", Price: 100000, ImageKey: "covers/dune.jpg"},
	}
	categoryRepo := &fakeCategoryRepo{
		summaries: []domain.CategorySummary{
			{Category: domain.Category{ID: 1, Name: "Фантастика", Slug: "sci-fi"}, ProductCount: 12},
		},
	}

	uc := catalogUCForTest(fixture, productRepo, categoryRepo, newFakeCacheRepo(), &fakeImageRepo{})

	page, err := uc.MainPage(context.Background())
	require.NoError(t, err)
	require.Len(t, page.Categories, 1)
	require.Equal(t, int64(12), page.Categories[0].ProductCount)
	require.Len(t, page.Products, 1)
	require.Equal(t, "https://img.example.com/covers/dune.jpg", page.Products[0].ImageURL)
}

func TestMainPageImageFailureNotFatal(t *testing.T) {
	fixture := newCatalogFixture()
	productRepo := newFakeProductRepo(fixture)
	productRepo.latest = []domain.Product{
		{ID: 5, Title: "dune", Slug: "dune", Price: 100000, ImageKey: "covers/dune.jpg"},
	}

	uc := catalogUCForTest(fixture, productRepo, &fakeCategoryRepo{}, newFakeCacheRepo(), &fakeImageRepo{fail: true})

	page, err := uc.MainPage(context.Background())
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	require.Empty(t, page.Products[0].ImageURL)
}

func TestCategoryDetail(t *testing.T) {
	fixture := newCatalogFixture()
	productRepo := newFakeProductRepo(fixture)
	productRepo.byCat[1] = []domain.Product{
		{ID: 5, CategoryID: 1, Title: "dune", Slug: "dune", Price: 100000},
		{ID: 6, CategoryID: 1, Title: "solaris", Slug: "solaris", Price: 50000},
	}
	categoryRepo := &fakeCategoryRepo{
		bySlug: map[string]*domain.Category{
			"sci-fi": {ID: 1, Name: "Фантастика", Slug: "sci-fi"},
		},
	}

	uc := catalogUCForTest(fixture, productRepo, categoryRepo, newFakeCacheRepo(), &fakeImageRepo{})

	detail, err := uc.CategoryDetail(context.Background(), "sci-fi")
	require.NoError(t, err)
	require.Equal(t, int64(2), detail.Category.ProductCount)
	require.Len(t, detail.Products, 2)

	_, err = uc.CategoryDetail(context.Background(), "unknown")
	require.ErrorIs(t, err, e.ErrCategoryNotFound)
}

func TestProductDetail(t *testing.T) {
	fixture := newCatalogFixture()
	productRepo := newFakeProductRepo(fixture)
	productRepo.bySlug["dune"] = &domain.Product{ID: 5, CategoryID: 1, Title: "Дюна", Slug: "dune", Price: 100000}
	productRepo.byCat[1] = []domain.Product{
		{ID: 5, CategoryID: 1, Title: "Дюна", Slug: "dune"},
		{ID: 6, CategoryID: 1, Title: "Солярис", Slug: "solaris"},
	}

	uc := catalogUCForTest(fixture, productRepo, &fakeCategoryRepo{}, newFakeCacheRepo(), &fakeImageRepo{})

	detail, err := uc.ProductDetail(context.Background(), domain.CatalogTypeProduct, "dune")
	require.NoError(t, err)
	require.Equal(t, "Дюна", detail.Product.Title)
	require.Equal(t, domain.NewProductRef(domain.CatalogTypeProduct, 5), detail.Ref)

	// Сам товар не попадает в похожие
	require.Len(t, detail.Related, 1)
	require.Equal(t, "Солярис", detail.Related[0].Product.Title)
}

func TestProductDetailUnknownType(t *testing.T) {
	fixture := newCatalogFixture()
	productRepo := newFakeProductRepo(fixture)

	uc := catalogUCForTest(fixture, productRepo, &fakeCategoryRepo{}, newFakeCacheRepo(), &fakeImageRepo{})

	_, err := uc.ProductDetail(context.Background(), "subscription", "dune")
	require.ErrorIs(t, err, e.ErrUnknownCatalogType)
}
