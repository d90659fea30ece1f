package http

import (
	"net/http"

	"github.com/DRSN-tech/bookstore-backend/internal/usecase"
	"github.com/DRSN-tech/bookstore-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	catalogUC usecase.CatalogUC
	logger    logger.Logger
}

func NewCatalogHandler(catalogUC usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC, logger: logger}
}

type CategoryRes struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ProductCount int64  `json:"product_count"`
	ImageURL     string `json:"image_url,omitempty"`
}

type ProductRes struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Author      string `json:"author,omitempty"`
	Description string `json:"description,omitempty"`
	Length      int32  `json:"length,omitempty"`
	Price       string `json:"price"`
	Quantity    int32  `json:"quantity"`
	ImageURL    string `json:"image_url,omitempty"`
}

type MainPageRes struct {
	Categories []CategoryRes `json:"categories"`
	Products   []ProductRes  `json:"products"`
}

type CategoryDetailRes struct {
	Category CategoryRes  `json:"category"`
	Products []ProductRes `json:"products"`
}

type ProductDetailRes struct {
	Product ProductRes   `json:"product"`
	Related []ProductRes `json:"related"`
}

// mainPage
//
//	@Summary		Главная страница
//	@Description	Категории с количеством товаров и последние поступления
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{object}	MainPageRes
//	@Router			/ [get]
func (h *CatalogHandler) mainPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.catalogUC.MainPage(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, &MainPageRes{
		Categories: categoriesRes(page.Categories),
		Products:   productsRes(page.Products),
	})
}

// categoryDetail
//
//	@Summary		Категория каталога
//	@Tags			catalog
//	@Produce		json
//	@Param			slug	path		string	true	"Slug категории"
//	@Success		200		{object}	CategoryDetailRes
//	@Failure		404		{object}	ErrorResponse	"Категория не найдена"
//	@Router			/genres/{slug} [get]
func (h *CatalogHandler) categoryDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.catalogUC.CategoryDetail(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, &CategoryDetailRes{
		Category: categoryRes(detail.Category),
		Products: productsRes(detail.Products),
	})
}

// productDetail
//
//	@Summary		Карточка товара
//	@Description	Товар по типу и slug плюс похожие товары той же категории
//	@Tags			catalog
//	@Produce		json
//	@Param			ctType	path		string	true	"Тип сущности каталога"
//	@Param			slug	path		string	true	"Slug товара"
//	@Success		200		{object}	ProductDetailRes
//	@Failure		404		{object}	ErrorResponse	"Товар не найден"
//	@Router			/books/{ctType}/{slug} [get]
func (h *CatalogHandler) productDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.catalogUC.ProductDetail(r.Context(), chi.URLParam(r, "ctType"), chi.URLParam(r, "slug"))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	product := productRes(usecase.ProductView{Product: detail.Product, ImageURL: detail.ImageURL})
	product.Type = detail.Ref.Type

	WriteSuccess(w, http.StatusOK, &ProductDetailRes{
		Product: product,
		Related: productsRes(detail.Related),
	})
}

func categoryRes(view usecase.CategoryView) CategoryRes {
	return CategoryRes{
		ID:           view.Category.ID,
		Name:         view.Category.Name,
		Slug:         view.Category.Slug,
		ProductCount: view.ProductCount,
		ImageURL:     view.ImageURL,
	}
}

func categoriesRes(views []usecase.CategoryView) []CategoryRes {
	res := make([]CategoryRes, 0, len(views))
	for _, view := range views {
		res = append(res, categoryRes(view))
	}

	return res
}

func productRes(view usecase.ProductView) ProductRes {
	return ProductRes{
		ID:          view.Product.ID,
		Title:       view.Product.Title,
		Slug:        view.Product.Slug,
		Author:      view.Product.Author,
		Description: view.Product.Description,
		Length:      view.Product.Length,
		Price:       formatKopecks(view.Product.Price),
		Quantity:    view.Product.Quantity,
		ImageURL:    view.ImageURL,
	}
}

func productsRes(views []usecase.ProductView) []ProductRes {
	res := make([]ProductRes, 0, len(views))
	for _, view := range views {
		res = append(res, productRes(view))
	}

	return res
}
