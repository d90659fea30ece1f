package http

import (
	_ "github.com/DRSN-tech/bookstore-backend/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/bookstore-backend/internal/usecase"
	"github.com/DRSN-tech/bookstore-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(
	identityUC usecase.IdentityUC,
	cartUC usecase.CartUC,
	orderUC usecase.OrderUC,
	catalogUC usecase.CatalogUC,
	contactUC usecase.ContactUC,
) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(SessionMiddleware)

		catalogHandler := NewCatalogHandler(catalogUC, r.logger)
		registerCatalogRoutes(v1, catalogHandler)

		cartHandler := NewCartHandler(identityUC, cartUC, catalogUC, r.logger)
		registerCartRoutes(v1, cartHandler)

		orderHandler := NewOrderHandler(identityUC, cartUC, orderUC, r.logger)
		registerOrderRoutes(v1, orderHandler)

		contactHandler := NewContactHandler(contactUC, r.logger)
		registerContactRoutes(v1, contactHandler)
	})
}

func registerCatalogRoutes(router chi.Router, h *CatalogHandler) {
	router.Get("/", h.mainPage)
	router.Get("/genres/{slug}", h.categoryDetail)
	router.Get("/books/{ctType}/{slug}", h.productDetail)
}

func registerCartRoutes(router chi.Router, h *CartHandler) {
	router.Route("/basket", func(b chi.Router) {
		b.Get("/", h.getBasket)
		b.Route("/items/{ctType}/{id}", func(item chi.Router) {
			item.Post("/", h.addItem)
			item.Delete("/", h.removeItem)
			item.Patch("/", h.setQuantity)
		})
	})
}

func registerOrderRoutes(router chi.Router, h *OrderHandler) {
	router.Route("/orders", func(o chi.Router) {
		o.Post("/", h.placeOrder)
		o.Get("/", h.listOrders)
	})
}

func registerContactRoutes(router chi.Router, h *ContactHandler) {
	router.Post("/contact", h.sendMessage)
}
