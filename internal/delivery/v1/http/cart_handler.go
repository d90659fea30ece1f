package http

import (
	"encoding/json"
	"net/http"

	"github.com/DRSN-tech/bookstore-backend/internal/domain"
	"github.com/DRSN-tech/bookstore-backend/internal/usecase"
	"github.com/DRSN-tech/bookstore-backend/pkg/e"
	"github.com/DRSN-tech/bookstore-backend/pkg/logger"
)

type CartHandler struct {
	identityUC usecase.IdentityUC
	cartUC     usecase.CartUC
	catalogUC  usecase.CatalogUC
	logger     logger.Logger
}

func NewCartHandler(identityUC usecase.IdentityUC, cartUC usecase.CartUC,
	catalogUC usecase.CatalogUC, logger logger.Logger) *CartHandler {
	return &CartHandler{
		identityUC: identityUC,
		cartUC:     cartUC,
		catalogUC:  catalogUC,
		logger:     logger,
	}
}

type CartItemRes struct {
	ProductType string `json:"product_type"`
	ProductID   int64  `json:"product_id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Qty         int32  `json:"qty"`
	FinalPrice  string `json:"final_price"`
}

type CartRes struct {
	ID            int64         `json:"id"`
	TotalProducts int32         `json:"total_products"`
	FinalPrice    string        `json:"final_price"`
	InOrder       bool          `json:"in_order"`
	Items         []CartItemRes `json:"items"`
}

type SetQuantityReq struct {
	Qty int32 `json:"qty"`
}

// getBasket
//
//	@Summary		Текущая корзина
//	@Description	Возвращает открытую корзину владельца, создавая её при отсутствии
//	@Tags			basket
//	@Produce		json
//	@Success		200	{object}	CartRes
//	@Failure		500	{object}	ErrorResponse
//	@Router			/basket [get]
func (h *CartHandler) getBasket(w http.ResponseWriter, r *http.Request) {
	cart, _, err := h.resolveCart(r)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	res, err := h.cartRes(r, cart)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// addItem
//
//	@Summary		Добавление товара в корзину
//	@Description	Добавляет единицу товара; повторное добавление увеличивает количество на 1
//	@Tags			basket
//	@Produce		json
//	@Param			ctType	path		string	true	"Тип сущности каталога"
//	@Param			id		path		int		true	"ID товара"
//	@Success		200		{object}	CartRes
//	@Failure		404		{object}	ErrorResponse	"Товар не найден"
//	@Failure		409		{object}	ErrorResponse	"Корзина уже оформлена"
//	@Router			/basket/items/{ctType}/{id} [post]
func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	ref, err := refFromURL(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	cart, _, err := h.resolveCart(r)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	if _, err := h.cartUC.AddItem(r.Context(), cart, ref); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	res, err := h.cartRes(r, cart)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// removeItem
//
//	@Summary		Удаление товара из корзины
//	@Tags			basket
//	@Produce		json
//	@Param			ctType	path		string	true	"Тип сущности каталога"
//	@Param			id		path		int		true	"ID товара"
//	@Success		200		{object}	CartRes
//	@Failure		404		{object}	ErrorResponse	"Позиции нет в корзине"
//	@Router			/basket/items/{ctType}/{id} [delete]
func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	ref, err := refFromURL(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	cart, _, err := h.resolveCart(r)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	if err := h.cartUC.RemoveItem(r.Context(), cart, ref); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	res, err := h.cartRes(r, cart)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// setQuantity
//
//	@Summary		Изменение количества позиции
//	@Description	Устанавливает точное количество; проверяет остаток на складе
//	@Tags			basket
//	@Accept			json
//	@Produce		json
//	@Param			ctType	path		string			true	"Тип сущности каталога"
//	@Param			id		path		int				true	"ID товара"
//	@Param			body	body		SetQuantityReq	true	"Новое количество"
//	@Success		200		{object}	CartRes
//	@Failure		400		{object}	ErrorResponse	"Неположительное количество"
//	@Failure		409		{object}	ErrorResponse	"Количество превышает остаток"
//	@Router			/basket/items/{ctType}/{id} [patch]
func (h *CartHandler) setQuantity(w http.ResponseWriter, r *http.Request) {
	ref, err := refFromURL(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req SetQuantityReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	cart, _, err := h.resolveCart(r)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	if err := h.cartUC.SetItemQuantity(r.Context(), cart, ref, req.Qty); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	res, err := h.cartRes(r, cart)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// resolveCart возвращает открытую корзину владельца запроса.
func (h *CartHandler) resolveCart(r *http.Request) (*domain.Cart, *usecase.Identity, error) {
	identity, err := h.identityUC.Resolve(r.Context(), authStateFromCtx(r.Context()))
	if err != nil {
		return nil, nil, err
	}

	cart, err := h.cartUC.GetOrCreateOpenCart(r.Context(), identity.Key)
	if err != nil {
		return nil, nil, err
	}

	return cart, identity, nil
}

// cartRes собирает ответ корзины: позиции дополняются данными каталога.
// Позиции исчезнувших товаров в ответ не попадают.
func (h *CartHandler) cartRes(r *http.Request, cart *domain.Cart) (*CartRes, error) {
	items, err := h.cartUC.GetItems(r.Context(), cart.ID)
	if err != nil {
		return nil, err
	}

	refs := make([]domain.ProductRef, 0, len(items))
	for _, item := range items {
		refs = append(refs, domain.NewProductRef(item.ProductType, item.ProductID))
	}

	resolved, err := h.catalogUC.ResolveItems(r.Context(), refs)
	if err != nil {
		return nil, err
	}

	catalog := make(map[domain.ProductRef]domain.CatalogItem, len(resolved.Items))
	for _, item := range resolved.Items {
		catalog[item.Ref] = item
	}

	res := &CartRes{
		ID:            cart.ID,
		TotalProducts: cart.TotalProducts,
		FinalPrice:    formatKopecks(cart.FinalPrice),
		InOrder:       cart.InOrder,
		Items:         make([]CartItemRes, 0, len(items)),
	}

	for _, item := range items {
		ci, ok := catalog[domain.NewProductRef(item.ProductType, item.ProductID)]
		if !ok {
			continue
		}

		res.Items = append(res.Items, CartItemRes{
			ProductType: item.ProductType,
			ProductID:   item.ProductID,
			Title:       ci.Title,
			Slug:        ci.Slug,
			Qty:         item.Qty,
			FinalPrice:  formatKopecks(item.FinalPrice),
		})
	}

	return res, nil
}
