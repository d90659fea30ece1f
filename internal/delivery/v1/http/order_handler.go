package http

import (
	"encoding/json"
	"net/http"

	"github.com/DRSN-tech/bookstore-backend/internal/domain"
	"github.com/DRSN-tech/bookstore-backend/internal/usecase"
	"github.com/DRSN-tech/bookstore-backend/pkg/e"
	"github.com/DRSN-tech/bookstore-backend/pkg/logger"
)

type OrderHandler struct {
	identityUC usecase.IdentityUC
	cartUC     usecase.CartUC
	orderUC    usecase.OrderUC
	logger     logger.Logger
}

func NewOrderHandler(identityUC usecase.IdentityUC, cartUC usecase.CartUC,
	orderUC usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{
		identityUC: identityUC,
		cartUC:     cartUC,
		orderUC:    orderUC,
		logger:     logger,
	}
}

type PlaceOrderReq struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	BuyingType string `json:"buying_type"`
	Comment    string `json:"comment"`
	OrderDate  string `json:"order_date"` // YYYY-MM-DD
}

type OrderRes struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Status     string `json:"status"`
	BuyingType string `json:"buying_type"`
	Comment    string `json:"comment,omitempty"`
	OrderDate  string `json:"order_date"`
	CreatedAt  string `json:"created_at"`
}

// placeOrder
//
//	@Summary		Оформление заказа
//	@Description	Закрывает открытую корзину и создаёт заказ. Цены пересчитываются по живым данным каталога
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			body	body		PlaceOrderReq	true	"Форма оформления"
//	@Success		201		{object}	OrderRes
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации формы"
//	@Failure		409		{object}	ErrorResponse	"Корзина уже оформлена"
//	@Router			/orders [post]
func (h *OrderHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	orderDate, err := parseOrderDate(req.OrderDate)
	if err != nil {
		WriteError(w, err)
		return
	}

	identity, err := h.identityUC.Resolve(r.Context(), authStateFromCtx(r.Context()))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	cart, err := h.cartUC.GetOrCreateOpenCart(r.Context(), identity.Key)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	order, err := h.orderUC.PlaceOrder(r.Context(), cart, &usecase.PlaceOrderReq{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Address:    req.Address,
		BuyingType: domain.BuyingType(req.BuyingType),
		Comment:    req.Comment,
		OrderDate:  orderDate,
	}, identity)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, orderRes(order))
}

// listOrders
//
//	@Summary		История заказов
//	@Description	Возвращает заказы авторизованного покупателя, новые первыми
//	@Tags			orders
//	@Produce		json
//	@Success		200	{array}		OrderRes
//	@Failure		401	{object}	ErrorResponse	"Требуется аутентификация"
//	@Router			/orders [get]
func (h *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	identity, err := h.identityUC.Resolve(r.Context(), authStateFromCtx(r.Context()))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	orders, err := h.orderUC.ListOrders(r.Context(), identity)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	res := make([]OrderRes, 0, len(orders))
	for i := range orders {
		res = append(res, *orderRes(&orders[i]))
	}

	WriteSuccess(w, http.StatusOK, res)
}

func orderRes(order *domain.Order) *OrderRes {
	return &OrderRes{
		ID:         order.ID,
		FirstName:  order.FirstName,
		LastName:   order.LastName,
		Phone:      order.Phone,
		Address:    order.Address,
		Status:     string(order.Status),
		BuyingType: string(order.BuyingType),
		Comment:    order.Comment,
		OrderDate:  order.OrderDate.Format("2006-01-02"),
		CreatedAt:  order.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
