package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/DRSN-tech/bookstore-backend/internal/domain"
	"github.com/DRSN-tech/bookstore-backend/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrCategoryNotFound):
		return http.StatusNotFound, e.ErrCategoryNotFound.Error()
	case errors.Is(err, e.ErrCartItemNotFound):
		return http.StatusNotFound, e.ErrCartItemNotFound.Error()
	case errors.Is(err, e.ErrUnknownCatalogType):
		return http.StatusNotFound, e.ErrUnknownCatalogType.Error()
	case errors.Is(err, e.ErrCartAlreadyOrdered):
		return http.StatusConflict, e.ErrCartAlreadyOrdered.Error()
	case errors.Is(err, e.ErrQuantityExceedsStock):
		return http.StatusConflict, e.ErrQuantityExceedsStock.Error()
	case errors.Is(err, e.ErrQuantityNotPositive):
		return http.StatusBadRequest, e.ErrQuantityNotPositive.Error()
	case errors.Is(err, e.ErrFirstNameRequired):
		return http.StatusBadRequest, e.ErrFirstNameRequired.Error()
	case errors.Is(err, e.ErrLastNameRequired):
		return http.StatusBadRequest, e.ErrLastNameRequired.Error()
	case errors.Is(err, e.ErrPhoneRequired):
		return http.StatusBadRequest, e.ErrPhoneRequired.Error()
	case errors.Is(err, e.ErrAddressRequired):
		return http.StatusBadRequest, e.ErrAddressRequired.Error()
	case errors.Is(err, e.ErrInvalidBuyingType):
		return http.StatusBadRequest, e.ErrInvalidBuyingType.Error()
	case errors.Is(err, e.ErrOrderDateInPast):
		return http.StatusBadRequest, e.ErrOrderDateInPast.Error()
	case errors.Is(err, e.ErrContactNameRequired):
		return http.StatusBadRequest, e.ErrContactNameRequired.Error()
	case errors.Is(err, e.ErrContactAddressRequired):
		return http.StatusBadRequest, e.ErrContactAddressRequired.Error()
	case errors.Is(err, e.ErrContactMessageRequired):
		return http.StatusBadRequest, e.ErrContactMessageRequired.Error()
	case errors.Is(err, e.ErrAuthRequired):
		return http.StatusUnauthorized, e.ErrAuthRequired.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, e.ErrMissingFields.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// formatKopecks форматирует сумму в копейках как строку в рублях,
// например 159900 -> "1599.00". Наружу деньги всегда уходят строкой.
func formatKopecks(kopecks int64) string {
	return decimal.NewFromInt(kopecks).Div(decimal.NewFromInt(100)).StringFixed(2)
}

// parseOrderDate разбирает дату получения заказа из формы.
func parseOrderDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, e.ErrMissingFields
	}

	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, e.ErrStatusBadRequest
	}

	return d, nil
}

// refFromURL собирает ссылку на сущность каталога из сегментов пути
// {ctType}/{id}.
func refFromURL(r *http.Request) (domain.ProductRef, error) {
	ctType := chi.URLParam(r, "ctType")

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return domain.ProductRef{}, e.ErrStatusBadRequest
	}

	return domain.NewProductRef(ctType, id), nil
}
