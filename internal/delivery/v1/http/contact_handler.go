package http

import (
	"encoding/json"
	"net/http"

	"github.com/DRSN-tech/bookstore-backend/internal/usecase"
	"github.com/DRSN-tech/bookstore-backend/pkg/e"
	"github.com/DRSN-tech/bookstore-backend/pkg/logger"
)

type ContactHandler struct {
	contactUC usecase.ContactUC
	logger    logger.Logger
}

func NewContactHandler(contactUC usecase.ContactUC, logger logger.Logger) *ContactHandler {
	return &ContactHandler{contactUC: contactUC, logger: logger}
}

type SendMessageReq struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Comment string `json:"comment"`
}

// sendMessage
//
//	@Summary		Форма обратной связи
//	@Description	Сохраняет обращение и уведомляет администратора
//	@Tags			contact
//	@Accept			json
//	@Produce		json
//	@Param			body	body		SendMessageReq	true	"Обращение"
//	@Success		201		{object}	map[string]interface{}
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/contact [post]
func (h *ContactHandler) sendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	err := h.contactUC.SendMessage(r.Context(), &usecase.SendMessageReq{
		Name:    req.Name,
		Address: req.Address,
		Comment: req.Comment,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"Accepted": true,
	})
}
