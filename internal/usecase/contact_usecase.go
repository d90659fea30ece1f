package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/DRSN-tech/bookstore-backend/internal/domain"
	"github.com/DRSN-tech/bookstore-backend/pkg/e"
	"github.com/DRSN-tech/bookstore-backend/pkg/logger"
)

// ContactUseCase обрабатывает форму обратной связи: сохраняет заявку и
// уведомляет администратора.
type ContactUseCase struct {
	contactRepo ContactRepository
	mailer      MailerInfra
	adminAddr   string
	logger      logger.Logger
}

func NewContactUC(contactRepo ContactRepository, mailer MailerInfra, adminAddr string, logger logger.Logger) *ContactUseCase {
	return &ContactUseCase{
		contactRepo: contactRepo,
		mailer:      mailer,
		adminAddr:   adminAddr,
		logger:      logger,
	}
}

// SendMessage валидирует и сохраняет заявку, затем шлёт уведомление
// администратору. Сбой уведомления заявку не отменяет.
func (c *ContactUseCase) SendMessage(ctx context.Context, req *SendMessageReq) error {
	const op = "ContactUseCase.SendMessage"

	if err := validateMessage(req); err != nil {
		return e.Wrap(op, err)
	}

	contact, err := c.contactRepo.Create(ctx, domain.NewContact(req.Name, req.Address, req.Comment))
	if err != nil {
		return e.Wrap(op, err)
	}

	msg := NewMailMessage(
		"Форма контакты заполнена",
		fmt.Sprintf(
			"Пользователь %s оставил заявку с просьбой связаться с ним. Сообщение: %s. Почта пользователя: %s",
			contact.Name,
			contact.Comment,
			contact.Address,
		),
		"",
		[]string{c.adminAddr},
	)
	if err := c.mailer.Send(ctx, msg); err != nil {
		c.logger.Warnf("contact %d: notification delivery failed: %v", contact.ID, e.Wrap(op, err))
	}

	return nil
}

func validateMessage(req *SendMessageReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return e.ErrContactNameRequired
	}

	if strings.TrimSpace(req.Address) == "" {
		return e.ErrContactAddressRequired
	}

	if strings.TrimSpace(req.Comment) == "" {
		return e.ErrContactMessageRequired
	}

	return nil
}
