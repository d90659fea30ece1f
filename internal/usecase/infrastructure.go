package usecase

import "context"

// Transactor выполняет функцию внутри одной транзакции хранилища.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// MailerInfra — внешний почтовый сток. Доставка fire-and-forget:
// ошибка отправки логируется вызывающей стороной и не откатывает операцию.
type MailerInfra interface {
	Send(ctx context.Context, msg *MailMessage) error
}
