package mail

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/DRSN-tech/bookstore-backend/internal/cfg"
	"github.com/DRSN-tech/bookstore-backend/internal/usecase"
	"github.com/DRSN-tech/bookstore-backend/pkg/e"
	"github.com/DRSN-tech/bookstore-backend/pkg/jitter"
	"github.com/DRSN-tech/bookstore-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
)

// Notifier публикует письма в топик почтового стока. Собственно отправку
// SMTP выполняет внешний потребитель топика; витрина только ставит письмо
// в очередь и не ждёт доставки.
type Notifier struct {
	writer *kafka.Writer
	logger logger.Logger
	cfg    *cfg.MailCfg
}

func NewNotifier(logger logger.Logger, cfg *cfg.MailCfg) (*Notifier, error) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    10,
		BatchTimeout: 500 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warnf("Kafka producer error: %s", err.Error())
			}
		},
	}

	return &Notifier{
		writer: writer,
		logger: logger,
		cfg:    cfg,
	}, nil
}

// mailEnvelope — формат сообщения почтового топика.
type mailEnvelope struct {
	EventID   string   `json:"event_id"`
	Timestamp int64    `json:"timestamp"`
	Subject   string   `json:"subject"`
	Body      string   `json:"body"`
	From      string   `json:"from"`
	To        []string `json:"to"`
}

// Send ставит письмо в очередь с повторами и экспоненциальным отступлением.
// Пустой From заполняется служебным адресом из конфигурации.
func (n *Notifier) Send(ctx context.Context, msg *usecase.MailMessage) error {
	const (
		baseBackoff = 100 * time.Millisecond
		maxBackoff  = 2 * time.Second
	)

	from := msg.From
	if from == "" {
		from = n.cfg.From
	}

	envelope := mailEnvelope{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().UnixNano(),
		Subject:   msg.Subject,
		Body:      msg.Body,
		From:      from,
		To:        msg.To,
	}

	value, err := json.Marshal(envelope)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	var key []byte
	if len(msg.To) > 0 {
		key = []byte(msg.To[0])
	}

	var lastErr error
	for attempt := 0; attempt <= n.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := jitter.ExponentialBackoff(baseBackoff, maxBackoff, attempt-1, jitter.DefaultJitter)
			select {
			case <-ctx.Done():
				return e.Wrap(whereami.WhereAmI(), ctx.Err())
			case <-time.After(backoff):
			}
		}

		lastErr = n.writer.WriteMessages(ctx, kafka.Message{
			Key:   key,
			Value: value,
		})
		if lastErr == nil {
			return nil
		}

		n.logger.Warnf("mail enqueue attempt %d failed: %v", attempt+1, lastErr)
	}

	return e.Wrap(whereami.WhereAmI(), lastErr)
}

// EnsureTopic создаёт почтовый топик, если его ещё нет.
func (n *Notifier) EnsureTopic(timeout time.Duration) error {
	conn, err := kafka.Dial(n.cfg.NetworkMode, n.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(n.cfg.Topic)
	if err == nil && len(partitions) > 0 {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		err := conn.CreateTopics(kafka.TopicConfig{
			Topic:             n.cfg.Topic,
			NumPartitions:     n.cfg.Partitions,
			ReplicationFactor: n.cfg.ReplicationFactor,
		})
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), fmt.Errorf("failed to create topic %s: %w", n.cfg.Topic, err))
		}
		return nil
	case <-time.After(timeout):
		_ = conn.Close()
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("timeout: %v, topic: %s", timeout, n.cfg.Topic))
	}
}

func (n *Notifier) Close() error {
	return n.writer.Close()
}
