package messaging

import (
	"context"
	"errors"
	"sync"

	"room-reservation/internal/pkg/config"
	"room-reservation/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrNotConfirmed = errors.New("message not confirmed by broker")

// Publisher sends outbox payloads to a durable queue and waits for the broker confirm.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	queue    string
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

func Dial(cfg config.AMQPConfig) (*amqp.Connection, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errs.Wrap(err, "connect to amqp")
	}
	return conn, nil
}

func NewPublisher(conn *amqp.Connection, cfg config.AMQPConfig) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		cfg.Queue, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		_ = ch.Close()
		return nil, err
	}

	prefetch := cfg.Prefetch
	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		_ = ch.Close()
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		return nil, err
	}

	return &Publisher{
		conn:     conn,
		ch:       ch,
		queue:    cfg.Queue,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

// Publish routes body to the configured queue; topic travels as the message type.
func (p *Publisher) Publish(ctx context.Context, topic string, messageID string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Type:         topic,
		MessageId:    messageID,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return errs.Wrapf(err, "publish to %s", p.queue)
	}

	select {
	case confirmed := <-p.confirms:
		if !confirmed.Ack {
			return ErrNotConfirmed
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Publisher) Close() error {
	chErr := p.ch.Close()
	connErr := p.conn.Close()
	return errors.Join(chErr, connErr)
}
