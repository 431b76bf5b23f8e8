// Package queue publishes reservation lifecycle events to RabbitMQ.
// Publish failures are logged and returned so callers can ignore them
// without interrupting the main request flow.
package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"tourdesk/config"
	"tourdesk/internal/domain/service"
	"tourdesk/internal/errors"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

const defaultQueueName = "reservation.events"

// amqpPublisher implements service.EventPublisher over a RabbitMQ channel.
// The connection is lazy: it is established on first publish and reused
// across requests.
type amqpPublisher struct {
	url       string
	queueName string
	logger    *slog.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewPublisher is the constructor for amqpPublisher. When no queue section
// is configured a no-op publisher is returned.
func NewPublisher(params Params) service.EventPublisher {
	if params.Config.Queue == nil || params.Config.Queue.URL == "" {
		params.Logger.Info("Message queue not configured, reservation events disabled")

		return &noopPublisher{}
	}

	queueName := params.Config.Queue.QueueName
	if queueName == "" {
		queueName = defaultQueueName
	}

	publisher := &amqpPublisher{
		url:       params.Config.Queue.URL,
		queueName: queueName,
		logger:    params.Logger,
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return publisher.Close()
		},
	})

	return publisher
}

// PublishReservationEvent publishes a reservation lifecycle event.
// Messages are marked persistent so they survive broker restarts.
func (p *amqpPublisher) PublishReservationEvent(ctx context.Context, event *service.ReservationEvent) error {
	ch, err := p.channel()
	if err != nil {
		p.logger.Warn("Failed to open queue channel", slog.Any("error", err))

		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal reservation event")
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",          // default exchange
		p.queueName, // routing key = queue name
		false,       // mandatory
		false,       // immediate
		pub,
	); err != nil {
		p.logger.Warn("Failed to publish reservation event",
			slog.String("event", event.Event),
			slog.Any("error", err),
		)
		// Drop the cached channel so the next publish redials.
		p.reset()

		return errors.Wrap(err, "failed to publish reservation event")
	}

	return nil
}

// Close releases the broker connection.
func (p *amqpPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		err := p.conn.Close()
		p.conn = nil

		return errors.Wrap(err, "failed to close queue connection")
	}

	return nil
}

// channel returns the cached channel, dialing and declaring the queue on
// first use. The queue is durable and the declaration is idempotent.
func (p *amqpPublisher) channel() (*amqp.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}

	// The channel is gone; release any previous connection before redialing
	// so broker-side channel closes do not leak connections.
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
		p.ch = nil
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial message queue")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "failed to open queue channel")
	}

	if _, err := ch.QueueDeclare(
		p.queueName, // name
		true,        // durable
		false,       // autoDelete
		false,       // exclusive
		false,       // noWait
		nil,         // args
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, errors.Wrap(err, "failed to declare queue")
	}

	p.conn = conn
	p.ch = ch

	return ch, nil
}

func (p *amqpPublisher) reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

// noopPublisher discards events when no broker is configured.
type noopPublisher struct{}

func (*noopPublisher) PublishReservationEvent(context.Context, *service.ReservationEvent) error {
	return nil
}

func (*noopPublisher) Close() error {
	return nil
}
