package rabbitmq

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	amqp "github.com/streadway/amqp"
	"go.uber.org/multierr"
)

const (
	// DefaultExchange is the topic exchange order events are published to.
	DefaultExchange = "taproom.orders"
	// DefaultQueue receives every order event.
	DefaultQueue = "order_queue"
	// orderBinding matches order.created, order.shipped and future order events.
	orderBinding = "order.#"
)

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	queue    string
	log      zerolog.Logger
	mu       sync.Mutex // amqp channels are not safe for concurrent publishing
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL      string
	Exchange string
	Queue    string
}

// NewClient connects to RabbitMQ and declares the order exchange and queue.
func NewClient(cfg Config, log zerolog.Logger) (*Client, error) {
	if cfg.Exchange == "" {
		cfg.Exchange = DefaultExchange
	}
	if cfg.Queue == "" {
		cfg.Queue = DefaultQueue
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("failed to open channel: %w", err), conn.Close())
	}

	if err := declare(ch, cfg.Exchange, cfg.Queue); err != nil {
		return nil, multierr.Combine(err, ch.Close(), conn.Close())
	}

	log.Info().Str("exchange", cfg.Exchange).Str("queue", cfg.Queue).Msg("rabbitmq client connected")

	return &Client{
		conn:     conn,
		channel:  ch,
		exchange: cfg.Exchange,
		queue:    cfg.Queue,
		log:      log,
	}, nil
}

func declare(ch *amqp.Channel, exchange, queue string) error {
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}
	if err := ch.QueueBind(queue, orderBinding, exchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue %s: %w", queue, err)
	}
	return nil
}

// Close closes the RabbitMQ channel and connection.
func (c *Client) Close() error {
	var err error
	if c.channel != nil {
		if cerr := c.channel.Close(); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("failed to close channel: %w", cerr))
		}
	}
	if c.conn != nil {
		if cerr := c.conn.Close(); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("failed to close connection: %w", cerr))
		}
	}
	return err
}

// PublishJSON publishes payload as a persistent JSON message with the given
// routing key.
func (c *Client) PublishJSON(routingKey string, payload any) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	msg, err := NewJSONPublishing(payload, time.Now())
	if err != nil {
		return err
	}

	c.mu.Lock()
	err = c.channel.Publish(c.exchange, routingKey, false, false, msg)
	c.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.log.Debug().Str("routing_key", routingKey).Int("bytes", len(msg.Body)).Msg("event published")
	return nil
}

// NewJSONPublishing encodes payload into a persistent amqp message.
func NewJSONPublishing(payload any, at time.Time) (amqp.Publishing, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal event payload: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    at,
	}, nil
}

// ConsumeOrderEvents delivers every message on the order queue to handler
// from a background goroutine. Messages the handler fails are requeued once;
// a redelivered failure is dropped.
func (c *Client) ConsumeOrderEvents(handler func(msg amqp.Delivery) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	msgs, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.log.Info().Str("queue", c.queue).Msg("waiting for order events")

	go func() {
		for msg := range msgs {
			c.handle(msg, handler)
		}
		c.log.Info().Str("queue", c.queue).Msg("order event consumer stopped")
	}()

	return nil
}

func (c *Client) handle(msg amqp.Delivery, handler func(msg amqp.Delivery) error) {
	if err := handler(msg); err != nil {
		c.log.Error().Err(err).Uint64("delivery_tag", msg.DeliveryTag).Str("routing_key", msg.RoutingKey).Msg("error processing message")
		if nackErr := msg.Nack(false, !msg.Redelivered); nackErr != nil {
			c.log.Error().Err(nackErr).Uint64("delivery_tag", msg.DeliveryTag).Msg("error nacking message")
		}
		return
	}
	if ackErr := msg.Ack(false); ackErr != nil {
		c.log.Error().Err(ackErr).Uint64("delivery_tag", msg.DeliveryTag).Msg("error acking message")
	}
}

// LogOrderEvent is a consumer handler that records each order event.
func LogOrderEvent(log zerolog.Logger) func(msg amqp.Delivery) error {
	return func(msg amqp.Delivery) error {
		var event map[string]any
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			return fmt.Errorf("failed to decode order event: %w", err)
		}
		log.Info().Str("routing_key", msg.RoutingKey).Interface("order_id", event["orderId"]).Msg("order event received")
		return nil
	}
}
