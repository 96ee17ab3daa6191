// Package events publishes storefront analytics events to RabbitMQ. Browsing
// and product views are reported here so downstream consumers (recommenders,
// dashboards) can follow what shoppers look at; the storefront itself never
// reads these events back.
package events

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/streadway/amqp"
)

// Event types carried in the message Type header.
const (
	TypeCatalogBrowsed = "catalog.browsed"
	TypeProductViewed  = "product.viewed"
)

// BrowseEvent records one catalog listing request and the criteria it ran
// with.
type BrowseEvent struct {
	SearchText  string    `json:"search_text"`
	Category    string    `json:"category"`
	SortKey     string    `json:"sort_key"`
	ResultCount int       `json:"result_count"`
	At          time.Time `json:"at"`
}

// ViewEvent records one product-detail request.
type ViewEvent struct {
	ProductID int       `json:"product_id"`
	At        time.Time `json:"at"`
}

// Publisher is the narrow interface services depend on. Services treat a nil
// Publisher as "events disabled" and publish failures as non-fatal.
type Publisher interface {
	Publish(eventType string, payload any) error
	Close() error
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL   string
	Queue string
}

// DefaultQueue is the durable queue storefront events are published to.
const DefaultQueue = "storefront_events"

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

// NewClient connects to RabbitMQ and declares the event queue.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Queue == "" {
		cfg.Queue = DefaultQueue
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		cfg.Queue, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s: %w", cfg.Queue, err)
	}

	log.Printf("RabbitMQ client connected, queue %s declared", cfg.Queue)

	return &Client{
		conn:    conn,
		channel: ch,
		queue:   cfg.Queue,
	}, nil
}

// Close closes the RabbitMQ channel and connection.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors closing RabbitMQ client: %v", errs)
	}
	return nil
}

// Publish marshals the payload to JSON and sends it to the event queue with
// the event type in the message Type header.
func (c *Client) Publish(eventType string, payload any) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}

	err = c.channel.Publish(
		"",      // exchange: default exchange
		c.queue, // routing key: the queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Type:         eventType,
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}
	return nil
}

// Consume registers a consumer on the event queue and processes deliveries in
// a background goroutine. Handler errors Nack the message for redelivery;
// successful handling Acks it.
func (c *Client) Consume(handler func(msg amqp.Delivery) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	msgs, err := c.channel.Consume(
		c.queue, // queue
		"",      // consumer tag
		false,   // auto-ack: manual acknowledgement
		false,   // exclusive
		false,   // no-local
		false,   // no-wait
		nil,     // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			if err := handler(msg); err != nil {
				log.Printf("Error processing event %d (%s): %v", msg.DeliveryTag, msg.Type, err)
				if requeueErr := msg.Nack(false, true); requeueErr != nil {
					log.Printf("Error nacking event %d: %v", msg.DeliveryTag, requeueErr)
				}
				continue
			}
			if ackErr := msg.Ack(false); ackErr != nil {
				log.Printf("Error acking event %d: %v", msg.DeliveryTag, ackErr)
			}
		}
	}()

	return nil
}
