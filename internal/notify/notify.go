package notify

import (
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Queue names consumed by back-office workers.
const (
	OrderCreatedQueue       = "order.created"
	OrderStatusChangedQueue = "order.status_changed"
)

// Publisher delivers order events to interested consumers. Publication is
// fire-and-forget: failures are the caller's to log, never to surface.
type Publisher interface {
	Publish(queueName string, payload any) error
}

// AmqpPublisher implements Publisher over a RabbitMQ connection. A channel is
// opened per publish so the publisher is safe for concurrent use.
type AmqpPublisher struct {
	conn *amqp.Connection
}

func NewAmqpPublisher(conn *amqp.Connection) *AmqpPublisher {
	return &AmqpPublisher{conn: conn}
}

func (p *AmqpPublisher) Publish(queueName string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return err
	}

	return ch.Publish(
		"",        // exchange
		queueName, // routing key (queue name)
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(string, any) error { return nil }

// Dial connects to the broker at url, or returns a NopPublisher when url is
// empty so callers never need a nil check.
func Dial(url string) (Publisher, error) {
	if url == "" {
		return NopPublisher{}, nil
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	return NewAmqpPublisher(conn), nil
}
