package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/jcmexdev/restaurant-pos/internal/pkg/interceptors"
	"github.com/jcmexdev/restaurant-pos/internal/pkg/interceptors/constants"
)

type rabbitPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

// NewRabbitPublisher dials the broker and declares a durable topic exchange.
func NewRabbitPublisher(url, exchange string) (Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("events: dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("events: open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("events: declare exchange %q: %w", exchange, err)
	}
	return &rabbitPublisher{conn: conn, ch: ch, exchange: exchange}, nil
}

func (r *rabbitPublisher) Publish(ctx context.Context, routingKey string, event OrderEvent) error {
	msg, err := newMessage(ctx, event)
	if err != nil {
		return err
	}
	if err := r.ch.PublishWithContext(ctx, r.exchange, routingKey, false, false, msg); err != nil {
		return fmt.Errorf("events: publish %s for order %s: %w", routingKey, event.OrderID, err)
	}
	return nil
}

func (r *rabbitPublisher) Close() error {
	if r.ch != nil {
		_ = r.ch.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}

// newMessage builds a persistent JSON message carrying the request id header when present.
func newMessage(ctx context.Context, event OrderEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("events: encode order event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		MessageId:    fmt.Sprintf("%s:%d", event.OrderID, event.Version),
		Body:         body,
	}
	if reqID := interceptors.GetMetadataValue(ctx, constants.HeaderXRequestId); reqID != "" {
		msg.Headers = amqp.Table{constants.HeaderXRequestId: reqID}
	}
	return msg, nil
}
