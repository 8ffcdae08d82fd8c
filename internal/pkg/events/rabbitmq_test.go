package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/restaurant-pos/internal/pkg/interceptors/constants"
)

func TestNewMessage(t *testing.T) {
	ctx := context.WithValue(context.Background(), constants.ContextKeyRequestID, "req-42")
	event := OrderEvent{
		OrderID:    "o1",
		TableID:    3,
		Status:     "READY",
		Total:      "21.00",
		Version:    4,
		OccurredAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	msg, err := newMessage(ctx, event)
	require.NoError(t, err)

	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, "o1:4", msg.MessageId)
	assert.Equal(t, "req-42", msg.Headers[constants.HeaderXRequestId])

	var decoded OrderEvent
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, event, decoded)
}

func TestNewMessageWithoutRequestID(t *testing.T) {
	msg, err := newMessage(context.Background(), OrderEvent{OrderID: "o1"})
	require.NoError(t, err)
	assert.Nil(t, msg.Headers)
}

func TestNoopPublisher(t *testing.T) {
	p := NewNoopPublisher()
	assert.NoError(t, p.Publish(context.Background(), RKOrderCreated, OrderEvent{}))
	assert.NoError(t, p.Close())
}
