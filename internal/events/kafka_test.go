package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{writer: w, topic: "kopiloka.orders"}

	at := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	err := p.Publish(context.Background(), Event{
		Type:       TypeOrderPlaced,
		Key:        "ORD-1",
		OccurredAt: at,
		Payload:    map[string]int{"total_price": 185000},
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "ORD-1", string(msg.Key))
	assert.Equal(t, at, msg.Time)
	assert.Equal(t, "event-type", msg.Headers[0].Key)
	assert.Equal(t, TypeOrderPlaced, string(msg.Headers[0].Value))

	var decoded struct {
		Type    string         `json:"type"`
		Payload map[string]int `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, TypeOrderPlaced, decoded.Type)
	assert.Equal(t, 185000, decoded.Payload["total_price"])
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	p := &KafkaPublisher{writer: &fakeWriter{err: errors.New("broker down")}, topic: "t"}

	err := p.Publish(context.Background(), Event{Type: TypeOrderPlaced})
	assert.ErrorContains(t, err, "broker down")
}

func TestNoop(t *testing.T) {
	var p Publisher = Noop{}
	assert.NoError(t, p.Publish(context.Background(), Event{}))
	assert.NoError(t, p.Close())
}
