package storage

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-manager/menu-svc/internal/domain"
)

type recordingWriter struct {
	messages []kafka.Message
	err      error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func TestKafkaPublisher_PublishMenuEvent(t *testing.T) {
	at := time.Date(2015, 12, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		event   domain.MenuEvent
		wantKey string
	}{
		{
			name:    "item event keyed by item",
			event:   domain.MenuEvent{ID: "e1", Type: domain.EventItemOrdered, Restaurant: "Diner", Item: "Burger", Quantity: 2, Timestamp: at},
			wantKey: "Burger",
		},
		{
			name:    "catalog event keyed by restaurant",
			event:   domain.MenuEvent{ID: "e2", Type: domain.EventPriceUpdated, Restaurant: "Diner", Percent: -10, Timestamp: at},
			wantKey: "Diner",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			writer := &recordingWriter{}
			publisher := NewKafkaPublisher(writer)

			require.NoError(t, publisher.PublishMenuEvent(context.Background(), testCase.event))

			require.Len(t, writer.messages, 1)
			msg := writer.messages[0]
			assert.Equal(t, testCase.wantKey, string(msg.Key))
			assert.Equal(t, at, msg.Time)

			var decoded domain.MenuEvent
			require.NoError(t, json.Unmarshal(msg.Value, &decoded))
			assert.Equal(t, testCase.event, decoded)
		})
	}
}

func TestKafkaPublisher_PayloadOmitsUnsetFields(t *testing.T) {
	writer := &recordingWriter{}
	event := domain.MenuEvent{ID: "e3", Type: domain.EventItemAdded, Restaurant: "Diner", Item: "Pie",
		Timestamp: time.Date(2015, 12, 10, 0, 0, 0, 0, time.UTC)}

	require.NoError(t, NewKafkaPublisher(writer).PublishMenuEvent(context.Background(), event))

	assert.JSONEq(t,
		`{"id":"e3","type":"item_added","restaurant":"Diner","item":"Pie","timestamp":"2015-12-10T00:00:00Z"}`,
		string(writer.messages[0].Value))
}

func TestKafkaPublisher_WriterError(t *testing.T) {
	writer := &recordingWriter{err: errors.New("leader not available")}

	err := NewKafkaPublisher(writer).PublishMenuEvent(context.Background(), domain.MenuEvent{Type: domain.EventItemAdded})
	assert.ErrorContains(t, err, "leader not available")
}
