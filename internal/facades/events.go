package facades

import (
	"context"
	"encoding/json"

	"github.com/sbilibin2017/askaround/internal/logger"
	"github.com/sbilibin2017/askaround/internal/metrics"
	"github.com/sbilibin2017/askaround/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter is the subset of *kafka.Writer the facade needs.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// EventsKafkaFacade publishes domain events to a Kafka topic.
type EventsKafkaFacade struct {
	writer KafkaWriter
}

// NewEventsKafkaFacade creates a new facade. A nil writer disables publishing.
func NewEventsKafkaFacade(writer KafkaWriter) *EventsKafkaFacade {
	return &EventsKafkaFacade{writer: writer}
}

// Publish writes the event keyed by its question id, so events of one question
// stay ordered within a partition.
func (f *EventsKafkaFacade) Publish(ctx context.Context, event models.Event) error {
	if f.writer == nil {
		return nil
	}

	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = f.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.QuestionID.String()),
		Value: value,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
		Time: event.OccurredAt,
	})
	metrics.RecordEvent(event.Type, err == nil)
	if err != nil {
		logger.Log.Errorw("failed to publish event via kafka",
			"type", event.Type, "id", event.ID, "error", err)
		return err
	}

	return nil
}
