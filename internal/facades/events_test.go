package facades

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/askaround/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Fake Kafka writer ---
type fakeKafkaWriter struct {
	msgs []kafka.Message
	err  error
}

func (f *fakeKafkaWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func newEvent() models.Event {
	answerID := uuid.New()
	return models.Event{
		ID:         uuid.New(),
		Type:       models.EventAnswerCreated,
		OccurredAt: time.Now().UTC().Truncate(time.Second),
		UserID:     uuid.New(),
		QuestionID: uuid.New(),
		AnswerID:   &answerID,
	}
}

// --- Tests ---
func TestPublish(t *testing.T) {
	writer := &fakeKafkaWriter{}
	facade := NewEventsKafkaFacade(writer)
	event := newEvent()

	require.NoError(t, facade.Publish(context.Background(), event))
	require.Len(t, writer.msgs, 1)

	msg := writer.msgs[0]
	assert.Equal(t, event.QuestionID.String(), string(msg.Key))
	assert.Equal(t, []kafka.Header{{Key: "type", Value: []byte(models.EventAnswerCreated)}}, msg.Headers)

	var decoded models.Event
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, *event.AnswerID, *decoded.AnswerID)
	assert.Nil(t, decoded.LikeCount)
}

func TestPublish_Error(t *testing.T) {
	facade := NewEventsKafkaFacade(&fakeKafkaWriter{err: errors.New("broker down")})

	err := facade.Publish(context.Background(), newEvent())
	assert.Error(t, err)
}

func TestPublish_Disabled(t *testing.T) {
	facade := NewEventsKafkaFacade(nil)

	assert.NoError(t, facade.Publish(context.Background(), newEvent()))
}
