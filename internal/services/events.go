package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/askaround/internal/logger"
	"github.com/sbilibin2017/askaround/internal/models"
	"github.com/sbilibin2017/askaround/internal/tx"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

// EventPublisher delivers domain events to the broker.
type EventPublisher interface {
	Publish(ctx context.Context, event models.Event) error
}

func newEvent(eventType string, userID, questionID uuid.UUID) models.Event {
	return models.Event{
		ID:         uuid.New(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		UserID:     userID,
		QuestionID: questionID,
	}
}

// publishAfterCommit sends the event once the request transaction commits.
// Delivery failures are logged and never fail the request.
func publishAfterCommit(ctx context.Context, publisher EventPublisher, event models.Event) {
	if publisher == nil {
		return
	}
	tx.AfterCommit(ctx, func(ctx context.Context) {
		if err := publisher.Publish(ctx, event); err != nil {
			logger.Log.Warnw("event not delivered", "type", event.Type, "id", event.ID, "error", err)
		}
	})
}
