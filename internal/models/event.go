package models

import (
	"time"

	"github.com/google/uuid"
)

// Domain event types published to Kafka
const (
	EventQuestionCreated = "question.created"
	EventAnswerCreated   = "answer.created"
	EventFavoriteAdded   = "favorite.added"
	EventFavoriteRemoved = "favorite.removed"
)

// Event is the JSON payload of a domain event
type Event struct {
	ID         uuid.UUID  `json:"id"`
	Type       string     `json:"type"`
	OccurredAt time.Time  `json:"occurred_at"`
	UserID     uuid.UUID  `json:"user_id"`
	QuestionID uuid.UUID  `json:"question_id"`
	AnswerID   *uuid.UUID `json:"answer_id,omitempty"`
	LikeCount  *int64     `json:"like_count,omitempty"`
}
