package models

import (
	"time"

	"github.com/google/uuid"
)

// AnswerDB represents an answer row joined with its author
type AnswerDB struct {
	ID          uuid.UUID `db:"id"`           // Primary key
	Content     string    `db:"content"`      // Free-text body
	QuestionID  uuid.UUID `db:"question_id"`  // Parent question, immutable
	AuthorID    uuid.UUID `db:"author_id"`    // Owning user
	CreatedAt   time.Time `db:"created_at"`   // Creation timestamp
	UpdatedAt   time.Time `db:"updated_at"`   // Last update timestamp
	AuthorName  string    `db:"author_name"`  // Joined from users
	AuthorEmail string    `db:"author_email"` // Joined from users
}

// Answer is the API shape of an answer with its author expanded
// swagger:model Answer
type Answer struct {
	ID         uuid.UUID   `json:"id"`
	Content    string      `json:"content"`
	QuestionID uuid.UUID   `json:"question_id"`
	Author     UserSummary `json:"author"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// NewAnswer converts a row into its API shape.
func NewAnswer(a *AnswerDB) Answer {
	return Answer{
		ID:         a.ID,
		Content:    a.Content,
		QuestionID: a.QuestionID,
		Author:     UserSummary{ID: a.AuthorID, Name: a.AuthorName, Email: a.AuthorEmail},
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// NewAnswers converts rows preserving order.
func NewAnswers(rows []AnswerDB) []Answer {
	out := make([]Answer, len(rows))
	for i := range rows {
		out[i] = NewAnswer(&rows[i])
	}
	return out
}

// CreateAnswerRequest represents the JSON body for answer creation
// swagger:model CreateAnswerRequest
type CreateAnswerRequest struct {
	// required: true
	// example: 6f1c1c1e-8d1b-4d8a-9a52-0d2b7b1c1f00
	QuestionID string `json:"question_id" validate:"required,uuid"`

	// required: true
	// example: Try the place on the corner
	Content string `json:"content" validate:"required"`
}
