package models

import "github.com/google/uuid"

// FavoriteResult is returned after a favorite set mutation
// swagger:model FavoriteResult
type FavoriteResult struct {
	// Question that was favorited or unfavorited
	QuestionID uuid.UUID `json:"question_id"`

	// Whether the favorite set changed
	Changed bool `json:"changed"`

	// Like counter of the question after the mutation
	// example: 1
	LikeCount int64 `json:"like_count"`

	// Favorite set after the mutation
	FavoriteQuestionIDs []uuid.UUID `json:"favorite_question_ids"`
}
