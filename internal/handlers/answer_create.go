package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/askaround/internal/models"
)

// AnswerCreator defines the interface that the service must implement.
type AnswerCreator interface {
	Create(ctx context.Context, authorID uuid.UUID, questionID, content string) (*models.Answer, error)
}

// NewCreateAnswerHandler returns an HTTP handler that answers a question.
// @Summary Answer a question
// @Description Stores the answer and appends it to the question's answer list in the same transaction.
// @Tags answers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createAnswerRequest body models.CreateAnswerRequest true "Answer"
// @Success 201 {object} models.Answer
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Question not found"
// @Router /answers [post]
func NewCreateAnswerHandler(svc AnswerCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req models.CreateAnswerRequest
		if err := decodeJSON(r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		answer, err := svc.Create(r.Context(), user.ID, req.QuestionID, req.Content)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, answer)
	}
}
