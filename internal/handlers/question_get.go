package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/askaround/internal/models"
)

// QuestionGetter defines the interface that the service must implement.
type QuestionGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Question, error)
}

// NewGetQuestionHandler returns an HTTP handler for a single question.
// @Summary Get a question
// @Description Returns the question with its author and answers expanded.
// @Tags questions
// @Produce json
// @Param id path string true "Question id"
// @Success 200 {object} models.Question
// @Failure 400 {object} models.ErrorResponse "Invalid id"
// @Failure 404 {object} models.ErrorResponse "Question not found"
// @Router /questions/{id} [get]
func NewGetQuestionHandler(svc QuestionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathUUID(w, r, "id")
		if !ok {
			return
		}

		question, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, question)
	}
}
