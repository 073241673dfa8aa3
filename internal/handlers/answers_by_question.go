package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/askaround/internal/models"
)

// AnswersByQuestionFinder defines the interface that the service must implement.
type AnswersByQuestionFinder interface {
	FindByQuestion(ctx context.Context, questionID uuid.UUID) ([]models.Answer, error)
}

// NewAnswersByQuestionHandler returns an HTTP handler listing a question's answers.
// @Summary Answers of a question
// @Description Newest first. An unknown question yields an empty list.
// @Tags answers
// @Produce json
// @Param id path string true "Question id"
// @Success 200 {array} models.Answer
// @Failure 400 {object} models.ErrorResponse "Invalid id"
// @Router /answers/question/{id} [get]
func NewAnswersByQuestionHandler(svc AnswersByQuestionFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathUUID(w, r, "id")
		if !ok {
			return
		}

		answers, err := svc.FindByQuestion(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, answers)
	}
}
