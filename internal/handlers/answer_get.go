package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/askaround/internal/models"
)

// AnswerGetter defines the interface that the service must implement.
type AnswerGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Answer, error)
}

// NewGetAnswerHandler returns an HTTP handler for a single answer.
// @Summary Get an answer
// @Tags answers
// @Produce json
// @Param id path string true "Answer id"
// @Success 200 {object} models.Answer
// @Failure 400 {object} models.ErrorResponse "Invalid id"
// @Failure 404 {object} models.ErrorResponse "Answer not found"
// @Router /answers/{id} [get]
func NewGetAnswerHandler(svc AnswerGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathUUID(w, r, "id")
		if !ok {
			return
		}

		answer, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, answer)
	}
}
