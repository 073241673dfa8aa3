package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/askaround/internal/models"
)

// QuestionCreator defines the interface that the service must implement.
type QuestionCreator interface {
	Create(ctx context.Context, authorID uuid.UUID, title, content string, longitude, latitude *float64) (*models.Question, error)
}

// NewCreateQuestionHandler returns an HTTP handler that posts a question at a location.
// @Summary Ask a question
// @Description Stores a question pinned to a WGS84 point. It shows up in nearby searches once indexed.
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createQuestionRequest body models.CreateQuestionRequest true "Question"
// @Success 201 {object} models.Question
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /questions [post]
func NewCreateQuestionHandler(svc QuestionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req models.CreateQuestionRequest
		if err := decodeJSON(r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		question, err := svc.Create(r.Context(), user.ID, req.Title, req.Content, req.Longitude, req.Latitude)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, question)
	}
}
