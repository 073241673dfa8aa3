package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/askaround/internal/models"
)

// FavoriteAdder defines the interface that the service must implement.
type FavoriteAdder interface {
	Add(ctx context.Context, userID, questionID uuid.UUID) (*models.FavoriteResult, error)
}

// NewAddFavoriteHandler returns an HTTP handler that favorites a question.
// @Summary Favorite a question
// @Description Adds the question to the user's favorites and increments its like count.
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param questionId path string true "Question id"
// @Success 200 {object} models.FavoriteResult
// @Failure 400 {object} models.ErrorResponse "Invalid id"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Question not found"
// @Failure 409 {object} models.ErrorResponse "Already favorited"
// @Router /users/favorites/{questionId} [post]
func NewAddFavoriteHandler(svc FavoriteAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		questionID, ok := pathUUID(w, r, "questionId")
		if !ok {
			return
		}

		result, err := svc.Add(r.Context(), user.ID, questionID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
