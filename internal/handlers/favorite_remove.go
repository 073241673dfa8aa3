package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/askaround/internal/models"
)

// FavoriteRemover defines the interface that the service must implement.
type FavoriteRemover interface {
	Remove(ctx context.Context, userID, questionID uuid.UUID) (*models.FavoriteResult, error)
}

// NewRemoveFavoriteHandler returns an HTTP handler that unfavorites a question.
// @Summary Unfavorite a question
// @Description Removing a question that is not a favorite succeeds without changes.
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param questionId path string true "Question id"
// @Success 200 {object} models.FavoriteResult
// @Failure 400 {object} models.ErrorResponse "Invalid id"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /users/favorites/{questionId} [delete]
func NewRemoveFavoriteHandler(svc FavoriteRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		questionID, ok := pathUUID(w, r, "questionId")
		if !ok {
			return
		}

		result, err := svc.Remove(r.Context(), user.ID, questionID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
