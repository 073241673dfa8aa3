package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/askaround/internal/models"
)

// FavoritesLister defines the interface that the service must implement.
type FavoritesLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.Question, error)
}

// NewListFavoritesHandler returns an HTTP handler listing the user's favorites.
// @Summary Favorite questions
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Question
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /users/favorites [get]
func NewListFavoritesHandler(svc FavoritesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		questions, err := svc.List(r.Context(), user.ID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, questions)
	}
}
