package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/askaround/internal/models"
)

// ProfileUpdater defines the interface that the service must implement.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, actorID, userID uuid.UUID, name string) (*models.UserProfile, error)
}

// NewUpdateProfileHandler returns an HTTP handler that renames the user in the path.
// Only the account owner may update it.
// @Summary Update profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Param request body models.UpdateProfileRequest true "New profile"
// @Success 200 {object} models.UserProfile
// @Failure 400 {object} models.ErrorResponse "Invalid input"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Another user's profile"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /users/{id} [patch]
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		userID, ok := pathUUID(w, r, "id")
		if !ok {
			return
		}

		var req models.UpdateProfileRequest
		if err := decodeJSON(r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		profile, err := svc.UpdateProfile(r.Context(), user.ID, userID, req.Name)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}
