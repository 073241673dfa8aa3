package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/askaround/internal/models"
)

// Profiler defines the interface that the service must implement.
type Profiler interface {
	Profile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
}

// NewProfileHandler returns an HTTP handler for the authenticated user's profile.
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserProfile
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /auth/profile [get]
func NewProfileHandler(svc Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		profile, err := svc.Profile(r.Context(), user.ID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}
