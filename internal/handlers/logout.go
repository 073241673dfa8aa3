package handlers

import (
	"net/http"

	"github.com/sbilibin2017/askaround/internal/models"
)

// NewLogoutHandler acknowledges a logout. Tokens are stateless, so the client
// discards its own.
// @Summary Logout
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.MessageResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /auth/logout [post]
func NewLogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentUser(w, r); !ok {
			return
		}
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "logged out"})
	}
}
