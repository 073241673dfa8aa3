package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/askaround/internal/logger"
	"github.com/sbilibin2017/askaround/internal/middlewares"
	"github.com/sbilibin2017/askaround/internal/models"
	"github.com/sbilibin2017/askaround/internal/services"
)

const internalErrorMessage = "internal server error"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: message})
}

// writeError maps service errors to status codes. Anything unrecognized is a 500
// with a generic message so storage errors never reach the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrConflict):
		writeMessage(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrForbidden):
		writeMessage(w, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		writeMessage(w, http.StatusUnauthorized, err.Error())
	default:
		logger.FromContext(r.Context()).Errorw("internal server error", "method", r.Method, "path", r.URL.Path, "err", err)
		writeMessage(w, http.StatusInternalServerError, internalErrorMessage)
	}
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return errors.New("invalid request body")
	}
	return nil
}

// pathUUID reads a uuid route parameter; a malformed value is a validation error.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(chi.URLParam(r, name)))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, name+" must be a valid uuid")
		return uuid.Nil, false
	}
	return id, true
}

// currentUser returns the user AuthMiddleware resolved, writing 401 when absent.
func currentUser(w http.ResponseWriter, r *http.Request) (*models.UserDB, bool) {
	user := middlewares.UserFromContext(r.Context())
	if user == nil {
		writeMessage(w, http.StatusUnauthorized, "unauthorized")
		return nil, false
	}
	return user, true
}
