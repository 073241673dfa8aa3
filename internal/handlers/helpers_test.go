package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/askaround/internal/middlewares"
	"github.com/sbilibin2017/askaround/internal/models"
	"github.com/sbilibin2017/askaround/internal/services"
	"github.com/stretchr/testify/require"
)

func withUser(r *http.Request, user *models.UserDB) *http.Request {
	return r.WithContext(middlewares.WithUser(r.Context(), user))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeError(t *testing.T, body []byte) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Error
}

func validationErr(msg string) error {
	return fmt.Errorf("%w: %s", services.ErrValidation, msg)
}
