package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/askaround/internal/logger"
	"github.com/sbilibin2017/askaround/internal/models"
	"github.com/sbilibin2017/askaround/internal/services"
)

// Tokener extracts the bearer token from a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// Authenticator resolves a token to the user it was issued for.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.UserDB, error)
}

type userContextKey struct{}

// WithUser stores the authenticated user in the context.
func WithUser(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFromContext returns the authenticated user, or nil outside AuthMiddleware.
func UserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userContextKey{}).(*models.UserDB)
	return user
}

// AuthMiddleware rejects requests without a valid bearer token and puts the
// token's user into the request context.
func AuthMiddleware(tokener Tokener, auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.FromContext(ctx).Infow("authorization failed", "err", err)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			user, err := auth.Authenticate(ctx, tokenString)
			if err != nil {
				if errors.Is(err, services.ErrUnauthorized) {
					logger.FromContext(ctx).Infow("authorization failed", "err", err)
					writeJSONError(w, http.StatusUnauthorized, "unauthorized")
					return
				}
				logger.FromContext(ctx).Errorw("failed to authenticate request", "err", err)
				writeJSONError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}
