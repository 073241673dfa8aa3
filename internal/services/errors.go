package services

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes translated by services.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Error classes. Handlers map these to status codes with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("unavailable")
)

// Error variables
var (
	ErrEmailTaken         = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrFavoriteExists     = fmt.Errorf("%w: question already in favorites", ErrConflict)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	ErrRegistrationFailed = fmt.Errorf("%w: registration failed", ErrUnauthorized)
	ErrInvalidToken       = fmt.Errorf("%w: invalid or expired token", ErrUnauthorized)
	ErrUserGone           = fmt.Errorf("%w: user no longer exists", ErrUnauthorized)
	ErrForbidden          = fmt.Errorf("%w: not allowed to modify another user", ErrUnauthorized)
	ErrUserNotFound       = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrQuestionNotFound   = fmt.Errorf("%w: question not found", ErrNotFound)
	ErrAnswerNotFound     = fmt.Errorf("%w: answer not found", ErrNotFound)
	ErrGeoIndexNotReady   = fmt.Errorf("%w: geo index not ready", ErrUnavailable)
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}
