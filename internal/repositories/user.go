package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sbilibin2017/askaround/internal/logger"
	"github.com/sbilibin2017/askaround/internal/models"
)

const userColumns = `
	id, email, password_hash, name, role,
	favorite_question_ids::text AS favorite_question_ids,
	created_at, updated_at`

type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByEmail returns nil, nil when no user has the email.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, query, email)
}

// GetByID returns nil, nil when the user does not exist.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, arg)

	logger.Query(query, []any{arg}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new user. A taken email surfaces as a unique violation.
func (r *UserWriteRepository) Save(ctx context.Context, id uuid.UUID, email, passwordHash, name, role string) (*models.UserDB, error) {
	query := `
		INSERT INTO users (id, email, password_hash, name, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + userColumns

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, id, email, passwordHash, name, role)

	// password hash stays out of the log
	logger.Query(query, []any{id, email, name, role}, user.ID, err)

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateName changes the user's display name. It returns nil, nil when the
// user does not exist.
func (r *UserWriteRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) (*models.UserDB, error) {
	query := `
		UPDATE users
		SET name = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, id, name)

	logger.Query(query, []any{id, name}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// AddFavoriteQuestion appends questionID to the user's favorite set unless it is
// already there. It returns the resulting set and whether it changed.
// sql.ErrNoRows means the user does not exist.
func (r *UserWriteRepository) AddFavoriteQuestion(ctx context.Context, userID, questionID uuid.UUID) ([]uuid.UUID, bool, error) {
	query := `
		UPDATE users
		SET favorite_question_ids = array_append(favorite_question_ids, $2::uuid),
		    updated_at = NOW()
		WHERE id = $1 AND NOT ($2::uuid = ANY(favorite_question_ids))
		RETURNING favorite_question_ids::text`
	return r.mutateFavorites(ctx, query, userID, questionID)
}

// RemoveFavoriteQuestion drops questionID from the user's favorite set. Removing a
// non-member leaves the set untouched and reports false.
// sql.ErrNoRows means the user does not exist.
func (r *UserWriteRepository) RemoveFavoriteQuestion(ctx context.Context, userID, questionID uuid.UUID) ([]uuid.UUID, bool, error) {
	query := `
		UPDATE users
		SET favorite_question_ids = array_remove(favorite_question_ids, $2::uuid),
		    updated_at = NOW()
		WHERE id = $1 AND $2::uuid = ANY(favorite_question_ids)
		RETURNING favorite_question_ids::text`
	return r.mutateFavorites(ctx, query, userID, questionID)
}

func (r *UserWriteRepository) mutateFavorites(ctx context.Context, query string, userID, questionID uuid.UUID) ([]uuid.UUID, bool, error) {
	exec := executor(ctx, r.db, r.txGetter)

	var favorites pq.StringArray
	err := sqlx.GetContext(ctx, exec, &favorites, query, userID, questionID)

	logger.Query(query, []any{userID, questionID}, favorites, err)

	switch {
	case err == nil:
		return models.ParseUUIDs(favorites), true, nil
	case !errors.Is(err, sql.ErrNoRows):
		return nil, false, err
	}

	// nothing updated: either the user is missing or the set already had the desired shape
	const current = `SELECT favorite_question_ids::text FROM users WHERE id = $1`
	err = sqlx.GetContext(ctx, exec, &favorites, current, userID)

	logger.Query(current, []any{userID}, favorites, err)

	if err != nil {
		return nil, false, err
	}
	return models.ParseUUIDs(favorites), false, nil
}
