package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sbilibin2017/askaround/internal/geo"
	"github.com/sbilibin2017/askaround/internal/logger"
	"github.com/sbilibin2017/askaround/internal/models"
)

const questionColumns = `
	q.id, q.title, q.content, q.longitude, q.latitude, q.author_id,
	q.answer_ids::text AS answer_ids, q.like_count, q.created_at, q.updated_at,
	u.name AS author_name, u.email AS author_email`

type QuestionReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewQuestionReadRepository(db *sqlx.DB, txGetter TxGetter) *QuestionReadRepository {
	return &QuestionReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the question joined with its author, or nil, nil when absent.
func (r *QuestionReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.QuestionDB, error) {
	query := `
		SELECT ` + questionColumns + `
		FROM questions q
		JOIN users u ON u.id = q.author_id
		WHERE q.id = $1`

	var question models.QuestionDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &question, query, id)

	logger.Query(query, []any{id}, question.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// GetByIDs returns the questions that exist among ids, newest first.
func (r *QuestionReadRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.QuestionDB, error) {
	if len(ids) == 0 {
		return []models.QuestionDB{}, nil
	}

	query := `
		SELECT ` + questionColumns + `
		FROM questions q
		JOIN users u ON u.id = q.author_id
		WHERE q.id = ANY($1::uuid[])
		ORDER BY q.created_at DESC, q.id`
	arg := pq.Array(models.UUIDStrings(ids))

	questions := []models.QuestionDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &questions, query, arg)

	logger.Query(query, []any{ids}, len(questions), err)

	if err != nil {
		return nil, err
	}
	return questions, nil
}

// ListLocations returns the coordinates of every question.
func (r *QuestionReadRepository) ListLocations(ctx context.Context) ([]models.QuestionLocation, error) {
	const query = `SELECT id, longitude, latitude FROM questions`

	locations := []models.QuestionLocation{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &locations, query)

	logger.Query(query, nil, len(locations), err)

	if err != nil {
		return nil, err
	}
	return locations, nil
}

// SearchWithin scans stored coordinates for questions within radius meters of
// the center, nearest first. Only latitudes whose absolute value is at least
// minAbsLatitude are considered; pass 0 to scan every question.
func (r *QuestionReadRepository) SearchWithin(
	ctx context.Context,
	longitude, latitude, radius float64, limit int, minAbsLatitude float64,
) ([]models.GeoHit, error) {
	query := `
		SELECT id, distance FROM (
			SELECT id, 2 * $7::float8 * ASIN(SQRT(LEAST(1,
				POWER(SIN(RADIANS(latitude - $2) / 2), 2) +
				COS(RADIANS($2)) * COS(RADIANS(latitude)) *
				POWER(SIN(RADIANS(longitude - $1) / 2), 2)))) AS distance
			FROM questions
			WHERE latitude BETWEEN $4 AND $5 AND ABS(latitude) >= $6
		) nearby
		WHERE distance <= $3
		ORDER BY distance, id
		LIMIT $8`

	south, north := geo.LatitudeBounds(geo.Point{Longitude: longitude, Latitude: latitude}, radius)
	args := []any{longitude, latitude, radius, south, north, minAbsLatitude, geo.EarthRadiusMeters, limit}

	hits := []models.GeoHit{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &hits, query, args...)

	logger.Query(query, args, len(hits), err)

	if err != nil {
		return nil, err
	}
	return hits, nil
}

type QuestionWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewQuestionWriteRepository(db *sqlx.DB, txGetter TxGetter) *QuestionWriteRepository {
	return &QuestionWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a question with no answers and a zero like counter and returns it
// joined with its author. An unknown author surfaces as a foreign key violation.
func (r *QuestionWriteRepository) Save(
	ctx context.Context,
	id uuid.UUID, title, content string, longitude, latitude float64, authorID uuid.UUID,
) (*models.QuestionDB, error) {
	query := `
		WITH q AS (
			INSERT INTO questions (id, title, content, longitude, latitude, author_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			RETURNING *
		)
		SELECT ` + questionColumns + `
		FROM q
		JOIN users u ON u.id = q.author_id`
	args := []any{id, title, content, longitude, latitude, authorID}

	var question models.QuestionDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &question, query, args...)

	logger.Query(query, args, question.ID, err)

	if err != nil {
		return nil, err
	}
	return &question, nil
}

// AppendAnswer adds answerID to the end of the question's answer list.
// sql.ErrNoRows means the question does not exist.
func (r *QuestionWriteRepository) AppendAnswer(ctx context.Context, questionID, answerID uuid.UUID) error {
	query := `
		UPDATE questions
		SET answer_ids = array_append(answer_ids, $2::uuid), updated_at = NOW()
		WHERE id = $1`
	args := []any{questionID, answerID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Query(query, args, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// IncrementLikeCount atomically adds one like and returns the new count.
// sql.ErrNoRows means the question does not exist.
func (r *QuestionWriteRepository) IncrementLikeCount(ctx context.Context, id uuid.UUID) (int64, error) {
	query := `
		UPDATE questions
		SET like_count = like_count + 1, updated_at = NOW()
		WHERE id = $1
		RETURNING like_count`
	return r.adjustLikeCount(ctx, query, id)
}

// DecrementLikeCount atomically removes one like, never going below zero.
// sql.ErrNoRows means the question does not exist.
func (r *QuestionWriteRepository) DecrementLikeCount(ctx context.Context, id uuid.UUID) (int64, error) {
	query := `
		UPDATE questions
		SET like_count = GREATEST(like_count - 1, 0), updated_at = NOW()
		WHERE id = $1
		RETURNING like_count`
	return r.adjustLikeCount(ctx, query, id)
}

func (r *QuestionWriteRepository) adjustLikeCount(ctx context.Context, query string, id uuid.UUID) (int64, error) {
	var likeCount int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &likeCount, query, id)

	logger.Query(query, []any{id}, likeCount, err)

	return likeCount, err
}
