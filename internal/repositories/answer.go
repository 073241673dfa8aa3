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

const answerColumns = `
	a.id, a.content, a.question_id, a.author_id, a.created_at, a.updated_at,
	u.name AS author_name, u.email AS author_email`

type AnswerReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewAnswerReadRepository(db *sqlx.DB, txGetter TxGetter) *AnswerReadRepository {
	return &AnswerReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the answer joined with its author, or nil, nil when absent.
func (r *AnswerReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AnswerDB, error) {
	query := `
		SELECT ` + answerColumns + `
		FROM answers a
		JOIN users u ON u.id = a.author_id
		WHERE a.id = $1`

	var answer models.AnswerDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &answer, query, id)

	logger.Query(query, []any{id}, answer.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

// GetByIDs returns the answers that exist among ids, in no particular order.
func (r *AnswerReadRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.AnswerDB, error) {
	if len(ids) == 0 {
		return []models.AnswerDB{}, nil
	}

	query := `
		SELECT ` + answerColumns + `
		FROM answers a
		JOIN users u ON u.id = a.author_id
		WHERE a.id = ANY($1::uuid[])`

	answers := []models.AnswerDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &answers, query, pq.Array(models.UUIDStrings(ids)))

	logger.Query(query, []any{ids}, len(answers), err)

	if err != nil {
		return nil, err
	}
	return answers, nil
}

// ListByQuestionID returns the answers of a question, newest first.
func (r *AnswerReadRepository) ListByQuestionID(ctx context.Context, questionID uuid.UUID) ([]models.AnswerDB, error) {
	query := `
		SELECT ` + answerColumns + `
		FROM answers a
		JOIN users u ON u.id = a.author_id
		WHERE a.question_id = $1
		ORDER BY a.created_at DESC, a.id`

	answers := []models.AnswerDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &answers, query, questionID)

	logger.Query(query, []any{questionID}, len(answers), err)

	if err != nil {
		return nil, err
	}
	return answers, nil
}

type AnswerWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewAnswerWriteRepository(db *sqlx.DB, txGetter TxGetter) *AnswerWriteRepository {
	return &AnswerWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts an answer and returns it joined with its author. The parent
// question is not checked here; an unknown one surfaces as a foreign key violation.
func (r *AnswerWriteRepository) Save(ctx context.Context, id uuid.UUID, content string, questionID, authorID uuid.UUID) (*models.AnswerDB, error) {
	query := `
		WITH a AS (
			INSERT INTO answers (id, content, question_id, author_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, NOW(), NOW())
			RETURNING *
		)
		SELECT ` + answerColumns + `
		FROM a
		JOIN users u ON u.id = a.author_id`
	args := []any{id, content, questionID, authorID}

	var answer models.AnswerDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &answer, query, args...)

	logger.Query(query, args, answer.ID, err)

	if err != nil {
		return nil, err
	}
	return &answer, nil
}
