package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/askaround/internal/logger"
	"github.com/sbilibin2017/askaround/internal/models"
)

//go:generate mockgen -source=answer.go -destination=answer_mock.go -package=services

// AnswerReader defines read-only operations for answers.
type AnswerReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.AnswerDB, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.AnswerDB, error)
	ListByQuestionID(ctx context.Context, questionID uuid.UUID) ([]models.AnswerDB, error)
}

// AnswerWriter defines write operations for answers.
type AnswerWriter interface {
	Save(ctx context.Context, id uuid.UUID, content string, questionID, authorID uuid.UUID) (*models.AnswerDB, error)
}

// AnswerAppender links a stored answer to its parent question.
type AnswerAppender interface {
	AppendAnswer(ctx context.Context, questionID, answerID uuid.UUID) error
}

// AnswerService posts and lists answers.
type AnswerService struct {
	reader    AnswerReader
	writer    AnswerWriter
	questions AnswerAppender
	events    EventPublisher
}

// NewAnswerService creates a new AnswerService instance.
func NewAnswerService(reader AnswerReader, writer AnswerWriter, questions AnswerAppender, events EventPublisher) *AnswerService {
	return &AnswerService{
		reader:    reader,
		writer:    writer,
		questions: questions,
		events:    events,
	}
}

// Create stores an answer and appends it to the parent question's answer list.
// Both writes share the request transaction, so a failed append leaves no orphan.
func (svc *AnswerService) Create(ctx context.Context, authorID uuid.UUID, questionID, content string) (*models.Answer, error) {
	req := models.CreateAnswerRequest{
		QuestionID: strings.TrimSpace(questionID),
		Content:    strings.TrimSpace(content),
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	qID, err := uuid.Parse(req.QuestionID)
	if err != nil {
		return nil, validationError("question_id must be a valid uuid")
	}

	row, err := svc.writer.Save(ctx, uuid.New(), req.Content, qID, authorID)
	if err != nil {
		if isForeignKeyViolation(err) {
			logger.Log.Infow("answer references a missing row", "question_id", qID, "author_id", authorID, "err", err)
			return nil, missingAnswerParent(err)
		}
		logger.Log.Errorw("failed to save answer", "err", err)
		return nil, err
	}

	if err := svc.questions.AppendAnswer(ctx, qID, row.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrQuestionNotFound
		}
		logger.Log.Errorw("failed to append answer to question", "question_id", qID, "answer_id", row.ID, "err", err)
		return nil, err
	}

	event := newEvent(models.EventAnswerCreated, authorID, qID)
	event.AnswerID = &row.ID
	publishAfterCommit(ctx, svc.events, event)

	answer := models.NewAnswer(row)
	return &answer, nil
}

// missingAnswerParent tells an unknown author from an unknown question by the violated constraint.
func missingAnswerParent(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.Contains(pgErr.ConstraintName, "author") {
		return ErrUserNotFound
	}
	return ErrQuestionNotFound
}

// FindByQuestion lists the answers of a question, newest first.
func (svc *AnswerService) FindByQuestion(ctx context.Context, questionID uuid.UUID) ([]models.Answer, error) {
	rows, err := svc.reader.ListByQuestionID(ctx, questionID)
	if err != nil {
		logger.Log.Errorw("failed to list answers", "question_id", questionID, "err", err)
		return nil, err
	}
	return models.NewAnswers(rows), nil
}

// GetByID returns a single answer with its author expanded.
func (svc *AnswerService) GetByID(ctx context.Context, id uuid.UUID) (*models.Answer, error) {
	row, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get answer", "err", err)
		return nil, err
	}
	if row == nil {
		return nil, ErrAnswerNotFound
	}
	answer := models.NewAnswer(row)
	return &answer, nil
}
