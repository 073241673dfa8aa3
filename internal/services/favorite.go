package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/askaround/internal/logger"
	"github.com/sbilibin2017/askaround/internal/models"
)

//go:generate mockgen -source=favorite.go -destination=favorite_mock.go -package=services

// FavoriteWriter mutates a user's favorite set. Both methods report sql.ErrNoRows
// for an unknown user.
type FavoriteWriter interface {
	AddFavoriteQuestion(ctx context.Context, userID, questionID uuid.UUID) ([]uuid.UUID, bool, error)
	RemoveFavoriteQuestion(ctx context.Context, userID, questionID uuid.UUID) ([]uuid.UUID, bool, error)
}

// LikeCounter adjusts a question's like counter atomically.
type LikeCounter interface {
	IncrementLikeCount(ctx context.Context, id uuid.UUID) (int64, error)
	DecrementLikeCount(ctx context.Context, id uuid.UUID) (int64, error)
}

// FavoriteService keeps a user's favorite set and the like counters in step.
type FavoriteService struct {
	users     UserReader
	favorites FavoriteWriter
	likes     LikeCounter
	questions QuestionReader
	answers   AnswerReader
	events    EventPublisher
}

// NewFavoriteService creates a new FavoriteService instance.
func NewFavoriteService(
	users UserReader,
	favorites FavoriteWriter,
	likes LikeCounter,
	questions QuestionReader,
	answers AnswerReader,
	events EventPublisher,
) *FavoriteService {
	return &FavoriteService{
		users:     users,
		favorites: favorites,
		likes:     likes,
		questions: questions,
		answers:   answers,
		events:    events,
	}
}

// Add favorites the question for the user and increments its like counter.
// A question already in the set fails with ErrFavoriteExists and changes nothing.
func (svc *FavoriteService) Add(ctx context.Context, userID, questionID uuid.UUID) (*models.FavoriteResult, error) {
	favorites, changed, err := svc.favorites.AddFavoriteQuestion(ctx, userID, questionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		logger.Log.Errorw("failed to add favorite", "user_id", userID, "question_id", questionID, "err", err)
		return nil, err
	}
	if !changed {
		logger.Log.Infow("question already favorited", "user_id", userID, "question_id", questionID)
		return nil, ErrFavoriteExists
	}

	likeCount, err := svc.likes.IncrementLikeCount(ctx, questionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrQuestionNotFound
		}
		logger.Log.Errorw("failed to increment like count", "question_id", questionID, "err", err)
		return nil, err
	}

	event := newEvent(models.EventFavoriteAdded, userID, questionID)
	event.LikeCount = &likeCount
	publishAfterCommit(ctx, svc.events, event)

	return &models.FavoriteResult{
		QuestionID:          questionID,
		Changed:             true,
		LikeCount:           likeCount,
		FavoriteQuestionIDs: favorites,
	}, nil
}

// Remove unfavorites the question. The like counter is decremented only when the
// question was actually in the set; removing a non-member is a successful no-op.
func (svc *FavoriteService) Remove(ctx context.Context, userID, questionID uuid.UUID) (*models.FavoriteResult, error) {
	favorites, changed, err := svc.favorites.RemoveFavoriteQuestion(ctx, userID, questionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		logger.Log.Errorw("failed to remove favorite", "user_id", userID, "question_id", questionID, "err", err)
		return nil, err
	}

	result := &models.FavoriteResult{
		QuestionID:          questionID,
		Changed:             changed,
		FavoriteQuestionIDs: favorites,
	}

	if !changed {
		question, err := svc.questions.GetByID(ctx, questionID)
		if err != nil {
			logger.Log.Errorw("failed to get question", "question_id", questionID, "err", err)
			return nil, err
		}
		if question != nil {
			result.LikeCount = question.LikeCount
		}
		return result, nil
	}

	likeCount, err := svc.likes.DecrementLikeCount(ctx, questionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrQuestionNotFound
		}
		logger.Log.Errorw("failed to decrement like count", "question_id", questionID, "err", err)
		return nil, err
	}
	result.LikeCount = likeCount

	event := newEvent(models.EventFavoriteRemoved, userID, questionID)
	event.LikeCount = &likeCount
	publishAfterCommit(ctx, svc.events, event)

	return result, nil
}

// List returns the user's favorite questions expanded, newest first.
func (svc *FavoriteService) List(ctx context.Context, userID uuid.UUID) ([]models.Question, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	rows, err := svc.questions.GetByIDs(ctx, user.Favorites())
	if err != nil {
		logger.Log.Errorw("failed to load favorite questions", "user_id", userID, "err", err)
		return nil, err
	}

	questions, err := expandQuestions(ctx, svc.answers, rows)
	if err != nil {
		logger.Log.Errorw("failed to expand favorite questions", "user_id", userID, "err", err)
		return nil, err
	}
	return questions, nil
}
