package services_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sbilibin2017/askaround/internal/models"
	"github.com/sbilibin2017/askaround/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type favoriteMocks struct {
	users     *services.MockUserReader
	favorites *services.MockFavoriteWriter
	likes     *services.MockLikeCounter
	questions *services.MockQuestionReader
	answers   *services.MockAnswerReader
	events    *services.MockEventPublisher
}

func newFavoriteService(ctrl *gomock.Controller) (*services.FavoriteService, favoriteMocks) {
	m := favoriteMocks{
		users:     services.NewMockUserReader(ctrl),
		favorites: services.NewMockFavoriteWriter(ctrl),
		likes:     services.NewMockLikeCounter(ctrl),
		questions: services.NewMockQuestionReader(ctrl),
		answers:   services.NewMockAnswerReader(ctrl),
		events:    services.NewMockEventPublisher(ctrl),
	}
	svc := services.NewFavoriteService(m.users, m.favorites, m.likes, m.questions, m.answers, m.events)
	return svc, m
}

func TestFavoriteService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newFavoriteService(ctrl)
	userID, questionID := uuid.New(), uuid.New()

	tests := []struct {
		name    string
		setup   func()
		wantErr error
	}{
		{
			name: "adds and counts the like",
			setup: func() {
				m.favorites.EXPECT().AddFavoriteQuestion(gomock.Any(), userID, questionID).Return([]uuid.UUID{questionID}, true, nil)
				m.likes.EXPECT().IncrementLikeCount(gomock.Any(), questionID).Return(int64(1), nil)
				m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e models.Event) error {
					assert.Equal(t, models.EventFavoriteAdded, e.Type)
					require.NotNil(t, e.LikeCount)
					assert.Equal(t, int64(1), *e.LikeCount)
					return nil
				})
			},
		},
		{
			name: "already favorited",
			setup: func() {
				m.favorites.EXPECT().AddFavoriteQuestion(gomock.Any(), userID, questionID).Return([]uuid.UUID{questionID}, false, nil)
			},
			wantErr: services.ErrFavoriteExists,
		},
		{
			name: "unknown user",
			setup: func() {
				m.favorites.EXPECT().AddFavoriteQuestion(gomock.Any(), userID, questionID).Return(nil, false, sql.ErrNoRows)
			},
			wantErr: services.ErrUserNotFound,
		},
		{
			name: "unknown question",
			setup: func() {
				m.favorites.EXPECT().AddFavoriteQuestion(gomock.Any(), userID, questionID).Return([]uuid.UUID{questionID}, true, nil)
				m.likes.EXPECT().IncrementLikeCount(gomock.Any(), questionID).Return(int64(0), sql.ErrNoRows)
			},
			wantErr: services.ErrQuestionNotFound,
		},
		{
			name: "storage error",
			setup: func() {
				m.favorites.EXPECT().AddFavoriteQuestion(gomock.Any(), userID, questionID).Return(nil, false, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			res, err := svc.Add(context.Background(), userID, questionID)
			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, services.ErrConflict) || errors.Is(tt.wantErr, services.ErrNotFound) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.True(t, res.Changed)
			assert.Equal(t, int64(1), res.LikeCount)
			assert.Equal(t, []uuid.UUID{questionID}, res.FavoriteQuestionIDs)
		})
	}
}

func TestFavoriteService_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newFavoriteService(ctrl)
	userID, questionID := uuid.New(), uuid.New()

	t.Run("removes and decrements", func(t *testing.T) {
		m.favorites.EXPECT().RemoveFavoriteQuestion(gomock.Any(), userID, questionID).Return([]uuid.UUID{}, true, nil)
		m.likes.EXPECT().DecrementLikeCount(gomock.Any(), questionID).Return(int64(0), nil)
		m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Remove(context.Background(), userID, questionID)
		require.NoError(t, err)
		assert.True(t, res.Changed)
		assert.Zero(t, res.LikeCount)
	})

	t.Run("non-member is a no-op", func(t *testing.T) {
		m.favorites.EXPECT().RemoveFavoriteQuestion(gomock.Any(), userID, questionID).Return([]uuid.UUID{}, false, nil)
		m.questions.EXPECT().GetByID(gomock.Any(), questionID).Return(&models.QuestionDB{ID: questionID, LikeCount: 4}, nil)

		res, err := svc.Remove(context.Background(), userID, questionID)
		require.NoError(t, err)
		assert.False(t, res.Changed)
		assert.Equal(t, int64(4), res.LikeCount)
	})

	t.Run("non-member of a missing question", func(t *testing.T) {
		m.favorites.EXPECT().RemoveFavoriteQuestion(gomock.Any(), userID, questionID).Return([]uuid.UUID{}, false, nil)
		m.questions.EXPECT().GetByID(gomock.Any(), questionID).Return(nil, nil)

		res, err := svc.Remove(context.Background(), userID, questionID)
		require.NoError(t, err)
		assert.Zero(t, res.LikeCount)
	})

	t.Run("unknown user", func(t *testing.T) {
		m.favorites.EXPECT().RemoveFavoriteQuestion(gomock.Any(), userID, questionID).Return(nil, false, sql.ErrNoRows)

		_, err := svc.Remove(context.Background(), userID, questionID)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})
}

// favoriteStore backs the favorite and like mocks with shared state.
type favoriteStore struct {
	set   map[uuid.UUID]bool
	likes int64
}

func (s *favoriteStore) ids() []uuid.UUID {
	out := []uuid.UUID{}
	for id := range s.set {
		out = append(out, id)
	}
	return out
}

func TestFavoriteService_AddRemoveSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newFavoriteService(ctrl)
	userID, questionID := uuid.New(), uuid.New()
	store := &favoriteStore{set: map[uuid.UUID]bool{}}

	m.favorites.EXPECT().AddFavoriteQuestion(gomock.Any(), userID, questionID).AnyTimes().
		DoAndReturn(func(_ context.Context, _, q uuid.UUID) ([]uuid.UUID, bool, error) {
			if store.set[q] {
				return store.ids(), false, nil
			}
			store.set[q] = true
			return store.ids(), true, nil
		})
	m.favorites.EXPECT().RemoveFavoriteQuestion(gomock.Any(), userID, questionID).AnyTimes().
		DoAndReturn(func(_ context.Context, _, q uuid.UUID) ([]uuid.UUID, bool, error) {
			if !store.set[q] {
				return store.ids(), false, nil
			}
			delete(store.set, q)
			return store.ids(), true, nil
		})
	m.likes.EXPECT().IncrementLikeCount(gomock.Any(), questionID).AnyTimes().
		DoAndReturn(func(context.Context, uuid.UUID) (int64, error) {
			store.likes++
			return store.likes, nil
		})
	m.likes.EXPECT().DecrementLikeCount(gomock.Any(), questionID).AnyTimes().
		DoAndReturn(func(context.Context, uuid.UUID) (int64, error) {
			store.likes = max(store.likes-1, 0)
			return store.likes, nil
		})
	m.questions.EXPECT().GetByID(gomock.Any(), questionID).AnyTimes().
		DoAndReturn(func(context.Context, uuid.UUID) (*models.QuestionDB, error) {
			return &models.QuestionDB{ID: questionID, LikeCount: store.likes}, nil
		})
	m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).AnyTimes().Return(nil)

	ctx := context.Background()

	res, err := svc.Add(ctx, userID, questionID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.LikeCount)

	_, err = svc.Add(ctx, userID, questionID)
	assert.ErrorIs(t, err, services.ErrFavoriteExists)
	assert.Equal(t, int64(1), store.likes)

	res, err = svc.Remove(ctx, userID, questionID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.LikeCount)

	res, err = svc.Remove(ctx, userID, questionID)
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Equal(t, int64(0), res.LikeCount)
	assert.Empty(t, res.FavoriteQuestionIDs)
}

func TestFavoriteService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newFavoriteService(ctrl)

	q1, q2 := uuid.New(), uuid.New()
	user := &models.UserDB{ID: uuid.New(), FavoriteQuestionIDs: pq.StringArray{q1.String(), q2.String()}}

	t.Run("expands favorites", func(t *testing.T) {
		m.users.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
		m.questions.EXPECT().GetByIDs(gomock.Any(), []uuid.UUID{q1, q2}).Return([]models.QuestionDB{{ID: q2}, {ID: q1}}, nil)
		m.answers.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return(nil, nil)

		got, err := svc.List(context.Background(), user.ID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, q2, got[0].ID)
		assert.Equal(t, q1, got[1].ID)
	})

	t.Run("unknown user", func(t *testing.T) {
		id := uuid.New()
		m.users.EXPECT().GetByID(gomock.Any(), id).Return(nil, nil)

		_, err := svc.List(context.Background(), id)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})
}
