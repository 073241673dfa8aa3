package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/askaround/internal/jwt"
	"github.com/sbilibin2017/askaround/internal/models"
	"github.com/sbilibin2017/askaround/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(ctrl *gomock.Controller) (*services.AuthService, *services.MockUserReader, *services.MockUserWriter, *services.MockTokener) {
	reader := services.NewMockUserReader(ctrl)
	writer := services.NewMockUserWriter(ctrl)
	tokens := services.NewMockTokener(ctrl)
	svc := services.NewAuthService(reader, writer, tokens, services.WithBcryptCost(bcrypt.MinCost))
	return svc, reader, writer, tokens
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, writer, tokens := newAuthService(ctrl)

	saved := func(email, name string) *models.UserDB {
		return &models.UserDB{ID: uuid.New(), Email: email, Name: name, Role: models.RoleUser, CreatedAt: time.Now()}
	}

	tests := []struct {
		name      string
		email     string
		password  string
		userName  string
		setup     func()
		wantErr   error
		wantEmail string
	}{
		{
			name:     "successful registration normalizes email",
			email:    "  Alice@Example.COM ",
			password: "secret1",
			userName: "Alice",
			setup: func() {
				reader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, nil)
				writer.EXPECT().
					Save(gomock.Any(), gomock.Any(), "alice@example.com", gomock.Any(), "Alice", models.RoleUser).
					Return(saved("alice@example.com", "Alice"), nil)
				tokens.EXPECT().Generate(gomock.Any(), gomock.Any(), "alice@example.com", models.RoleUser).Return("token", nil)
			},
			wantEmail: "alice@example.com",
		},
		{
			name:     "missing name",
			email:    "a@b.io",
			password: "secret1",
			setup:    func() {},
			wantErr:  services.ErrValidation,
		},
		{
			name:     "invalid email",
			email:    "not-an-email",
			password: "secret1",
			userName: "x",
			setup:    func() {},
			wantErr:  services.ErrValidation,
		},
		{
			name:     "short password",
			email:    "a@b.io",
			password: "123",
			userName: "x",
			setup:    func() {},
			wantErr:  services.ErrValidation,
		},
		{
			name:     "email already registered",
			email:    "bob@example.com",
			password: "secret1",
			userName: "Bob",
			setup: func() {
				reader.EXPECT().GetByEmail(gomock.Any(), "bob@example.com").Return(&models.UserDB{ID: uuid.New()}, nil)
			},
			wantErr: services.ErrEmailTaken,
		},
		{
			name:     "concurrent registration hits unique index",
			email:    "carol@example.com",
			password: "secret1",
			userName: "Carol",
			setup: func() {
				reader.EXPECT().GetByEmail(gomock.Any(), "carol@example.com").Return(nil, nil)
				writer.EXPECT().
					Save(gomock.Any(), gomock.Any(), "carol@example.com", gomock.Any(), "Carol", models.RoleUser).
					Return(nil, &pgconn.PgError{Code: "23505"})
			},
			wantErr: services.ErrEmailTaken,
		},
		{
			name:     "reader error",
			email:    "eve@example.com",
			password: "secret1",
			userName: "Eve",
			setup: func() {
				reader.EXPECT().GetByEmail(gomock.Any(), "eve@example.com").Return(nil, errors.New("db error"))
			},
			wantErr: services.ErrRegistrationFailed,
		},
		{
			name:     "writer error",
			email:    "dan@example.com",
			password: "secret1",
			userName: "Dan",
			setup: func() {
				reader.EXPECT().GetByEmail(gomock.Any(), "dan@example.com").Return(nil, nil)
				writer.EXPECT().
					Save(gomock.Any(), gomock.Any(), "dan@example.com", gomock.Any(), "Dan", models.RoleUser).
					Return(nil, errors.New("save error"))
			},
			wantErr: services.ErrRegistrationFailed,
		},
		{
			name:     "token error",
			email:    "fay@example.com",
			password: "secret1",
			userName: "Fay",
			setup: func() {
				reader.EXPECT().GetByEmail(gomock.Any(), "fay@example.com").Return(nil, nil)
				writer.EXPECT().
					Save(gomock.Any(), gomock.Any(), "fay@example.com", gomock.Any(), "Fay", models.RoleUser).
					Return(saved("fay@example.com", "Fay"), nil)
				tokens.EXPECT().Generate(gomock.Any(), gomock.Any(), "fay@example.com", models.RoleUser).Return("", errors.New("sign error"))
			},
			wantErr: services.ErrRegistrationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			resp, err := svc.Register(context.Background(), tt.email, tt.password, tt.userName)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token", resp.AccessToken)
			assert.Equal(t, tt.wantEmail, resp.User.Email)
		})
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, writer, tokens := newAuthService(ctrl)

	var storedHash string
	reader.EXPECT().GetByEmail(gomock.Any(), "h@example.com").Return(nil, nil)
	writer.EXPECT().
		Save(gomock.Any(), gomock.Any(), "h@example.com", gomock.Any(), "H", models.RoleUser).
		DoAndReturn(func(_ context.Context, id uuid.UUID, email, hash, name, role string) (*models.UserDB, error) {
			storedHash = hash
			return &models.UserDB{ID: id, Email: email, Name: name, Role: role, PasswordHash: hash}, nil
		})
	tokens.EXPECT().Generate(gomock.Any(), gomock.Any(), "h@example.com", models.RoleUser).Return("t", nil)

	_, err := svc.Register(context.Background(), "h@example.com", "plaintext", "H")
	require.NoError(t, err)

	assert.NotEqual(t, "plaintext", storedHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("plaintext")))
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _, tokens := newAuthService(ctrl)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	user := &models.UserDB{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		Name:         "Alice",
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}

	tests := []struct {
		name     string
		email    string
		password string
		setup    func()
		wantErr  error
	}{
		{
			name:     "successful login",
			email:    "ALICE@example.com",
			password: "secret1",
			setup: func() {
				reader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(user, nil)
				tokens.EXPECT().Generate(gomock.Any(), user.ID, user.Email, user.Role).Return("token", nil)
			},
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "secret1",
			setup: func() {
				reader.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "alice@example.com",
			password: "wrong",
			setup: func() {
				reader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(user, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:    "missing password",
			email:   "alice@example.com",
			setup:   func() {},
			wantErr: services.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			resp, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token", resp.AccessToken)
			assert.Equal(t, user.Summary(), resp.User)
		})
	}
}

func TestAuthService_Login_SameErrorForBothFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _, _ := newAuthService(ctrl)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	reader.EXPECT().GetByEmail(gomock.Any(), "a@example.com").Return(&models.UserDB{ID: uuid.New(), PasswordHash: string(hash)}, nil)
	reader.EXPECT().GetByEmail(gomock.Any(), "b@example.com").Return(nil, nil)

	_, errWrongPassword := svc.Login(context.Background(), "a@example.com", "nope")
	_, errUnknownEmail := svc.Login(context.Background(), "b@example.com", "nope")

	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
}

func TestAuthService_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _, tokens := newAuthService(ctrl)
	userID := uuid.New()

	t.Run("valid token", func(t *testing.T) {
		tokens.EXPECT().GetClaims(gomock.Any(), "good").Return(&jwt.Claims{UserID: userID}, nil)
		reader.EXPECT().GetByID(gomock.Any(), userID).Return(&models.UserDB{ID: userID}, nil)

		user, err := svc.Authenticate(context.Background(), "good")
		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
	})

	t.Run("invalid token", func(t *testing.T) {
		tokens.EXPECT().GetClaims(gomock.Any(), "bad").Return(nil, jwt.ErrInvalidToken)

		_, err := svc.Authenticate(context.Background(), "bad")
		assert.ErrorIs(t, err, services.ErrInvalidToken)
		assert.ErrorIs(t, err, services.ErrUnauthorized)
	})

	t.Run("user deleted after token was issued", func(t *testing.T) {
		tokens.EXPECT().GetClaims(gomock.Any(), "orphan").Return(&jwt.Claims{UserID: userID}, nil)
		reader.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)

		_, err := svc.Authenticate(context.Background(), "orphan")
		assert.ErrorIs(t, err, services.ErrUserGone)
	})
}

func TestAuthService_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _, _ := newAuthService(ctrl)
	user := &models.UserDB{ID: uuid.New(), Email: "p@example.com", Name: "P", Role: models.RoleAdmin, PasswordHash: "hash"}

	reader.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
	profile, err := svc.Profile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Profile(), *profile)

	reader.EXPECT().GetByID(gomock.Any(), user.ID).Return(nil, errors.New("db down"))
	_, err = svc.Profile(context.Background(), user.ID)
	assert.Error(t, err)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, writer, _ := newAuthService(ctrl)
	userID := uuid.New()

	tests := []struct {
		name    string
		actorID uuid.UUID
		newName string
		setup   func()
		wantErr error
	}{
		{
			name:    "owner renames",
			actorID: userID,
			newName: "  Bob ",
			setup: func() {
				writer.EXPECT().UpdateName(gomock.Any(), userID, "Bob").
					Return(&models.UserDB{ID: userID, Name: "Bob", Email: "b@example.com", Role: models.RoleUser}, nil)
			},
		},
		{
			name:    "another user is forbidden",
			actorID: uuid.New(),
			newName: "Mallory",
			wantErr: services.ErrForbidden,
		},
		{
			name:    "blank name",
			actorID: userID,
			newName: "   ",
			wantErr: services.ErrValidation,
		},
		{
			name:    "user vanished",
			actorID: userID,
			newName: "Bob",
			setup: func() {
				writer.EXPECT().UpdateName(gomock.Any(), userID, "Bob").Return(nil, nil)
			},
			wantErr: services.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			profile, err := svc.UpdateProfile(context.Background(), tt.actorID, userID, tt.newName)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, profile)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Bob", profile.Name)
			assert.Equal(t, userID, profile.ID)
		})
	}

	assert.ErrorIs(t, services.ErrForbidden, services.ErrUnauthorized)
}
