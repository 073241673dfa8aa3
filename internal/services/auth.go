package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/askaround/internal/jwt"
	"github.com/sbilibin2017/askaround/internal/logger"
	"github.com/sbilibin2017/askaround/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, id uuid.UUID, email, passwordHash, name, role string) (*models.UserDB, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (*models.UserDB, error)
}

// Tokener issues and decodes access tokens.
type Tokener interface {
	Generate(ctx context.Context, userID uuid.UUID, email, role string) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthService handles registration, login and token resolution.
type AuthService struct {
	reader     UserReader
	writer     UserWriter
	tokens     Tokener
	bcryptCost int
	dummyHash  []byte
}

// AuthOpt configures an AuthService.
type AuthOpt func(*AuthService)

// WithBcryptCost sets the bcrypt work factor used for new passwords.
func WithBcryptCost(cost int) AuthOpt {
	return func(svc *AuthService) {
		svc.bcryptCost = cost
	}
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens Tokener, opts ...AuthOpt) *AuthService {
	svc := &AuthService{
		reader:     reader,
		writer:     writer,
		tokens:     tokens,
		bcryptCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.bcryptCost < bcrypt.MinCost || svc.bcryptCost > bcrypt.MaxCost {
		svc.bcryptCost = bcrypt.DefaultCost
	}

	// compared against on unknown emails so both login failures cost the same
	hash, err := bcrypt.GenerateFromPassword([]byte("askaround-dummy-password"), svc.bcryptCost)
	if err != nil {
		logger.Log.Errorw("failed to prepare dummy hash", "err", err)
	}
	svc.dummyHash = hash

	return svc
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user with the default role and issues a token for it.
func (svc *AuthService) Register(ctx context.Context, email, password, name string) (*models.AuthResponse, error) {
	req := models.RegisterRequest{
		Email:    normalizeEmail(email),
		Password: password,
		Name:     strings.TrimSpace(name),
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	existing, err := svc.reader.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, ErrRegistrationFailed
	}
	if existing != nil {
		logger.Log.Infow("email already registered", "email", req.Email)
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), svc.bcryptCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, ErrRegistrationFailed
	}

	user, err := svc.writer.Save(ctx, uuid.New(), req.Email, string(hashedPassword), req.Name, models.RoleUser)
	if err != nil {
		if isUniqueViolation(err) {
			logger.Log.Infow("email registered concurrently", "email", req.Email)
			return nil, ErrEmailTaken
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, ErrRegistrationFailed
	}

	return svc.issue(ctx, user, ErrRegistrationFailed)
}

// Login authenticates a user and returns a JWT token.
// Unknown email and wrong password fail with the same error.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	req := models.LoginRequest{Email: normalizeEmail(email), Password: password}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	user, err := svc.reader.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(svc.dummyHash, []byte(req.Password))
		logger.Log.Infow("login failed", "email", req.Email)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Log.Infow("login failed", "email", req.Email)
		return nil, ErrInvalidCredentials
	}

	return svc.issue(ctx, user, nil)
}

func (svc *AuthService) issue(ctx context.Context, user *models.UserDB, fallback error) (*models.AuthResponse, error) {
	token, err := svc.tokens.Generate(ctx, user.ID, user.Email, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		if fallback != nil {
			return nil, fallback
		}
		return nil, err
	}

	return &models.AuthResponse{AccessToken: token, User: user.Summary()}, nil
}

// Authenticate resolves a bearer token to the live user record.
func (svc *AuthService) Authenticate(ctx context.Context, token string) (*models.UserDB, error) {
	claims, err := svc.tokens.GetClaims(ctx, token)
	if err != nil {
		logger.Log.Infow("token rejected", "err", err)
		return nil, ErrInvalidToken
	}
	return svc.ResolveUser(ctx, claims.UserID)
}

// ResolveUser returns the user with id, failing with ErrUserGone when it no longer exists.
func (svc *AuthService) ResolveUser(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Infow("token for vanished user", "user_id", id)
		return nil, ErrUserGone
	}
	return user, nil
}

// Profile returns the owner view of the user.
func (svc *AuthService) Profile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	user, err := svc.ResolveUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile := user.Profile()
	return &profile, nil
}

// UpdateProfile changes the display name of userID. Only the account owner may
// do so; anyone else gets ErrForbidden.
func (svc *AuthService) UpdateProfile(ctx context.Context, actorID, userID uuid.UUID, name string) (*models.UserProfile, error) {
	if actorID != userID {
		logger.Log.Infow("cross-user profile update rejected", "actor_id", actorID, "user_id", userID)
		return nil, ErrForbidden
	}

	req := models.UpdateProfileRequest{Name: strings.TrimSpace(name)}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	user, err := svc.writer.UpdateName(ctx, userID, req.Name)
	if err != nil {
		logger.Log.Errorw("failed to update profile", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	profile := user.Profile()
	return &profile, nil
}
