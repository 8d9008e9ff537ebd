package usecases

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/volatiletech/null/v8"

	"campus-market.backend/internal/domain/entities"
	domainerrors "campus-market.backend/internal/domain/errors"
	"campus-market.backend/internal/domain/repositories"
	"campus-market.backend/pkg/crypto"
	"campus-market.backend/pkg/jwt"
	"campus-market.backend/pkg/redis"
)

// SessionStore persists server-side session state.
type SessionStore interface {
	CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

var (
	hashPassword      = crypto.HashPasswordWithCost
	checkPassword     = crypto.CheckPassword
	generateSessionID = crypto.GenerateSessionID
)

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	sessions   SessionStore
	tokens     *jwt.SessionTokenService
	sessionTTL time.Duration
	bcryptCost int
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	sessions SessionStore,
	tokens *jwt.SessionTokenService,
	sessionTTL time.Duration,
	bcryptCost int,
) *AuthUsecase {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	return &AuthUsecase{
		userRepo:   userRepo,
		sessions:   sessions,
		tokens:     tokens,
		sessionTTL: sessionTTL,
		bcryptCost: bcryptCost,
	}
}

// SessionTTL is how long a login stays valid.
func (u *AuthUsecase) SessionTTL() time.Duration {
	return u.sessionTTL
}

// Register creates a student account. It does not log the user in.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.BadRequest(MsgCredentialsRequired)
	}
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	if firstName == "" || lastName == "" {
		return nil, domainerrors.BadRequest("First and last name are required")
	}

	_, err := u.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, emailTaken()
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := hashPassword(input.Password, u.bcryptCost)
	if err != nil {
		return nil, err
	}

	now := nowUTC()
	user := &entities.User{
		ID:             newID(),
		Email:          email,
		PasswordHash:   passwordHash,
		FirstName:      firstName,
		LastName:       lastName,
		University:     null.StringFromPtr(trimmedPtr(input.University)),
		CampusLocation: null.StringFromPtr(trimmedPtr(input.CampusLocation)),
		Role:           entities.UserRoleStudent,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, emailTaken()
		}
		return nil, err
	}
	return user, nil
}

// LoginResult is a successful login: the user and the signed cookie value.
type LoginResult struct {
	User      *entities.User
	Token     string
	SessionID string
}

// Login verifies credentials and opens a server-side session.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*LoginResult, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.BadRequest(MsgCredentialsRequired)
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, invalidCredentials()
		}
		return nil, err
	}
	if !checkPassword(input.Password, user.PasswordHash) {
		return nil, invalidCredentials()
	}

	sessionID, err := generateSessionID()
	if err != nil {
		return nil, err
	}
	data := &redis.SessionData{
		UserID:    user.ID.String(),
		Role:      string(user.Role),
		Email:     user.Email,
		CreatedAt: nowUTC(),
	}
	if err := u.sessions.CreateSession(ctx, sessionID, data, u.sessionTTL); err != nil {
		return nil, err
	}
	token, err := u.tokens.Sign(sessionID)
	if err != nil {
		_ = u.sessions.DeleteSession(ctx, sessionID)
		return nil, err
	}
	return &LoginResult{User: user, Token: token, SessionID: sessionID}, nil
}

// Logout destroys the session behind a cookie value. Unknown or tampered
// cookies are ignored.
func (u *AuthUsecase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	sessionID, err := u.tokens.Parse(token)
	if err != nil {
		return nil
	}
	return u.sessions.DeleteSession(ctx, sessionID)
}

// Authenticate resolves a cookie value into the caller's auth context. The
// role is re-read from the user row so role changes and deletions apply to
// live sessions.
func (u *AuthUsecase) Authenticate(ctx context.Context, token string) (*entities.AuthContext, error) {
	if token == "" {
		return nil, notAuthenticated(domainerrors.ErrUnauthorized)
	}
	sessionID, err := u.tokens.Parse(token)
	if err != nil {
		return nil, notAuthenticated(err)
	}
	data, err := u.sessions.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, redis.ErrSessionNotFound) {
			return nil, notAuthenticated(err)
		}
		return nil, err
	}
	userID, err := parseID(data.UserID, MsgNotAuthenticated)
	if err != nil {
		return nil, notAuthenticated(err)
	}
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			_ = u.sessions.DeleteSession(ctx, sessionID)
			return nil, notAuthenticated(err)
		}
		return nil, err
	}
	return &entities.AuthContext{UserID: user.ID, Role: user.Role, SessionID: sessionID}, nil
}

// Me returns the caller's own user record.
func (u *AuthUsecase) Me(ctx context.Context, auth *entities.AuthContext) (*entities.User, error) {
	if auth == nil {
		return nil, notAuthenticated(domainerrors.ErrUnauthorized)
	}
	user, err := u.userRepo.GetByID(ctx, auth.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(MsgUserNotFound)
		}
		return nil, err
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func emailTaken() *domainerrors.AppError {
	return domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeConflict, MsgEmailRegistered, domainerrors.ErrAlreadyExists)
}

func invalidCredentials() *domainerrors.AppError {
	return domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeInvalidCredentials, MsgInvalidCredentials, domainerrors.ErrInvalidCredentials)
}

func notAuthenticated(err error) *domainerrors.AppError {
	return domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeUnauthorized, MsgNotAuthenticated, err)
}
