package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"estate_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength defines the minimum password length.
	minPasswordLength = 8
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// Returns ErrEmailAlreadyExists when the email is taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the user matching the given email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves the user matching the given id.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// UpdateLastLogin records a successful login timestamp.
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}

// JWTGenerator defines the interface for JWT token generation.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (platform/jwt).
type JWTGenerator interface {
	// GenerateToken creates a signed JWT token for the given user.
	GenerateToken(userID, email string) (string, error)
}

// PortfolioInitializer provisions the starting portfolio for a new user.
// Implemented by the portfolio feature's ledger.
type PortfolioInitializer interface {
	CreateInitialPortfolio(ctx context.Context, userID string) error
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users        UserRepository
	sessions     SessionRepository
	jwtGenerator JWTGenerator
	portfolios   PortfolioInitializer
	sessionTTL   time.Duration
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository, sessions SessionRepository,
	jwtGenerator JWTGenerator, portfolios PortfolioInitializer, sessionTTL time.Duration) *authUsecase {
	return &authUsecase{
		users:        users,
		sessions:     sessions,
		jwtGenerator: jwtGenerator,
		portfolios:   portfolios,
		sessionTTL:   sessionTTL,
	}
}

// validatePassword checks that the password meets the security requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Signup registers a new user with a hashed password and provisions their
// starting portfolio.
func (u *authUsecase) Signup(ctx context.Context, email, password, name string) (*entity.User, error) {
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		ID:        "user-" + uuid.NewString(),
		Email:     email,
		Password:  string(hashed),
		Name:      name,
		LastLogin: time.Now(),
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	// The portfolio lazily re-creates itself on first access, so a failed
	// provision only costs the injection activity.
	if err := u.portfolios.CreateInitialPortfolio(ctx, user.ID); err != nil {
		slog.Error("failed to provision initial portfolio", "user_id", user.ID, "error", err)
	}

	return user, nil
}

// Login authenticates a user and returns a signed JWT token plus a session
// record on success. A bcrypt comparison runs even when the user does not
// exist, to keep response timing uniform.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, *entity.Session, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// Dummy hash so bcrypt.CompareHashAndPassword is always called.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := u.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		// Login still succeeds; the stale timestamp is cosmetic.
		slog.Warn("failed to update last login", "user_id", user.ID, "error", err)
	}

	session := &entity.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(u.sessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return "", nil, fmt.Errorf("failed to create session: %w", err)
	}

	token, tokenErr := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, session, nil
}

// Logout revokes the given session. Unknown sessions are treated as already
// logged out.
func (u *authUsecase) Logout(ctx context.Context, sessionID string) error {
	if err := u.sessions.Revoke(ctx, sessionID); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil
		}
		return err
	}
	return nil
}

// CurrentUser returns the account for an authenticated user id.
func (u *authUsecase) CurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}
