// Package adapters provides the repository implementations for the auth
// feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"estate_backend/internal/feature/auth/domain/entity"
	"estate_backend/internal/feature/auth/usecase"
)

// userGorm is the GORM implementation of the UserRepository interface.
type userGorm struct {
	db *gorm.DB
}

// Compile-time check that userGorm implements UserRepository.
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm creates a new userGorm instance over the given connection.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create adds a user to the database.
// Returns usecase.ErrEmailAlreadyExists when the email is already taken.
// The connection must be opened with TranslateError so driver-specific
// unique-violation errors surface as gorm.ErrDuplicatedKey.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail retrieves a user by email address.
// Returns usecase.ErrUserNotFound when no user matches.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID retrieves a user by id.
// Returns usecase.ErrUserNotFound when no user matches.
func (r *userGorm) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// UpdateLastLogin records the timestamp of a successful login.
func (r *userGorm) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", id).
		Update("last_login", at).Error
}

// SeedUser is a bundled demo account to insert at startup.
type SeedUser struct {
	ID       string
	Email    string
	Password string // plaintext in the bundle, hashed on insert
	Name     string
}

// EnsureSeed inserts the bundled demo accounts that are not present yet.
// Existing rows win over the bundle, so a changed seed never clobbers a
// stored account.
func (r *userGorm) EnsureSeed(ctx context.Context, users []SeedUser) error {
	for _, s := range users {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&entity.User{}).
			Where("email = ?", s.Email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := &entity.User{
			ID:        s.ID,
			Email:     s.Email,
			Password:  string(hashed),
			Name:      s.Name,
			LastLogin: time.Now(),
		}
		if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
			return err
		}
	}
	return nil
}
