// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered investor account.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user ("user-" + random suffix).
	// Portfolios are keyed by this id.
	ID string `gorm:"primaryKey;size:64" json:"id"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Password is the bcrypt hash of the user's password.
	// This never stores plaintext passwords.
	Password string `gorm:"size:255;not null" json:"-"`

	// Name is the display name shown in the app.
	Name string `gorm:"size:255" json:"name"`

	// LastLogin is the timestamp of the most recent successful login.
	LastLogin time.Time `json:"lastLogin"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"-"`
}
