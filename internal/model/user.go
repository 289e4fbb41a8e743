package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByCredentials(ctx context.Context, email, password string) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// User represents a registered account.
//
// Password is stored and compared in cleartext. This mirrors the documented
// contract of the system being replaced; see DESIGN.md before changing it.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
}

// RegisterParams contains the raw registration form fields.
type RegisterParams struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}
