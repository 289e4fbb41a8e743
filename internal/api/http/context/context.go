package context

import (
	"context"
)

type contextKey string

// userEmailKey is the context key used to store and retrieve the
// authenticated user's email.
const userEmailKey contextKey = "user_email"

// Manager carries the authenticated user's identity through request
// contexts. It provides methods to set and retrieve the user email.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserEmailToContext returns a new context carrying the user email.
func (m *Manager) SetUserEmailToContext(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, userEmailKey, email)
}

// GetUserEmailFromContext retrieves the user email from the context.
//
// Returns the email and a boolean indicating whether it was present.
func (m *Manager) GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(userEmailKey).(string)
	if !ok || email == "" {
		return "", false
	}

	return email, true
}
