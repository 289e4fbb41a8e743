package model

import "context"

// ContextManager stores and retrieves the authenticated user email on a
// request context. Gated operations receive the identity explicitly through
// the context rather than via ambient lookup.
type ContextManager interface {
	SetUserEmailToContext(ctx context.Context, email string) context.Context
	GetUserEmailFromContext(ctx context.Context) (string, bool)
}
