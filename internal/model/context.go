package model

import (
	"context"

	"github.com/google/uuid"
)

// Identity is the verified caller of a request.
type Identity struct {
	UserID   uuid.UUID
	Username string
}

// IsZero reports whether the identity is unauthenticated.
func (i Identity) IsZero() bool {
	return i.UserID == uuid.Nil
}

// ContextManager stores the caller identity in a request context.
type ContextManager interface {
	SetIdentityToContext(ctx context.Context, identity Identity) context.Context
	GetIdentityFromContext(ctx context.Context) (Identity, bool)
}
