package repository

import (
	"context"
)

// TokenProvider defines the interface for bearer credential access
type TokenProvider interface {
	// Token returns a currently valid bearer token, refreshing if needed.
	Token(ctx context.Context) (string, error)
	// Invalidate clears the cached credential so the next call refreshes.
	Invalidate()
}
