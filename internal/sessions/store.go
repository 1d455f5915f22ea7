package sessions

import (
	"context"
	"errors"
	"time"
)

// DefaultTTL is how long a session stays valid after login or signup.
const DefaultTTL = 7 * 24 * time.Hour

// ErrNotFound is returned when a token has no live binding (unknown,
// expired, or destroyed — callers cannot distinguish).
var ErrNotFound = errors.New("session not found")

// Store binds opaque session tokens to user ids. Tokens are minted by the
// store itself so callers never pick their own.
type Store interface {
	Create(ctx context.Context, userID uint, ttl time.Duration) (string, error)
	Resolve(ctx context.Context, token string) (uint, error)
	Destroy(ctx context.Context, token string) error
}
