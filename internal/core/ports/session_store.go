package ports

import (
	"context"
	"time"
)

// SessionStore keeps operator session tokens alive for a bounded time.
type SessionStore interface {
	Save(ctx context.Context, token string, ttl time.Duration) error
	Exists(ctx context.Context, token string) (bool, error)
	Delete(ctx context.Context, token string) error
}
