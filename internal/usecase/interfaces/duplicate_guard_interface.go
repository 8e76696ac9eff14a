package interfaces

import (
	"context"
	"time"
)

// IDuplicateGuard detects repeated submissions of the same request.
//
// Claim atomically reserves key for window. It returns false when the key is
// already held by an earlier claim that has not expired.
type IDuplicateGuard interface {
	Claim(ctx context.Context, key string, window time.Duration) (bool, error)
}
