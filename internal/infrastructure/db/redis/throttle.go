package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginThrottle rate-limits login attempts with a fixed window per
// username and source address.
// Key format: login_attempts:<username>:<ip>
type LoginThrottle struct {
	client      *redis.Client
	maxAttempts int64
	window      time.Duration
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
func NewLoginThrottle(client *redis.Client, maxAttempts int, window time.Duration) *LoginThrottle {
	return &LoginThrottle{
		client:      client,
		maxAttempts: int64(maxAttempts),
		window:      window,
	}
}

// Allow counts this attempt and reports whether it stays within the window
// budget. The first attempt in a window sets the key expiry.
func (t *LoginThrottle) Allow(ctx context.Context, username, ip string) (bool, error) {
	key := t.key(username, ip)

	n, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("throttle incr: %w", err)
	}
	if n == 1 {
		if err := t.client.Expire(ctx, key, t.window).Err(); err != nil {
			return false, fmt.Errorf("throttle expire: %w", err)
		}
	}
	return n <= t.maxAttempts, nil
}

func (t *LoginThrottle) key(username, ip string) string {
	return fmt.Sprintf("login_attempts:%s:%s", username, ip)
}
