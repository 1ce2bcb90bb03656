package redis

import (
	"context"
	"fmt"
	"time"
)

// RateLimiterOptions configures a fixed-window rate limiter.
type RateLimiterOptions struct {
	// Limit is the maximum number of allowed hits per window
	Limit int64
	// Window is the length of the counting window
	Window time.Duration
	// Namespace prefixes the counter keys
	Namespace string
}

// NewRateLimiterOptions creates options with default values
func NewRateLimiterOptions() *RateLimiterOptions {
	return &RateLimiterOptions{
		Limit:     10,
		Window:    time.Minute,
		Namespace: "rate_limit",
	}
}

// WithLimit sets the maximum number of hits per window
func (o *RateLimiterOptions) WithLimit(limit int64) *RateLimiterOptions {
	o.Limit = limit
	return o
}

// WithWindow sets the window length
func (o *RateLimiterOptions) WithWindow(window time.Duration) *RateLimiterOptions {
	o.Window = window
	return o
}

// WithNamespace sets the key namespace
func (o *RateLimiterOptions) WithNamespace(namespace string) *RateLimiterOptions {
	o.Namespace = namespace
	return o
}

// RateLimiter implements a fixed-window counter over Redis. Each key gets one
// counter per window; the first hit of a window sets the expiry.
type RateLimiter struct {
	client *Client
	opts   *RateLimiterOptions
}

// NewRateLimiter creates a new rate limiter. A non-positive window or limit
// falls back to the defaults, since the window length is used as a divisor.
func NewRateLimiter(client *Client, opts *RateLimiterOptions) *RateLimiter {
	if opts == nil {
		opts = NewRateLimiterOptions()
	}
	defaults := NewRateLimiterOptions()
	if opts.Window <= 0 {
		opts.Window = defaults.Window
	}
	if opts.Limit <= 0 {
		opts.Limit = defaults.Limit
	}
	return &RateLimiter{
		client: client,
		opts:   opts,
	}
}

// Allow registers a hit for the given key and reports whether it is within the limit.
func (rl *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	window := time.Now().Unix() / int64(rl.opts.Window.Seconds())
	fullKey := fmt.Sprintf("%s::%s::%d", rl.opts.Namespace, key, window)

	count, err := rl.client.Incr(ctx, fullKey)
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	if count == 1 {
		if err := rl.client.Expire(ctx, fullKey, rl.opts.Window); err != nil {
			return false, fmt.Errorf("failed to set rate limit window expiry: %w", err)
		}
	}

	return count <= rl.opts.Limit, nil
}

// Remaining returns how many hits are left in the current window for the key.
func (rl *RateLimiter) Remaining(ctx context.Context, key string) (int64, error) {
	window := time.Now().Unix() / int64(rl.opts.Window.Seconds())
	fullKey := fmt.Sprintf("%s::%s::%d", rl.opts.Namespace, key, window)

	value, err := rl.client.Get(ctx, fullKey)
	if err != nil {
		return 0, err
	}
	if value == "" {
		return rl.opts.Limit, nil
	}

	var count int64
	if _, err := fmt.Sscanf(value, "%d", &count); err != nil {
		return 0, fmt.Errorf("unexpected counter value %q: %w", value, err)
	}

	remaining := rl.opts.Limit - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}
