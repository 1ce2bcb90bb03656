package http

import "time"

// BackoffConfig controls retry behavior for requests issued through the client.
// Retries apply to transport failures and 5xx responses; client errors are
// returned immediately.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// NewBackoffConfig creates a backoff configuration with sane defaults.
func NewBackoffConfig() *BackoffConfig {
	return &BackoffConfig{
		MaxRetries:      3,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
	}
}

// WithMaxRetries sets the maximum number of retry attempts.
func (b *BackoffConfig) WithMaxRetries(maxRetries int) *BackoffConfig {
	b.MaxRetries = maxRetries
	return b
}

// WithInitialInterval sets the delay before the first retry.
func (b *BackoffConfig) WithInitialInterval(interval time.Duration) *BackoffConfig {
	b.InitialInterval = interval
	return b
}

// WithMaxInterval sets the upper bound for the doubling retry delay.
func (b *BackoffConfig) WithMaxInterval(interval time.Duration) *BackoffConfig {
	b.MaxInterval = interval
	return b
}

// retryable reports whether a failed attempt should be retried.
// status 0 means the request never produced a response.
func (b *BackoffConfig) retryable(status int, err error) bool {
	if err == nil {
		return false
	}
	return status == 0 || status >= 500
}
