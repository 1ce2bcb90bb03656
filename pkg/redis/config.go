package redis

import (
	"fmt"
	"time"
)

// Config holds the Redis connection settings.
type Config struct {
	Host         string
	Port         int
	Password     string
	Database     int
	MinIdleConns int
	MaxIdleConns int
	MaxActive    int
	MaxRetries   int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolTimeout  time.Duration
}

// NewRedisConfig creates a config with default values.
func NewRedisConfig() *Config {
	return &Config{
		Host:         "localhost",
		Port:         6379,
		Database:     0,
		MinIdleConns: 5,
		MaxIdleConns: 10,
		MaxActive:    100,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolTimeout:  4 * time.Second,
	}
}

// DefaultConfig returns the default Redis configuration.
func DefaultConfig() *Config {
	return NewRedisConfig()
}

// WithHost sets the Redis host.
func (c *Config) WithHost(host string) *Config {
	c.Host = host
	return c
}

// WithPort sets the Redis port.
func (c *Config) WithPort(port int) *Config {
	c.Port = port
	return c
}

// WithPassword sets the Redis password.
func (c *Config) WithPassword(password string) *Config {
	c.Password = password
	return c
}

// WithDatabase sets the Redis logical database.
func (c *Config) WithDatabase(database int) *Config {
	c.Database = database
	return c
}

// WithMinIdleConns sets the minimum number of idle connections.
func (c *Config) WithMinIdleConns(minIdleConns int) *Config {
	c.MinIdleConns = minIdleConns
	return c
}

// WithMaxIdleConns sets the maximum number of idle connections.
func (c *Config) WithMaxIdleConns(maxIdleConns int) *Config {
	c.MaxIdleConns = maxIdleConns
	return c
}

// WithMaxActive sets the maximum number of active connections.
func (c *Config) WithMaxActive(maxActive int) *Config {
	c.MaxActive = maxActive
	return c
}

// WithMaxRetries sets the maximum number of command retries.
func (c *Config) WithMaxRetries(maxRetries int) *Config {
	c.MaxRetries = maxRetries
	return c
}

// WithDialTimeout sets the connection dial timeout.
func (c *Config) WithDialTimeout(dialTimeout time.Duration) *Config {
	c.DialTimeout = dialTimeout
	return c
}

// WithReadTimeout sets the read timeout.
func (c *Config) WithReadTimeout(readTimeout time.Duration) *Config {
	c.ReadTimeout = readTimeout
	return c
}

// WithWriteTimeout sets the write timeout.
func (c *Config) WithWriteTimeout(writeTimeout time.Duration) *Config {
	c.WriteTimeout = writeTimeout
	return c
}

// WithPoolTimeout sets the pool wait timeout.
func (c *Config) WithPoolTimeout(poolTimeout time.Duration) *Config {
	c.PoolTimeout = poolTimeout
	return c
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.Database < 0 {
		return fmt.Errorf("invalid database: %d", c.Database)
	}
	return nil
}
