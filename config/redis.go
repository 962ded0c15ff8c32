package config

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrRedisNotConfigured is returned when neither REDIS_URL nor REDIS_HOST is set.
var ErrRedisNotConfigured = errors.New("redis is not configured")

const defaultRedisPort = "6379"

// RedisOptions builds the client options for the configured Redis. REDIS_URL
// takes precedence over host and port. REDIS_PASSWORD and REDIS_DB still
// apply to a URL that leaves them out.
func (c *Config) RedisOptions() (*redis.Options, error) {
	if !c.RedisEnabled() {
		return nil, ErrRedisNotConfigured
	}

	var opts *redis.Options
	if c.RedisURL != "" {
		parsed, err := redis.ParseURL(c.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		opts = parsed
		if opts.Password == "" {
			opts.Password = c.RedisPassword
		}
		if opts.DB == 0 {
			opts.DB = c.RedisDB
		}
	} else {
		port := c.RedisPort
		if port == "" {
			port = defaultRedisPort
		}
		opts = &redis.Options{
			Addr:     net.JoinHostPort(c.RedisHost, port),
			Password: c.RedisPassword,
			DB:       c.RedisDB,
		}
	}

	// Dashboard reads fall back to the database, so fail fast
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 2 * time.Second
	opts.WriteTimeout = 2 * time.Second
	return opts, nil
}
