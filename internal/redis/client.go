// Package redis wraps the go-redis client behind an interface so the save
// store can be mocked and pointed at miniredis in tests.
package redis

import (
	"context"
	"crypto/tls"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// Options configures the client pool
type Options struct {
	DB              int
	Password        string
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	DialTimeout     time.Duration
	UseTLS          bool
}

// NewClient creates a client for a single instance. The endpoint is either
// host:port or a redis:// or rediss:// URL. No connection is made until
// the first command.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	if strings.HasPrefix(endpoint, "redis://") || strings.HasPrefix(endpoint, "rediss://") {
		parsed, err := redis.ParseURL(endpoint)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid redis url")
		}
		applyOptions(parsed, opts)
		return redis.NewClient(parsed), nil
	}

	redisOpts := &redis.Options{
		Addr:     endpoint,
		DB:       opts.DB,
		Password: opts.Password,
	}
	applyOptions(redisOpts, opts)
	if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	return redis.NewClient(redisOpts), nil
}

func applyOptions(dst *redis.Options, opts *Options) {
	if opts.PoolSize > 0 {
		dst.PoolSize = opts.PoolSize
	}
	if opts.MinIdleConns > 0 {
		dst.MinIdleConns = opts.MinIdleConns
	}
	if opts.ConnMaxIdleTime > 0 {
		dst.ConnMaxIdleTime = opts.ConnMaxIdleTime
	}
	if opts.MaxRetries != 0 {
		dst.MaxRetries = opts.MaxRetries
	}
	if opts.DialTimeout > 0 {
		dst.DialTimeout = opts.DialTimeout
	}
}

// Connect creates a client and pings it. An unreachable server is reported
// as Unavailable so callers can fall back to an in-memory store.
func Connect(ctx context.Context, endpoint string, opts *Options) (Client, error) {
	client, err := NewClient(endpoint, opts)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis unreachable").
			WithMeta("endpoint", endpoint)
	}
	return client, nil
}
