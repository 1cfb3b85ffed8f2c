package token

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDriver is returned for a Config.Driver no repository implements.
var ErrUnknownDriver = errors.New("unknown token storage driver")

// Reader is the read side of token storage.
type Reader interface {
	// GetToken returns the stored token and true, or "" and false when none is stored.
	GetToken(ctx context.Context) (string, bool, error)
}

// Repository persists the session token under domain.AuthTokenKey.
type Repository interface {
	Reader

	// StoreToken replaces the stored token.
	StoreToken(ctx context.Context, token string) error

	// ClearToken removes the stored token. Clearing an empty store is not an error.
	ClearToken(ctx context.Context) error

	// Close releases any resources held by the repository.
	Close() error
}

// RepositoryFactory is a function that creates a new Repository instance.
type RepositoryFactory func(ctx context.Context) (Repository, error)

// Config selects and configures the token storage driver.
type Config struct {
	// Driver is "sqlite", "redis" or "memory"
	Driver string `env:"DRIVER" default:"sqlite"`

	SQLite SQLiteConfig `envPrefix:"SQLITE_"`
	Redis  RedisConfig  `envPrefix:"REDIS_"`
}

// NewRepositoryFactory returns the factory of the configured driver.
func NewRepositoryFactory(cfg Config) (RepositoryFactory, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", "sqlite":
		return SQLiteRepositoryFactory(cfg.SQLite), nil
	case "redis":
		return RedisRepositoryFactory(cfg.Redis), nil
	case "memory":
		return func(context.Context) (Repository, error) {
			return NewMemoryRepository(), nil
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
