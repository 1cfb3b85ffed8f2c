package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mkrupp/hirepulse-client/internal/domain"
	"github.com/mkrupp/hirepulse-client/internal/infra/logging"
)

// RedisConfig holds configuration for the Redis token repository.
type RedisConfig struct {
	Addr     string `env:"ADDR" default:"localhost:6379"`
	Password string `env:"PASSWORD" default:""`
	DB       int    `env:"DB" default:"0"`

	// KeyPrefix namespaces the token key, e.g. "hirepulse:" stores "hirepulse:authToken"
	KeyPrefix string `env:"KEY_PREFIX" default:"hirepulse:"`

	// TTL expires the stored token; zero keeps it until cleared
	TTL time.Duration `env:"TTL" default:"0s"`

	DialTimeout time.Duration `env:"DIAL_TIMEOUT" default:"3s"`
	PingTimeout time.Duration `env:"PING_TIMEOUT" default:"2s"`
}

func (c RedisConfig) withDefaults() RedisConfig {
	out := c
	if out.DialTimeout <= 0 {
		out.DialTimeout = 3 * time.Second
	}

	if out.PingTimeout <= 0 {
		out.PingTimeout = 2 * time.Second
	}

	return out
}

// RedisRepository implements Repository on a single Redis string key.
type RedisRepository struct {
	rdb *redis.Client
	key string
	ttl time.Duration
	log logging.Logger
}

var _ Repository = (*RedisRepository)(nil)

// RedisRepositoryFactory creates a factory function that returns a new RedisRepository.
func RedisRepositoryFactory(cfg RedisConfig) RepositoryFactory {
	return func(ctx context.Context) (Repository, error) {
		return NewRedisRepository(ctx, cfg)
	}
}

// NewRedisRepository connects to Redis and validates the connection with PING.
func NewRedisRepository(ctx context.Context, cfg RedisConfig) (*RedisRepository, error) {
	cfg = cfg.withDefaults()
	if cfg.Addr == "" {
		return nil, errors.New("redis addr is required")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()

		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return newRedisRepository(rdb, cfg), nil
}

func newRedisRepository(rdb *redis.Client, cfg RedisConfig) *RedisRepository {
	key := cfg.KeyPrefix + domain.AuthTokenKey

	return &RedisRepository{
		rdb: rdb,
		key: key,
		ttl: cfg.TTL,
		log: logging.GetLogger("repo.token.redis_token_repository").With(
			logging.Group("redis", "addr", cfg.Addr, "key", key),
		),
	}
}

// GetToken implements Repository.GetToken.
func (r *RedisRepository) GetToken(ctx context.Context) (string, bool, error) {
	token, err := r.rdb.Get(ctx, r.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}

		return "", false, fmt.Errorf("get token: %w", err)
	}

	return token, token != "", nil
}

// StoreToken implements Repository.StoreToken.
func (r *RedisRepository) StoreToken(ctx context.Context, token string) error {
	if err := r.rdb.Set(ctx, r.key, token, r.ttl).Err(); err != nil {
		return fmt.Errorf("set token: %w", err)
	}

	r.log.DebugContext(ctx, "token stored", "ttl", r.ttl)

	return nil
}

// ClearToken implements Repository.ClearToken.
func (r *RedisRepository) ClearToken(ctx context.Context) error {
	if err := r.rdb.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}

	r.log.DebugContext(ctx, "token cleared")

	return nil
}

// Close implements Repository.Close.
func (r *RedisRepository) Close() error {
	if err := r.rdb.Close(); err != nil {
		return fmt.Errorf("close redis: %w", err)
	}

	return nil
}
