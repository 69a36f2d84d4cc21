package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/artistdash-backend/internal/platform/logger"
)

type Config struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

// TokenDenylist records revoked token ids until the token would have expired
// on its own.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	Close() error
}

type tokenDenylist struct {
	log    *logger.Logger
	rdb    goredis.UniversalClient
	prefix string
}

// NewTokenDenylist connects and pings Redis.
func NewTokenDenylist(log *logger.Logger, cfg Config) (TokenDenylist, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, fmt.Errorf("missing redis addr")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewTokenDenylistFromClient(log, rdb, cfg.KeyPrefix), nil
}

// NewTokenDenylistFromClient wraps an existing client.
func NewTokenDenylistFromClient(log *logger.Logger, rdb goredis.UniversalClient, prefix string) TokenDenylist {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "artistdash:revoked:"
	}
	return &tokenDenylist{
		log:    log.With("client", "RedisTokenDenylist"),
		rdb:    rdb,
		prefix: prefix,
	}
}

func (d *tokenDenylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if d == nil || d.rdb == nil {
		return fmt.Errorf("redis token denylist not initialized")
	}
	if strings.TrimSpace(tokenID) == "" {
		return fmt.Errorf("token id required")
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return d.rdb.Set(ctx, d.prefix+tokenID, "1", ttl).Err()
}

func (d *tokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if d == nil || d.rdb == nil {
		return false, fmt.Errorf("redis token denylist not initialized")
	}
	n, err := d.rdb.Exists(ctx, d.prefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (d *tokenDenylist) Close() error {
	if d == nil || d.rdb == nil {
		return nil
	}
	return d.rdb.Close()
}
