package userdata

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// KV is the subset of redis.UniversalClient used by RedisStore.
type KV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore keeps the encoded record under a single redis key.
type RedisStore struct {
	db  KV
	key string
	ttl time.Duration
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithKey overrides DefaultKey. Empty keys are ignored.
func WithKey(key string) RedisOption {
	return func(s *RedisStore) {
		if key != "" {
			s.key = key
		}
	}
}

// WithTTL expires the record after d. Zero means no expiration.
func WithTTL(d time.Duration) RedisOption {
	return func(s *RedisStore) {
		s.ttl = d
	}
}

func NewRedisStore(client KV, opts ...RedisOption) *RedisStore {
	s := &RedisStore{db: client, key: DefaultKey}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewRedisStoreFromConfig creates a store using cfg.Key and cfg.TTL.
func NewRedisStoreFromConfig(client KV, cfg RedisConfig) *RedisStore {
	return NewRedisStore(client, WithKey(cfg.Key), WithTTL(cfg.TTL))
}

// Load returns nil for a missing key (redis.Nil becomes nil).
func (s *RedisStore) Load(ctx context.Context) (*Record, error) {
	data, err := s.db.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return decode(data)
}

func (s *RedisStore) Save(ctx context.Context, r Record) error {
	data, err := encode(r)
	if err != nil {
		return err
	}
	if err := s.db.Set(ctx, s.key, data, s.ttl).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.db.Del(ctx, s.key).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// ConnectRedis connects to redis, retrying cfg.RetryAttempts times with
// cfg.RetryInterval between attempts, all within cfg.ConnectTimeout.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}

	for range max(cfg.RetryAttempts, 1) {
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrRedisNotReady
}
