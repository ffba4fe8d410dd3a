package auth

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "blacklist:access_token:"

// Revocations remembers logged-out token ids until the tokens expire.
type Revocations interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type RedisRevocations struct {
	client *redis.Client
}

var _ Revocations = (*RedisRevocations)(nil)

func NewRedisRevocations(addr, password string, db int) *RedisRevocations {
	return &RedisRevocations{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

func (s *RedisRevocations) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisRevocations) Close() error {
	return s.client.Close()
}

func (s *RedisRevocations) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl).Err()
}

func (s *RedisRevocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MemoryRevocations is the single-process fallback used when no Redis
// address is configured.
type MemoryRevocations struct {
	mu    sync.Mutex
	until map[string]time.Time
	now   func() time.Time
}

var _ Revocations = (*MemoryRevocations)(nil)

func NewMemoryRevocations() *MemoryRevocations {
	return &MemoryRevocations{until: make(map[string]time.Time), now: time.Now}
}

func (s *MemoryRevocations) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, exp := range s.until {
		if !exp.After(now) {
			delete(s.until, id)
		}
	}
	s.until[tokenID] = now.Add(ttl)
	return nil
}

func (s *MemoryRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exp, ok := s.until[tokenID]
	return ok && exp.After(s.now()), nil
}
