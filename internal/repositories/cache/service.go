package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Balance reads are cached briefly: a quote rendered against a balance
// a few seconds stale is acceptable, and the confirm path re-reads
// through the repository anyway.
const balanceTTL = 30 * time.Second

type CacheService struct {
	client *redis.Client
}

func NewCacheService(client *redis.Client) *CacheService {
	return &CacheService{client: client}
}

// Base operations

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// Key generation
func (s *CacheService) GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

// Balance caching

func (s *CacheService) CacheBalance(ctx context.Context, creatorID uint, balance int64) error {
	key := s.GenerateKey("creator", "balance", creatorID)
	return s.SetWithTTL(ctx, key, balance, balanceTTL)
}

func (s *CacheService) GetBalance(ctx context.Context, creatorID uint) (int64, bool, error) {
	var balance int64
	found, err := s.Get(ctx, s.GenerateKey("creator", "balance", creatorID), &balance)
	return balance, found, err
}

func (s *CacheService) InvalidateBalance(ctx context.Context, creatorID uint) error {
	return s.Delete(ctx, s.GenerateKey("creator", "balance", creatorID))
}

// FlushAll clears the cache, used on startup.
func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

// Close closes the underlying redis connection.
func (s *CacheService) Close() error {
	return s.client.Close()
}
