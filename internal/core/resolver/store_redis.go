package resolver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/animura/animura/internal/platform/constants"
)

// RedisCache implements Cache over Redis. Entries are keyed by a digest of
// the raw caption and expire so catalog refreshes eventually surface.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func cacheKey(caption string) string {
	digest := sha256.Sum256([]byte(caption))
	return constants.RedisPrefixResolved + hex.EncodeToString(digest[:])
}

// Get returns the cached resolution for the caption, or nil on a miss.
func (cache *RedisCache) Get(context context.Context, caption string) (*ResolvedTags, error) {
	payload, err := cache.client.Get(context, cacheKey(caption)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis_resolved_tags_get_failed: %w", err)
	}

	tags := &ResolvedTags{}
	if err := json.Unmarshal(payload, tags); err != nil {
		return nil, fmt.Errorf("redis_resolved_tags_decode_failed: %w", err)
	}
	return tags, nil
}

// Set stores the resolution with the configured TTL.
func (cache *RedisCache) Set(context context.Context, caption string, tags ResolvedTags) error {
	payload, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("redis_resolved_tags_encode_failed: %w", err)
	}

	if err := cache.client.Set(context, cacheKey(caption), payload, constants.ResolvedTagsTTL).Err(); err != nil {
		return fmt.Errorf("redis_resolved_tags_set_failed: %w", err)
	}
	return nil
}
