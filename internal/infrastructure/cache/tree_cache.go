package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"stake-chain.backend/internal/domain/entities"
	"stake-chain.backend/pkg/logger"
)

const treeKeyPrefix = "reftree"

// RedisTreeCache caches referral subtrees in Redis with a short TTL.
// Failures are logged and treated as cache misses; the walker always works
// without it.
type RedisTreeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisTreeCache creates a tree cache on an existing Redis client
func NewRedisTreeCache(client *redis.Client, ttl time.Duration) *RedisTreeCache {
	return &RedisTreeCache{client: client, ttl: ttl}
}

func treeKey(root string, maxDepth int) string {
	return fmt.Sprintf("%s:%s:%d", treeKeyPrefix, root, maxDepth)
}

// GetTree returns the cached subtree for (root, maxDepth), if present
func (c *RedisTreeCache) GetTree(ctx context.Context, root string, maxDepth int) ([]*entities.Referral, bool) {
	raw, err := c.client.Get(ctx, treeKey(root, maxDepth)).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Warn(ctx, "tree cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var tree []*entities.Referral
	if err := json.Unmarshal([]byte(raw), &tree); err != nil {
		logger.Warn(ctx, "tree cache entry corrupt, dropping", zap.Error(err))
		c.client.Del(ctx, treeKey(root, maxDepth))
		return nil, false
	}
	return tree, true
}

// SetTree stores the subtree for (root, maxDepth) with the configured TTL
func (c *RedisTreeCache) SetTree(ctx context.Context, root string, maxDepth int, tree []*entities.Referral) {
	raw, err := json.Marshal(tree)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, treeKey(root, maxDepth), raw, c.ttl).Err(); err != nil {
		logger.Warn(ctx, "tree cache write failed", zap.Error(err))
	}
}

// InvalidateReferrer drops all cached depths for one referrer. Trees of
// ancestors further up the chain age out via the TTL instead.
func (c *RedisTreeCache) InvalidateReferrer(ctx context.Context, referrer string) {
	keys, err := c.client.Keys(ctx, fmt.Sprintf("%s:%s:*", treeKeyPrefix, referrer)).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logger.Warn(ctx, "tree cache invalidation failed", zap.Error(err))
	}
}
