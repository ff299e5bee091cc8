package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"stake-chain.backend/internal/domain/entities"
	"stake-chain.backend/pkg/logger"
)

func newTestCache(t *testing.T) (*RedisTreeCache, *miniredis.Miniredis) {
	t.Helper()
	logger.Init("development")

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisTreeCache(client, 30*time.Second), mr
}

func sampleTree() []*entities.Referral {
	return []*entities.Referral{
		{
			ID:              uuid.New(),
			ReferrerAddress: "0xaaaa000000000000000000000000000000000001",
			ReferredAddress: "0xbbbb000000000000000000000000000000000002",
			Level:           1,
			Timestamp:       time.Now().UTC().Truncate(time.Second),
		},
	}
}

func TestRedisTreeCache_MissThenHit(t *testing.T) {
	treeCache, _ := newTestCache(t)
	ctx := context.Background()
	root := "0xaaaa000000000000000000000000000000000001"

	_, ok := treeCache.GetTree(ctx, root, 5)
	require.False(t, ok)

	tree := sampleTree()
	treeCache.SetTree(ctx, root, 5, tree)

	got, ok := treeCache.GetTree(ctx, root, 5)
	require.True(t, ok)
	require.Len(t, got, 1)
	require.Equal(t, tree[0].ReferredAddress, got[0].ReferredAddress)
	require.Equal(t, tree[0].Level, got[0].Level)

	// a different depth is a different cache entry
	_, ok = treeCache.GetTree(ctx, root, 6)
	require.False(t, ok)
}

func TestRedisTreeCache_EntryExpires(t *testing.T) {
	treeCache, mr := newTestCache(t)
	ctx := context.Background()
	root := "0xaaaa000000000000000000000000000000000001"

	treeCache.SetTree(ctx, root, 5, sampleTree())
	mr.FastForward(time.Minute)

	_, ok := treeCache.GetTree(ctx, root, 5)
	require.False(t, ok)
}

func TestRedisTreeCache_InvalidateReferrer(t *testing.T) {
	treeCache, _ := newTestCache(t)
	ctx := context.Background()
	root := "0xaaaa000000000000000000000000000000000001"
	other := "0xbbbb000000000000000000000000000000000002"

	treeCache.SetTree(ctx, root, 5, sampleTree())
	treeCache.SetTree(ctx, root, 10, sampleTree())
	treeCache.SetTree(ctx, other, 5, sampleTree())

	treeCache.InvalidateReferrer(ctx, root)

	_, ok := treeCache.GetTree(ctx, root, 5)
	require.False(t, ok)
	_, ok = treeCache.GetTree(ctx, root, 10)
	require.False(t, ok)

	// other referrers keep their entries
	_, ok = treeCache.GetTree(ctx, other, 5)
	require.True(t, ok)
}

func TestRedisTreeCache_CorruptEntryDropped(t *testing.T) {
	treeCache, mr := newTestCache(t)
	ctx := context.Background()
	root := "0xaaaa000000000000000000000000000000000001"

	require.NoError(t, mr.Set("reftree:"+root+":5", "{not json"))

	_, ok := treeCache.GetTree(ctx, root, 5)
	require.False(t, ok)
	require.False(t, mr.Exists("reftree:"+root+":5"))
}
