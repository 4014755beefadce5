package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-manager/menu-svc/internal/domain"
)

func setupRedisTest(t *testing.T, ttl time.Duration) (*RedisStatsCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStatsCache(client, ttl), mr
}

func TestRedisStatsCache_RecordItem(t *testing.T) {
	cache, mr := setupRedisTest(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, cache.RecordItem(ctx, "Diner", domain.ItemStats{
		Name: "Burger", Active: true, OrderCount: 3, RatingCount: 2, AverageRating: 4.5,
		Profit: decimal.RequireFromString("9"),
	}))
	require.NoError(t, cache.RecordItem(ctx, "Diner", domain.ItemStats{
		Name: "Fries", OrderCount: 1, Profit: decimal.RequireFromString("-0.5"),
	}))

	key := ItemStatsKey("Diner", "Burger")
	assert.Equal(t, "menu:Diner:item:Burger", key)
	assert.Equal(t, "9.00", mr.HGet(key, "profit"))
	assert.Equal(t, "4.5", mr.HGet(key, "avg_rating"))
	assert.Equal(t, "3", mr.HGet(key, "order_count"))
	assert.Equal(t, "2", mr.HGet(key, "rating_count"))
	assert.Equal(t, "1", mr.HGet(key, "active"))
	assert.Equal(t, "0", mr.HGet(ItemStatsKey("Diner", "Fries"), "active"))
	assert.Equal(t, time.Hour, mr.TTL(key))

	score, err := mr.ZScore(ProfitBoardKey("Diner"), "Burger")
	require.NoError(t, err)
	assert.Equal(t, 9.0, score)
	score, err = mr.ZScore(ProfitBoardKey("Diner"), "Fries")
	require.NoError(t, err)
	assert.Equal(t, -0.5, score)
	score, err = mr.ZScore(RatingBoardKey("Diner"), "Burger")
	require.NoError(t, err)
	assert.Equal(t, 4.5, score)

	board, err := cache.Client.ZRevRange(ctx, ProfitBoardKey("Diner"), 0, -1).Result()
	require.NoError(t, err)
	assert.Equal(t, []string{"Burger", "Fries"}, board)
}

func TestRedisStatsCache_NoTTL(t *testing.T) {
	cache, mr := setupRedisTest(t, 0)

	require.NoError(t, cache.RecordItem(context.Background(), "Diner", domain.ItemStats{Name: "Pie"}))
	assert.Equal(t, time.Duration(0), mr.TTL(ItemStatsKey("Diner", "Pie")))
}

func TestRedisStatsCache_ForgetItem(t *testing.T) {
	cache, mr := setupRedisTest(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, cache.RecordItem(ctx, "Diner", domain.ItemStats{Name: "Burger", Profit: decimal.NewFromInt(3)}))
	require.NoError(t, cache.RecordItem(ctx, "Diner", domain.ItemStats{Name: "Fries", Profit: decimal.NewFromInt(1)}))

	require.NoError(t, cache.ForgetItem(ctx, "Diner", "Burger"))

	assert.False(t, mr.Exists(ItemStatsKey("Diner", "Burger")))
	assert.True(t, mr.Exists(ItemStatsKey("Diner", "Fries")))
	members, err := mr.ZMembers(ProfitBoardKey("Diner"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Fries"}, members)
}

func TestRedisStatsCache_ServerDown(t *testing.T) {
	cache, mr := setupRedisTest(t, 0)
	mr.Close()

	assert.Error(t, cache.RecordItem(context.Background(), "Diner", domain.ItemStats{Name: "Pie"}))
}
