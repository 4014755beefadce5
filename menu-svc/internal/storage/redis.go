package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"restaurant-manager/menu-svc/internal/domain"
)

// RedisStatsCache keeps a hash per item and two leaderboards per restaurant.
type RedisStatsCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisStatsCache(client *redis.Client, ttl time.Duration) *RedisStatsCache {
	return &RedisStatsCache{Client: client, TTL: ttl}
}

func ItemStatsKey(restaurant, item string) string {
	return "menu:" + restaurant + ":item:" + item
}

func ProfitBoardKey(restaurant string) string {
	return "menu:" + restaurant + ":profit"
}

func RatingBoardKey(restaurant string) string {
	return "menu:" + restaurant + ":rating"
}

func (c *RedisStatsCache) RecordItem(ctx context.Context, restaurant string, stats domain.ItemStats) error {
	key := ItemStatsKey(restaurant, stats.Name)
	profit, _ := stats.Profit.Float64()

	pipe := c.Client.TxPipeline()
	pipe.HSet(ctx, key, map[string]interface{}{
		"profit":       stats.Profit.StringFixed(2),
		"avg_rating":   stats.AverageRating,
		"order_count":  stats.OrderCount,
		"rating_count": stats.RatingCount,
		"active":       stats.Active,
	})
	if c.TTL > 0 {
		pipe.Expire(ctx, key, c.TTL)
	}
	pipe.ZAdd(ctx, ProfitBoardKey(restaurant), redis.Z{Score: profit, Member: stats.Name})
	pipe.ZAdd(ctx, RatingBoardKey(restaurant), redis.Z{Score: stats.AverageRating, Member: stats.Name})
	_, err := pipe.Exec(ctx)
	return err
}

func (c *RedisStatsCache) ForgetItem(ctx context.Context, restaurant, item string) error {
	pipe := c.Client.TxPipeline()
	pipe.Del(ctx, ItemStatsKey(restaurant, item))
	pipe.ZRem(ctx, ProfitBoardKey(restaurant), item)
	pipe.ZRem(ctx, RatingBoardKey(restaurant), item)
	_, err := pipe.Exec(ctx)
	return err
}
