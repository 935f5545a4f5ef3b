package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"vidtube/domain/dto"
	"vidtube/domain/repository"
	"vidtube/infrastructure/logger"

	"github.com/redis/go-redis/v9"
)

const statsKeyPrefix = "channel:stats:"

// StatsCache keeps channel dashboard aggregates in Redis for a short TTL so
// repeated dashboard loads do not re-run the aggregation. All operations are
// best effort: a nil client or a Redis failure degrades to a cache miss.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStatsCache(client *redis.Client, ttl time.Duration) repository.IStatsCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &StatsCache{client: client, ttl: ttl}
}

func (c *StatsCache) GetChannelStats(ctx context.Context, channelID string) (*dto.ChannelStats, error) {
	if c.client == nil {
		return nil, redis.Nil
	}
	payload, err := c.client.Get(ctx, statsKeyPrefix+channelID).Bytes()
	if err != nil {
		return nil, err
	}
	var stats dto.ChannelStats
	if err := json.Unmarshal(payload, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *StatsCache) SetChannelStats(ctx context.Context, channelID string, stats *dto.ChannelStats) error {
	if c.client == nil {
		return nil
	}
	payload, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, statsKeyPrefix+channelID, payload, c.ttl).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("redis: set channel stats failed")
		return err
	}
	return nil
}

func (c *StatsCache) InvalidateChannelStats(ctx context.Context, channelID string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, statsKeyPrefix+channelID).Err()
}

// IsMiss reports whether err is an expected cache miss rather than a failure.
func IsMiss(err error) bool {
	return errors.Is(err, redis.Nil)
}
