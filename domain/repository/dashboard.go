package repository

import (
	"context"

	"vidtube/domain/dto"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// IDashboard computes channel-wide aggregates across videos, likes and
// subscriptions.
type IDashboard interface {
	GetChannelStats(ctx context.Context, channelID bson.ObjectID) (*dto.ChannelStats, error)
}

// IStatsCache is an optional read-through cache in front of IDashboard.
type IStatsCache interface {
	GetChannelStats(ctx context.Context, channelID string) (*dto.ChannelStats, error)
	SetChannelStats(ctx context.Context, channelID string, stats *dto.ChannelStats) error
	InvalidateChannelStats(ctx context.Context, channelID string) error
}
