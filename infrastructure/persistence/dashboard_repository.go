package persistence

import (
	"context"

	"vidtube/domain/dto"
	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type DashboardRepository struct {
	db *mongo.Database
}

func NewDashboardRepository(db *mongo.Database) repository.IDashboard {
	return &DashboardRepository{db: db}
}

// GetChannelStats totals views, likes and video count across all of the
// channel's videos, then adds the subscriber count. A channel with no videos
// gets zero totals, not an error.
func (r *DashboardRepository) GetChannelStats(ctx context.Context, channelID bson.ObjectID) (*dto.ChannelStats, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"owner": channelID}}},
		likesFor(string(model.LikeTargetVideo), "likes"),
		bson.D{{Key: "$group", Value: bson.M{
			"_id":         nil,
			"totalVideos": bson.M{"$sum": 1},
			"totalViews":  bson.M{"$sum": "$views"},
			"totalLikes":  bson.M{"$sum": bson.M{"$size": "$likes"}},
		}}},
	}

	cursor, err := r.db.Collection("videos").Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: channel stats aggregation failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var totals []dto.ChannelStats
	if err := cursor.All(ctx, &totals); err != nil {
		return nil, err
	}

	stats := &dto.ChannelStats{}
	if len(totals) > 0 {
		*stats = totals[0]
	}

	subscribers, err := r.db.Collection("subscriptions").CountDocuments(ctx, bson.M{"channel": channelID})
	if err != nil {
		return nil, err
	}
	stats.TotalSubscribers = subscribers
	return stats, nil
}
