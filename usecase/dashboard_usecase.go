package usecase

import (
	"context"

	"vidtube/domain/dto"
	"vidtube/domain/repository"
	"vidtube/infrastructure/cache"
	"vidtube/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type IDashboardUsecase interface {
	GetChannelStats(ctx context.Context, channelID bson.ObjectID) (*dto.ChannelStats, error)
	GetChannelVideos(ctx context.Context, channelID bson.ObjectID) ([]dto.VideoWithOwner, error)
}

type DashboardUsecase struct {
	dashboardRepo repository.IDashboard
	videoRepo     repository.IVideo
	statsCache    repository.IStatsCache
}

func NewDashboardUsecase(dashboardRepo repository.IDashboard, videoRepo repository.IVideo, statsCache repository.IStatsCache) IDashboardUsecase {
	return &DashboardUsecase{dashboardRepo: dashboardRepo, videoRepo: videoRepo, statsCache: statsCache}
}

// GetChannelStats reads through the cache. The aggregates are expensive to
// compute, and slightly stale numbers are acceptable on a dashboard.
func (u *DashboardUsecase) GetChannelStats(ctx context.Context, channelID bson.ObjectID) (*dto.ChannelStats, error) {
	key := channelID.Hex()
	if cached, err := u.statsCache.GetChannelStats(ctx, key); err == nil && cached != nil {
		return cached, nil
	} else if err != nil && !cache.IsMiss(err) {
		logger.GetLogger().WithField("error", err).Warn("stats cache read failed")
	}

	stats, err := u.dashboardRepo.GetChannelStats(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if err := u.statsCache.SetChannelStats(ctx, key, stats); err != nil {
		logger.GetLogger().WithField("error", err).Warn("stats cache write failed")
	}
	return stats, nil
}

func (u *DashboardUsecase) GetChannelVideos(ctx context.Context, channelID bson.ObjectID) ([]dto.VideoWithOwner, error) {
	return u.videoRepo.ListByOwner(ctx, channelID)
}
