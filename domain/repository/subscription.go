package repository

import (
	"context"

	"vidtube/domain/dto"
	"vidtube/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ISubscription interface {
	Find(ctx context.Context, subscriberID, channelID bson.ObjectID) (*model.Subscription, error)
	Create(ctx context.Context, sub *model.Subscription) (*model.Subscription, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	ListSubscribers(ctx context.Context, channelID bson.ObjectID) ([]dto.SubscriberEntry, error)
	ListSubscribedChannels(ctx context.Context, subscriberID bson.ObjectID) ([]dto.SubscriberEntry, error)
}
