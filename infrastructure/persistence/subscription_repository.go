package persistence

import (
	"context"
	"time"

	"vidtube/domain/dto"
	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type SubscriptionRepository struct {
	db *mongo.Database
}

func NewSubscriptionRepository(db *mongo.Database) repository.ISubscription {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) collection() *mongo.Collection {
	return r.db.Collection("subscriptions")
}

func (r *SubscriptionRepository) Find(ctx context.Context, subscriberID, channelID bson.ObjectID) (*model.Subscription, error) {
	filter := bson.M{"subscriber": subscriberID, "channel": channelID}
	var sub model.Subscription
	if err := r.collection().FindOne(ctx, filter).Decode(&sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *model.Subscription) (*model.Subscription, error) {
	sub.CreatedAt = time.Now().UTC()

	result, err := r.collection().InsertOne(ctx, sub)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: insert subscription failed")
		return nil, err
	}
	sub.ID = result.InsertedID.(bson.ObjectID)
	return sub, nil
}

func (r *SubscriptionRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ListSubscribers lists the users subscribed to channelID, each with their own
// subscriber count.
func (r *SubscriptionRepository) ListSubscribers(ctx context.Context, channelID bson.ObjectID) ([]dto.SubscriberEntry, error) {
	return r.listUsers(ctx, bson.M{"channel": channelID}, "subscriber")
}

// ListSubscribedChannels lists the channels subscriberID follows, each with
// their subscriber count.
func (r *SubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriberID bson.ObjectID) ([]dto.SubscriberEntry, error) {
	return r.listUsers(ctx, bson.M{"subscriber": subscriberID}, "channel")
}

// listUsers is the shared pipeline behind both subscription listings: match
// edges, join the user on the requested side of the edge, count that user's
// own subscribers, flatten to one entry per edge.
func (r *SubscriptionRepository) listUsers(ctx context.Context, match bson.M, localField string) ([]dto.SubscriberEntry, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   localField,
			"foreignField": "_id",
			"as":           "user",
			"pipeline": mongo.Pipeline{
				bson.D{{Key: "$lookup", Value: bson.M{
					"from":         "subscriptions",
					"localField":   "_id",
					"foreignField": "channel",
					"as":           "subscribers",
				}}},
				bson.D{{Key: "$addFields", Value: bson.M{
					"subscribersCount": bson.M{"$size": "$subscribers"},
				}}},
				bson.D{{Key: "$project", Value: bson.M{
					"fullName":         1,
					"username":         1,
					"avatar":           1,
					"subscribersCount": 1,
				}}},
			},
		}}},
		flattenFirst("user"),
		bson.D{{Key: "$match", Value: bson.M{"user": bson.M{"$ne": nil}}}},
		bson.D{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$user"}}},
	}

	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: subscription listing aggregation failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []dto.SubscriberEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
