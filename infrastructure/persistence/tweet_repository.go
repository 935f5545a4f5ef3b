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
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type TweetRepository struct {
	db *mongo.Database
}

func NewTweetRepository(db *mongo.Database) repository.ITweet {
	return &TweetRepository{db: db}
}

func (r *TweetRepository) collection() *mongo.Collection {
	return r.db.Collection("tweets")
}

func (r *TweetRepository) Create(ctx context.Context, tweet *model.Tweet) (*model.Tweet, error) {
	now := time.Now().UTC()
	tweet.CreatedAt = now
	tweet.UpdatedAt = now

	result, err := r.collection().InsertOne(ctx, tweet)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: insert tweet failed")
		return nil, err
	}
	tweet.ID = result.InsertedID.(bson.ObjectID)
	return tweet, nil
}

func (r *TweetRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Tweet, error) {
	var tweet model.Tweet
	if err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&tweet); err != nil {
		return nil, err
	}
	return &tweet, nil
}

func (r *TweetRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (*model.Tweet, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var tweet model.Tweet
	err := r.collection().
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{
			"$set": bson.M{"content": content, "updatedAt": time.Now().UTC()},
		}, opts).
		Decode(&tweet)
	if err != nil {
		return nil, err
	}
	return &tweet, nil
}

func (r *TweetRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ListByOwner lists a channel's tweets newest first with author summary,
// like count, and the viewer's like status.
func (r *TweetRepository) ListByOwner(ctx context.Context, ownerID, viewerID bson.ObjectID) ([]dto.TweetWithUser, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"owner": ownerID}}},
		lookupOwnerSummary("owner", "createdBy"),
		flattenFirst("createdBy"),
		likesFor(string(model.LikeTargetTweet), "likes"),
		likeFacts("likes", viewerID),
		bson.D{{Key: "$project", Value: bson.M{"likes": 0}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}

	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: tweet listing aggregation failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	tweets := []dto.TweetWithUser{}
	if err := cursor.All(ctx, &tweets); err != nil {
		return nil, err
	}
	return tweets, nil
}
