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

type LikeRepository struct {
	db *mongo.Database
}

func NewLikeRepository(db *mongo.Database) repository.ILike {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) collection() *mongo.Collection {
	return r.db.Collection("likes")
}

func (r *LikeRepository) Find(ctx context.Context, likedBy bson.ObjectID, kind model.LikeTarget, targetID bson.ObjectID) (*model.Like, error) {
	filter := bson.M{
		"likedBy":    likedBy,
		"targetKind": kind,
		"targetId":   targetID,
	}
	var like model.Like
	if err := r.collection().FindOne(ctx, filter).Decode(&like); err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *LikeRepository) Create(ctx context.Context, like *model.Like) (*model.Like, error) {
	like.CreatedAt = time.Now().UTC()

	result, err := r.collection().InsertOne(ctx, like)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: insert like failed")
		return nil, err
	}
	like.ID = result.InsertedID.(bson.ObjectID)
	return like, nil
}

func (r *LikeRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteByTarget clears all likes pointing at a deleted target.
func (r *LikeRepository) DeleteByTarget(ctx context.Context, kind model.LikeTarget, targetID bson.ObjectID) error {
	_, err := r.collection().DeleteMany(ctx, bson.M{"targetKind": kind, "targetId": targetID})
	return err
}

// ListLikedVideos resolves the videos a user has liked, each joined with its
// owner summary.
func (r *LikeRepository) ListLikedVideos(ctx context.Context, likedBy bson.ObjectID) ([]dto.VideoWithOwner, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"likedBy":    likedBy,
			"targetKind": model.LikeTargetVideo,
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "videos",
			"localField":   "targetId",
			"foreignField": "_id",
			"as":           "video",
			"pipeline": mongo.Pipeline{
				lookupOwnerSummary("owner", "createdBy"),
				flattenFirst("createdBy"),
			},
		}}},
		flattenFirst("video"),
		// drop likes whose video has since been deleted
		bson.D{{Key: "$match", Value: bson.M{"video": bson.M{"$ne": nil}}}},
		bson.D{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$video"}}},
	}

	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: liked videos aggregation failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	videos := []dto.VideoWithOwner{}
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}
