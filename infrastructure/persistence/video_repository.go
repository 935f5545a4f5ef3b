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

type VideoRepository struct {
	db *mongo.Database
}

func NewVideoRepository(db *mongo.Database) repository.IVideo {
	return &VideoRepository{db: db}
}

func (r *VideoRepository) collection() *mongo.Collection {
	return r.db.Collection("videos")
}

func (r *VideoRepository) Create(ctx context.Context, video *model.Video) (*model.Video, error) {
	now := time.Now().UTC()
	video.CreatedAt = now
	video.UpdatedAt = now

	result, err := r.collection().InsertOne(ctx, video)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: insert video failed")
		return nil, err
	}
	video.ID = result.InsertedID.(bson.ObjectID)
	return video, nil
}

func (r *VideoRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Video, error) {
	var video model.Video
	if err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&video); err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *VideoRepository) Update(ctx context.Context, id bson.ObjectID, title, description, thumbnail string) (*model.Video, error) {
	fields := bson.M{
		"title":       title,
		"description": description,
		"updatedAt":   time.Now().UTC(),
	}
	if thumbnail != "" {
		fields["thumbnail"] = thumbnail
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var video model.Video
	err := r.collection().
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).
		Decode(&video)
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *VideoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *VideoRepository) IncrementViews(ctx context.Context, id bson.ObjectID) error {
	_, err := r.collection().UpdateByID(ctx, id, bson.M{"$inc": bson.M{"views": 1}})
	return err
}

func (r *VideoRepository) SetPublished(ctx context.Context, id bson.ObjectID, published bool) error {
	_, err := r.collection().UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"isPublished": published, "updatedAt": time.Now().UTC()},
	})
	return err
}

// List runs the published-video listing pipeline: match, owner join, sort,
// paginate. An empty page decodes to an empty slice, never an error.
func (r *VideoRepository) List(ctx context.Context, query dto.VideoListQuery) ([]dto.VideoWithOwner, error) {
	match := bson.M{"isPublished": true}
	if query.Query != "" {
		match["$text"] = bson.M{"$search": query.Query}
	}
	if query.UserID != "" {
		ownerID, err := bson.ObjectIDFromHex(query.UserID)
		if err != nil {
			return nil, err
		}
		match["owner"] = ownerID
	}

	sortDir := 1
	if query.SortType == "desc" {
		sortDir = -1
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		lookupOwnerSummary("owner", "createdBy"),
		flattenFirst("createdBy"),
		bson.D{{Key: "$sort", Value: bson.D{{Key: query.SortBy, Value: sortDir}}}},
		bson.D{{Key: "$skip", Value: (query.Page - 1) * query.Limit}},
		bson.D{{Key: "$limit", Value: query.Limit}},
	}

	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: video listing aggregation failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	videos := []dto.VideoWithOwner{}
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// GetDetail builds the single-video read model: owner with subscriber count
// and the viewer's subscription status, plus like count and the viewer's like
// status.
func (r *VideoRepository) GetDetail(ctx context.Context, id, viewerID bson.ObjectID) (*dto.VideoDetail, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": id}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "owner",
			"foreignField": "_id",
			"as":           "createdBy",
			"pipeline": mongo.Pipeline{
				bson.D{{Key: "$lookup", Value: bson.M{
					"from":         "subscriptions",
					"localField":   "_id",
					"foreignField": "channel",
					"as":           "subscribers",
				}}},
				bson.D{{Key: "$addFields", Value: bson.M{
					"subscribersCount": bson.M{"$size": "$subscribers"},
					"isSubscribed": bson.M{"$cond": bson.M{
						"if":   bson.M{"$in": bson.A{viewerID, "$subscribers.subscriber"}},
						"then": true,
						"else": false,
					}},
				}}},
				bson.D{{Key: "$project", Value: bson.M{
					"fullName":         1,
					"username":         1,
					"avatar":           1,
					"subscribersCount": 1,
					"isSubscribed":     1,
				}}},
			},
		}}},
		likesFor(string(model.LikeTargetVideo), "likes"),
		likeFacts("likes", viewerID),
		flattenFirst("createdBy"),
		bson.D{{Key: "$project", Value: bson.M{"likes": 0}}},
	}

	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: video detail aggregation failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var details []dto.VideoDetail
	if err := cursor.All(ctx, &details); err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return &details[0], nil
}

func (r *VideoRepository) ListByOwner(ctx context.Context, ownerID bson.ObjectID) ([]dto.VideoWithOwner, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"owner": ownerID}}},
		lookupOwnerSummary("owner", "createdBy"),
		flattenFirst("createdBy"),
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}

	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: channel videos aggregation failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	videos := []dto.VideoWithOwner{}
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}
