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

type CommentRepository struct {
	db *mongo.Database
}

func NewCommentRepository(db *mongo.Database) repository.IComment {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) collection() *mongo.Collection {
	return r.db.Collection("comments")
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	now := time.Now().UTC()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	result, err := r.collection().InsertOne(ctx, comment)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: insert comment failed")
		return nil, err
	}
	comment.ID = result.InsertedID.(bson.ObjectID)
	return comment, nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Comment, error) {
	var comment model.Comment
	if err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (*model.Comment, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var comment model.Comment
	err := r.collection().
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{
			"$set": bson.M{"content": content, "updatedAt": time.Now().UTC()},
		}, opts).
		Decode(&comment)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteByVideo removes all comments attached to a deleted video.
func (r *CommentRepository) DeleteByVideo(ctx context.Context, videoID bson.ObjectID) error {
	_, err := r.collection().DeleteMany(ctx, bson.M{"video": videoID})
	return err
}

// ListByVideo pages a video's comments newest first, each with its author
// summary and like facts, plus the collection total for the video.
func (r *CommentRepository) ListByVideo(ctx context.Context, videoID, viewerID bson.ObjectID, query dto.CommentListQuery) (*dto.CommentPage, error) {
	total, err := r.collection().CountDocuments(ctx, bson.M{"video": videoID})
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"video": videoID}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		bson.D{{Key: "$skip", Value: (query.Page - 1) * query.Limit}},
		bson.D{{Key: "$limit", Value: query.Limit}},
		lookupOwnerSummary("owner", "createdBy"),
		flattenFirst("createdBy"),
		likesFor(string(model.LikeTargetComment), "likes"),
		likeFacts("likes", viewerID),
		bson.D{{Key: "$project", Value: bson.M{"likes": 0}}},
	}

	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: comment listing aggregation failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	comments := []dto.CommentWithUser{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return &dto.CommentPage{Total: total, Comments: comments}, nil
}
