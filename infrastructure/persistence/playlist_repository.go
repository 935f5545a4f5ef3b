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

type PlaylistRepository struct {
	db *mongo.Database
}

func NewPlaylistRepository(db *mongo.Database) repository.IPlaylist {
	return &PlaylistRepository{db: db}
}

func (r *PlaylistRepository) collection() *mongo.Collection {
	return r.db.Collection("playlists")
}

func (r *PlaylistRepository) Create(ctx context.Context, playlist *model.Playlist) (*model.Playlist, error) {
	now := time.Now().UTC()
	playlist.CreatedAt = now
	playlist.UpdatedAt = now
	if playlist.Videos == nil {
		playlist.Videos = []bson.ObjectID{}
	}

	result, err := r.collection().InsertOne(ctx, playlist)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: insert playlist failed")
		return nil, err
	}
	playlist.ID = result.InsertedID.(bson.ObjectID)
	return playlist, nil
}

func (r *PlaylistRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Playlist, error) {
	var playlist model.Playlist
	if err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&playlist); err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (r *PlaylistRepository) ExistsByOwnerAndName(ctx context.Context, ownerID bson.ObjectID, name string) (bool, error) {
	count, err := r.collection().CountDocuments(ctx, bson.M{"owner": ownerID, "name": name})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PlaylistRepository) Update(ctx context.Context, id bson.ObjectID, name, description string) (*model.Playlist, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var playlist model.Playlist
	err := r.collection().
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{
			"$set": bson.M{"name": name, "description": description, "updatedAt": time.Now().UTC()},
		}, opts).
		Decode(&playlist)
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (r *PlaylistRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// AddVideo appends videoID unless it is already in the list.
func (r *PlaylistRepository) AddVideo(ctx context.Context, id, videoID bson.ObjectID) error {
	_, err := r.collection().UpdateByID(ctx, id, bson.M{
		"$addToSet": bson.M{"videos": videoID},
		"$set":      bson.M{"updatedAt": time.Now().UTC()},
	})
	return err
}

func (r *PlaylistRepository) RemoveVideo(ctx context.Context, id, videoID bson.ObjectID) error {
	_, err := r.collection().UpdateByID(ctx, id, bson.M{
		"$pull": bson.M{"videos": videoID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	})
	return err
}

func (r *PlaylistRepository) GetView(ctx context.Context, id, viewerID bson.ObjectID) (*dto.PlaylistView, error) {
	views, err := r.aggregateViews(ctx, bson.M{"_id": id}, viewerID)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return &views[0], nil
}

func (r *PlaylistRepository) ListByOwner(ctx context.Context, ownerID, viewerID bson.ObjectID) ([]dto.PlaylistView, error) {
	return r.aggregateViews(ctx, bson.M{"owner": ownerID}, viewerID)
}

// aggregateViews is the playlist projection: embed the playlist's videos
// (each with its owner summary), the playlist creator, and whether the viewer
// owns the playlist.
func (r *PlaylistRepository) aggregateViews(ctx context.Context, match bson.M, viewerID bson.ObjectID) ([]dto.PlaylistView, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "videos",
			"localField":   "videos",
			"foreignField": "_id",
			"as":           "videos",
			"pipeline": mongo.Pipeline{
				lookupOwnerSummary("owner", "createdBy"),
				flattenFirst("createdBy"),
			},
		}}},
		lookupOwnerSummary("owner", "createdBy"),
		flattenFirst("createdBy"),
		bson.D{{Key: "$addFields", Value: bson.M{
			"isOwner": bson.M{"$eq": bson.A{"$owner", viewerID}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}

	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: playlist aggregation failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	views := []dto.PlaylistView{}
	if err := cursor.All(ctx, &views); err != nil {
		return nil, err
	}
	return views, nil
}
