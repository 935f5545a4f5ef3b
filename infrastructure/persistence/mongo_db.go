package persistence

import (
	"context"
	"fmt"
	"time"

	"vidtube/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// NewMongoDb connects to the document store and returns the client. Callers
// should Ping before trusting the connection.
func NewMongoDb(host, port, user, password, name string) (*mongo.Client, error) {
	uri := fmt.Sprintf("mongodb://%s:%s/%s", host, port, name)
	if user != "" {
		uri = fmt.Sprintf("mongodb://%s:%s@%s:%s/%s?authSource=admin", user, password, host, port, name)
	}

	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(opts)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Cannot connect to MongoDB")
		return nil, err
	}
	return client, nil
}

// EnsureIndexes creates the unique and search indexes the repositories rely
// on. Safe to call on every startup; existing indexes are no-ops.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	specs := []struct {
		collection string
		model      mongo.IndexModel
	}{
		{"users", mongo.IndexModel{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique}},
		{"users", mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique}},
		{"videos", mongo.IndexModel{Keys: bson.D{{Key: "title", Value: "text"}, {Key: "description", Value: "text"}}}},
		{"videos", mongo.IndexModel{Keys: bson.D{{Key: "owner", Value: 1}}}},
		{"comments", mongo.IndexModel{Keys: bson.D{{Key: "video", Value: 1}, {Key: "createdAt", Value: -1}}}},
		{"likes", mongo.IndexModel{Keys: bson.D{{Key: "likedBy", Value: 1}, {Key: "targetKind", Value: 1}, {Key: "targetId", Value: 1}}, Options: unique}},
		{"likes", mongo.IndexModel{Keys: bson.D{{Key: "targetKind", Value: 1}, {Key: "targetId", Value: 1}}}},
		{"subscriptions", mongo.IndexModel{Keys: bson.D{{Key: "subscriber", Value: 1}, {Key: "channel", Value: 1}}, Options: unique}},
		{"subscriptions", mongo.IndexModel{Keys: bson.D{{Key: "channel", Value: 1}}}},
		{"playlists", mongo.IndexModel{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "name", Value: 1}}, Options: unique}},
		{"tweets", mongo.IndexModel{Keys: bson.D{{Key: "owner", Value: 1}}}},
	}

	for _, spec := range specs {
		if _, err := db.Collection(spec.collection).Indexes().CreateOne(ctx, spec.model); err != nil {
			logger.GetLogger().WithFields(map[string]interface{}{
				"error":      err,
				"collection": spec.collection,
			}).Error("failed ensuring index")
			return err
		}
	}
	return nil
}
