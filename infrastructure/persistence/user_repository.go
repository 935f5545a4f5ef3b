package persistence

import (
	"context"
	"sort"
	"strings"
	"time"

	"vidtube/domain/dto"
	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type UserRepository struct {
	db *mongo.Database
}

func NewUserRepository(db *mongo.Database) repository.IUser {
	return &UserRepository{db: db}
}

func (r *UserRepository) collection() *mongo.Collection {
	return r.db.Collection("users")
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	now := time.Now().UTC()
	user.Username = strings.ToLower(user.Username)
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := r.collection().InsertOne(ctx, user)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: insert user failed")
		return nil, err
	}
	user.ID = result.InsertedID.(bson.ObjectID)
	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	var user model.User
	if err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsernameOrEmail matches either identity field; username comparison is
// case-insensitive because usernames are stored lowercase.
func (r *UserRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": strings.ToLower(username)},
		bson.M{"email": email},
	}}
	var user model.User
	if err := r.collection().FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdateRefreshToken(ctx context.Context, id bson.ObjectID, refreshToken string) error {
	_, err := r.collection().UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"refreshToken": refreshToken, "updatedAt": time.Now().UTC()},
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: update refresh token failed")
	}
	return err
}

func (r *UserRepository) ClearRefreshToken(ctx context.Context, id bson.ObjectID) error {
	_, err := r.collection().UpdateByID(ctx, id, bson.M{
		"$unset": bson.M{"refreshToken": ""},
		"$set":   bson.M{"updatedAt": time.Now().UTC()},
	})
	return err
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id bson.ObjectID, hashed string) error {
	_, err := r.collection().UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"password": hashed, "updatedAt": time.Now().UTC()},
	})
	return err
}

func (r *UserRepository) UpdateAccount(ctx context.Context, id bson.ObjectID, fullName, email string) (*model.User, error) {
	return r.findOneAndSet(ctx, id, bson.M{"fullName": fullName, "email": email})
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, id bson.ObjectID, avatarURL string) (*model.User, error) {
	return r.findOneAndSet(ctx, id, bson.M{"avatar": avatarURL})
}

func (r *UserRepository) UpdateCoverImage(ctx context.Context, id bson.ObjectID, coverURL string) (*model.User, error) {
	return r.findOneAndSet(ctx, id, bson.M{"coverImage": coverURL})
}

func (r *UserRepository) findOneAndSet(ctx context.Context, id bson.ObjectID, fields bson.M) (*model.User, error) {
	fields["updatedAt"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user model.User
	err := r.collection().
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).
		Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// TouchWatchHistory moves videoID to the front of the user's watch history,
// removing any earlier occurrence first so the list stays duplicate free.
func (r *UserRepository) TouchWatchHistory(ctx context.Context, userID, videoID bson.ObjectID) error {
	coll := r.collection()
	if _, err := coll.UpdateByID(ctx, userID, bson.M{
		"$pull": bson.M{"watchHistory": videoID},
	}); err != nil {
		return err
	}
	_, err := coll.UpdateByID(ctx, userID, bson.M{
		"$push": bson.M{"watchHistory": bson.M{"$each": bson.A{videoID}, "$position": 0}},
	})
	return err
}

// GetWatchHistory joins the user's watchHistory ids to the videos collection.
// $lookup returns the joined documents in foreign-collection order, so the
// rows are re-sorted against the stored id array to keep most recently
// watched first.
func (r *UserRepository) GetWatchHistory(ctx context.Context, userID bson.ObjectID) ([]dto.VideoWithOwner, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": userID}}},
		bson.D{{Key: "$addFields", Value: bson.M{"historyOrder": "$watchHistory"}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "videos",
			"localField":   "watchHistory",
			"foreignField": "_id",
			"as":           "watchHistory",
			"pipeline": mongo.Pipeline{
				lookupOwnerSummary("owner", "createdBy"),
				flattenFirst("createdBy"),
			},
		}}},
		bson.D{{Key: "$project", Value: bson.M{"watchHistory": 1, "historyOrder": 1}}},
	}

	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: watch history aggregation failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		HistoryOrder []bson.ObjectID      `bson:"historyOrder"`
		WatchHistory []dto.VideoWithOwner `bson:"watchHistory"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return sortByStoredOrder(rows[0].WatchHistory, rows[0].HistoryOrder), nil
}

// sortByStoredOrder orders joined videos by their position in the id array
// kept on the user document. Ids whose video no longer exists simply have no
// row to place.
func sortByStoredOrder(videos []dto.VideoWithOwner, order []bson.ObjectID) []dto.VideoWithOwner {
	position := make(map[bson.ObjectID]int, len(order))
	for i, id := range order {
		position[id] = i
	}
	sort.SliceStable(videos, func(i, j int) bool {
		return position[videos[i].ID] < position[videos[j].ID]
	})
	return videos
}

// GetChannelProfile resolves a public channel page by username, counting the
// channel's subscribers and subscriptions and checking whether viewerID is
// among the subscribers.
func (r *UserRepository) GetChannelProfile(ctx context.Context, username string, viewerID bson.ObjectID) (*dto.ChannelProfile, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"username": strings.ToLower(username)}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "subscriptions",
			"localField":   "_id",
			"foreignField": "channel",
			"as":           "subscribers",
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "subscriptions",
			"localField":   "_id",
			"foreignField": "subscriber",
			"as":           "subscribedTo",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"subscribersCount":  bson.M{"$size": "$subscribers"},
			"subscribedToCount": bson.M{"$size": "$subscribedTo"},
			"isSubscribed": bson.M{"$cond": bson.M{
				"if":   bson.M{"$in": bson.A{viewerID, "$subscribers.subscriber"}},
				"then": true,
				"else": false,
			}},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"fullName":          1,
			"username":          1,
			"email":             1,
			"avatar":            1,
			"coverImage":        1,
			"subscribersCount":  1,
			"subscribedToCount": 1,
			"isSubscribed":      1,
		}}},
	}

	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: channel profile aggregation failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []dto.ChannelProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return &profiles[0], nil
}
