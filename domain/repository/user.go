package repository

import (
	"context"

	"vidtube/domain/dto"
	"vidtube/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// IUser is the account store. Watch history mutations keep the list in
// most-recently-watched-first order with no duplicates.
type IUser interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*model.User, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error)
	UpdateRefreshToken(ctx context.Context, id bson.ObjectID, refreshToken string) error
	ClearRefreshToken(ctx context.Context, id bson.ObjectID) error
	UpdatePassword(ctx context.Context, id bson.ObjectID, hashed string) error
	UpdateAccount(ctx context.Context, id bson.ObjectID, fullName, email string) (*model.User, error)
	UpdateAvatar(ctx context.Context, id bson.ObjectID, avatarURL string) (*model.User, error)
	UpdateCoverImage(ctx context.Context, id bson.ObjectID, coverURL string) (*model.User, error)
	TouchWatchHistory(ctx context.Context, userID, videoID bson.ObjectID) error
	GetWatchHistory(ctx context.Context, userID bson.ObjectID) ([]dto.VideoWithOwner, error)
	GetChannelProfile(ctx context.Context, username string, viewerID bson.ObjectID) (*dto.ChannelProfile, error)
}
