package repository

import (
	"context"

	"vidtube/domain/dto"
	"vidtube/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ILike interface {
	Find(ctx context.Context, likedBy bson.ObjectID, kind model.LikeTarget, targetID bson.ObjectID) (*model.Like, error)
	Create(ctx context.Context, like *model.Like) (*model.Like, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	DeleteByTarget(ctx context.Context, kind model.LikeTarget, targetID bson.ObjectID) error
	ListLikedVideos(ctx context.Context, likedBy bson.ObjectID) ([]dto.VideoWithOwner, error)
}
