package repository

import (
	"context"

	"vidtube/domain/dto"
	"vidtube/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type IVideo interface {
	Create(ctx context.Context, video *model.Video) (*model.Video, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Video, error)
	Update(ctx context.Context, id bson.ObjectID, title, description, thumbnail string) (*model.Video, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	IncrementViews(ctx context.Context, id bson.ObjectID) error
	SetPublished(ctx context.Context, id bson.ObjectID, published bool) error
	List(ctx context.Context, query dto.VideoListQuery) ([]dto.VideoWithOwner, error)
	GetDetail(ctx context.Context, id, viewerID bson.ObjectID) (*dto.VideoDetail, error)
	ListByOwner(ctx context.Context, ownerID bson.ObjectID) ([]dto.VideoWithOwner, error)
}
