package repository

import (
	"context"

	"vidtube/domain/dto"
	"vidtube/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type IComment interface {
	Create(ctx context.Context, comment *model.Comment) (*model.Comment, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Comment, error)
	UpdateContent(ctx context.Context, id bson.ObjectID, content string) (*model.Comment, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	DeleteByVideo(ctx context.Context, videoID bson.ObjectID) error
	ListByVideo(ctx context.Context, videoID, viewerID bson.ObjectID, query dto.CommentListQuery) (*dto.CommentPage, error)
}
