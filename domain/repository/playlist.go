package repository

import (
	"context"

	"vidtube/domain/dto"
	"vidtube/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type IPlaylist interface {
	Create(ctx context.Context, playlist *model.Playlist) (*model.Playlist, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Playlist, error)
	ExistsByOwnerAndName(ctx context.Context, ownerID bson.ObjectID, name string) (bool, error)
	Update(ctx context.Context, id bson.ObjectID, name, description string) (*model.Playlist, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	AddVideo(ctx context.Context, id, videoID bson.ObjectID) error
	RemoveVideo(ctx context.Context, id, videoID bson.ObjectID) error
	GetView(ctx context.Context, id, viewerID bson.ObjectID) (*dto.PlaylistView, error)
	ListByOwner(ctx context.Context, ownerID, viewerID bson.ObjectID) ([]dto.PlaylistView, error)
}
