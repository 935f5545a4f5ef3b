package usecase

import (
	"context"
	"strings"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/domain/model"
	"vidtube/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type IPlaylistUsecase interface {
	Create(ctx context.Context, ownerID bson.ObjectID, name, description string) (*model.Playlist, error)
	GetUserPlaylists(ctx context.Context, ownerID string, viewerID bson.ObjectID) ([]dto.PlaylistView, error)
	GetByID(ctx context.Context, playlistID string, viewerID bson.ObjectID) (*dto.PlaylistView, error)
	AddVideo(ctx context.Context, playlistID, videoID string, ownerID bson.ObjectID) (*dto.PlaylistView, error)
	RemoveVideo(ctx context.Context, playlistID, videoID string, ownerID bson.ObjectID) (*dto.PlaylistView, error)
	Update(ctx context.Context, playlistID string, ownerID bson.ObjectID, name, description string) (*model.Playlist, error)
	Delete(ctx context.Context, playlistID string, ownerID bson.ObjectID) error
}

type PlaylistUsecase struct {
	playlistRepo repository.IPlaylist
	videoRepo    repository.IVideo
}

func NewPlaylistUsecase(playlistRepo repository.IPlaylist, videoRepo repository.IVideo) IPlaylistUsecase {
	return &PlaylistUsecase{playlistRepo: playlistRepo, videoRepo: videoRepo}
}

// Create enforces one playlist per name per owner.
func (u *PlaylistUsecase) Create(ctx context.Context, ownerID bson.ObjectID, name, description string) (*model.Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.TrimSpace(description) == "" {
		return nil, apperror.BadRequest("name and description are required")
	}
	exists, err := u.playlistRepo.ExistsByOwnerAndName(ctx, ownerID, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("playlist with this name already exists")
	}
	playlist, err := u.playlistRepo.Create(ctx, &model.Playlist{
		Name:        name,
		Description: strings.TrimSpace(description),
		Owner:       ownerID,
		Videos:      []bson.ObjectID{},
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperror.Conflict("playlist with this name already exists")
		}
		return nil, err
	}
	return playlist, nil
}

func (u *PlaylistUsecase) GetUserPlaylists(ctx context.Context, ownerID string, viewerID bson.ObjectID) ([]dto.PlaylistView, error) {
	id, err := parseObjectID(ownerID, "user id")
	if err != nil {
		return nil, err
	}
	return u.playlistRepo.ListByOwner(ctx, id, viewerID)
}

func (u *PlaylistUsecase) GetByID(ctx context.Context, playlistID string, viewerID bson.ObjectID) (*dto.PlaylistView, error) {
	id, err := parseObjectID(playlistID, "playlist id")
	if err != nil {
		return nil, err
	}
	view, err := u.playlistRepo.GetView(ctx, id, viewerID)
	if err != nil {
		return nil, orNotFound(err, "playlist")
	}
	return view, nil
}

func (u *PlaylistUsecase) AddVideo(ctx context.Context, playlistID, videoID string, ownerID bson.ObjectID) (*dto.PlaylistView, error) {
	playlist, err := u.fetchOwned(ctx, playlistID, ownerID)
	if err != nil {
		return nil, err
	}
	vid, err := parseObjectID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	if _, err := u.videoRepo.GetByID(ctx, vid); err != nil {
		return nil, orNotFound(err, "video")
	}
	if err := u.playlistRepo.AddVideo(ctx, playlist.ID, vid); err != nil {
		return nil, err
	}
	view, err := u.playlistRepo.GetView(ctx, playlist.ID, ownerID)
	if err != nil {
		return nil, orNotFound(err, "playlist")
	}
	return view, nil
}

func (u *PlaylistUsecase) RemoveVideo(ctx context.Context, playlistID, videoID string, ownerID bson.ObjectID) (*dto.PlaylistView, error) {
	playlist, err := u.fetchOwned(ctx, playlistID, ownerID)
	if err != nil {
		return nil, err
	}
	vid, err := parseObjectID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	if err := u.playlistRepo.RemoveVideo(ctx, playlist.ID, vid); err != nil {
		return nil, err
	}
	view, err := u.playlistRepo.GetView(ctx, playlist.ID, ownerID)
	if err != nil {
		return nil, orNotFound(err, "playlist")
	}
	return view, nil
}

func (u *PlaylistUsecase) Update(ctx context.Context, playlistID string, ownerID bson.ObjectID, name, description string) (*model.Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.TrimSpace(description) == "" {
		return nil, apperror.BadRequest("name and description are required")
	}
	playlist, err := u.fetchOwned(ctx, playlistID, ownerID)
	if err != nil {
		return nil, err
	}
	updated, err := u.playlistRepo.Update(ctx, playlist.ID, name, strings.TrimSpace(description))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperror.Conflict("playlist with this name already exists")
		}
		return nil, orNotFound(err, "playlist")
	}
	return updated, nil
}

func (u *PlaylistUsecase) Delete(ctx context.Context, playlistID string, ownerID bson.ObjectID) error {
	playlist, err := u.fetchOwned(ctx, playlistID, ownerID)
	if err != nil {
		return err
	}
	if err := u.playlistRepo.Delete(ctx, playlist.ID); err != nil {
		return orNotFound(err, "playlist")
	}
	return nil
}

func (u *PlaylistUsecase) fetchOwned(ctx context.Context, playlistID string, ownerID bson.ObjectID) (*model.Playlist, error) {
	id, err := parseObjectID(playlistID, "playlist id")
	if err != nil {
		return nil, err
	}
	playlist, err := u.playlistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, "playlist")
	}
	if playlist.Owner != ownerID {
		return nil, apperror.Forbidden("you are not allowed to modify this playlist")
	}
	return playlist, nil
}
