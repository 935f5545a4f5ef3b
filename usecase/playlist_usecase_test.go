package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"vidtube/domain/dto"
	"vidtube/domain/model"
	"vidtube/usecase"
)

func TestPlaylistUsecase_Create_Success(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	uc := usecase.NewPlaylistUsecase(playlistRepo, new(MockVideoRepository))

	ownerID := bson.NewObjectID()
	playlistRepo.On("ExistsByOwnerAndName", mock.Anything, ownerID, "Watch later").Return(false, nil)
	playlistRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Playlist) bool {
		return p.Name == "Watch later" && p.Owner == ownerID && p.Videos != nil && len(p.Videos) == 0
	})).Return(&model.Playlist{Name: "Watch later"}, nil)

	playlist, err := uc.Create(context.Background(), ownerID, " Watch later ", "things to watch")
	require.NoError(t, err)
	assert.Equal(t, "Watch later", playlist.Name)
	playlistRepo.AssertExpectations(t)
}

func TestPlaylistUsecase_Create_DuplicateName(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	uc := usecase.NewPlaylistUsecase(playlistRepo, new(MockVideoRepository))

	ownerID := bson.NewObjectID()
	playlistRepo.On("ExistsByOwnerAndName", mock.Anything, ownerID, "Watch later").Return(true, nil)

	_, err := uc.Create(context.Background(), ownerID, "Watch later", "dup")
	assert.Equal(t, 409, statusOf(t, err))
	playlistRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPlaylistUsecase_Create_MissingFields(t *testing.T) {
	uc := usecase.NewPlaylistUsecase(new(MockPlaylistRepository), new(MockVideoRepository))

	_, err := uc.Create(context.Background(), bson.NewObjectID(), "", "desc")
	assert.Equal(t, 400, statusOf(t, err))
}

func TestPlaylistUsecase_AddVideo_Success(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	videoRepo := new(MockVideoRepository)
	uc := usecase.NewPlaylistUsecase(playlistRepo, videoRepo)

	playlistID := bson.NewObjectID()
	videoID := bson.NewObjectID()
	ownerID := bson.NewObjectID()
	playlistRepo.On("GetByID", mock.Anything, playlistID).
		Return(&model.Playlist{ID: playlistID, Owner: ownerID}, nil)
	videoRepo.On("GetByID", mock.Anything, videoID).Return(&model.Video{ID: videoID}, nil)
	playlistRepo.On("AddVideo", mock.Anything, playlistID, videoID).Return(nil)
	playlistRepo.On("GetView", mock.Anything, playlistID, ownerID).
		Return(&dto.PlaylistView{ID: playlistID, IsOwner: true}, nil)

	view, err := uc.AddVideo(context.Background(), playlistID.Hex(), videoID.Hex(), ownerID)
	require.NoError(t, err)
	assert.True(t, view.IsOwner)
	playlistRepo.AssertExpectations(t)
}

func TestPlaylistUsecase_AddVideo_NotOwner(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	uc := usecase.NewPlaylistUsecase(playlistRepo, new(MockVideoRepository))

	playlistID := bson.NewObjectID()
	playlistRepo.On("GetByID", mock.Anything, playlistID).
		Return(&model.Playlist{ID: playlistID, Owner: bson.NewObjectID()}, nil)

	_, err := uc.AddVideo(context.Background(), playlistID.Hex(), bson.NewObjectID().Hex(), bson.NewObjectID())
	assert.Equal(t, 403, statusOf(t, err))
}

func TestPlaylistUsecase_AddVideo_UnknownVideo(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	videoRepo := new(MockVideoRepository)
	uc := usecase.NewPlaylistUsecase(playlistRepo, videoRepo)

	playlistID := bson.NewObjectID()
	videoID := bson.NewObjectID()
	ownerID := bson.NewObjectID()
	playlistRepo.On("GetByID", mock.Anything, playlistID).
		Return(&model.Playlist{ID: playlistID, Owner: ownerID}, nil)
	videoRepo.On("GetByID", mock.Anything, videoID).Return(nil, mongo.ErrNoDocuments)

	_, err := uc.AddVideo(context.Background(), playlistID.Hex(), videoID.Hex(), ownerID)
	assert.Equal(t, 404, statusOf(t, err))
}

func TestPlaylistUsecase_Delete_UnknownPlaylist(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	uc := usecase.NewPlaylistUsecase(playlistRepo, new(MockVideoRepository))

	playlistID := bson.NewObjectID()
	playlistRepo.On("GetByID", mock.Anything, playlistID).Return(nil, mongo.ErrNoDocuments)

	err := uc.Delete(context.Background(), playlistID.Hex(), bson.NewObjectID())
	assert.Equal(t, 404, statusOf(t, err))
}
