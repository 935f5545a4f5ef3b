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

func newVideoUsecase(videoRepo *MockVideoRepository, commentRepo *MockCommentRepository, likeRepo *MockLikeRepository, userRepo *MockUserRepository, media *MockMediaStorage) usecase.IVideoUsecase {
	return usecase.NewVideoUsecase(videoRepo, commentRepo, likeRepo, userRepo, media)
}

func TestVideoUsecase_Publish_Success(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	media := new(MockMediaStorage)
	uc := newVideoUsecase(videoRepo, new(MockCommentRepository), new(MockLikeRepository), new(MockUserRepository), media)
	ownerID := bson.NewObjectID()

	media.On("Upload", mock.Anything, "/tmp/clip.mp4").
		Return(&model.UploadedAsset{URL: "http://media/clip.mp4", Duration: 42.5}, nil)
	media.On("Upload", mock.Anything, "/tmp/thumb.png").
		Return(&model.UploadedAsset{URL: "http://media/thumb.png"}, nil)
	videoRepo.On("Create", mock.Anything, mock.MatchedBy(func(v *model.Video) bool {
		return v.Title == "My clip" && v.Duration == 42.5 && v.IsPublished && v.Owner == ownerID
	})).Return(&model.Video{ID: bson.NewObjectID(), Title: "My clip"}, nil)

	video, err := uc.Publish(context.Background(), ownerID, dto.PublishVideoRequest{Title: "My clip"}, "/tmp/clip.mp4", "/tmp/thumb.png")
	require.NoError(t, err)
	assert.Equal(t, "My clip", video.Title)
	videoRepo.AssertExpectations(t)
	media.AssertExpectations(t)
}

func TestVideoUsecase_Publish_MissingTitle(t *testing.T) {
	uc := newVideoUsecase(new(MockVideoRepository), new(MockCommentRepository), new(MockLikeRepository), new(MockUserRepository), new(MockMediaStorage))

	_, err := uc.Publish(context.Background(), bson.NewObjectID(), dto.PublishVideoRequest{}, "/tmp/clip.mp4", "/tmp/thumb.png")
	assert.Equal(t, 400, statusOf(t, err))
}

func TestVideoUsecase_GetDetail_RecordsViewAndHistory(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	userRepo := new(MockUserRepository)
	uc := newVideoUsecase(videoRepo, new(MockCommentRepository), new(MockLikeRepository), userRepo, new(MockMediaStorage))

	videoID := bson.NewObjectID()
	viewerID := bson.NewObjectID()
	videoRepo.On("GetByID", mock.Anything, videoID).Return(&model.Video{ID: videoID}, nil)
	videoRepo.On("IncrementViews", mock.Anything, videoID).Return(nil)
	userRepo.On("TouchWatchHistory", mock.Anything, viewerID, videoID).Return(nil)
	videoRepo.On("GetDetail", mock.Anything, videoID, viewerID).
		Return(&dto.VideoDetail{ID: videoID}, nil)

	detail, err := uc.GetDetail(context.Background(), videoID.Hex(), viewerID)
	require.NoError(t, err)
	assert.Equal(t, videoID, detail.ID)
	videoRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestVideoUsecase_GetDetail_AnonymousSkipsHistory(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	userRepo := new(MockUserRepository)
	uc := newVideoUsecase(videoRepo, new(MockCommentRepository), new(MockLikeRepository), userRepo, new(MockMediaStorage))

	videoID := bson.NewObjectID()
	videoRepo.On("GetByID", mock.Anything, videoID).Return(&model.Video{ID: videoID}, nil)
	videoRepo.On("IncrementViews", mock.Anything, videoID).Return(nil)
	videoRepo.On("GetDetail", mock.Anything, videoID, bson.ObjectID{}).
		Return(&dto.VideoDetail{ID: videoID}, nil)

	_, err := uc.GetDetail(context.Background(), videoID.Hex(), bson.ObjectID{})
	require.NoError(t, err)
	userRepo.AssertNotCalled(t, "TouchWatchHistory", mock.Anything, mock.Anything, mock.Anything)
}

func TestVideoUsecase_GetDetail_UnknownVideo(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUsecase(videoRepo, new(MockCommentRepository), new(MockLikeRepository), new(MockUserRepository), new(MockMediaStorage))

	videoID := bson.NewObjectID()
	videoRepo.On("GetByID", mock.Anything, videoID).Return(nil, mongo.ErrNoDocuments)

	_, err := uc.GetDetail(context.Background(), videoID.Hex(), bson.ObjectID{})
	assert.Equal(t, 404, statusOf(t, err))
}

func TestVideoUsecase_GetDetail_MalformedID(t *testing.T) {
	uc := newVideoUsecase(new(MockVideoRepository), new(MockCommentRepository), new(MockLikeRepository), new(MockUserRepository), new(MockMediaStorage))

	_, err := uc.GetDetail(context.Background(), "nope", bson.ObjectID{})
	assert.Equal(t, 400, statusOf(t, err))
}

func TestVideoUsecase_Update_NotOwner(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUsecase(videoRepo, new(MockCommentRepository), new(MockLikeRepository), new(MockUserRepository), new(MockMediaStorage))

	videoID := bson.NewObjectID()
	videoRepo.On("GetByID", mock.Anything, videoID).
		Return(&model.Video{ID: videoID, Owner: bson.NewObjectID()}, nil)

	_, err := uc.Update(context.Background(), videoID.Hex(), bson.NewObjectID(), dto.UpdateVideoRequest{Title: "x"}, "")
	assert.Equal(t, 403, statusOf(t, err))
}

func TestVideoUsecase_Delete_CleansUpDependents(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	commentRepo := new(MockCommentRepository)
	likeRepo := new(MockLikeRepository)
	media := new(MockMediaStorage)
	uc := newVideoUsecase(videoRepo, commentRepo, likeRepo, new(MockUserRepository), media)

	videoID := bson.NewObjectID()
	ownerID := bson.NewObjectID()
	videoRepo.On("GetByID", mock.Anything, videoID).
		Return(&model.Video{ID: videoID, Owner: ownerID, VideoFile: "http://media/clip.mp4", Thumbnail: "http://media/thumb.png"}, nil)
	media.On("Delete", mock.Anything, "http://media/clip.mp4").Return(nil)
	media.On("Delete", mock.Anything, "http://media/thumb.png").Return(nil)
	videoRepo.On("Delete", mock.Anything, videoID).Return(nil)
	commentRepo.On("DeleteByVideo", mock.Anything, videoID).Return(nil)
	likeRepo.On("DeleteByTarget", mock.Anything, model.LikeTargetVideo, videoID).Return(nil)

	err := uc.Delete(context.Background(), videoID.Hex(), ownerID)
	require.NoError(t, err)
	videoRepo.AssertExpectations(t)
	commentRepo.AssertExpectations(t)
	likeRepo.AssertExpectations(t)
	media.AssertExpectations(t)
}

func TestVideoUsecase_TogglePublish(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUsecase(videoRepo, new(MockCommentRepository), new(MockLikeRepository), new(MockUserRepository), new(MockMediaStorage))

	videoID := bson.NewObjectID()
	ownerID := bson.NewObjectID()
	videoRepo.On("GetByID", mock.Anything, videoID).
		Return(&model.Video{ID: videoID, Owner: ownerID, IsPublished: true}, nil)
	videoRepo.On("SetPublished", mock.Anything, videoID, false).Return(nil)

	video, err := uc.TogglePublish(context.Background(), videoID.Hex(), ownerID)
	require.NoError(t, err)
	assert.False(t, video.IsPublished)
	videoRepo.AssertExpectations(t)
}

func TestVideoUsecase_List_InvalidUserID(t *testing.T) {
	uc := newVideoUsecase(new(MockVideoRepository), new(MockCommentRepository), new(MockLikeRepository), new(MockUserRepository), new(MockMediaStorage))

	_, err := uc.List(context.Background(), dto.VideoListQuery{UserID: "bad-id"})
	assert.Equal(t, 400, statusOf(t, err))
}

func TestVideoUsecase_List_AppliesDefaults(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUsecase(videoRepo, new(MockCommentRepository), new(MockLikeRepository), new(MockUserRepository), new(MockMediaStorage))

	videoRepo.On("List", mock.Anything, mock.MatchedBy(func(q dto.VideoListQuery) bool {
		return q.Page == 1 && q.Limit == 10 && q.SortBy == "createdAt"
	})).Return([]dto.VideoWithOwner{}, nil)

	videos, err := uc.List(context.Background(), dto.VideoListQuery{})
	require.NoError(t, err)
	assert.Empty(t, videos)
	videoRepo.AssertExpectations(t)
}
