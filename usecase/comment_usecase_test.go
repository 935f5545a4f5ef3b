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

func TestCommentUsecase_Add_Success(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	videoRepo := new(MockVideoRepository)
	uc := usecase.NewCommentUsecase(commentRepo, videoRepo, new(MockLikeRepository))

	videoID := bson.NewObjectID()
	userID := bson.NewObjectID()
	videoRepo.On("GetByID", mock.Anything, videoID).Return(&model.Video{ID: videoID}, nil)
	commentRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Comment) bool {
		return c.Content == "nice video" && c.Video == videoID && c.Owner == userID
	})).Return(&model.Comment{Content: "nice video"}, nil)

	comment, err := uc.Add(context.Background(), videoID.Hex(), userID, "  nice video  ")
	require.NoError(t, err)
	assert.Equal(t, "nice video", comment.Content)
	commentRepo.AssertExpectations(t)
}

func TestCommentUsecase_Add_EmptyContent(t *testing.T) {
	uc := usecase.NewCommentUsecase(new(MockCommentRepository), new(MockVideoRepository), new(MockLikeRepository))

	_, err := uc.Add(context.Background(), bson.NewObjectID().Hex(), bson.NewObjectID(), "   ")
	assert.Equal(t, 400, statusOf(t, err))
}

func TestCommentUsecase_Update_OnlyAuthor(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	uc := usecase.NewCommentUsecase(commentRepo, new(MockVideoRepository), new(MockLikeRepository))

	commentID := bson.NewObjectID()
	commentRepo.On("GetByID", mock.Anything, commentID).
		Return(&model.Comment{ID: commentID, Owner: bson.NewObjectID()}, nil)

	_, err := uc.Update(context.Background(), commentID.Hex(), bson.NewObjectID(), "edited")
	assert.Equal(t, 403, statusOf(t, err))
}

func TestCommentUsecase_Delete_ByAuthor(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	likeRepo := new(MockLikeRepository)
	uc := usecase.NewCommentUsecase(commentRepo, new(MockVideoRepository), likeRepo)

	commentID := bson.NewObjectID()
	authorID := bson.NewObjectID()
	commentRepo.On("GetByID", mock.Anything, commentID).
		Return(&model.Comment{ID: commentID, Owner: authorID}, nil)
	commentRepo.On("Delete", mock.Anything, commentID).Return(nil)
	likeRepo.On("DeleteByTarget", mock.Anything, model.LikeTargetComment, commentID).Return(nil)

	err := uc.Delete(context.Background(), commentID.Hex(), authorID)
	require.NoError(t, err)
	commentRepo.AssertExpectations(t)
	likeRepo.AssertExpectations(t)
}

func TestCommentUsecase_Delete_ByVideoOwner(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	videoRepo := new(MockVideoRepository)
	likeRepo := new(MockLikeRepository)
	uc := usecase.NewCommentUsecase(commentRepo, videoRepo, likeRepo)

	commentID := bson.NewObjectID()
	videoID := bson.NewObjectID()
	videoOwnerID := bson.NewObjectID()
	commentRepo.On("GetByID", mock.Anything, commentID).
		Return(&model.Comment{ID: commentID, Video: videoID, Owner: bson.NewObjectID()}, nil)
	videoRepo.On("GetByID", mock.Anything, videoID).
		Return(&model.Video{ID: videoID, Owner: videoOwnerID}, nil)
	commentRepo.On("Delete", mock.Anything, commentID).Return(nil)
	likeRepo.On("DeleteByTarget", mock.Anything, model.LikeTargetComment, commentID).Return(nil)

	err := uc.Delete(context.Background(), commentID.Hex(), videoOwnerID)
	require.NoError(t, err)
}

func TestCommentUsecase_Delete_Stranger(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	videoRepo := new(MockVideoRepository)
	uc := usecase.NewCommentUsecase(commentRepo, videoRepo, new(MockLikeRepository))

	commentID := bson.NewObjectID()
	videoID := bson.NewObjectID()
	commentRepo.On("GetByID", mock.Anything, commentID).
		Return(&model.Comment{ID: commentID, Video: videoID, Owner: bson.NewObjectID()}, nil)
	videoRepo.On("GetByID", mock.Anything, videoID).
		Return(&model.Video{ID: videoID, Owner: bson.NewObjectID()}, nil)

	err := uc.Delete(context.Background(), commentID.Hex(), bson.NewObjectID())
	assert.Equal(t, 403, statusOf(t, err))
	commentRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCommentUsecase_List_UnknownVideo(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := usecase.NewCommentUsecase(new(MockCommentRepository), videoRepo, new(MockLikeRepository))

	videoID := bson.NewObjectID()
	videoRepo.On("GetByID", mock.Anything, videoID).Return(nil, mongo.ErrNoDocuments)

	_, err := uc.List(context.Background(), videoID.Hex(), bson.ObjectID{}, dto.CommentListQuery{})
	assert.Equal(t, 404, statusOf(t, err))
}

func TestCommentUsecase_List_AppliesDefaults(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	videoRepo := new(MockVideoRepository)
	uc := usecase.NewCommentUsecase(commentRepo, videoRepo, new(MockLikeRepository))

	videoID := bson.NewObjectID()
	videoRepo.On("GetByID", mock.Anything, videoID).Return(&model.Video{ID: videoID}, nil)
	commentRepo.On("ListByVideo", mock.Anything, videoID, bson.ObjectID{}, mock.MatchedBy(func(q dto.CommentListQuery) bool {
		return q.Page == 1 && q.Limit == 10
	})).Return(&dto.CommentPage{Total: 0, Comments: []dto.CommentWithUser{}}, nil)

	page, err := uc.List(context.Background(), videoID.Hex(), bson.ObjectID{}, dto.CommentListQuery{})
	require.NoError(t, err)
	assert.Zero(t, page.Total)
	assert.Empty(t, page.Comments)
}
