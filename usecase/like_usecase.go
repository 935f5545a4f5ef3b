package usecase

import (
	"context"
	"errors"

	"vidtube/domain/dto"
	"vidtube/domain/model"
	"vidtube/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type ILikeUsecase interface {
	ToggleVideoLike(ctx context.Context, videoID string, likedBy bson.ObjectID) (bool, error)
	ToggleCommentLike(ctx context.Context, commentID string, likedBy bson.ObjectID) (bool, error)
	ToggleTweetLike(ctx context.Context, tweetID string, likedBy bson.ObjectID) (bool, error)
	ListLikedVideos(ctx context.Context, likedBy bson.ObjectID) ([]dto.VideoWithOwner, error)
}

type LikeUsecase struct {
	likeRepo    repository.ILike
	videoRepo   repository.IVideo
	commentRepo repository.IComment
	tweetRepo   repository.ITweet
}

func NewLikeUsecase(likeRepo repository.ILike, videoRepo repository.IVideo, commentRepo repository.IComment, tweetRepo repository.ITweet) ILikeUsecase {
	return &LikeUsecase{
		likeRepo:    likeRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		tweetRepo:   tweetRepo,
	}
}

func (u *LikeUsecase) ToggleVideoLike(ctx context.Context, videoID string, likedBy bson.ObjectID) (bool, error) {
	id, err := parseObjectID(videoID, "video id")
	if err != nil {
		return false, err
	}
	if _, err := u.videoRepo.GetByID(ctx, id); err != nil {
		return false, orNotFound(err, "video")
	}
	return u.toggle(ctx, likedBy, model.LikeTargetVideo, id)
}

func (u *LikeUsecase) ToggleCommentLike(ctx context.Context, commentID string, likedBy bson.ObjectID) (bool, error) {
	id, err := parseObjectID(commentID, "comment id")
	if err != nil {
		return false, err
	}
	if _, err := u.commentRepo.GetByID(ctx, id); err != nil {
		return false, orNotFound(err, "comment")
	}
	return u.toggle(ctx, likedBy, model.LikeTargetComment, id)
}

func (u *LikeUsecase) ToggleTweetLike(ctx context.Context, tweetID string, likedBy bson.ObjectID) (bool, error) {
	id, err := parseObjectID(tweetID, "tweet id")
	if err != nil {
		return false, err
	}
	if _, err := u.tweetRepo.GetByID(ctx, id); err != nil {
		return false, orNotFound(err, "tweet")
	}
	return u.toggle(ctx, likedBy, model.LikeTargetTweet, id)
}

func (u *LikeUsecase) ListLikedVideos(ctx context.Context, likedBy bson.ObjectID) ([]dto.VideoWithOwner, error) {
	return u.likeRepo.ListLikedVideos(ctx, likedBy)
}

// toggle flips the like state and reports the state after the call. A
// concurrent duplicate insert is treated as already liked.
func (u *LikeUsecase) toggle(ctx context.Context, likedBy bson.ObjectID, kind model.LikeTarget, targetID bson.ObjectID) (bool, error) {
	existing, err := u.likeRepo.Find(ctx, likedBy, kind, targetID)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return false, err
		}
		_, err := u.likeRepo.Create(ctx, &model.Like{
			LikedBy:    likedBy,
			TargetKind: kind,
			TargetID:   targetID,
		})
		if err != nil && !mongo.IsDuplicateKeyError(err) {
			return false, err
		}
		return true, nil
	}
	if err := u.likeRepo.Delete(ctx, existing.ID); err != nil {
		return false, err
	}
	return false, nil
}
