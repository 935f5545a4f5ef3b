package usecase

import (
	"context"
	"strings"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ICommentUsecase interface {
	List(ctx context.Context, videoID string, viewerID bson.ObjectID, query dto.CommentListQuery) (*dto.CommentPage, error)
	Add(ctx context.Context, videoID string, ownerID bson.ObjectID, content string) (*model.Comment, error)
	Update(ctx context.Context, commentID string, ownerID bson.ObjectID, content string) (*model.Comment, error)
	Delete(ctx context.Context, commentID string, requesterID bson.ObjectID) error
}

type CommentUsecase struct {
	commentRepo repository.IComment
	videoRepo   repository.IVideo
	likeRepo    repository.ILike
}

func NewCommentUsecase(commentRepo repository.IComment, videoRepo repository.IVideo, likeRepo repository.ILike) ICommentUsecase {
	return &CommentUsecase{commentRepo: commentRepo, videoRepo: videoRepo, likeRepo: likeRepo}
}

func (u *CommentUsecase) List(ctx context.Context, videoID string, viewerID bson.ObjectID, query dto.CommentListQuery) (*dto.CommentPage, error) {
	id, err := parseObjectID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	if _, err := u.videoRepo.GetByID(ctx, id); err != nil {
		return nil, orNotFound(err, "video")
	}
	query.Normalize()
	return u.commentRepo.ListByVideo(ctx, id, viewerID, query)
}

func (u *CommentUsecase) Add(ctx context.Context, videoID string, ownerID bson.ObjectID, content string) (*model.Comment, error) {
	id, err := parseObjectID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, apperror.BadRequest("content is required")
	}
	if _, err := u.videoRepo.GetByID(ctx, id); err != nil {
		return nil, orNotFound(err, "video")
	}
	return u.commentRepo.Create(ctx, &model.Comment{
		Content: strings.TrimSpace(content),
		Video:   id,
		Owner:   ownerID,
	})
}

func (u *CommentUsecase) Update(ctx context.Context, commentID string, ownerID bson.ObjectID, content string) (*model.Comment, error) {
	id, err := parseObjectID(commentID, "comment id")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, apperror.BadRequest("content is required")
	}
	comment, err := u.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, "comment")
	}
	if comment.Owner != ownerID {
		return nil, apperror.Forbidden("you are not allowed to edit this comment")
	}
	updated, err := u.commentRepo.UpdateContent(ctx, id, strings.TrimSpace(content))
	if err != nil {
		return nil, orNotFound(err, "comment")
	}
	return updated, nil
}

// Delete allows removal by the comment author or by the owner of the video
// the comment sits on.
func (u *CommentUsecase) Delete(ctx context.Context, commentID string, requesterID bson.ObjectID) error {
	id, err := parseObjectID(commentID, "comment id")
	if err != nil {
		return err
	}
	comment, err := u.commentRepo.GetByID(ctx, id)
	if err != nil {
		return orNotFound(err, "comment")
	}
	if comment.Owner != requesterID {
		video, err := u.videoRepo.GetByID(ctx, comment.Video)
		if err != nil || video.Owner != requesterID {
			return apperror.Forbidden("you are not allowed to delete this comment")
		}
	}
	if err := u.commentRepo.Delete(ctx, id); err != nil {
		return orNotFound(err, "comment")
	}
	if err := u.likeRepo.DeleteByTarget(ctx, model.LikeTargetComment, id); err != nil {
		logger.GetLogger().WithField("error", err).Warn("failed to delete comment likes")
	}
	return nil
}
