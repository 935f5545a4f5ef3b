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

type IVideoUsecase interface {
	List(ctx context.Context, query dto.VideoListQuery) ([]dto.VideoWithOwner, error)
	Publish(ctx context.Context, ownerID bson.ObjectID, req dto.PublishVideoRequest, videoPath, thumbnailPath string) (*model.Video, error)
	GetDetail(ctx context.Context, videoID string, viewerID bson.ObjectID) (*dto.VideoDetail, error)
	Update(ctx context.Context, videoID string, ownerID bson.ObjectID, req dto.UpdateVideoRequest, thumbnailPath string) (*model.Video, error)
	Delete(ctx context.Context, videoID string, ownerID bson.ObjectID) error
	TogglePublish(ctx context.Context, videoID string, ownerID bson.ObjectID) (*model.Video, error)
}

type VideoUsecase struct {
	videoRepo   repository.IVideo
	commentRepo repository.IComment
	likeRepo    repository.ILike
	userRepo    repository.IUser
	media       repository.IMediaStorage
}

func NewVideoUsecase(videoRepo repository.IVideo, commentRepo repository.IComment, likeRepo repository.ILike, userRepo repository.IUser, media repository.IMediaStorage) IVideoUsecase {
	return &VideoUsecase{
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		userRepo:    userRepo,
		media:       media,
	}
}

func (u *VideoUsecase) List(ctx context.Context, query dto.VideoListQuery) ([]dto.VideoWithOwner, error) {
	query.Normalize()
	if query.UserID != "" {
		if _, err := bson.ObjectIDFromHex(query.UserID); err != nil {
			return nil, apperror.BadRequest("userId is invalid")
		}
	}
	return u.videoRepo.List(ctx, query)
}

// Publish uploads the video and thumbnail to the media host and stores the
// video document with the duration reported by the host.
func (u *VideoUsecase) Publish(ctx context.Context, ownerID bson.ObjectID, req dto.PublishVideoRequest, videoPath, thumbnailPath string) (*model.Video, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperror.BadRequest("title is required")
	}
	if videoPath == "" {
		return nil, apperror.BadRequest("video file is required")
	}
	if thumbnailPath == "" {
		return nil, apperror.BadRequest("thumbnail file is required")
	}

	videoAsset, err := u.media.Upload(ctx, videoPath)
	if err != nil || videoAsset == nil {
		logger.GetLogger().WithField("error", err).Error("video upload failed")
		return nil, apperror.Internal("failed to upload video")
	}
	thumbAsset, err := u.media.Upload(ctx, thumbnailPath)
	if err != nil || thumbAsset == nil {
		logger.GetLogger().WithField("error", err).Error("thumbnail upload failed")
		return nil, apperror.Internal("failed to upload thumbnail")
	}

	video := &model.Video{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		VideoFile:   videoAsset.URL,
		Thumbnail:   thumbAsset.URL,
		Duration:    videoAsset.Duration,
		Owner:       ownerID,
		IsPublished: true,
	}
	return u.videoRepo.Create(ctx, video)
}

// GetDetail records the view and the viewer's watch history before returning
// the enriched projection.
func (u *VideoUsecase) GetDetail(ctx context.Context, videoID string, viewerID bson.ObjectID) (*dto.VideoDetail, error) {
	id, err := parseObjectID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	if _, err := u.videoRepo.GetByID(ctx, id); err != nil {
		return nil, orNotFound(err, "video")
	}

	if err := u.videoRepo.IncrementViews(ctx, id); err != nil {
		logger.GetLogger().WithField("error", err).Error("failed to increment views")
	}
	if !viewerID.IsZero() {
		if err := u.userRepo.TouchWatchHistory(ctx, viewerID, id); err != nil {
			logger.GetLogger().WithField("error", err).Error("failed to record watch history")
		}
	}

	detail, err := u.videoRepo.GetDetail(ctx, id, viewerID)
	if err != nil {
		return nil, orNotFound(err, "video")
	}
	return detail, nil
}

func (u *VideoUsecase) Update(ctx context.Context, videoID string, ownerID bson.ObjectID, req dto.UpdateVideoRequest, thumbnailPath string) (*model.Video, error) {
	video, err := u.fetchOwned(ctx, videoID, ownerID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperror.BadRequest("title is required")
	}

	thumbnail := video.Thumbnail
	if thumbnailPath != "" {
		asset, err := u.media.Upload(ctx, thumbnailPath)
		if err != nil || asset == nil {
			logger.GetLogger().WithField("error", err).Error("thumbnail upload failed")
			return nil, apperror.Internal("failed to upload thumbnail")
		}
		thumbnail = asset.URL
		if err := u.media.Delete(ctx, video.Thumbnail); err != nil {
			logger.GetLogger().WithField("error", err).Warn("failed to delete old thumbnail")
		}
	}

	updated, err := u.videoRepo.Update(ctx, video.ID, strings.TrimSpace(req.Title), req.Description, thumbnail)
	if err != nil {
		return nil, orNotFound(err, "video")
	}
	return updated, nil
}

// Delete removes the remote assets first, then the document and its
// dependent comments and likes.
func (u *VideoUsecase) Delete(ctx context.Context, videoID string, ownerID bson.ObjectID) error {
	video, err := u.fetchOwned(ctx, videoID, ownerID)
	if err != nil {
		return err
	}

	if err := u.media.Delete(ctx, video.VideoFile); err != nil {
		logger.GetLogger().WithField("error", err).Error("failed to delete video file")
		return apperror.Internal("failed to delete video file")
	}
	if err := u.media.Delete(ctx, video.Thumbnail); err != nil {
		logger.GetLogger().WithField("error", err).Error("failed to delete thumbnail")
		return apperror.Internal("failed to delete thumbnail")
	}

	if err := u.videoRepo.Delete(ctx, video.ID); err != nil {
		return orNotFound(err, "video")
	}
	if err := u.commentRepo.DeleteByVideo(ctx, video.ID); err != nil {
		logger.GetLogger().WithField("error", err).Warn("failed to delete video comments")
	}
	if err := u.likeRepo.DeleteByTarget(ctx, model.LikeTargetVideo, video.ID); err != nil {
		logger.GetLogger().WithField("error", err).Warn("failed to delete video likes")
	}
	return nil
}

func (u *VideoUsecase) TogglePublish(ctx context.Context, videoID string, ownerID bson.ObjectID) (*model.Video, error) {
	video, err := u.fetchOwned(ctx, videoID, ownerID)
	if err != nil {
		return nil, err
	}
	if err := u.videoRepo.SetPublished(ctx, video.ID, !video.IsPublished); err != nil {
		return nil, err
	}
	video.IsPublished = !video.IsPublished
	return video, nil
}

// fetchOwned loads the video and enforces that ownerID owns it.
func (u *VideoUsecase) fetchOwned(ctx context.Context, videoID string, ownerID bson.ObjectID) (*model.Video, error) {
	id, err := parseObjectID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	video, err := u.videoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, "video")
	}
	if video.Owner != ownerID {
		return nil, apperror.Forbidden("you are not allowed to modify this video")
	}
	return video, nil
}
