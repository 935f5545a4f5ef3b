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

type ITweetUsecase interface {
	Create(ctx context.Context, ownerID bson.ObjectID, content string) (*model.Tweet, error)
	ListByChannel(ctx context.Context, channelID string, viewerID bson.ObjectID) ([]dto.TweetWithUser, error)
	Update(ctx context.Context, tweetID string, ownerID bson.ObjectID, content string) (*model.Tweet, error)
	Delete(ctx context.Context, tweetID string, ownerID bson.ObjectID) error
}

type TweetUsecase struct {
	tweetRepo repository.ITweet
	userRepo  repository.IUser
	likeRepo  repository.ILike
}

func NewTweetUsecase(tweetRepo repository.ITweet, userRepo repository.IUser, likeRepo repository.ILike) ITweetUsecase {
	return &TweetUsecase{tweetRepo: tweetRepo, userRepo: userRepo, likeRepo: likeRepo}
}

func (u *TweetUsecase) Create(ctx context.Context, ownerID bson.ObjectID, content string) (*model.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperror.BadRequest("content is required")
	}
	return u.tweetRepo.Create(ctx, &model.Tweet{
		Content: strings.TrimSpace(content),
		Owner:   ownerID,
	})
}

func (u *TweetUsecase) ListByChannel(ctx context.Context, channelID string, viewerID bson.ObjectID) ([]dto.TweetWithUser, error) {
	id, err := parseObjectID(channelID, "channel id")
	if err != nil {
		return nil, err
	}
	if _, err := u.userRepo.GetByID(ctx, id); err != nil {
		return nil, orNotFound(err, "channel")
	}
	return u.tweetRepo.ListByOwner(ctx, id, viewerID)
}

func (u *TweetUsecase) Update(ctx context.Context, tweetID string, ownerID bson.ObjectID, content string) (*model.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperror.BadRequest("content is required")
	}
	tweet, err := u.fetchOwned(ctx, tweetID, ownerID)
	if err != nil {
		return nil, err
	}
	updated, err := u.tweetRepo.UpdateContent(ctx, tweet.ID, strings.TrimSpace(content))
	if err != nil {
		return nil, orNotFound(err, "tweet")
	}
	return updated, nil
}

func (u *TweetUsecase) Delete(ctx context.Context, tweetID string, ownerID bson.ObjectID) error {
	tweet, err := u.fetchOwned(ctx, tweetID, ownerID)
	if err != nil {
		return err
	}
	if err := u.tweetRepo.Delete(ctx, tweet.ID); err != nil {
		return orNotFound(err, "tweet")
	}
	if err := u.likeRepo.DeleteByTarget(ctx, model.LikeTargetTweet, tweet.ID); err != nil {
		logger.GetLogger().WithField("error", err).Warn("failed to delete tweet likes")
	}
	return nil
}

func (u *TweetUsecase) fetchOwned(ctx context.Context, tweetID string, ownerID bson.ObjectID) (*model.Tweet, error) {
	id, err := parseObjectID(tweetID, "tweet id")
	if err != nil {
		return nil, err
	}
	tweet, err := u.tweetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, "tweet")
	}
	if tweet.Owner != ownerID {
		return nil, apperror.Forbidden("you are not allowed to modify this tweet")
	}
	return tweet, nil
}
