package usecase

import (
	"context"
	"errors"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/domain/model"
	"vidtube/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type ISubscriptionUsecase interface {
	Toggle(ctx context.Context, channelID string, subscriberID bson.ObjectID) (bool, error)
	ListSubscribers(ctx context.Context, channelID string) ([]dto.SubscriberEntry, error)
	ListSubscribedChannels(ctx context.Context, subscriberID string) ([]dto.SubscriberEntry, error)
}

type SubscriptionUsecase struct {
	subRepo  repository.ISubscription
	userRepo repository.IUser
}

func NewSubscriptionUsecase(subRepo repository.ISubscription, userRepo repository.IUser) ISubscriptionUsecase {
	return &SubscriptionUsecase{subRepo: subRepo, userRepo: userRepo}
}

// Toggle flips the subscription state and reports whether the caller is
// subscribed after the call. Subscribing to yourself is rejected.
func (u *SubscriptionUsecase) Toggle(ctx context.Context, channelID string, subscriberID bson.ObjectID) (bool, error) {
	id, err := parseObjectID(channelID, "channel id")
	if err != nil {
		return false, err
	}
	if id == subscriberID {
		return false, apperror.BadRequest("you cannot subscribe to your own channel")
	}
	if _, err := u.userRepo.GetByID(ctx, id); err != nil {
		return false, orNotFound(err, "channel")
	}

	existing, err := u.subRepo.Find(ctx, subscriberID, id)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return false, err
		}
		_, err := u.subRepo.Create(ctx, &model.Subscription{
			Subscriber: subscriberID,
			Channel:    id,
		})
		if err != nil && !mongo.IsDuplicateKeyError(err) {
			return false, err
		}
		return true, nil
	}
	if err := u.subRepo.Delete(ctx, existing.ID); err != nil {
		return false, err
	}
	return false, nil
}

func (u *SubscriptionUsecase) ListSubscribers(ctx context.Context, channelID string) ([]dto.SubscriberEntry, error) {
	id, err := parseObjectID(channelID, "channel id")
	if err != nil {
		return nil, err
	}
	if _, err := u.userRepo.GetByID(ctx, id); err != nil {
		return nil, orNotFound(err, "channel")
	}
	return u.subRepo.ListSubscribers(ctx, id)
}

func (u *SubscriptionUsecase) ListSubscribedChannels(ctx context.Context, subscriberID string) ([]dto.SubscriberEntry, error) {
	id, err := parseObjectID(subscriberID, "subscriber id")
	if err != nil {
		return nil, err
	}
	if _, err := u.userRepo.GetByID(ctx, id); err != nil {
		return nil, orNotFound(err, "subscriber")
	}
	return u.subRepo.ListSubscribedChannels(ctx, id)
}
