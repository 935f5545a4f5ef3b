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

func TestSubscriptionUsecase_Toggle_Subscribe(t *testing.T) {
	subRepo := new(MockSubscriptionRepository)
	userRepo := new(MockUserRepository)
	uc := usecase.NewSubscriptionUsecase(subRepo, userRepo)

	channelID := bson.NewObjectID()
	subscriberID := bson.NewObjectID()
	userRepo.On("GetByID", mock.Anything, channelID).Return(&model.User{ID: channelID}, nil)
	subRepo.On("Find", mock.Anything, subscriberID, channelID).Return(nil, mongo.ErrNoDocuments)
	subRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *model.Subscription) bool {
		return s.Subscriber == subscriberID && s.Channel == channelID
	})).Return(&model.Subscription{}, nil)

	subscribed, err := uc.Toggle(context.Background(), channelID.Hex(), subscriberID)
	require.NoError(t, err)
	assert.True(t, subscribed)
	subRepo.AssertExpectations(t)
}

func TestSubscriptionUsecase_Toggle_Unsubscribe(t *testing.T) {
	subRepo := new(MockSubscriptionRepository)
	userRepo := new(MockUserRepository)
	uc := usecase.NewSubscriptionUsecase(subRepo, userRepo)

	channelID := bson.NewObjectID()
	subscriberID := bson.NewObjectID()
	subID := bson.NewObjectID()
	userRepo.On("GetByID", mock.Anything, channelID).Return(&model.User{ID: channelID}, nil)
	subRepo.On("Find", mock.Anything, subscriberID, channelID).
		Return(&model.Subscription{ID: subID}, nil)
	subRepo.On("Delete", mock.Anything, subID).Return(nil)

	subscribed, err := uc.Toggle(context.Background(), channelID.Hex(), subscriberID)
	require.NoError(t, err)
	assert.False(t, subscribed)
	subRepo.AssertExpectations(t)
}

func TestSubscriptionUsecase_Toggle_SelfSubscribe(t *testing.T) {
	uc := usecase.NewSubscriptionUsecase(new(MockSubscriptionRepository), new(MockUserRepository))

	userID := bson.NewObjectID()
	_, err := uc.Toggle(context.Background(), userID.Hex(), userID)
	assert.Equal(t, 400, statusOf(t, err))
}

func TestSubscriptionUsecase_Toggle_UnknownChannel(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecase.NewSubscriptionUsecase(new(MockSubscriptionRepository), userRepo)

	channelID := bson.NewObjectID()
	userRepo.On("GetByID", mock.Anything, channelID).Return(nil, mongo.ErrNoDocuments)

	_, err := uc.Toggle(context.Background(), channelID.Hex(), bson.NewObjectID())
	assert.Equal(t, 404, statusOf(t, err))
}

func TestSubscriptionUsecase_ListSubscribers(t *testing.T) {
	subRepo := new(MockSubscriptionRepository)
	userRepo := new(MockUserRepository)
	uc := usecase.NewSubscriptionUsecase(subRepo, userRepo)

	channelID := bson.NewObjectID()
	userRepo.On("GetByID", mock.Anything, channelID).Return(&model.User{ID: channelID}, nil)
	subRepo.On("ListSubscribers", mock.Anything, channelID).
		Return([]dto.SubscriberEntry{{Username: "alice"}}, nil)

	subscribers, err := uc.ListSubscribers(context.Background(), channelID.Hex())
	require.NoError(t, err)
	require.Len(t, subscribers, 1)
	assert.Equal(t, "alice", subscribers[0].Username)
}

func TestSubscriptionUsecase_ListSubscribedChannels_EmptyIsNotAnError(t *testing.T) {
	subRepo := new(MockSubscriptionRepository)
	userRepo := new(MockUserRepository)
	uc := usecase.NewSubscriptionUsecase(subRepo, userRepo)

	subscriberID := bson.NewObjectID()
	userRepo.On("GetByID", mock.Anything, subscriberID).Return(&model.User{ID: subscriberID}, nil)
	subRepo.On("ListSubscribedChannels", mock.Anything, subscriberID).
		Return([]dto.SubscriberEntry{}, nil)

	channels, err := uc.ListSubscribedChannels(context.Background(), subscriberID.Hex())
	require.NoError(t, err)
	assert.Empty(t, channels)
}

func TestSubscriptionUsecase_ListSubscribedChannels_UnknownSubscriber(t *testing.T) {
	subRepo := new(MockSubscriptionRepository)
	userRepo := new(MockUserRepository)
	uc := usecase.NewSubscriptionUsecase(subRepo, userRepo)

	subscriberID := bson.NewObjectID()
	userRepo.On("GetByID", mock.Anything, subscriberID).Return(nil, mongo.ErrNoDocuments)

	_, err := uc.ListSubscribedChannels(context.Background(), subscriberID.Hex())
	assert.Equal(t, 404, statusOf(t, err))
	subRepo.AssertNotCalled(t, "ListSubscribedChannels", mock.Anything, mock.Anything)
}
