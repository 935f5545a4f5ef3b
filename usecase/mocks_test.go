package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"vidtube/domain/dto"
	"vidtube/domain/model"
)

// Mock implementations

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error) {
	args := m.Called(ctx, username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, id bson.ObjectID, token string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id bson.ObjectID, hashed string) error {
	args := m.Called(ctx, id, hashed)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateAccount(ctx context.Context, id bson.ObjectID, fullName, email string) (*model.User, error) {
	args := m.Called(ctx, id, fullName, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateAvatar(ctx context.Context, id bson.ObjectID, avatarURL string) (*model.User, error) {
	args := m.Called(ctx, id, avatarURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateCoverImage(ctx context.Context, id bson.ObjectID, coverURL string) (*model.User, error) {
	args := m.Called(ctx, id, coverURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) TouchWatchHistory(ctx context.Context, userID, videoID bson.ObjectID) error {
	args := m.Called(ctx, userID, videoID)
	return args.Error(0)
}

func (m *MockUserRepository) GetWatchHistory(ctx context.Context, userID bson.ObjectID) ([]dto.VideoWithOwner, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.VideoWithOwner), args.Error(1)
}

func (m *MockUserRepository) GetChannelProfile(ctx context.Context, username string, viewerID bson.ObjectID) (*dto.ChannelProfile, error) {
	args := m.Called(ctx, username, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ChannelProfile), args.Error(1)
}

type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(ctx context.Context, video *model.Video) (*model.Video, error) {
	args := m.Called(ctx, video)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

func (m *MockVideoRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

func (m *MockVideoRepository) Update(ctx context.Context, id bson.ObjectID, title, description, thumbnail string) (*model.Video, error) {
	args := m.Called(ctx, id, title, description, thumbnail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

func (m *MockVideoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVideoRepository) IncrementViews(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVideoRepository) SetPublished(ctx context.Context, id bson.ObjectID, published bool) error {
	args := m.Called(ctx, id, published)
	return args.Error(0)
}

func (m *MockVideoRepository) List(ctx context.Context, query dto.VideoListQuery) ([]dto.VideoWithOwner, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.VideoWithOwner), args.Error(1)
}

func (m *MockVideoRepository) GetDetail(ctx context.Context, id, viewerID bson.ObjectID) (*dto.VideoDetail, error) {
	args := m.Called(ctx, id, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.VideoDetail), args.Error(1)
}

func (m *MockVideoRepository) ListByOwner(ctx context.Context, ownerID bson.ObjectID) ([]dto.VideoWithOwner, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.VideoWithOwner), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	args := m.Called(ctx, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (*model.Comment, error) {
	args := m.Called(ctx, id, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepository) DeleteByVideo(ctx context.Context, videoID bson.ObjectID) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

func (m *MockCommentRepository) ListByVideo(ctx context.Context, videoID, viewerID bson.ObjectID, query dto.CommentListQuery) (*dto.CommentPage, error) {
	args := m.Called(ctx, videoID, viewerID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CommentPage), args.Error(1)
}

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Find(ctx context.Context, likedBy bson.ObjectID, kind model.LikeTarget, targetID bson.ObjectID) (*model.Like, error) {
	args := m.Called(ctx, likedBy, kind, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Like), args.Error(1)
}

func (m *MockLikeRepository) Create(ctx context.Context, like *model.Like) (*model.Like, error) {
	args := m.Called(ctx, like)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Like), args.Error(1)
}

func (m *MockLikeRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLikeRepository) DeleteByTarget(ctx context.Context, kind model.LikeTarget, targetID bson.ObjectID) error {
	args := m.Called(ctx, kind, targetID)
	return args.Error(0)
}

func (m *MockLikeRepository) ListLikedVideos(ctx context.Context, likedBy bson.ObjectID) ([]dto.VideoWithOwner, error) {
	args := m.Called(ctx, likedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.VideoWithOwner), args.Error(1)
}

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Find(ctx context.Context, subscriberID, channelID bson.ObjectID) (*model.Subscription, error) {
	args := m.Called(ctx, subscriberID, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, sub *model.Subscription) (*model.Subscription, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) ListSubscribers(ctx context.Context, channelID bson.ObjectID) ([]dto.SubscriberEntry, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.SubscriberEntry), args.Error(1)
}

func (m *MockSubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriberID bson.ObjectID) ([]dto.SubscriberEntry, error) {
	args := m.Called(ctx, subscriberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.SubscriberEntry), args.Error(1)
}

type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) Create(ctx context.Context, playlist *model.Playlist) (*model.Playlist, error) {
	args := m.Called(ctx, playlist)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) ExistsByOwnerAndName(ctx context.Context, ownerID bson.ObjectID, name string) (bool, error) {
	args := m.Called(ctx, ownerID, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlaylistRepository) Update(ctx context.Context, id bson.ObjectID, name, description string) (*model.Playlist, error) {
	args := m.Called(ctx, id, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlaylistRepository) AddVideo(ctx context.Context, id, videoID bson.ObjectID) error {
	args := m.Called(ctx, id, videoID)
	return args.Error(0)
}

func (m *MockPlaylistRepository) RemoveVideo(ctx context.Context, id, videoID bson.ObjectID) error {
	args := m.Called(ctx, id, videoID)
	return args.Error(0)
}

func (m *MockPlaylistRepository) GetView(ctx context.Context, id, viewerID bson.ObjectID) (*dto.PlaylistView, error) {
	args := m.Called(ctx, id, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PlaylistView), args.Error(1)
}

func (m *MockPlaylistRepository) ListByOwner(ctx context.Context, ownerID, viewerID bson.ObjectID) ([]dto.PlaylistView, error) {
	args := m.Called(ctx, ownerID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.PlaylistView), args.Error(1)
}

type MockTweetRepository struct {
	mock.Mock
}

func (m *MockTweetRepository) Create(ctx context.Context, tweet *model.Tweet) (*model.Tweet, error) {
	args := m.Called(ctx, tweet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tweet), args.Error(1)
}

func (m *MockTweetRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Tweet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tweet), args.Error(1)
}

func (m *MockTweetRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (*model.Tweet, error) {
	args := m.Called(ctx, id, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tweet), args.Error(1)
}

func (m *MockTweetRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTweetRepository) ListByOwner(ctx context.Context, ownerID, viewerID bson.ObjectID) ([]dto.TweetWithUser, error) {
	args := m.Called(ctx, ownerID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.TweetWithUser), args.Error(1)
}

type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) GetChannelStats(ctx context.Context, channelID bson.ObjectID) (*dto.ChannelStats, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ChannelStats), args.Error(1)
}

type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) GetChannelStats(ctx context.Context, channelID string) (*dto.ChannelStats, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ChannelStats), args.Error(1)
}

func (m *MockStatsCache) SetChannelStats(ctx context.Context, channelID string, stats *dto.ChannelStats) error {
	args := m.Called(ctx, channelID, stats)
	return args.Error(0)
}

func (m *MockStatsCache) InvalidateChannelStats(ctx context.Context, channelID string) error {
	args := m.Called(ctx, channelID)
	return args.Error(0)
}

type MockMediaStorage struct {
	mock.Mock
}

func (m *MockMediaStorage) Upload(ctx context.Context, localPath string) (*model.UploadedAsset, error) {
	args := m.Called(ctx, localPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UploadedAsset), args.Error(1)
}

func (m *MockMediaStorage) Delete(ctx context.Context, assetURL string) error {
	args := m.Called(ctx, assetURL)
	return args.Error(0)
}
