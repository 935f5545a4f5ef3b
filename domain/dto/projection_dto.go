package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Projection shapes produced by the aggregation pipelines. Embedded user
// documents are always restricted to the public-safe subset: fullName,
// username, avatar. To-one relations are decoded into single structs by the
// repositories, never left as one-element arrays for callers to index.

// OwnerSummary is the public subset of a user embedded into other documents.
type OwnerSummary struct {
	ID       bson.ObjectID `json:"id" bson:"_id"`
	FullName string        `json:"fullName" bson:"fullName"`
	Username string        `json:"username" bson:"username"`
	Avatar   string        `json:"avatar" bson:"avatar"`
}

// VideoWithOwner is a listing row: the video plus its creator's summary.
type VideoWithOwner struct {
	ID          bson.ObjectID `json:"id" bson:"_id"`
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description" bson:"description"`
	VideoFile   string        `json:"videoFile" bson:"videoFile"`
	Thumbnail   string        `json:"thumbnail" bson:"thumbnail"`
	Duration    float64       `json:"duration" bson:"duration"`
	Views       int64         `json:"views" bson:"views"`
	IsPublished bool          `json:"isPublished" bson:"isPublished"`
	CreatedAt   time.Time     `json:"createdAt" bson:"createdAt"`
	CreatedBy   OwnerSummary  `json:"createdBy" bson:"createdBy"`
}

// ChannelSummary extends the owner summary with subscription facts relative
// to the requesting user.
type ChannelSummary struct {
	ID               bson.ObjectID `json:"id" bson:"_id"`
	FullName         string        `json:"fullName" bson:"fullName"`
	Username         string        `json:"username" bson:"username"`
	Avatar           string        `json:"avatar" bson:"avatar"`
	SubscribersCount int64         `json:"subscribersCount" bson:"subscribersCount"`
	IsSubscribed     bool          `json:"isSubscribed" bson:"isSubscribed"`
}

// VideoDetail is the single-video read model.
type VideoDetail struct {
	ID          bson.ObjectID  `json:"id" bson:"_id"`
	Title       string         `json:"title" bson:"title"`
	Description string         `json:"description" bson:"description"`
	VideoFile   string         `json:"videoFile" bson:"videoFile"`
	Thumbnail   string         `json:"thumbnail" bson:"thumbnail"`
	Duration    float64        `json:"duration" bson:"duration"`
	Views       int64          `json:"views" bson:"views"`
	IsPublished bool           `json:"isPublished" bson:"isPublished"`
	CreatedAt   time.Time      `json:"createdAt" bson:"createdAt"`
	CreatedBy   ChannelSummary `json:"createdBy" bson:"createdBy"`
	LikesCount  int64          `json:"likesCount" bson:"likesCount"`
	IsLiked     bool           `json:"isLiked" bson:"isLiked"`
}

// CommentPage is a paginated comment listing with the collection total.
type CommentPage struct {
	Total    int64             `json:"total"`
	Comments []CommentWithUser `json:"comments"`
}

type CommentWithUser struct {
	ID         bson.ObjectID `json:"id" bson:"_id"`
	Content    string        `json:"content" bson:"content"`
	Video      bson.ObjectID `json:"video" bson:"video"`
	CreatedAt  time.Time     `json:"createdAt" bson:"createdAt"`
	CreatedBy  OwnerSummary  `json:"createdBy" bson:"createdBy"`
	LikesCount int64         `json:"likesCount" bson:"likesCount"`
	IsLiked    bool          `json:"isLiked" bson:"isLiked"`
}

// PlaylistView embeds the playlist's videos (each with its own owner summary)
// and the playlist creator. IsOwner is relative to the requester.
type PlaylistView struct {
	ID          bson.ObjectID    `json:"id" bson:"_id"`
	Name        string           `json:"name" bson:"name"`
	Description string           `json:"description" bson:"description"`
	CreatedAt   time.Time        `json:"createdAt" bson:"createdAt"`
	Videos      []VideoWithOwner `json:"videos" bson:"videos"`
	CreatedBy   OwnerSummary     `json:"createdBy" bson:"createdBy"`
	IsOwner     bool             `json:"isOwner" bson:"isOwner"`
}

// SubscriberEntry is one row of a channel's subscriber (or subscribed-to)
// listing, carrying that user's own subscriber count.
type SubscriberEntry struct {
	ID               bson.ObjectID `json:"id" bson:"_id"`
	FullName         string        `json:"fullName" bson:"fullName"`
	Username         string        `json:"username" bson:"username"`
	Avatar           string        `json:"avatar" bson:"avatar"`
	SubscribersCount int64         `json:"subscribersCount" bson:"subscribersCount"`
}

type TweetWithUser struct {
	ID         bson.ObjectID `json:"id" bson:"_id"`
	Content    string        `json:"content" bson:"content"`
	CreatedAt  time.Time     `json:"createdAt" bson:"createdAt"`
	CreatedBy  OwnerSummary  `json:"createdBy" bson:"createdBy"`
	LikesCount int64         `json:"likesCount" bson:"likesCount"`
	IsLiked    bool          `json:"isLiked" bson:"isLiked"`
}

// ChannelProfile is the public channel page for a username.
type ChannelProfile struct {
	ID                bson.ObjectID `json:"id" bson:"_id"`
	FullName          string        `json:"fullName" bson:"fullName"`
	Username          string        `json:"username" bson:"username"`
	Email             string        `json:"email" bson:"email"`
	Avatar            string        `json:"avatar" bson:"avatar"`
	CoverImage        string        `json:"coverImage" bson:"coverImage"`
	SubscribersCount  int64         `json:"subscribersCount" bson:"subscribersCount"`
	SubscribedToCount int64         `json:"subscribedToCount" bson:"subscribedToCount"`
	IsSubscribed      bool          `json:"isSubscribed" bson:"isSubscribed"`
}

// ChannelStats aggregates a channel's totals for the dashboard.
type ChannelStats struct {
	TotalVideos      int64 `json:"totalVideos" bson:"totalVideos"`
	TotalViews       int64 `json:"totalViews" bson:"totalViews"`
	TotalLikes       int64 `json:"totalLikes" bson:"totalLikes"`
	TotalSubscribers int64 `json:"totalSubscribers" bson:"totalSubscribers"`
}
