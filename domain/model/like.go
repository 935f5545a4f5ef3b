package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// LikeTarget discriminates what a like points at. Exactly one kind per like;
// uniqueness is enforced on (likedBy, targetKind, targetId).
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
	LikeTargetTweet   LikeTarget = "tweet"
)

func (t LikeTarget) Valid() bool {
	switch t {
	case LikeTargetVideo, LikeTargetComment, LikeTargetTweet:
		return true
	}
	return false
}

type Like struct {
	ID         bson.ObjectID `json:"id" bson:"_id,omitempty"`
	LikedBy    bson.ObjectID `json:"likedBy" bson:"likedBy"`
	TargetKind LikeTarget    `json:"targetKind" bson:"targetKind"`
	TargetID   bson.ObjectID `json:"targetId" bson:"targetId"`
	CreatedAt  time.Time     `json:"createdAt" bson:"createdAt"`
}
