package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is the account document. Password and RefreshToken are persisted but
// never serialized into responses.
type User struct {
	ID           bson.ObjectID   `json:"id" bson:"_id,omitempty"`
	Username     string          `json:"username" bson:"username"`
	Email        string          `json:"email" bson:"email"`
	FullName     string          `json:"fullName" bson:"fullName"`
	Avatar       string          `json:"avatar" bson:"avatar"`
	CoverImage   string          `json:"coverImage,omitempty" bson:"coverImage,omitempty"`
	Password     string          `json:"-" bson:"password"`
	RefreshToken string          `json:"-" bson:"refreshToken,omitempty"`
	WatchHistory []bson.ObjectID `json:"-" bson:"watchHistory,omitempty"`
	CreatedAt    time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt" bson:"updatedAt"`
}
