package persistence

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Shared pipeline stages. Every embedded user document goes through the
// public-safe projection (fullName, username, avatar), never the password
// or refresh token.

// lookupOwnerSummary left-joins the users collection on localField and
// restricts the embedded documents to the public subset.
func lookupOwnerSummary(localField, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.M{
		"from":         "users",
		"localField":   localField,
		"foreignField": "_id",
		"as":           as,
		"pipeline": mongo.Pipeline{
			bson.D{{Key: "$project", Value: bson.M{
				"fullName": 1,
				"username": 1,
				"avatar":   1,
			}}},
		},
	}}}
}

// flattenFirst collapses a to-one lookup's array into its first element so a
// single embedded document (or null) comes out, never a one-element array.
func flattenFirst(field string) bson.D {
	return bson.D{{Key: "$addFields", Value: bson.M{
		field: bson.M{"$first": "$" + field},
	}}}
}

// likesFor left-joins the likes collection for one target kind.
func likesFor(kind string, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.M{
		"from": "likes",
		"let":  bson.M{"targetId": "$_id"},
		"pipeline": mongo.Pipeline{
			bson.D{{Key: "$match", Value: bson.M{
				"$expr": bson.M{"$and": bson.A{
					bson.M{"$eq": bson.A{"$targetKind", kind}},
					bson.M{"$eq": bson.A{"$targetId", "$$targetId"}},
				}},
			}}},
		},
		"as": as,
	}}}
}

// likeFacts derives likesCount and whether viewerID appears among the likers,
// then drops the raw likes array.
func likeFacts(likesField string, viewerID interface{}) bson.D {
	return bson.D{{Key: "$addFields", Value: bson.M{
		"likesCount": bson.M{"$size": "$" + likesField},
		"isLiked": bson.M{"$cond": bson.M{
			"if":   bson.M{"$in": bson.A{viewerID, "$" + likesField + ".likedBy"}},
			"then": true,
			"else": false,
		}},
	}}}
}
