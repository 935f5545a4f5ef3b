package usecase

import (
	"errors"
	"fmt"

	"vidtube/domain/apperror"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// parseObjectID validates a client-supplied hex id. Malformed ids are a
// client error, never a store round-trip.
func parseObjectID(raw, what string) (bson.ObjectID, error) {
	if raw == "" {
		return bson.ObjectID{}, apperror.BadRequest(fmt.Sprintf("%s is required", what))
	}
	id, err := bson.ObjectIDFromHex(raw)
	if err != nil {
		return bson.ObjectID{}, apperror.BadRequest(fmt.Sprintf("%s is invalid", what))
	}
	return id, nil
}

// orNotFound translates the store's no-document answer into the request-level
// taxonomy; anything else stays as-is for the boundary to classify.
func orNotFound(err error, what string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperror.NotFound(fmt.Sprintf("%s not found", what))
	}
	return err
}
