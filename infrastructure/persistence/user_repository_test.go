package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	"vidtube/domain/dto"
)

func TestSortByStoredOrder(t *testing.T) {
	first := bson.NewObjectID()
	second := bson.NewObjectID()
	third := bson.NewObjectID()

	videos := []dto.VideoWithOwner{{ID: third}, {ID: first}, {ID: second}}
	got := sortByStoredOrder(videos, []bson.ObjectID{first, second, third})

	assert.Equal(t,
		[]bson.ObjectID{first, second, third},
		[]bson.ObjectID{got[0].ID, got[1].ID, got[2].ID})
}

func TestSortByStoredOrder_DeletedVideoLeavesNoGap(t *testing.T) {
	first := bson.NewObjectID()
	deleted := bson.NewObjectID()
	last := bson.NewObjectID()

	// the deleted id produced no joined row
	videos := []dto.VideoWithOwner{{ID: last}, {ID: first}}
	got := sortByStoredOrder(videos, []bson.ObjectID{first, deleted, last})

	assert.Len(t, got, 2)
	assert.Equal(t, first, got[0].ID)
	assert.Equal(t, last, got[1].ID)
}
