package mongoclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bidhaus/goapi/base/ptr"
)

func TestMakeBsonM(t *testing.T) {
	type PatchableAuction struct {
		CurrentPrice *int   `bson:"currentPrice,omitempty"`
		Winner       *string `bson:"winner,omitempty"`
		Owner        string `bson:"owner"`
		TokenId      string `bson:"tokenId"`
	}

	patchable := &PatchableAuction{}
	patchable.CurrentPrice = ptr.Int(150)
	patchable.Winner = ptr.String("")
	patchable.TokenId = "art-1"

	updater, err := MakeBsonM(patchable)

	assert.NoError(t, err)
	assert.Equal(
		t,
		bson.M{
			"currentPrice": 150,
			"winner":       "",
			// field owner is empty, so ignore
			"tokenId": "art-1",
		},
		updater,
	)
}
