package services

import (
	"context"
	"testing"

	"divebuddy_server/models"
	"divebuddy_server/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_InsertAndFind(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	id, err := store.Insert(ctx, models.SwipesTable, models.Swipe{
		SwiperID:  "alice",
		TargetID:  "bob",
		Direction: models.DirectionRight,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	record, err := store.FindOne(ctx, models.SwipesTable, map[string]string{"id": id})
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "alice", utils.ExtractString(record, "swiperId"))

	missing, err := store.FindOne(ctx, models.SwipesTable, map[string]string{"swiperId": "carol"})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryStore_FindManyKeepsInsertionOrder(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	targets := []string{"bob", "carol", "dave"}
	for _, target := range targets {
		_, err := store.Insert(ctx, models.SwipesTable, models.Swipe{
			SwiperID:  "alice",
			TargetID:  target,
			Direction: models.DirectionLeft,
		})
		require.NoError(t, err)
	}

	records, err := store.FindMany(ctx, models.SwipesTable, map[string]string{"swiperId": "alice"}, 0)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, record := range records {
		assert.Equal(t, targets[i], utils.ExtractString(record, "targetId"))
	}

	limited, err := store.FindMany(ctx, models.SwipesTable, nil, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestMemoryStore_UpdateFields(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	id, err := store.Insert(ctx, models.MatchesTable, models.Match{UserAID: "alice", UserBID: "bob"})
	require.NoError(t, err)

	err = store.UpdateFields(ctx, models.MatchesTable, id, map[string]string{"lastMessagePreview": "hey"})
	require.NoError(t, err)

	record, err := store.FindOne(ctx, models.MatchesTable, map[string]string{"id": id})
	require.NoError(t, err)
	assert.Equal(t, "hey", utils.ExtractString(record, "lastMessagePreview"))

	err = store.UpdateFields(ctx, models.MatchesTable, "missing", map[string]string{"lastMessagePreview": "hey"})
	assert.Error(t, err)
}
