package services

import (
	"context"
	"sync"
	"testing"

	"divebuddy_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMatchService() (*MatchService, *MemoryStore) {
	store := NewMemoryStore()
	return &MatchService{Store: store, Logger: zap.NewNop().Sugar()}, store
}

func TestCanonicalPair(t *testing.T) {
	a, b := CanonicalPair("bob", "alice")
	assert.Equal(t, "alice", a)
	assert.Equal(t, "bob", b)

	a, b = CanonicalPair("alice", "bob")
	assert.Equal(t, "alice", a)
	assert.Equal(t, "bob", b)
}

func TestEnsureMatch_CreatesOnce(t *testing.T) {
	ms, store := newTestMatchService()
	ctx := context.Background()

	first, err := ms.EnsureMatch(ctx, "alice", "bob")
	require.NoError(t, err)
	require.NotEmpty(t, first)

	// Repeated calls, in either argument order, return the same id.
	second, err := ms.EnsureMatch(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	reversed, err := ms.EnsureMatch(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.Equal(t, first, reversed)

	records, err := store.FindMany(ctx, models.MatchesTable, nil, 0)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestEnsureMatch_StoresSortedPair(t *testing.T) {
	ms, store := newTestMatchService()
	ctx := context.Background()

	_, err := ms.EnsureMatch(ctx, "zoe", "adam")
	require.NoError(t, err)

	record, err := store.FindOne(ctx, models.MatchesTable, map[string]string{
		"userAId": "adam",
		"userBId": "zoe",
	})
	require.NoError(t, err)
	require.NotNil(t, record)
}

func TestEnsureMatch_ConcurrentCallsCreateSingleMatch(t *testing.T) {
	ms, store := newTestMatchService()
	ctx := context.Background()

	const callers = 50
	ids := make([]string, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			x, y := "alice", "bob"
			if i%2 == 0 {
				x, y = y, x
			}
			ids[i], errs[i] = ms.EnsureMatch(ctx, x, y)
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
	}

	records, err := store.FindMany(ctx, models.MatchesTable, nil, 0)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestGetMatchesForUser(t *testing.T) {
	ms, _ := newTestMatchService()
	ctx := context.Background()

	abID, err := ms.EnsureMatch(ctx, "alice", "bob")
	require.NoError(t, err)
	acID, err := ms.EnsureMatch(ctx, "carol", "alice")
	require.NoError(t, err)

	matches, err := ms.GetMatchesForUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, matches, 2)

	ids := []string{matches[0].ID, matches[1].ID}
	assert.ElementsMatch(t, []string{abID, acID}, ids)

	none, err := ms.GetMatchesForUser(ctx, "dave")
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.NotNil(t, none)
}
