package services

import (
	"context"
	"fmt"
	"testing"

	"divebuddy_server/models"
	"divebuddy_server/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestChatService() (*ChatService, *MatchService, *MemoryStore) {
	store := NewMemoryStore()
	logger := zap.NewNop().Sugar()
	return &ChatService{Store: store, Logger: logger},
		&MatchService{Store: store, Logger: logger},
		store
}

func TestSendMessage_MatchNotFound(t *testing.T) {
	cs, _, store := newTestChatService()
	ctx := context.Background()

	_, err := cs.SendMessage(ctx, "no-such-match", "alice", "hi")
	assert.ErrorIs(t, err, ErrMatchNotFound)

	// No side effects on failure.
	records, err := store.FindMany(ctx, models.MessagesTable, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSendMessage_UpdatesPreview(t *testing.T) {
	cs, ms, store := newTestChatService()
	ctx := context.Background()

	matchID, err := ms.EnsureMatch(ctx, "alice", "bob")
	require.NoError(t, err)

	_, err = cs.SendMessage(ctx, matchID, "alice", "fancy a wreck dive?")
	require.NoError(t, err)

	record, err := store.FindOne(ctx, models.MatchesTable, map[string]string{"id": matchID})
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "fancy a wreck dive?", utils.ExtractString(record, "lastMessagePreview"))

	// The preview always tracks the latest message, full content untruncated.
	_, err = cs.SendMessage(ctx, matchID, "bob", "always")
	require.NoError(t, err)

	record, err = store.FindOne(ctx, models.MatchesTable, map[string]string{"id": matchID})
	require.NoError(t, err)
	assert.Equal(t, "always", utils.ExtractString(record, "lastMessagePreview"))
}

func TestGetMessagesByMatchID_OrderAndLimit(t *testing.T) {
	cs, ms, _ := newTestChatService()
	ctx := context.Background()

	matchID, err := ms.EnsureMatch(ctx, "alice", "bob")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := cs.SendMessage(ctx, matchID, "alice", fmt.Sprintf("message %d", i))
		require.NoError(t, err)
	}

	messages, err := cs.GetMessagesByMatchID(ctx, matchID, 10)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	for i, msg := range messages {
		assert.Equal(t, fmt.Sprintf("message %d", i), msg.Content)
		assert.Equal(t, matchID, msg.MatchID)
	}

	limited, err := cs.GetMessagesByMatchID(ctx, matchID, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "message 0", limited[0].Content)
	assert.Equal(t, "message 1", limited[1].Content)
}

func TestGetMessagesByMatchID_UnknownMatch(t *testing.T) {
	cs, _, _ := newTestChatService()

	messages, err := cs.GetMessagesByMatchID(context.Background(), "no-such-match", 10)
	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}

// End-to-end walk through the swipe → match → message flow.
func TestSwipeMatchMessageScenario(t *testing.T) {
	store := NewMemoryStore()
	logger := zap.NewNop().Sugar()
	matches := &MatchService{Store: store, Logger: logger}
	swipes := &SwipeService{Store: store, Matches: matches, Logger: logger}
	chat := &ChatService{Store: store, Logger: logger}
	ctx := context.Background()

	first, err := swipes.RecordSwipe(ctx, "alice", "bob", models.DirectionRight)
	require.NoError(t, err)
	assert.False(t, first.Matched)

	second, err := swipes.RecordSwipe(ctx, "bob", "alice", models.DirectionRight)
	require.NoError(t, err)
	require.True(t, second.Matched)
	matchID := second.MatchID

	again, err := matches.EnsureMatch(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, matchID, again)

	_, err = chat.SendMessage(ctx, matchID, "alice", "hi")
	require.NoError(t, err)

	record, err := store.FindOne(ctx, models.MatchesTable, map[string]string{"id": matchID})
	require.NoError(t, err)
	assert.Equal(t, "hi", utils.ExtractString(record, "lastMessagePreview"))

	messages, err := chat.GetMessagesByMatchID(ctx, matchID, 0)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "alice", messages[0].SenderID)
	assert.Equal(t, "hi", messages[0].Content)
}
