package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"divebuddy_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"go.uber.org/zap"
)

// DefaultMessageLimit caps message listings when no limit is requested.
const DefaultMessageLimit = 50

type ChatService struct {
	Store  RecordStore
	Logger *zap.SugaredLogger
}

// SendMessage stores a message against an existing match and updates the
// match's lastMessagePreview to the full message content. Fails with
// ErrMatchNotFound, with no side effects, when the match does not exist.
// Whether senderId is one of the match's participants is not checked here;
// authorization is an upstream concern.
func (cs *ChatService) SendMessage(ctx context.Context, matchID, senderID, content string) (string, error) {
	match, err := cs.Store.FindOne(ctx, models.MatchesTable, map[string]string{"id": matchID})
	if err != nil {
		return "", fmt.Errorf("failed to look up match %s: %w", matchID, err)
	}
	if match == nil {
		return "", ErrMatchNotFound
	}

	messageID, err := cs.Store.Insert(ctx, models.MessagesTable, models.Message{
		MatchID:   matchID,
		SenderID:  senderID,
		Content:   content,
		CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return "", fmt.Errorf("failed to store message: %w", err)
	}

	if err := cs.Store.UpdateFields(ctx, models.MatchesTable, matchID, map[string]string{
		"lastMessagePreview": content,
	}); err != nil {
		return "", fmt.Errorf("failed to update match preview: %w", err)
	}

	cs.Logger.Infow("message sent", "matchId", matchID, "messageId", messageID)
	return messageID, nil
}

// GetMessagesByMatchID fetches up to limit messages for a match in creation
// order. A nonexistent match yields an empty slice, not an error.
func (cs *ChatService) GetMessagesByMatchID(ctx context.Context, matchID string, limit int) ([]models.Message, error) {
	if limit <= 0 {
		limit = DefaultMessageLimit
	}

	records, err := cs.Store.FindMany(ctx, models.MessagesTable, map[string]string{"matchId": matchID}, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(records, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse messages: %w", err)
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt < messages[j].CreatedAt
	})

	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}
