package services

import (
	"context"
	"fmt"
	"time"

	"divebuddy_server/models"
	"divebuddy_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"go.uber.org/zap"
)

type MatchService struct {
	Store  RecordStore
	Logger *zap.SugaredLogger

	locks pairLocks
}

// CanonicalPair orders two diver ids lexicographically. The sorted pair is the
// single source of truth for "the pair" regardless of who swiped first.
func CanonicalPair(x, y string) (string, string) {
	if y < x {
		return y, x
	}
	return x, y
}

// EnsureMatch returns the match id for the given pair, creating the match if
// it does not exist yet. Idempotent: repeated calls for the same pair, in any
// argument order, always return the same id. The lookup-then-insert sequence
// runs under a per-pair lock so concurrent calls cannot create duplicates.
func (ms *MatchService) EnsureMatch(ctx context.Context, userX, userY string) (string, error) {
	a, b := CanonicalPair(userX, userY)

	unlock := ms.locks.Lock(a + "#" + b)
	defer unlock()

	existing, err := ms.Store.FindOne(ctx, models.MatchesTable, map[string]string{
		"userAId": a,
		"userBId": b,
	})
	if err != nil {
		return "", fmt.Errorf("failed to look up match for pair (%s, %s): %w", a, b, err)
	}
	if existing != nil {
		return utils.ExtractString(existing, "id"), nil
	}

	matchID, err := ms.Store.Insert(ctx, models.MatchesTable, models.Match{
		UserAID:   a,
		UserBID:   b,
		CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create match for pair (%s, %s): %w", a, b, err)
	}

	ms.Logger.Infow("match created", "matchId", matchID, "userAId", a, "userBId", b)
	return matchID, nil
}

// GetMatchesForUser returns every match the given diver is part of.
func (ms *MatchService) GetMatchesForUser(ctx context.Context, userID string) ([]models.Match, error) {
	var matches []models.Match

	for _, side := range []string{"userAId", "userBId"} {
		records, err := ms.Store.FindMany(ctx, models.MatchesTable, map[string]string{side: userID}, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch matches for user %s: %w", userID, err)
		}

		var part []models.Match
		if err := attributevalue.UnmarshalListOfMaps(records, &part); err != nil {
			return nil, fmt.Errorf("failed to parse matches: %w", err)
		}
		matches = append(matches, part...)
	}

	if matches == nil {
		matches = []models.Match{}
	}
	return matches, nil
}
