package services

import (
	"context"
	"fmt"
	"time"

	"divebuddy_server/models"

	"go.uber.org/zap"
)

type SwipeService struct {
	Store   RecordStore
	Matches *MatchService
	Logger  *zap.SugaredLogger

	// RejectSelfSwipe makes swiperId == targetId a validation error. Off by
	// default: upstream clients never send self-swipes, so rejection is an
	// operator opt-in (REJECT_SELF_SWIPE).
	RejectSelfSwipe bool
}

// SwipeResult is the outcome of evaluating one swipe.
type SwipeResult struct {
	Matched bool   `json:"matched"`
	MatchID string `json:"matchId,omitempty"`
}

// RecordSwipe persists the incoming swipe and evaluates match formation. The
// swipe is written unconditionally before any match logic so it is durably
// visible to the partner's later reciprocal check. Only a right swipe that
// finds an existing reverse right swipe forms a match.
func (ss *SwipeService) RecordSwipe(ctx context.Context, swiperID, targetID, direction string) (SwipeResult, error) {
	if direction != models.DirectionLeft && direction != models.DirectionRight {
		return SwipeResult{}, ErrInvalidDirection
	}
	if ss.RejectSelfSwipe && swiperID == targetID {
		return SwipeResult{}, ErrSelfSwipe
	}

	swipe := models.Swipe{
		SwiperID:  swiperID,
		TargetID:  targetID,
		Direction: direction,
		CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	if _, err := ss.Store.Insert(ctx, models.SwipesTable, swipe); err != nil {
		return SwipeResult{}, fmt.Errorf("failed to record swipe: %w", err)
	}

	if direction == models.DirectionLeft {
		return SwipeResult{}, nil
	}

	reverse, err := ss.Store.FindOne(ctx, models.SwipesTable, map[string]string{
		"swiperId":  targetID,
		"targetId":  swiperID,
		"direction": models.DirectionRight,
	})
	if err != nil {
		return SwipeResult{}, fmt.Errorf("failed to check reciprocal swipe: %w", err)
	}
	if reverse == nil {
		return SwipeResult{}, nil
	}

	matchID, err := ss.Matches.EnsureMatch(ctx, swiperID, targetID)
	if err != nil {
		return SwipeResult{}, err
	}

	ss.Logger.Infow("mutual right swipe", "swiperId", swiperID, "targetId", targetID, "matchId", matchID)
	return SwipeResult{Matched: true, MatchID: matchID}, nil
}
