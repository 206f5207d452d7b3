package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"divebuddy_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"go.uber.org/zap"
)

// DefaultDiverLimit caps diver listings when no limit is requested.
const DefaultDiverLimit = 20

type DiverService struct {
	Store  RecordStore
	Logger *zap.SugaredLogger
}

// AddDiver stores a new diver profile and returns its id.
func (ds *DiverService) AddDiver(ctx context.Context, diver models.Diver) (string, error) {
	if !models.IsValidCertificationLevel(diver.Level) {
		return "", ErrInvalidLevel
	}

	diver.ID = ""
	diver.CreatedAt = time.Now().UTC().Format(time.RFC3339Nano)

	id, err := ds.Store.Insert(ctx, models.DiversTable, diver)
	if err != nil {
		return "", fmt.Errorf("failed to store diver profile: %w", err)
	}

	ds.Logger.Infow("diver profile created", "diverId", id, "level", diver.Level)
	return id, nil
}

// GetDivers lists diver profiles. Level is an exact filter applied in the
// store; location is a case-insensitive substring match applied client-side.
func (ds *DiverService) GetDivers(ctx context.Context, location, level string, limit int) ([]models.Diver, error) {
	if limit <= 0 {
		limit = DefaultDiverLimit
	}

	filter := map[string]string{}
	if level != "" {
		filter["level"] = level
	}

	records, err := ds.Store.FindMany(ctx, models.DiversTable, filter, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch diver profiles: %w", err)
	}

	var divers []models.Diver
	if err := attributevalue.UnmarshalListOfMaps(records, &divers); err != nil {
		return nil, fmt.Errorf("failed to parse diver profiles: %w", err)
	}

	results := []models.Diver{}
	needle := strings.ToLower(location)
	for _, diver := range divers {
		if location != "" && !strings.Contains(strings.ToLower(diver.Location), needle) {
			continue
		}
		results = append(results, diver)
		if len(results) == limit {
			break
		}
	}
	return results, nil
}
