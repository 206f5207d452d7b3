package services

import (
	"context"
	"testing"

	"divebuddy_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestDiverService() *DiverService {
	return &DiverService{Store: NewMemoryStore(), Logger: zap.NewNop().Sugar()}
}

func TestAddDiver(t *testing.T) {
	ds := newTestDiverService()
	ctx := context.Background()

	id, err := ds.AddDiver(ctx, models.Diver{
		Name:       "Maya",
		Location:   "Bonaire",
		Level:      models.LevelRescueDiver,
		Experience: 120,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	divers, err := ds.GetDivers(ctx, "", "", 0)
	require.NoError(t, err)
	require.Len(t, divers, 1)
	assert.Equal(t, id, divers[0].ID)
	assert.Equal(t, "Maya", divers[0].Name)
}

func TestAddDiver_InvalidLevel(t *testing.T) {
	ds := newTestDiverService()

	_, err := ds.AddDiver(context.Background(), models.Diver{
		Name:     "Maya",
		Location: "Bonaire",
		Level:    "Snorkeler",
	})
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestGetDivers_Filters(t *testing.T) {
	ds := newTestDiverService()
	ctx := context.Background()

	seed := []models.Diver{
		{Name: "Maya", Location: "Bonaire", Level: models.LevelRescueDiver},
		{Name: "Jonas", Location: "Kralendijk, Bonaire", Level: models.LevelOpenWater},
		{Name: "Iris", Location: "Tulamben", Level: models.LevelOpenWater},
	}
	for _, d := range seed {
		_, err := ds.AddDiver(ctx, d)
		require.NoError(t, err)
	}

	// Location matching is a case-insensitive substring.
	divers, err := ds.GetDivers(ctx, "bonaire", "", 0)
	require.NoError(t, err)
	require.Len(t, divers, 2)

	divers, err = ds.GetDivers(ctx, "", models.LevelOpenWater, 0)
	require.NoError(t, err)
	require.Len(t, divers, 2)

	divers, err = ds.GetDivers(ctx, "bonaire", models.LevelOpenWater, 0)
	require.NoError(t, err)
	require.Len(t, divers, 1)
	assert.Equal(t, "Jonas", divers[0].Name)

	divers, err = ds.GetDivers(ctx, "", "", 2)
	require.NoError(t, err)
	assert.Len(t, divers, 2)

	divers, err = ds.GetDivers(ctx, "atlantis", "", 0)
	require.NoError(t, err)
	assert.Empty(t, divers)
	assert.NotNil(t, divers)
}
