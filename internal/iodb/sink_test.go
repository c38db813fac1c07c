package iodb_test

import (
	"context"
	"testing"

	"github.com/gnames/metroreg/internal/iodb"
	"github.com/gnames/metroreg/internal/iotesting"
	"github.com/gnames/metroreg/pkg/metro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSink_NotOpen(t *testing.T) {
	s := iodb.NewSink(*iotesting.GetTestDatabaseConfig())
	err := s.Replace(context.Background(), metro.Area, metro.Tables{})
	assert.Error(t, err)
	assert.NoError(t, s.Close())
}

func TestSink_Replace(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	cfg := *iotesting.GetTestDatabaseConfig()
	cfg.BatchSize = 1
	ctx := context.Background()

	s := iodb.NewSink(cfg)
	require.NoError(t, s.Open(ctx))
	defer s.Close()

	tbl := metro.Tables{
		Regions: metro.RegionTable{
			{Code: "AT001", Ordinal: 0, Label: "Graz"},
			{Code: "AT002", Ordinal: 1, Label: "Linz"},
		},
		Values: metro.ValueTable{
			{RegionCode: "AT001", RegionLabel: "Graz", Value: 10, Year: 2020,
				Sex: "Total", AgeGroup: "Y_LT5"},
			{RegionCode: "AT002", RegionLabel: "Linz", Value: 20, Year: 2020,
				AgeGroup: "Y_LT5"},
		},
	}

	// replacing twice leaves one copy of the rows
	for range 2 {
		require.NoError(t, s.Replace(ctx, metro.Population, tbl))
	}

	op := iodb.NewPgxOperator()
	require.NoError(t, op.Connect(ctx, &cfg))
	defer op.Close()

	var count int
	q := "SELECT count(*) FROM " + cfg.Schema + ".metropolitan_population_regions"
	require.NoError(t, op.Pool().QueryRow(ctx, q).Scan(&count))
	assert.Equal(t, 2, count)

	q = "SELECT count(*) FROM " + cfg.Schema +
		".metropolitan_population WHERE sex IS NULL"
	require.NoError(t, op.Pool().QueryRow(ctx, q).Scan(&count))
	assert.Equal(t, 1, count, "unknown sex is stored as NULL")

	// an empty table still replaces the old one
	require.NoError(t, s.Replace(ctx, metro.Area, metro.Tables{}))
	q = "SELECT count(*) FROM " + cfg.Schema + ".metropolitan_area"
	require.NoError(t, op.Pool().QueryRow(ctx, q).Scan(&count))
	assert.Equal(t, 0, count)
}
