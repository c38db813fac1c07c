package iosqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/gnames/metroreg/internal/iosqlite"
	"github.com/gnames/metroreg/pkg/config"
	"github.com/gnames/metroreg/pkg/errcode"
	"github.com/gnames/metroreg/pkg/metro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func testTables() metro.Tables {
	return metro.Tables{
		Regions: metro.RegionTable{
			{Code: "AT001", Ordinal: 0, Label: "Graz"},
			{Code: "AT002", Ordinal: 1, Label: "Linz"},
			{Code: "BE001", Ordinal: 2, Label: "Bruxelles"},
		},
		Values: metro.ValueTable{
			{RegionCode: "AT001", RegionLabel: "Graz", Value: 10, Year: 2020,
				Sex: "Total", AgeGroup: "Y_LT5"},
			{RegionCode: "AT002", RegionLabel: "Linz", Value: 20, Year: 2020,
				Sex: "Male", AgeGroup: "Y_LT5"},
			{RegionCode: "BE001", RegionLabel: "Bruxelles", Value: 30,
				Year: 2021, AgeGroup: "UNK"},
		},
	}
}

func openSink(t *testing.T, batch int) (metro.Sink, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metro.sqlite")
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseBackend("sqlite"),
		config.OptDatabasePath(path),
		config.OptDatabaseBatchSize(batch),
	})
	s := iosqlite.NewSink(cfg)
	require.NoError(t, s.Open(context.Background()))
	t.Cleanup(func() { s.Close() })
	return s, path
}

func count(t *testing.T, path, q string) int {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var res int
	require.NoError(t, db.QueryRow(q).Scan(&res))
	return res
}

func TestReplace(t *testing.T) {
	ctx := context.Background()
	s, path := openSink(t, 2)

	for range 2 {
		require.NoError(t, s.Replace(ctx, metro.Population, testTables()))
	}

	tests := []struct {
		msg string
		q   string
		res int
	}{
		{"regions", "SELECT count(*) FROM metropolitan_population_regions", 3},
		{"values", "SELECT count(*) FROM metropolitan_population", 3},
		{"null sex", "SELECT count(*) FROM metropolitan_population WHERE sex IS NULL", 1},
		{"male", "SELECT count(*) FROM metropolitan_population WHERE sex = 'Male'", 1},
		{"ordinal", "SELECT ordinal_index FROM metropolitan_population_regions " +
			"WHERE region_code = 'BE001'", 2},
		{"sum", "SELECT CAST(sum(population) AS INTEGER) FROM metropolitan_population", 60},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, count(t, path, v.q), v.msg)
	}
}

func TestReplaceArea(t *testing.T) {
	ctx := context.Background()
	s, path := openSink(t, 10_000)

	require.NoError(t, s.Replace(ctx, metro.Area, testTables()))
	assert.Equal(t, 3, count(t, path, "SELECT count(*) FROM metropolitan_area"))
	assert.Equal(t, 3, count(t, path, "SELECT count(*) FROM metropolitan_regions"))

	require.NoError(t, s.Replace(ctx, metro.Area, metro.Tables{}))
	assert.Equal(t, 0, count(t, path, "SELECT count(*) FROM metropolitan_area"),
		"empty tables replace old ones")
}

func TestReplaceNotOpen(t *testing.T) {
	cfg := config.New()
	s := iosqlite.NewSink(cfg)
	err := s.Replace(context.Background(), metro.Area, testTables())
	assert.Equal(t, errcode.KindPersistence, errcode.Kind(err))
	assert.NoError(t, s.Close())
}

func TestOpenError(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabasePath(filepath.Join(t.TempDir(), "no", "such", "x.db")),
	})
	s := iosqlite.NewSink(cfg)
	err := s.Open(context.Background())
	assert.Equal(t, errcode.KindPersistence, errcode.Kind(err))
}

func TestReplaceLargeBatch(t *testing.T) {
	ctx := context.Background()
	s, path := openSink(t, 100_000)

	var tbl metro.Tables
	for i := range 12_000 {
		tbl.Values = append(tbl.Values, metro.ValueRecord{
			RegionCode: "AT001", Value: float64(i), Year: 2020,
			Sex: "Total", AgeGroup: "Y_LT5",
		})
	}
	require.NoError(t, s.Replace(ctx, metro.Population, tbl))
	assert.Equal(t, 12_000,
		count(t, path, "SELECT count(*) FROM metropolitan_population"))
}
