package cmd

import (
	"database/sql"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/metroreg/internal/iotesting"
	"github.com/gnames/metroreg/pkg/config"
	"github.com/gnames/metroreg/pkg/errcode"
	"github.com/gnames/metroreg/pkg/metro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestDatasetsByName(t *testing.T) {
	tests := []struct {
		msg  string
		name string
		res  []metro.Dataset
		code gn.ErrorCode
	}{
		{"all", "all", []metro.Dataset{metro.Area, metro.Population}, 0},
		{"area", "area", []metro.Dataset{metro.Area}, 0},
		{"population", "population", []metro.Dataset{metro.Population}, 0},
		{"unknown", "gdp", nil, errcode.LoadUnknownDatasetError},
	}

	for _, v := range tests {
		res, err := datasetsByName(v.name)
		if v.code != 0 {
			gnErr, ok := err.(*gn.Error)
			require.True(t, ok, v.msg)
			assert.Equal(t, v.code, gnErr.Code, v.msg)
			continue
		}
		require.NoError(t, err, v.msg)
		assert.Equal(t, len(v.res), len(res), v.msg)
		for i := range v.res {
			assert.Equal(t, v.res[i].Name, res[i].Name, v.msg)
		}
	}
}

func TestNewSink(t *testing.T) {
	c := config.New()
	s, err := newSink(c)
	require.NoError(t, err)
	assert.NotNil(t, s)

	c.Update([]config.Option{config.OptDatabaseBackend("sqlite")})
	s, err = newSink(c)
	require.NoError(t, err)
	assert.NotNil(t, s)

	c.Database.Backend = "mysql"
	_, err = newSink(c)
	assert.Equal(t, errcode.KindPersistence, errcode.Kind(err))
}

func TestLoadSinkDryRun(t *testing.T) {
	c := config.New()
	c.Database.Backend = "mysql"

	c.Update([]config.Option{config.OptLoadDryRun(true)})
	s, err := loadSink(c)
	require.NoError(t, err, "dry run does not resolve a backend")
	assert.Nil(t, s)

	c.Update([]config.Option{config.OptLoadDryRun(false)})
	_, err = loadSink(c)
	assert.Equal(t, errcode.KindPersistence, errcode.Kind(err))
}

func TestLoadDryRunWritesNothing(t *testing.T) {
	srv := iotesting.NewAPIServer(t, func(r *http.Request) (int, string) {
		regions := []iotesting.Region{{Code: "AT001", Label: "Graz"}}
		return http.StatusOK,
			iotesting.ResponseJSON(regions, map[int]float64{0: 1})
	})

	path := filepath.Join(t.TempDir(), "metro.sqlite")
	t.Setenv("METROREG_API_BASE_URL", srv.URL)
	t.Setenv("METROREG_DATABASE_PATH", path)

	_, err := execute(t, "load", "area", "-b", "sqlite", "-n",
		"-s", "2021", "-e", "2021")
	require.NoError(t, err)
	assert.NoFileExists(t, path)
}

func TestLoadSQLite(t *testing.T) {
	srv := iotesting.NewAPIServer(t, func(r *http.Request) (int, string) {
		regions := []iotesting.Region{
			{Code: "AT001", Label: "Graz"},
			{Code: "AT002", Label: "Linz"},
		}
		return http.StatusOK,
			iotesting.ResponseJSON(regions, map[int]float64{0: 1, 1: 2})
	})

	path := filepath.Join(t.TempDir(), "metro.sqlite")
	t.Setenv("METROREG_API_BASE_URL", srv.URL)
	t.Setenv("METROREG_DATABASE_PATH", path)

	_, err := execute(t, "load", "area", "-b", "sqlite", "-s", "2021", "-e", "2022")
	require.NoError(t, err)

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	err = db.QueryRow("SELECT count(*) FROM metropolitan_area").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 4, count, "two regions for two years")

	err = db.QueryRow("SELECT count(*) FROM metropolitan_regions").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestLoadUnknownDataset(t *testing.T) {
	_, err := execute(t, "load", "gdp", "--dry-run")
	assert.Error(t, err)
}
