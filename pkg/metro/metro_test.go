package metro_test

import (
	"encoding/json"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/metroreg/pkg/errcode"
	"github.com/gnames/metroreg/pkg/eurostat"
	"github.com/gnames/metroreg/pkg/metro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const grazLinz = `{
	"dimension": {"metroreg": {"category": {
		"index": {"AT001": 0, "AT002": 1},
		"label": {"AT001": "Graz", "AT002": "Linz"}
	}}},
	"value": {"0": 1234.5}
}`

func decode(t *testing.T, body string) *eurostat.Response {
	t.Helper()
	var res eurostat.Response
	err := json.Unmarshal([]byte(body), &res)
	require.NoError(t, err)
	return &res
}

func TestExtractGrazLinz(t *testing.T) {
	resp := decode(t, grazLinz)

	regions, err := metro.ExtractRegions(resp.Category(eurostat.MetroRegDim))
	require.NoError(t, err)
	assert.Equal(t, metro.RegionTable{
		{Code: "AT001", Ordinal: 0, Label: "Graz"},
		{Code: "AT002", Ordinal: 1, Label: "Linz"},
	}, regions)

	values, err := metro.ExtractValues(resp, regions, metro.Iteration{Year: 2021})
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, metro.ValueRecord{
		Ordinal:     0,
		RegionCode:  "AT001",
		RegionLabel: "Graz",
		Value:       1234.5,
		Year:        2021,
	}, values[0])
}

func TestExtractRegions(t *testing.T) {
	t.Run("one row per code with source ordinals", func(t *testing.T) {
		resp := decode(t, `{"dimension": {"metroreg": {"category": {
			"index": {"BE001": 2, "AT001": 0, "AT002": 1},
			"label": {"AT001": "Graz", "AT002": "Linz", "BE001": "Bruxelles"}
		}}}, "value": {}}`)
		cat := resp.Category(eurostat.MetroRegDim)

		regions, err := metro.ExtractRegions(cat)
		require.NoError(t, err)
		require.Len(t, regions, len(cat.Index.Ordinals))

		codes := make([]string, len(regions))
		for i, v := range regions {
			codes[i] = v.Code
			assert.Equal(t, cat.Index.Ordinals[v.Code], v.Ordinal, v.Code)
			assert.Equal(t, cat.Label[v.Code], v.Label, v.Code)
		}
		assert.Equal(t, []string{"BE001", "AT001", "AT002"}, codes)
	})

	t.Run("missing label leaves label empty", func(t *testing.T) {
		resp := decode(t, `{"dimension": {"metroreg": {"category": {
			"index": {"AT001": 0}
		}}}}`)
		regions, err := metro.ExtractRegions(resp.Category(eurostat.MetroRegDim))
		require.NoError(t, err)
		assert.Equal(t, metro.RegionTable{{Code: "AT001"}}, regions)
	})

	t.Run("contract violations", func(t *testing.T) {
		tests := []struct {
			msg  string
			body string
		}{
			{"no dimension", `{"value": {}}`},
			{"no category", `{"dimension": {"metroreg": {}}}`},
			{"no index", `{"dimension": {"metroreg": {"category": {"label": {}}}}}`},
			{"shared ordinal", `{"dimension": {"metroreg": {"category": {
				"index": {"AT001": 0, "AT002": 0}}}}}`},
		}
		for _, v := range tests {
			resp := decode(t, v.body)
			_, err := metro.ExtractRegions(resp.Category(eurostat.MetroRegDim))
			require.Error(t, err, v.msg)
			assert.Equal(t, errcode.KindDataContract, errcode.Kind(err), v.msg)
		}
	})
}

func TestExtractValues(t *testing.T) {
	resp := decode(t, `{
		"dimension": {"metroreg": {"category": {
			"index": {"AT001": 0, "AT002": 1, "BE001": 2, "BE002": 3},
			"label": {"AT001": "Graz", "AT002": "Linz",
				"BE001": "Bruxelles", "BE002": "Antwerpen"}
		}}},
		"value": {"3": 40, "0": 10, "2": 30}
	}`)
	regions, err := metro.ExtractRegions(resp.Category(eurostat.MetroRegDim))
	require.NoError(t, err)

	it := metro.Iteration{Year: 2020, Sex: "F", AgeGroup: "Y_GE90"}
	values, err := metro.ExtractValues(resp, regions, it)
	require.NoError(t, err)
	require.Len(t, values, 3)

	labels := make(map[int]string)
	for _, v := range regions {
		labels[v.Ordinal] = v.Label
	}

	var ords []int
	for _, v := range values {
		ords = append(ords, v.Ordinal)
		assert.Equal(t, labels[v.Ordinal], v.RegionLabel)
		assert.Equal(t, 2020, v.Year)
		assert.Equal(t, "Female", v.Sex)
		assert.Equal(t, "Y_GE90", v.AgeGroup)
	}
	assert.Equal(t, []int{0, 2, 3}, ords)
	assert.Equal(t, "BE002", values[2].RegionCode)
	assert.Equal(t, 40.0, values[2].Value)
}

func TestExtractValuesUnknownSex(t *testing.T) {
	resp := decode(t, grazLinz)
	regions, err := metro.ExtractRegions(resp.Category(eurostat.MetroRegDim))
	require.NoError(t, err)

	it := metro.Iteration{Year: 2022, Sex: "X", AgeGroup: "UNK"}
	values, err := metro.ExtractValues(resp, regions, it)
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Empty(t, values[0].Sex)
	assert.Equal(t, "UNK", values[0].AgeGroup)
}

func TestExtractValuesNull(t *testing.T) {
	resp := decode(t, `{
		"dimension": {"metroreg": {"category": {
			"index": {"AT001": 0, "AT002": 1},
			"label": {"AT001": "Graz", "AT002": "Linz"}
		}}},
		"value": {"0": 1234.5, "1": null}
	}`)
	regions, err := metro.ExtractRegions(resp.Category(eurostat.MetroRegDim))
	require.NoError(t, err)

	values, err := metro.ExtractValues(resp, regions, metro.Iteration{Year: 2021})
	require.NoError(t, err)
	require.Len(t, values, 1, "null measurement produces no row")
	assert.Equal(t, "AT001", values[0].RegionCode)
	assert.Equal(t, 1234.5, values[0].Value)
}

func TestExtractValuesContract(t *testing.T) {
	one := 1.0
	regions := metro.RegionTable{{Code: "AT001", Ordinal: 0, Label: "Graz"}}
	tests := []struct {
		msg  string
		resp *eurostat.Response
	}{
		{"nil response", nil},
		{"no value", &eurostat.Response{}},
		{"bad key", &eurostat.Response{Value: map[string]*float64{"x": &one}}},
		{"unknown ordinal", &eurostat.Response{Value: map[string]*float64{"5": &one}}},
	}

	for _, v := range tests {
		_, err := metro.ExtractValues(v.resp, regions, metro.Iteration{Year: 2020})
		require.Error(t, err, v.msg)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, errcode.ExtractDataContractError, gnErr.Code, v.msg)
	}
}

func TestSexLabel(t *testing.T) {
	tests := []struct {
		code  string
		label string
		ok    bool
	}{
		{"T", "Total", true},
		{"M", "Male", true},
		{"F", "Female", true},
		{"t", "", false},
		{"", "", false},
		{"X", "", false},
	}

	for _, v := range tests {
		label, ok := metro.SexLabel(v.code)
		assert.Equal(t, v.label, label, v.code)
		assert.Equal(t, v.ok, ok, v.code)
	}
}
