package metro_test

import (
	"slices"
	"testing"

	"github.com/gnames/metroreg/pkg/metro"
	"github.com/stretchr/testify/assert"
)

var iterRegions = []metro.RegionTable{
	{{Code: "AT001", Ordinal: 0, Label: "Graz"}, {Code: "AT002", Ordinal: 1, Label: "Linz"}},
	{{Code: "AT002", Ordinal: 0, Label: "Linz"}, {Code: "BE001", Ordinal: 1, Label: "Bruxelles"}},
	{{Code: "BE001", Ordinal: 0, Label: "Bruxelles"}},
	{},
}

func TestAccumulatorDedup(t *testing.T) {
	acc := metro.NewAccumulator()
	for _, v := range iterRegions {
		acc.Add(v, nil)
	}
	res := acc.Tables()

	var codes []string
	for _, v := range res.Regions {
		codes = append(codes, v.Code)
	}
	assert.Equal(t, []string{"AT001", "AT002", "BE001"}, codes)
	// keep-first: AT002 keeps the ordinal from the first response
	assert.Equal(t, 1, res.Regions[1].Ordinal)
	assert.NotNil(t, res.Values)
}

func TestAccumulatorOrderIndependent(t *testing.T) {
	codeSet := func(order []int) []string {
		acc := metro.NewAccumulator()
		for _, i := range order {
			acc.Add(iterRegions[i], nil)
		}
		var res []string
		for _, v := range acc.Tables().Regions {
			res = append(res, v.Code+"|"+v.Label)
		}
		slices.Sort(res)
		return res
	}

	base := codeSet([]int{0, 1, 2, 3})
	orders := [][]int{{3, 2, 1, 0}, {1, 0, 3, 2}, {2, 3, 0, 1}, {1, 2, 0, 3}}
	for _, v := range orders {
		assert.Equal(t, base, codeSet(v))
	}
}

func TestAccumulatorValues(t *testing.T) {
	acc := metro.NewAccumulator()
	acc.Add(nil, metro.ValueTable{
		{RegionCode: "AT001", Year: 2020, Value: 1},
		{RegionCode: "AT002", Year: 2020, Value: 2},
	})
	acc.Add(nil, metro.ValueTable{
		{RegionCode: "AT001", Year: 2021, Value: 3},
	})

	res := acc.Tables()
	assert.Len(t, res.Values, 3)
	assert.Equal(t, 2021, res.Values[2].Year)
	assert.Empty(t, res.Regions)
}
