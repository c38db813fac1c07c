package metro

// Tables are the two tables produced by a sweep.
type Tables struct {
	Regions RegionTable
	Values  ValueTable
}

// Accumulator collects per-iteration tables of a sweep.
type Accumulator struct {
	regions RegionTable
	values  ValueTable
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		regions: RegionTable{},
		values:  ValueTable{},
	}
}

// Add appends the tables of one iteration.
func (a *Accumulator) Add(regions RegionTable, values ValueTable) {
	a.regions = append(a.regions, regions...)
	a.values = append(a.values, values...)
}

// Tables returns the accumulated tables. Regions are deduplicated on
// region code, values are returned as accumulated.
func (a *Accumulator) Tables() Tables {
	return Tables{
		Regions: a.regions.Dedup(),
		Values:  a.values,
	}
}
