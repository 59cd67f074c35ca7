package domain

// ParallelTimezone is the sentinel timezone of the fixed parallel-world
// entry. It is not an IANA identifier; clients derive its clock from the
// local wall time at a 21:5 ratio.
const ParallelTimezone = "parallel"

type City struct {
	ID        int64
	Name      string
	Country   string
	Timezone  string // IANA identifier, or ParallelTimezone
	IsCapital bool
	Latitude  *float64
	Longitude *float64
}

// IsParallel reports whether this is the parallel-world entry.
func (c City) IsParallel() bool {
	return c.Timezone == ParallelTimezone
}
