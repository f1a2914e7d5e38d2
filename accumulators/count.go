package accumulators

import (
	"github.com/go-sif/dataframe"
)

// Counter returns a new Count Accumulator
func Counter() dataframe.Accumulator {
	return new(Count)
}

// Count counts values
type Count struct {
	count int
}

// GetCount returns the value count from this Accumulator
func (a *Count) GetCount() int {
	return a.count
}

// Accumulate adds a value to this Accumulator
func (a *Count) Accumulate(value float64) error {
	a.count++
	return nil
}
