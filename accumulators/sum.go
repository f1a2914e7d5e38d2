package accumulators

import (
	"github.com/go-sif/dataframe"
)

// Adder returns a new Sum Accumulator
func Adder() dataframe.Accumulator {
	return new(Sum)
}

// Sum sums values, in double precision
type Sum struct {
	sum float64
}

// GetSum returns the value Sum from this Accumulator
func (a *Sum) GetSum() float64 {
	return a.sum
}

// Accumulate adds a value to this Accumulator
func (a *Sum) Accumulate(value float64) error {
	a.sum += value
	return nil
}
