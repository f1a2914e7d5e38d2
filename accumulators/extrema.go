package accumulators

import (
	"math"

	"github.com/go-sif/dataframe"
)

// Minimizer returns a new Min Accumulator
func Minimizer() dataframe.Accumulator {
	return &Min{min: math.Inf(1)}
}

// Min tracks the smallest value seen
type Min struct {
	min  float64
	seen bool
}

// GetMin returns the smallest value seen, and false if no values were accumulated
func (a *Min) GetMin() (float64, bool) {
	return a.min, a.seen
}

// Accumulate adds a value to this Accumulator
func (a *Min) Accumulate(value float64) error {
	if !a.seen || value < a.min {
		a.min = value
	}
	a.seen = true
	return nil
}

// Maximizer returns a new Max Accumulator
func Maximizer() dataframe.Accumulator {
	return &Max{max: math.Inf(-1)}
}

// Max tracks the largest value seen
type Max struct {
	max  float64
	seen bool
}

// GetMax returns the largest value seen, and false if no values were accumulated
func (a *Max) GetMax() (float64, bool) {
	return a.max, a.seen
}

// Accumulate adds a value to this Accumulator
func (a *Max) Accumulate(value float64) error {
	if !a.seen || value > a.max {
		a.max = value
	}
	a.seen = true
	return nil
}
