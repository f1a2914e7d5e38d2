package accumulators

import (
	"github.com/go-sif/dataframe"
)

// Compose returns a new Composed Accumulator
func Compose(faccs ...func() dataframe.Accumulator) func() dataframe.Accumulator {
	return func() dataframe.Accumulator {
		accs := make([]dataframe.Accumulator, len(faccs))
		for i, f := range faccs {
			accs[i] = f()
		}
		return &Composed{accs: accs}
	}
}

// Composed composes other Accumulators
type Composed struct {
	accs []dataframe.Accumulator
}

// GetResults returns the contained Accumulators, so that their results may be accessed
func (c *Composed) GetResults() []dataframe.Accumulator {
	return c.accs
}

// Accumulate adds a value to all contained Accumulators
func (c *Composed) Accumulate(value float64) error {
	for _, a := range c.accs {
		err := a.Accumulate(value)
		if err != nil {
			return err
		}
	}
	return nil
}

// Describer returns a Composed Accumulator producing everything a Summary needs
func Describer() dataframe.Accumulator {
	return Compose(Counter, Adder, Minimizer, Maximizer)()
}

// ToSummary fills the statistics of a Summary from a Composed Accumulator created by Describer
func ToSummary(acc dataframe.Accumulator, summary *dataframe.Summary) {
	results := acc.(*Composed).GetResults()
	summary.Count = results[0].(*Count).GetCount()
	if summary.Count > 0 {
		summary.Mean = results[1].(*Sum).GetSum() / float64(summary.Count)
	}
	summary.Min, _ = results[2].(*Min).GetMin()
	summary.Max, _ = results[3].(*Max).GetMax()
}
