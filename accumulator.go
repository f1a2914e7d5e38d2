package dataframe

// An Accumulator siphons the numeric values of a column into a custom data
// structure, one cell at a time. Accumulators are used to compute summary
// statistics without materializing a parsed copy of a column.
type Accumulator interface {
	Accumulate(value float64) error // Accumulate adds a value to this Accumulator
}
