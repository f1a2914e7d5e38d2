package dataframe

// Dtype is the inferred type of a column. Dtypes are derived from cell
// text on demand and are never stored alongside the data.
type Dtype int

const (
	// Text is the Dtype of a column containing at least one non-numeric cell
	Text Dtype = iota
	// Integer is the Dtype of a column whose cells are all whole numbers
	Integer
	// Real is the Dtype of a column whose cells are all decimal numbers, at least one of which is not a whole number
	Real
)

// IsNumeric returns true iff values of this Dtype can be summarized numerically
func (d Dtype) IsNumeric() bool {
	return d == Integer || d == Real
}

// String produces a string representation of a Dtype
func (d Dtype) String() string {
	switch d {
	case Integer:
		return "int64"
	case Real:
		return "float64"
	default:
		return "string"
	}
}
