package dataframe

// Summary contains descriptive statistics for a single numeric column
type Summary struct {
	Column int     // Column is the index of the summarized column
	Name   string  // Name is the label of the summarized column
	Dtype  Dtype   // Dtype is the inferred Dtype of the summarized column
	Count  int     // Count is the number of populated Rows
	Mean   float64 // Mean is the arithmetic mean of the column
	Min    float64 // Min is the smallest value in the column, rounded to float64
	Max    float64 // Max is the largest value in the column, rounded to float64

	// IntegerMin and IntegerMax hold the exact extrema of Integer columns, and are zero otherwise
	IntegerMin int64
	IntegerMax int64
}

// ValueCount pairs a distinct cell value with its number of occurrences
type ValueCount struct {
	Value string
	Count int
}

// Info is a concise summary of a Frame
type Info struct {
	ID            string
	Columns       []string
	Dtypes        []Dtype
	Rows          int
	Capacity      int
	MemoryUsage   int // approximate number of bytes held by the Frame's cells and row slots
	MissingValues int // number of empty cells
}
