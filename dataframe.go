package dataframe

import "io"

// A Frame is a growable, append-only table of text cells with a fixed number
// of columns. Read operations never mutate a Frame, and operations which
// produce transformed data return a new Frame instead.
type Frame interface {
	ID() string                                        // ID returns the unique identifier of this Frame
	Schema() Schema                                    // Schema returns the column labels of this Frame
	Columns() []string                                 // Columns returns a copy of the column labels of this Frame
	ColumnIndex(name string) (int, error)              // ColumnIndex returns the index of the column with the given label
	AddRow(values []string) error                      // AddRow appends a copy of values as a new Row
	Row(i int) ([]string, error)                       // Row returns a copy of the Row at index i
	Head(n int) [][]string                             // Head returns copies of the first n Rows
	Tail(n int) [][]string                             // Tail returns copies of the last n Rows, in insertion order
	Sample() ([]string, error)                         // Sample returns a copy of a uniformly selected Row
	Dtype(col int) (Dtype, error)                      // Dtype infers the Dtype of a single column
	Dtypes() []Dtype                                   // Dtypes infers the Dtype of every column, in column order
	Describe() []Summary                               // Describe summarizes every numeric column
	Unique(col int) ([]string, error)                  // Unique returns the distinct values of a column, in first-seen order
	ValueCounts(col int) ([]ValueCount, error)         // ValueCounts counts the occurrences of each distinct value of a column
	NLargest(col int, n int) ([]string, error)         // NLargest returns the n largest values of a column
	NSmallest(col int, n int) ([]string, error)        // NSmallest returns the n smallest values of a column
	IsNull() [][]bool                                  // IsNull reports, per cell, whether the cell is empty
	IsNA() [][]bool                                    // IsNA is an alias for IsNull
	Info() Info                                        // Info returns a concise summary of this Frame
	Shape() (rows int, cols int)                       // Shape returns the number of Rows and columns
	Size() int                                         // Size returns the number of cells
	Ndim() int                                         // Ndim returns the number of axes, which is always 2
	Capacity() int                                     // Capacity returns the number of allocated Row slots
	SortValues(col int, ascending bool) (Frame, error) // SortValues returns a new Frame with Rows ordered by a column
	FillNA(value string) (Frame, error)                // FillNA returns a new Frame with empty cells replaced by value
	Clip(lower float64, upper float64) (Frame, error)  // Clip returns a new Frame with numeric cells clamped to [lower, upper]
	Print(w io.Writer) error                           // Print writes the column labels and every Row to w
	String() string                                    // String renders this Frame as Print would
	Destroy()                                          // Destroy releases all storage owned by this Frame
}
