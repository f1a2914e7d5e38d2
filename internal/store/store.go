package store

import (
	"strings"

	errors "github.com/go-sif/dataframe/errors"
)

// Store is a fixed-width grid of text cells with a growable number of Row
// slots. Only the first NumRows() slots hold data; the remaining slots are
// reserved capacity. Every Row owns its cells exclusively.
type Store struct {
	rows    [][]string
	numRows int
	numCols int
}

// CreateStore allocates a Store with room for capacity Rows of numCols cells
func CreateStore(capacity int, numCols int) (*Store, error) {
	if numCols < 1 {
		return nil, errors.InvalidArgumentError{Reason: "columnCount must be at least 1"}
	}
	if capacity < 0 {
		return nil, errors.InvalidArgumentError{Reason: "rowCountHint must not be negative"}
	}
	return &Store{
		rows:    make([][]string, capacity),
		numRows: 0,
		numCols: numCols,
	}, nil
}

// NumRows returns the number of populated Rows
func (s *Store) NumRows() int {
	return s.numRows
}

// NumCols returns the fixed number of cells per Row
func (s *Store) NumCols() int {
	return s.numCols
}

// Capacity returns the number of allocated Row slots
func (s *Store) Capacity() int {
	return len(s.rows)
}

// CanInsertRow checks if a Row of the given width can be inserted into this Store
func (s *Store) CanInsertRow(width int) error {
	if width != s.numCols {
		return errors.ShapeMismatchError{Expected: s.numCols, Actual: width}
	}
	return nil
}

// AppendRow copies values into a new Row at the end of this Store, growing
// storage first if it is full. It reports the new capacity iff growth occurred.
func (s *Store) AppendRow(values []string) (grewTo int, err error) {
	if err := s.CanInsertRow(len(values)); err != nil {
		return 0, err
	}
	row := make([]string, s.numCols)
	for i, v := range values {
		row[i] = strings.Clone(v)
	}
	if s.numRows == len(s.rows) {
		grewTo = s.grow(s.numRows + 1)
	}
	s.rows[s.numRows] = row
	s.numRows++
	return grewTo, nil
}

// grow reallocates Row storage with at least minCapacity slots, doubling the
// current capacity where that is larger, and copies every populated Row over
func (s *Store) grow(minCapacity int) int {
	newCapacity := 2 * len(s.rows)
	if newCapacity < minCapacity {
		newCapacity = minCapacity
	}
	rows := make([][]string, newCapacity)
	copy(rows, s.rows[:s.numRows])
	// release the old storage
	for i := range s.rows {
		s.rows[i] = nil
	}
	s.rows = rows
	return newCapacity
}

// Cell returns the cell at a position. Callers are responsible for bounds checks.
func (s *Store) Cell(row int, col int) string {
	return s.rows[row][col]
}

// CopyRow returns a copy of a populated Row. Callers are responsible for bounds checks.
func (s *Store) CopyRow(row int) []string {
	values := make([]string, s.numCols)
	copy(values, s.rows[row])
	return values
}

// CopyRows returns copies of the populated Rows in [start, end)
func (s *Store) CopyRows(start int, end int) [][]string {
	result := make([][]string, 0, end-start)
	for i := start; i < end; i++ {
		result = append(result, s.CopyRow(i))
	}
	return result
}

// Column returns the cells of a column, across all populated Rows
func (s *Store) Column(col int) []string {
	cells := make([]string, s.numRows)
	for i := 0; i < s.numRows; i++ {
		cells[i] = s.rows[i][col]
	}
	return cells
}

// Release drops every Row and cell held by this Store, leaving it empty with no capacity
func (s *Store) Release() {
	for i := range s.rows {
		s.rows[i] = nil
	}
	s.rows = nil
	s.numRows = 0
}
