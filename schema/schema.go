package schema

import (
	"fmt"
	"strconv"

	"github.com/go-sif/dataframe"
	errors "github.com/go-sif/dataframe/errors"
)

// schema is an ordered list of column labels, with an index
// from label to position for lookups by name.
type schema struct {
	names   []string
	indices map[string]int
}

// CreateSchema is a factory for Schemas. Labels must be unique, and at least one is required.
func CreateSchema(colNames ...string) (dataframe.Schema, error) {
	if len(colNames) == 0 {
		return nil, errors.InvalidArgumentError{Reason: "a Schema requires at least one column"}
	}
	s := &schema{
		names:   make([]string, 0, len(colNames)),
		indices: make(map[string]int, len(colNames)),
	}
	for _, name := range colNames {
		if _, exists := s.indices[name]; exists {
			return nil, errors.InvalidArgumentError{Reason: fmt.Sprintf("Schema already contains column with name %s", name)}
		}
		s.indices[name] = len(s.names)
		s.names = append(s.names, name)
	}
	return s, nil
}

// CreateDefaultSchema produces a Schema with numCols columns, labelled by their index
func CreateDefaultSchema(numCols int) (dataframe.Schema, error) {
	if numCols < 1 {
		return nil, errors.InvalidArgumentError{Reason: "columnCount must be at least 1"}
	}
	names := make([]string, numCols)
	for i := range names {
		names[i] = strconv.Itoa(i)
	}
	return CreateSchema(names...)
}

// Clone returns a copy of this Schema
func (s *schema) Clone() dataframe.Schema {
	newIndices := make(map[string]int, len(s.indices))
	for k, v := range s.indices {
		newIndices[k] = v
	}
	return &schema{names: s.ColumnNames(), indices: newIndices}
}

// NumColumns returns the number of columns in this Schema
func (s *schema) NumColumns() int {
	return len(s.names)
}

// HasColumn returns true iff this schema contains a column with the given name
func (s *schema) HasColumn(colName string) bool {
	_, ok := s.indices[colName]
	return ok
}

// GetIndex returns the position of a particular column
func (s *schema) GetIndex(colName string) (int, error) {
	idx, ok := s.indices[colName]
	if !ok {
		return -1, errors.UnknownColumnError{Name: colName}
	}
	return idx, nil
}

// ColumnName returns the label of the column at a position
func (s *schema) ColumnName(idx int) (string, error) {
	if idx < 0 || idx >= len(s.names) {
		return "", errors.IndexOutOfRangeError{Axis: "column", Index: idx, Length: len(s.names)}
	}
	return s.names[idx], nil
}

// ColumnNames returns the names in the schema, in index order
func (s *schema) ColumnNames() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// Equals returns nil iff this and another Schema are equivalent
func (s *schema) Equals(otherSchema dataframe.Schema) error {
	if s.NumColumns() != otherSchema.NumColumns() {
		return fmt.Errorf("Schemas have unequal numbers of columns")
	}
	for i, name := range otherSchema.ColumnNames() {
		if s.names[i] != name {
			return fmt.Errorf("Column %d labels do not match: %s != %s", i, s.names[i], name)
		}
	}
	return nil
}
