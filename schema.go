package dataframe

// Schema is an ordered, immutable list of column labels. It allows
// one to obtain column indices by name and vice versa.
type Schema interface {
	Clone() Schema                        // Clone returns a copy of this Schema
	NumColumns() int                      // NumColumns returns the number of columns in this Schema
	HasColumn(colName string) bool        // HasColumn returns true iff a column with the given label exists
	GetIndex(colName string) (int, error) // GetIndex returns the index of the column with the given label
	ColumnName(idx int) (string, error)   // ColumnName returns the label of the column at idx
	ColumnNames() []string                // ColumnNames returns a copy of all column labels, in order
	Equals(otherSchema Schema) error      // Equals returns nil iff both Schemas hold the same labels in the same order
}
