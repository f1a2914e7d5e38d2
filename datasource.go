package dataframe

import "io"

// Parser produces a Frame from a stream of encoded tabular data.
// Implementations are provided in the datasource/parser packages.
type Parser interface {
	Parse(r io.Reader) (Frame, error)
}
