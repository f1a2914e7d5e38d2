// Package memory provides a DataSource which parses Frames from in-memory buffers
package memory

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-sif/dataframe"
	"github.com/go-sif/dataframe/datasource"
)

// Load parses every buffer in data with parser, and concatenates the results into a single Frame
func Load(data [][]byte, parser dataframe.Parser) (dataframe.Frame, error) {
	idx := 0
	return datasource.LoadAll(parser, func() (io.ReadCloser, string, error) {
		if idx >= len(data) {
			return nil, "", io.EOF
		}
		r := io.NopCloser(bytes.NewReader(data[idx]))
		name := fmt.Sprintf("buffer %d", idx)
		idx++
		return r, name, nil
	})
}
