package file

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-sif/dataframe"
	"github.com/go-sif/dataframe/datasource"
)

// Load parses every file matching glob with parser, and concatenates the results into a single Frame
func Load(glob string, parser dataframe.Parser) (dataframe.Frame, error) {
	matches, err := filepath.Glob(glob)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("glob %s produced 0 files", glob)
	}
	idx := 0
	return datasource.LoadAll(parser, func() (io.ReadCloser, string, error) {
		if idx >= len(matches) {
			return nil, "", io.EOF
		}
		path := matches[idx]
		idx++
		f, err := os.Open(path)
		if err != nil {
			return nil, path, err
		}
		return f, path, nil
	})
}
