// Package datasource contains helpers shared by the DataSources which load Frames from encoded data
package datasource

import (
	"fmt"
	"io"

	"github.com/go-sif/dataframe"
	"github.com/hashicorp/go-multierror"
)

// LoadAll parses each reader produced by next with parser, and concatenates the resulting
// Frames, in order, into the first one. next returns io.EOF when there is no more data.
// Row errors reported alongside a parsed Frame are collected and returned with the result.
func LoadAll(parser dataframe.Parser, next func() (io.ReadCloser, string, error)) (dataframe.Frame, error) {
	var result dataframe.Frame
	var rowErrs *multierror.Error
	for {
		r, name, err := next()
		if err == io.EOF {
			break
		} else if err != nil {
			return cleanup(result, err)
		}
		df, err := parser.Parse(r)
		closeErr := r.Close()
		if df == nil {
			if err == nil {
				err = closeErr
			}
			return cleanup(result, fmt.Errorf("%s: %w", name, err))
		}
		if err != nil {
			rowErrs = multierror.Append(rowErrs, fmt.Errorf("%s: %w", name, err))
		}
		if result == nil {
			result = df
			continue
		}
		err = Concat(result, df)
		df.Destroy()
		if err != nil {
			return cleanup(result, fmt.Errorf("%s: %w", name, err))
		}
	}
	if result == nil {
		return nil, fmt.Errorf("no data to load")
	}
	return result, rowErrs.ErrorOrNil()
}

// Concat appends copies of every Row of src to dst. Both Frames must have equal Schemas.
func Concat(dst dataframe.Frame, src dataframe.Frame) error {
	if err := dst.Schema().Equals(src.Schema()); err != nil {
		return err
	}
	rows, _ := src.Shape()
	for _, row := range src.Head(rows) {
		if err := dst.AddRow(row); err != nil {
			return err
		}
	}
	return nil
}

func cleanup(df dataframe.Frame, err error) (dataframe.Frame, error) {
	if df != nil {
		df.Destroy()
	}
	return nil, err
}
