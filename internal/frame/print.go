package frame

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unsafe"

	"github.com/go-sif/dataframe"
)

// Print writes the column labels of this Frame, followed by every Row, as tab-aligned text
func (f *frameImpl) Print(w io.Writer) error {
	f.lock.RLock()
	defer f.lock.RUnlock()
	if err := f.checkAlive(); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, strings.Join(f.schema.ColumnNames(), "\t")); err != nil {
		return err
	}
	for i := 0; i < f.store.NumRows(); i++ {
		if _, err := fmt.Fprintln(tw, strings.Join(f.store.CopyRow(i), "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// String renders this Frame as Print would
func (f *frameImpl) String() string {
	var sb strings.Builder
	if err := f.Print(&sb); err != nil {
		return err.Error()
	}
	return sb.String()
}

// IsNull reports, for every cell, whether it is empty
func (f *frameImpl) IsNull() [][]bool {
	f.lock.RLock()
	defer f.lock.RUnlock()
	if f.destroyed {
		return [][]bool{}
	}
	result := make([][]bool, f.store.NumRows())
	for i := range result {
		result[i] = make([]bool, f.store.NumCols())
		for j := range result[i] {
			result[i][j] = f.store.Cell(i, j) == ""
		}
	}
	return result
}

// IsNA is an alias for IsNull
func (f *frameImpl) IsNA() [][]bool {
	return f.IsNull()
}

// Info returns a concise summary of this Frame
func (f *frameImpl) Info() dataframe.Info {
	f.lock.RLock()
	defer f.lock.RUnlock()
	info := dataframe.Info{
		ID:      f.id,
		Columns: f.schema.ColumnNames(),
		Dtypes:  []dataframe.Dtype{},
	}
	if f.destroyed {
		return info
	}
	info.Dtypes = f.dtypes()
	info.Rows = f.store.NumRows()
	info.Capacity = f.store.Capacity()
	sliceHeader := int(unsafe.Sizeof([]string{}))
	stringHeader := int(unsafe.Sizeof(""))
	info.MemoryUsage = info.Capacity * sliceHeader
	for i := 0; i < info.Rows; i++ {
		for j := 0; j < f.store.NumCols(); j++ {
			cell := f.store.Cell(i, j)
			info.MemoryUsage += stringHeader + len(cell)
			if cell == "" {
				info.MissingValues++
			}
		}
	}
	return info
}
