package frame

import (
	"math"
	"sort"
	"strconv"

	"github.com/go-sif/dataframe"
	errors "github.com/go-sif/dataframe/errors"
	"github.com/go-sif/dataframe/inference"
)

// SortValues returns a new Frame holding the Rows of this one, stably ordered by a column.
// Numeric columns are ordered by value, and Text columns lexicographically.
func (f *frameImpl) SortValues(col int, ascending bool) (dataframe.Frame, error) {
	f.lock.RLock()
	defer f.lock.RUnlock()
	if err := f.checkColumn(col); err != nil {
		return nil, err
	}
	rows := f.store.CopyRows(0, f.store.NumRows())
	dtype := inference.InferDtype(f.store.Column(col))
	sort.SliceStable(rows, func(i, j int) bool {
		if ascending {
			return inference.Less(dtype, rows[i][col], rows[j][col])
		}
		return inference.Less(dtype, rows[j][col], rows[i][col])
	})
	return f.fromRows(rows)
}

// FillNA returns a new Frame in which every empty cell of this one is replaced by value
func (f *frameImpl) FillNA(value string) (dataframe.Frame, error) {
	f.lock.RLock()
	defer f.lock.RUnlock()
	if err := f.checkAlive(); err != nil {
		return nil, err
	}
	rows := f.store.CopyRows(0, f.store.NumRows())
	for _, row := range rows {
		for j, cell := range row {
			if cell == "" {
				row[j] = value
			}
		}
	}
	return f.fromRows(rows)
}

// Clip returns a new Frame in which the cells of every numeric column are clamped
// to [lower, upper]. Clamped cells hold the bound as text; Text columns are copied verbatim.
func (f *frameImpl) Clip(lower float64, upper float64) (dataframe.Frame, error) {
	f.lock.RLock()
	defer f.lock.RUnlock()
	if err := f.checkAlive(); err != nil {
		return nil, err
	}
	if math.IsNaN(lower) || math.IsNaN(upper) {
		return nil, errors.InvalidArgumentError{Reason: "bounds must not be NaN"}
	}
	if lower > upper {
		return nil, errors.InvalidArgumentError{Reason: "lower bound must not exceed upper bound"}
	}
	lowerText := strconv.FormatFloat(lower, 'f', -1, 64)
	upperText := strconv.FormatFloat(upper, 'f', -1, 64)
	dtypes := f.dtypes()
	rows := f.store.CopyRows(0, f.store.NumRows())
	for _, row := range rows {
		for j, cell := range row {
			if !dtypes[j].IsNumeric() {
				continue
			}
			v, _ := inference.ParseReal(cell)
			if v < lower {
				row[j] = lowerText
			} else if v > upper {
				row[j] = upperText
			}
		}
	}
	return f.fromRows(rows)
}

// fromRows builds a Frame sharing this one's configuration. It must be called with the lock held.
func (f *frameImpl) fromRows(rows [][]string) (dataframe.Frame, error) {
	result, err := f.deriveFrame(len(rows))
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if _, err := result.store.AppendRow(row); err != nil {
			return nil, err
		}
	}
	return result, nil
}
