package frame

import (
	"fmt"
	"sort"

	"github.com/go-sif/dataframe"
	"github.com/go-sif/dataframe/accumulators"
	"github.com/go-sif/dataframe/inference"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Dtype infers the Dtype of a single column from its current contents
func (f *frameImpl) Dtype(col int) (dataframe.Dtype, error) {
	f.lock.RLock()
	defer f.lock.RUnlock()
	if err := f.checkColumn(col); err != nil {
		return dataframe.Text, err
	}
	return inference.InferDtype(f.store.Column(col)), nil
}

// Dtypes infers the Dtype of every column, in column order. Dtypes are never cached.
func (f *frameImpl) Dtypes() []dataframe.Dtype {
	f.lock.RLock()
	defer f.lock.RUnlock()
	if f.destroyed {
		return []dataframe.Dtype{}
	}
	return f.dtypes()
}

// dtypes infers every column concurrently. It must be called with the lock held.
func (f *frameImpl) dtypes() []dataframe.Dtype {
	result := make([]dataframe.Dtype, f.store.NumCols())
	var g errgroup.Group
	for col := range result {
		col := col
		g.Go(func() error {
			result[col] = inference.InferDtype(f.store.Column(col))
			return nil
		})
	}
	_ = g.Wait()
	return result
}

// Describe summarizes every Integer and Real column. Text columns are omitted,
// and an empty Frame has no summaries.
func (f *frameImpl) Describe() []dataframe.Summary {
	f.lock.RLock()
	defer f.lock.RUnlock()
	if f.destroyed || f.store.NumRows() == 0 {
		return []dataframe.Summary{}
	}
	dtypes := f.dtypes()
	names := f.schema.ColumnNames()
	summaries := make([]*dataframe.Summary, len(dtypes))
	var g errgroup.Group
	for col, dtype := range dtypes {
		if !dtype.IsNumeric() {
			continue
		}
		col, dtype := col, dtype
		g.Go(func() error {
			acc := accumulators.Describer()
			for _, cell := range f.store.Column(col) {
				v, ok := inference.ParseReal(cell)
				if !ok {
					return fmt.Errorf("cell %q of column %d is not numeric", cell, col)
				}
				if err := acc.Accumulate(v); err != nil {
					return err
				}
			}
			summary := &dataframe.Summary{Column: col, Name: names[col], Dtype: dtype}
			accumulators.ToSummary(acc, summary)
			if dtype == dataframe.Integer {
				summary.IntegerMin, summary.IntegerMax = integerExtrema(f.store.Column(col))
			}
			summaries[col] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		f.logger.Error("failed to describe frame", zap.Error(err))
	}
	result := make([]dataframe.Summary, 0, len(summaries))
	for _, s := range summaries {
		if s != nil {
			result = append(result, *s)
		}
	}
	return result
}

// integerExtrema returns the exact smallest and largest values of a column of whole numbers
func integerExtrema(cells []string) (lo int64, hi int64) {
	for i, cell := range cells {
		v, _ := inference.ParseInteger(cell)
		if i == 0 || v < lo {
			lo = v
		}
		if i == 0 || v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Unique returns the distinct values of a column, compared by exact text, in first-seen order
func (f *frameImpl) Unique(col int) ([]string, error) {
	vi, err := f.indexColumn(col)
	if err != nil {
		return nil, err
	}
	return vi.values(), nil
}

// ValueCounts counts the occurrences of each distinct value of a column, in first-seen order
func (f *frameImpl) ValueCounts(col int) ([]dataframe.ValueCount, error) {
	vi, err := f.indexColumn(col)
	if err != nil {
		return nil, err
	}
	return vi.counts, nil
}

func (f *frameImpl) indexColumn(col int) (*valueIndex, error) {
	f.lock.RLock()
	defer f.lock.RUnlock()
	if err := f.checkColumn(col); err != nil {
		return nil, err
	}
	vi := createValueIndex()
	for _, cell := range f.store.Column(col) {
		vi.add(cell)
	}
	return vi, nil
}

// NLargest returns the n largest values of a column, largest first
func (f *frameImpl) NLargest(col int, n int) ([]string, error) {
	return f.orderedValues(col, n, false)
}

// NSmallest returns the n smallest values of a column, smallest first
func (f *frameImpl) NSmallest(col int, n int) ([]string, error) {
	return f.orderedValues(col, n, true)
}

// orderedValues sorts a copy of a column numerically if it is numeric, and lexicographically otherwise
func (f *frameImpl) orderedValues(col int, n int, ascending bool) ([]string, error) {
	f.lock.RLock()
	defer f.lock.RUnlock()
	if err := f.checkColumn(col); err != nil {
		return nil, err
	}
	cells := f.store.Column(col)
	dtype := inference.InferDtype(cells)
	sort.SliceStable(cells, func(i, j int) bool {
		if ascending {
			return inference.Less(dtype, cells[i], cells[j])
		}
		return inference.Less(dtype, cells[j], cells[i])
	})
	if n < 0 {
		n = 0
	}
	if n > len(cells) {
		n = len(cells)
	}
	return cells[:n], nil
}
