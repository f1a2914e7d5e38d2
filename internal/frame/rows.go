package frame

import (
	errors "github.com/go-sif/dataframe/errors"
	"go.uber.org/zap"
)

// AddRow appends a copy of values to the end of this Frame, growing storage if
// necessary. A failed AddRow leaves the Frame unchanged.
func (f *frameImpl) AddRow(values []string) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	if err := f.checkAlive(); err != nil {
		return err
	}
	grewTo, err := f.store.AppendRow(values)
	if err != nil {
		return err
	}
	if grewTo > 0 {
		f.logger.Debug("grew frame", zap.Int("capacity", grewTo), zap.Int("rows", f.store.NumRows()))
	}
	return nil
}

// Row returns a copy of the Row at index i
func (f *frameImpl) Row(i int) ([]string, error) {
	f.lock.RLock()
	defer f.lock.RUnlock()
	if err := f.checkAlive(); err != nil {
		return nil, err
	}
	if i < 0 || i >= f.store.NumRows() {
		return nil, errors.IndexOutOfRangeError{Axis: "row", Index: i, Length: f.store.NumRows()}
	}
	return f.store.CopyRow(i), nil
}

// Head returns copies of the first min(n, rows) Rows. n <= 0 yields no Rows.
func (f *frameImpl) Head(n int) [][]string {
	f.lock.RLock()
	defer f.lock.RUnlock()
	if f.destroyed || n <= 0 {
		return [][]string{}
	}
	end := n
	if end > f.store.NumRows() {
		end = f.store.NumRows()
	}
	return f.store.CopyRows(0, end)
}

// Tail returns copies of the last min(n, rows) Rows, in insertion order. n <= 0 yields no Rows.
func (f *frameImpl) Tail(n int) [][]string {
	f.lock.RLock()
	defer f.lock.RUnlock()
	if f.destroyed || n <= 0 {
		return [][]string{}
	}
	start := f.store.NumRows() - n
	if start < 0 {
		start = 0
	}
	return f.store.CopyRows(start, f.store.NumRows())
}

// Sample returns a copy of a Row selected uniformly at random
func (f *frameImpl) Sample() ([]string, error) {
	f.lock.RLock()
	defer f.lock.RUnlock()
	if err := f.checkAlive(); err != nil {
		return nil, err
	}
	if f.store.NumRows() == 0 {
		return nil, errors.EmptyFrameError{}
	}
	return f.store.CopyRow(f.rng.Intn(f.store.NumRows())), nil
}
