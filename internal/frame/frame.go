package frame

import (
	"sync"

	"github.com/go-sif/dataframe"
	errors "github.com/go-sif/dataframe/errors"
	"github.com/go-sif/dataframe/internal/store"
	"github.com/go-sif/dataframe/logging"
	uuid "github.com/gofrs/uuid"
	"go.uber.org/zap"
)

// frameImpl is the internal implementation of Frame. A single RWMutex guards
// the whole Frame: appends and teardown are exclusive, queries are shared.
type frameImpl struct {
	id        string
	schema    dataframe.Schema
	store     *store.Store
	logger    *zap.Logger // tagged with this Frame's ID
	rootLog   *zap.Logger
	rng       dataframe.RandomSource
	lock      sync.RWMutex
	destroyed bool
}

// CreateFrame creates a new, empty Frame with room for capacity Rows, one column per Schema label
func CreateFrame(capacity int, schema dataframe.Schema, rng dataframe.RandomSource, logger *zap.Logger) (dataframe.Frame, error) {
	return createFrameImpl(capacity, schema, rng, logger)
}

func createFrameImpl(capacity int, schema dataframe.Schema, rng dataframe.RandomSource, logger *zap.Logger) (*frameImpl, error) {
	if schema == nil {
		return nil, errors.InvalidArgumentError{Reason: "a Frame requires a Schema"}
	}
	if rng == nil {
		return nil, errors.InvalidArgumentError{Reason: "a Frame requires a RandomSource"}
	}
	s, err := store.CreateStore(capacity, schema.NumColumns())
	if err != nil {
		return nil, err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	f := &frameImpl{
		id:     id.String(),
		schema: schema.Clone(),
		store:  s,
		rng:    rng,
	}
	f.rootLog = logging.OrNop(logger)
	f.logger = f.rootLog.With(zap.String("frame", f.id))
	f.logger.Debug("created frame", zap.Int("columns", s.NumCols()), zap.Int("capacity", s.Capacity()))
	return f, nil
}

// deriveFrame creates an empty Frame which shares the configuration of this one
func (f *frameImpl) deriveFrame(capacity int) (*frameImpl, error) {
	return createFrameImpl(capacity, f.schema, f.rng, f.rootLog)
}

// ID retrieves the ID of this Frame
func (f *frameImpl) ID() string {
	return f.id
}

// Schema returns a copy of the Schema of this Frame
func (f *frameImpl) Schema() dataframe.Schema {
	return f.schema.Clone()
}

// Columns returns the column labels of this Frame
func (f *frameImpl) Columns() []string {
	return f.schema.ColumnNames()
}

// ColumnIndex returns the index of the column with the given label
func (f *frameImpl) ColumnIndex(name string) (int, error) {
	return f.schema.GetIndex(name)
}

// Capacity returns the number of allocated Row slots
func (f *frameImpl) Capacity() int {
	f.lock.RLock()
	defer f.lock.RUnlock()
	if f.destroyed {
		return 0
	}
	return f.store.Capacity()
}

// Shape returns the number of Rows and columns in this Frame
func (f *frameImpl) Shape() (int, int) {
	f.lock.RLock()
	defer f.lock.RUnlock()
	if f.destroyed {
		return 0, 0
	}
	return f.store.NumRows(), f.store.NumCols()
}

// Size returns the number of cells in this Frame
func (f *frameImpl) Size() int {
	rows, cols := f.Shape()
	return rows * cols
}

// Ndim returns the number of axes of a Frame, which is always two
func (f *frameImpl) Ndim() int {
	return 2
}

// Destroy releases every Row and cell of this Frame. Subsequent calls are no-ops,
// and subsequent operations report a DestroyedFrameError or return empty results.
func (f *frameImpl) Destroy() {
	f.lock.Lock()
	defer f.lock.Unlock()
	if f.destroyed {
		return
	}
	f.store.Release()
	f.destroyed = true
	f.logger.Debug("destroyed frame")
}

// checkAlive must be called with the lock held
func (f *frameImpl) checkAlive() error {
	if f.destroyed {
		return errors.DestroyedFrameError{ID: f.id}
	}
	return nil
}

// checkColumn must be called with the lock held
func (f *frameImpl) checkColumn(col int) error {
	if err := f.checkAlive(); err != nil {
		return err
	}
	if col < 0 || col >= f.store.NumCols() {
		return errors.IndexOutOfRangeError{Axis: "column", Index: col, Length: f.store.NumCols()}
	}
	return nil
}
