package frame

import (
	"fmt"

	"github.com/go-sif/dataframe"
	errors "github.com/go-sif/dataframe/errors"
	iframe "github.com/go-sif/dataframe/internal/frame"
	"github.com/go-sif/dataframe/random"
	"github.com/go-sif/dataframe/schema"
	"go.uber.org/zap"
)

// Conf configures a new Frame
type Conf struct {
	RowCountHint int                    // The initial Row capacity. Defaults to 0, in which case storage is allocated on first append.
	ColumnCount  int                    // The fixed number of columns. May be left at 0 when ColumnNames is set.
	ColumnNames  []string               // Unique column labels. Defaults to the column indices, "0", "1", etc.
	Random       dataframe.RandomSource // The source used by Sample. Defaults to the process-wide source in package random.
	Logger       *zap.Logger            // Defaults to a no-op Logger
}

// Create creates a new, empty Frame with room for rowCountHint Rows of columnCount cells
func Create(rowCountHint int, columnCount int) (dataframe.Frame, error) {
	return CreateFromConf(&Conf{RowCountHint: rowCountHint, ColumnCount: columnCount})
}

// CreateFromConf creates a new, empty Frame from a Conf
func CreateFromConf(conf *Conf) (dataframe.Frame, error) {
	if conf.RowCountHint < 0 {
		return nil, errors.InvalidArgumentError{Reason: "rowCountHint must not be negative"}
	}
	var s dataframe.Schema
	var err error
	if len(conf.ColumnNames) > 0 {
		if conf.ColumnCount != 0 && conf.ColumnCount != len(conf.ColumnNames) {
			return nil, errors.InvalidArgumentError{
				Reason: fmt.Sprintf("columnCount %d does not match %d column names", conf.ColumnCount, len(conf.ColumnNames)),
			}
		}
		s, err = schema.CreateSchema(conf.ColumnNames...)
	} else {
		s, err = schema.CreateDefaultSchema(conf.ColumnCount)
	}
	if err != nil {
		return nil, err
	}
	rng := conf.Random
	if rng == nil {
		rng = random.Default()
	}
	return iframe.CreateFrame(conf.RowCountHint, s, rng, conf.Logger)
}

// FromRows creates a new Frame with the given column labels, holding a copy of rows
func FromRows(columnNames []string, rows [][]string) (dataframe.Frame, error) {
	f, err := CreateFromConf(&Conf{RowCountHint: len(rows), ColumnNames: columnNames})
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := f.AddRow(row); err != nil {
			f.Destroy()
			return nil, err
		}
	}
	return f, nil
}
