package jsonl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/go-sif/dataframe"
	errors "github.com/go-sif/dataframe/errors"
	"github.com/go-sif/dataframe/frame"
	"github.com/go-sif/dataframe/logging"
	"github.com/hashicorp/go-multierror"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// ParserConf configures a JSONL Parser, suitable for JSON lines data
type ParserConf struct {
	Columns         []string               // gjson paths of the values to extract from each line. Each path becomes a column label. Required.
	HeaderLines     int                    // The number of lines to ignore from the beginning of the data. Defaults to 0.
	InitialCapacity int                    // The initial Row capacity of parsed Frames. Defaults to 16.
	MaxBufferSize   int                    // Maximum size in bytes of the buffer used to read lines
	IgnoreRowErrors bool                   // Iff true, invalid lines are skipped and reported together after parsing, rather than aborting it
	Random          dataframe.RandomSource // Passed along to parsed Frames
	Logger          *zap.Logger            // Defaults to a no-op Logger
}

// Parser produces Frames from JSONL data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new JSONL Parser. Cells are extracted from each line of JSON using the
// configured column paths. Values within the JSON which do not correspond to a column are ignored,
// and paths which are absent from a line produce empty cells.
func CreateParser(conf *ParserConf) *Parser {
	if conf.InitialCapacity == 0 {
		conf.InitialCapacity = 16
	}
	if conf.MaxBufferSize <= 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	conf.Logger = logging.OrNop(conf.Logger)
	return &Parser{conf: conf}
}

// Parse reads JSON lines into a new Frame. When IgnoreRowErrors is set, the
// Frame is returned along with a multierror describing every skipped line.
func (p *Parser) Parse(r io.Reader) (dataframe.Frame, error) {
	if len(p.conf.Columns) == 0 {
		return nil, errors.InvalidArgumentError{Reason: "JSONL parsing requires at least one column path"}
	}
	scanner := bufio.NewScanner(r)
	initialSize := 4096
	if p.conf.MaxBufferSize < initialSize {
		initialSize = p.conf.MaxBufferSize
	}
	scanner.Buffer(make([]byte, 0, initialSize), p.conf.MaxBufferSize)
	lineNum := 0
	// ignore header lines, if configured to do so
	for i := 0; i < p.conf.HeaderLines && scanner.Scan(); i++ {
		lineNum++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	df, err := frame.CreateFromConf(&frame.Conf{
		RowCountHint: p.conf.InitialCapacity,
		ColumnNames:  p.conf.Columns,
		Random:       p.conf.Random,
		Logger:       p.conf.Logger,
	})
	if err != nil {
		return nil, err
	}
	var multierr *multierror.Error
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		if !gjson.Valid(line) {
			err := fmt.Errorf("line %d: invalid JSON", lineNum)
			if !p.conf.IgnoreRowErrors {
				df.Destroy()
				return nil, err
			}
			p.conf.Logger.Warn("skipping invalid line", zap.Int("line", lineNum))
			multierr = multierror.Append(multierr, err)
			continue
		}
		results := gjson.GetMany(line, p.conf.Columns...)
		values := make([]string, len(results))
		for i, res := range results {
			values[i] = res.String()
		}
		if err := df.AddRow(values); err != nil {
			df.Destroy()
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		df.Destroy()
		return nil, err
	}
	return df, multierr.ErrorOrNil()
}
