package dsv

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/go-sif/dataframe"
	errors "github.com/go-sif/dataframe/errors"
	"github.com/go-sif/dataframe/frame"
	"github.com/go-sif/dataframe/logging"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
)

// ParserConf configures a DSV Parser
type ParserConf struct {
	Delimiter       rune                   // The delimiter separating columns in the file. Defaults to ,
	Comment         rune                   // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
	NoHeader        bool                   // Iff true, the first record is data rather than column labels
	ColumnNames     []string               // Column labels to use instead of (or in the absence of) a header record
	InitialCapacity int                    // The initial Row capacity of parsed Frames. Defaults to 16.
	IgnoreRowErrors bool                   // Iff true, malformed records are skipped and reported together after parsing, rather than aborting it
	Random          dataframe.RandomSource // Passed along to parsed Frames
	Logger          *zap.Logger            // Defaults to a no-op Logger
}

// Parser produces Frames from DSV data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new DSV Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	if conf.InitialCapacity == 0 {
		conf.InitialCapacity = 16
	}
	conf.Logger = logging.OrNop(conf.Logger)
	return &Parser{conf: conf}
}

// Parse reads DSV records into a new Frame. When IgnoreRowErrors is set, the
// Frame is returned along with a multierror describing every skipped record.
func (p *Parser) Parse(r io.Reader) (dataframe.Frame, error) {
	reader := csv.NewReader(r)
	reader.Comma = p.conf.Delimiter
	reader.Comment = p.conf.Comment
	reader.FieldsPerRecord = -1 // record widths are checked by the Frame

	colNames := p.conf.ColumnNames
	var first []string
	if !p.conf.NoHeader || len(colNames) == 0 {
		record, err := reader.Read()
		if err == io.EOF {
			return nil, errors.InvalidArgumentError{Reason: "DSV data contains no records"}
		} else if err != nil {
			return nil, err
		}
		first = append([]string(nil), record...)
	}
	// a header record supplies the column labels, unless they were configured explicitly
	if !p.conf.NoHeader {
		if len(colNames) == 0 {
			colNames = first
		}
		first = nil
	}
	conf := &frame.Conf{
		RowCountHint: p.conf.InitialCapacity,
		ColumnNames:  colNames,
		Random:       p.conf.Random,
		Logger:       p.conf.Logger,
	}
	if len(colNames) == 0 {
		conf.ColumnCount = len(first)
	}
	df, err := frame.CreateFromConf(conf)
	if err != nil {
		return nil, err
	}

	var multierr *multierror.Error
	appendRecord := func(record []string) error {
		if err := df.AddRow(record); err != nil {
			line, _ := reader.FieldPos(0)
			return fmt.Errorf("line %d: %w", line, err)
		}
		return nil
	}
	if first != nil {
		if err := appendRecord(first); err != nil {
			if !p.conf.IgnoreRowErrors {
				df.Destroy()
				return nil, err
			}
			multierr = multierror.Append(multierr, err)
		}
	}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err == nil {
			err = appendRecord(record)
		} else if _, isParseErr := err.(*csv.ParseError); !isParseErr {
			df.Destroy()
			return nil, err
		}
		if err != nil {
			if !p.conf.IgnoreRowErrors {
				df.Destroy()
				return nil, err
			}
			p.conf.Logger.Warn("skipping malformed record", zap.Error(err))
			multierr = multierror.Append(multierr, err)
		}
	}
	return df, multierr.ErrorOrNil()
}
