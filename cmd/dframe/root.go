package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-sif/dataframe"
	"github.com/go-sif/dataframe/datasource/file"
	"github.com/go-sif/dataframe/datasource/parser/dsv"
	"github.com/go-sif/dataframe/datasource/parser/jsonl"
	"github.com/go-sif/dataframe/logging"
	"github.com/go-sif/dataframe/random"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries the state shared by every command
type app struct {
	v      *viper.Viper
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	a.v.SetEnvPrefix("DFRAME")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "dframe",
		Short: "dframe - inspect delimited and JSON lines data as a DataFrame",
		Long: `dframe loads one or more files into an in-memory DataFrame of text cells and
prints summaries of it. Files are selected by a glob pattern and concatenated.

Example:
  dframe describe --format csv "data/*.csv"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			level, err := logging.ParseLogLevel(a.v.GetString("log-level"))
			if err != nil {
				return err
			}
			logger, err := logging.CreateLogger(&logging.Conf{Level: level})
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().String("format", "csv", "Input format (csv, jsonl)")
	root.PersistentFlags().StringSlice("columns", nil, "gjson paths to extract as columns, for jsonl input")
	root.PersistentFlags().String("delimiter", ",", "Field delimiter, for csv input")
	root.PersistentFlags().Bool("no-header", false, "Treat the first csv record as data")
	root.PersistentFlags().Bool("ignore-row-errors", false, "Skip malformed records instead of failing")
	root.PersistentFlags().String("log-level", "error", "Log level (trace, debug, info, warn, error, fatal)")
	root.PersistentFlags().Int64("seed", 0, "Seed for sampling. 0 uses a time-based seed")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dframe v%s\n", version)
		},
	})
	root.AddCommand(
		a.printCmd(),
		a.headCmd(),
		a.tailCmd(),
		a.sampleCmd(),
		a.infoCmd(),
		a.dtypesCmd(),
		a.shapeCmd(),
		a.describeCmd(),
		a.uniqueCmd(),
		a.valueCountsCmd(),
		a.demoCmd(),
	)
	return root
}

func (a *app) randomSource() dataframe.RandomSource {
	if seed := a.v.GetInt64("seed"); seed != 0 {
		return random.NewLockedSource(seed)
	}
	return random.Default()
}

func (a *app) parser() (dataframe.Parser, error) {
	switch format := a.v.GetString("format"); format {
	case "csv":
		delimiter, size := utf8.DecodeRuneInString(a.v.GetString("delimiter"))
		if size == 0 || delimiter == utf8.RuneError {
			return nil, fmt.Errorf("invalid delimiter %q", a.v.GetString("delimiter"))
		}
		return dsv.CreateParser(&dsv.ParserConf{
			Delimiter:       delimiter,
			NoHeader:        a.v.GetBool("no-header"),
			IgnoreRowErrors: a.v.GetBool("ignore-row-errors"),
			Random:          a.randomSource(),
			Logger:          a.logger,
		}), nil
	case "jsonl":
		columns := a.v.GetStringSlice("columns")
		if len(columns) == 0 {
			return nil, fmt.Errorf("--columns is required for jsonl input")
		}
		return jsonl.CreateParser(&jsonl.ParserConf{
			Columns:         columns,
			IgnoreRowErrors: a.v.GetBool("ignore-row-errors"),
			Random:          a.randomSource(),
			Logger:          a.logger,
		}), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// load reads every file matching glob into a single Frame
func (a *app) load(glob string) (dataframe.Frame, error) {
	parser, err := a.parser()
	if err != nil {
		return nil, err
	}
	df, err := file.Load(glob, parser)
	if df == nil {
		return nil, err
	}
	if err != nil {
		a.logger.Warn("skipped malformed records", zap.String("glob", glob), zap.Error(err))
	}
	return df, nil
}

// withFrame builds the RunE of a command which operates on a single loaded Frame
func (a *app) withFrame(fn func(cmd *cobra.Command, df dataframe.Frame) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		df, err := a.load(args[0])
		if err != nil {
			return err
		}
		defer df.Destroy()
		return fn(cmd, df)
	}
}
