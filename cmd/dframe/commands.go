package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/go-sif/dataframe"
	"github.com/go-sif/dataframe/frame"
	"github.com/spf13/cobra"
)

func (a *app) printCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print <glob>",
		Short: "Print every row",
		Args:  cobra.ExactArgs(1),
		RunE: a.withFrame(func(cmd *cobra.Command, df dataframe.Frame) error {
			return df.Print(cmd.OutOrStdout())
		}),
	}
}

func (a *app) headCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "head <glob>",
		Short: "Print the first n rows",
		Args:  cobra.ExactArgs(1),
		RunE: a.withFrame(func(cmd *cobra.Command, df dataframe.Frame) error {
			return writeRows(cmd.OutOrStdout(), df.Columns(), df.Head(a.v.GetInt("lines")))
		}),
	}
	cmd.Flags().IntP("lines", "n", 5, "Number of rows")
	return cmd
}

func (a *app) tailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tail <glob>",
		Short: "Print the last n rows",
		Args:  cobra.ExactArgs(1),
		RunE: a.withFrame(func(cmd *cobra.Command, df dataframe.Frame) error {
			return writeRows(cmd.OutOrStdout(), df.Columns(), df.Tail(a.v.GetInt("lines")))
		}),
	}
	cmd.Flags().IntP("lines", "n", 5, "Number of rows")
	return cmd
}

func (a *app) sampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample <glob>",
		Short: "Print a uniformly selected row",
		Args:  cobra.ExactArgs(1),
		RunE: a.withFrame(func(cmd *cobra.Command, df dataframe.Frame) error {
			row, err := df.Sample()
			if err != nil {
				return err
			}
			return writeRows(cmd.OutOrStdout(), df.Columns(), [][]string{row})
		}),
	}
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <glob>",
		Short: "Print a concise summary",
		Args:  cobra.ExactArgs(1),
		RunE: a.withFrame(func(cmd *cobra.Command, df dataframe.Frame) error {
			return writeInfo(cmd.OutOrStdout(), df.Info())
		}),
	}
}

func (a *app) dtypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dtypes <glob>",
		Short: "Print the inferred type of every column",
		Args:  cobra.ExactArgs(1),
		RunE: a.withFrame(func(cmd *cobra.Command, df dataframe.Frame) error {
			return writeDtypes(cmd.OutOrStdout(), df.Columns(), df.Dtypes())
		}),
	}
}

func (a *app) shapeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shape <glob>",
		Short: "Print the number of rows and columns",
		Args:  cobra.ExactArgs(1),
		RunE: a.withFrame(func(cmd *cobra.Command, df dataframe.Frame) error {
			rows, cols := df.Shape()
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "(%d, %d)\n", rows, cols)
			return err
		}),
	}
}

func (a *app) describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <glob>",
		Short: "Print statistics of every numeric column",
		Args:  cobra.ExactArgs(1),
		RunE: a.withFrame(func(cmd *cobra.Command, df dataframe.Frame) error {
			return writeSummaries(cmd.OutOrStdout(), df.Describe())
		}),
	}
}

func (a *app) uniqueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unique <glob>",
		Short: "Print the distinct values of a column",
		Args:  cobra.ExactArgs(1),
		RunE: a.withFrame(func(cmd *cobra.Command, df dataframe.Frame) error {
			col, err := resolveColumn(df, a.v.GetString("column"))
			if err != nil {
				return err
			}
			values, err := df.Unique(col)
			if err != nil {
				return err
			}
			for _, v := range values {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), v); err != nil {
					return err
				}
			}
			return nil
		}),
	}
	cmd.Flags().String("column", "0", "Column label or index")
	return cmd
}

func (a *app) valueCountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "value-counts <glob>",
		Short: "Count the occurrences of each distinct value of a column",
		Args:  cobra.ExactArgs(1),
		RunE: a.withFrame(func(cmd *cobra.Command, df dataframe.Frame) error {
			col, err := resolveColumn(df, a.v.GetString("column"))
			if err != nil {
				return err
			}
			counts, err := df.ValueCounts(col)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, vc := range counts {
				fmt.Fprintf(tw, "%s\t%d\n", vc.Value, vc.Count)
			}
			return tw.Flush()
		}),
	}
	cmd.Flags().String("column", "0", "Column label or index")
	return cmd
}

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Build a small Frame of people and run every operation on it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDemo(cmd.OutOrStdout())
		},
	}
}

func (a *app) runDemo(w io.Writer) error {
	df, err := frame.CreateFromConf(&frame.Conf{
		RowCountHint: 3,
		ColumnCount:  4,
		Random:       a.randomSource(),
		Logger:       a.logger,
	})
	if err != nil {
		return err
	}
	defer df.Destroy()
	for _, row := range [][]string{
		{"John", "Doe", "30", "Engineer"},
		{"Jane", "Smith", "25", "Doctor"},
		{"Tom", "Brown", "40", "Lawyer"},
	} {
		if err := df.AddRow(row); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "DataFrame contents:")
	if err := df.Print(w); err != nil {
		return err
	}
	fmt.Fprintln(w, "\nHead of DataFrame:")
	if err := writeRows(w, df.Columns(), df.Head(2)); err != nil {
		return err
	}
	fmt.Fprintln(w, "\nTail of DataFrame:")
	if err := writeRows(w, df.Columns(), df.Tail(1)); err != nil {
		return err
	}
	fmt.Fprintln(w, "\nSample from DataFrame:")
	row, err := df.Sample()
	if err != nil {
		return err
	}
	if err := writeRows(w, df.Columns(), [][]string{row}); err != nil {
		return err
	}
	fmt.Fprintln(w, "\nDataFrame information:")
	if err := writeInfo(w, df.Info()); err != nil {
		return err
	}
	fmt.Fprintln(w, "\nData types of columns:")
	if err := writeDtypes(w, df.Columns(), df.Dtypes()); err != nil {
		return err
	}
	rows, cols := df.Shape()
	fmt.Fprintf(w, "\nShape of DataFrame:\n(%d, %d)\n", rows, cols)
	fmt.Fprintf(w, "\nSize of DataFrame:\n%d\n", df.Size())
	fmt.Fprintf(w, "\nNumber of dimensions of DataFrame:\n%d\n", df.Ndim())
	fmt.Fprintln(w, "\nDescribe DataFrame:")
	if err := writeSummaries(w, df.Describe()); err != nil {
		return err
	}
	fmt.Fprintln(w, "\nUnique values of column 0:")
	values, err := df.Unique(0)
	if err != nil {
		return err
	}
	for _, v := range values {
		fmt.Fprintln(w, v)
	}
	return nil
}

// resolveColumn accepts either a column label or a column index
func resolveColumn(df dataframe.Frame, name string) (int, error) {
	if col, err := df.ColumnIndex(name); err == nil {
		return col, nil
	}
	col, err := strconv.Atoi(name)
	if err != nil {
		return 0, fmt.Errorf("unknown column %q", name)
	}
	return col, nil
}

func writeRows(w io.Writer, columns []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	writeLine(tw, columns)
	for _, row := range rows {
		writeLine(tw, row)
	}
	return tw.Flush()
}

func writeLine(w io.Writer, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, cell)
	}
	fmt.Fprintln(w)
}

func writeInfo(w io.Writer, info dataframe.Info) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", info.ID)
	fmt.Fprintf(tw, "Rows:\t%d\n", info.Rows)
	fmt.Fprintf(tw, "Capacity:\t%d\n", info.Capacity)
	fmt.Fprintf(tw, "Columns:\t%d\n", len(info.Columns))
	for i, name := range info.Columns {
		dtype := ""
		if i < len(info.Dtypes) {
			dtype = info.Dtypes[i].String()
		}
		fmt.Fprintf(tw, "  %s\t%s\n", name, dtype)
	}
	fmt.Fprintf(tw, "Missing values:\t%d\n", info.MissingValues)
	fmt.Fprintf(tw, "Memory usage:\t%d bytes\n", info.MemoryUsage)
	return tw.Flush()
}

func writeDtypes(w io.Writer, columns []string, dtypes []dataframe.Dtype) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, dtype := range dtypes {
		fmt.Fprintf(tw, "%s\t%s\n", columns[i], dtype)
	}
	return tw.Flush()
}

func writeSummaries(w io.Writer, summaries []dataframe.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "column\tdtype\tcount\tmean\tmin\tmax")
	for _, s := range summaries {
		lo, hi := strconv.FormatFloat(s.Min, 'g', -1, 64), strconv.FormatFloat(s.Max, 'g', -1, 64)
		if s.Dtype == dataframe.Integer {
			lo, hi = strconv.FormatInt(s.IntegerMin, 10), strconv.FormatInt(s.IntegerMax, 10)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%g\t%s\t%s\n", s.Name, s.Dtype, s.Count, s.Mean, lo, hi)
	}
	return tw.Flush()
}
