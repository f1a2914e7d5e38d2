package frame

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-sif/dataframe"
	"github.com/stretchr/testify/require"
)

func TestPrint(t *testing.T) {
	f := createPeopleFrame(t, 3)
	var buf bytes.Buffer
	require.Nil(t, f.Print(&buf))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, []string{"first", "last", "age", "job"}, strings.Fields(lines[0]))
	require.Equal(t, []string{"Tom", "Brown", "40", "Lawyer"}, strings.Fields(lines[3]))
	require.Equal(t, buf.String(), f.String())
}

func TestPrintDestroyed(t *testing.T) {
	f := createPeopleFrame(t, 3)
	f.Destroy()
	var buf bytes.Buffer
	require.NotNil(t, f.Print(&buf))
	require.Contains(t, f.String(), "destroyed")
}

func TestIsNull(t *testing.T) {
	f := createPeopleFrame(t, 3)
	require.Nil(t, f.AddRow([]string{"Ann", "", "", "Pilot"}))
	nulls := f.IsNull()
	require.Len(t, nulls, 4)
	require.Equal(t, []bool{false, false, false, false}, nulls[0])
	require.Equal(t, []bool{false, true, true, false}, nulls[3])
	require.Equal(t, nulls, f.IsNA())
}

func TestInfo(t *testing.T) {
	f := createPeopleFrame(t, 4)
	require.Nil(t, f.AddRow([]string{"Ann", "", "", "Pilot"}))
	info := f.Info()
	require.Equal(t, f.ID(), info.ID)
	require.Equal(t, []string{"first", "last", "age", "job"}, info.Columns)
	require.Equal(t, []dataframe.Dtype{dataframe.Text, dataframe.Text, dataframe.Text, dataframe.Text}, info.Dtypes)
	require.Equal(t, 4, info.Rows)
	require.Equal(t, 4, info.Capacity)
	require.Equal(t, 2, info.MissingValues)
	require.True(t, info.MemoryUsage > len("JohnDoe30Engineer"))
}
