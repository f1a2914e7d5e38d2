package store

import (
	"strconv"
	"testing"

	errors "github.com/go-sif/dataframe/errors"
	"github.com/stretchr/testify/require"
)

func TestCreateStore(t *testing.T) {
	s, err := CreateStore(4, 2)
	require.Nil(t, err)
	require.Equal(t, 0, s.NumRows())
	require.Equal(t, 2, s.NumCols())
	require.Equal(t, 4, s.Capacity())
	_, err = CreateStore(4, 0)
	_, ok := err.(errors.InvalidArgumentError)
	require.True(t, ok)
	_, err = CreateStore(-1, 2)
	_, ok = err.(errors.InvalidArgumentError)
	require.True(t, ok)
}

func TestAppendRow(t *testing.T) {
	s, err := CreateStore(2, 2)
	require.Nil(t, err)
	grewTo, err := s.AppendRow([]string{"a", "1"})
	require.Nil(t, err)
	require.Equal(t, 0, grewTo)
	require.Equal(t, 1, s.NumRows())
	require.Equal(t, "1", s.Cell(0, 1))
}

func TestIncompatibleRow(t *testing.T) {
	s, err := CreateStore(2, 2)
	require.Nil(t, err)
	_, err = s.AppendRow([]string{"a"})
	require.NotNil(t, err)
	shapeErr, ok := err.(errors.ShapeMismatchError)
	require.True(t, ok)
	require.Equal(t, 2, shapeErr.Expected)
	require.Equal(t, 1, shapeErr.Actual)
	require.Equal(t, 0, s.NumRows())
}

func TestGrowthDoubles(t *testing.T) {
	s, err := CreateStore(2, 1)
	require.Nil(t, err)
	for i := 0; i < 2; i++ {
		_, err := s.AppendRow([]string{strconv.Itoa(i)})
		require.Nil(t, err)
	}
	grewTo, err := s.AppendRow([]string{"2"})
	require.Nil(t, err)
	require.Equal(t, 4, grewTo)
	require.Equal(t, 4, s.Capacity())
	require.Equal(t, []string{"0", "1", "2"}, s.Column(0))
}

func TestGrowthFromZeroCapacity(t *testing.T) {
	s, err := CreateStore(0, 3)
	require.Nil(t, err)
	grewTo, err := s.AppendRow([]string{"a", "b", "c"})
	require.Nil(t, err)
	require.Equal(t, 1, grewTo)
	for i := 0; i < 100; i++ {
		_, err := s.AppendRow([]string{strconv.Itoa(i), "x", "y"})
		require.Nil(t, err)
	}
	require.Equal(t, 101, s.NumRows())
	require.Equal(t, 3, s.NumCols())
	require.True(t, s.Capacity() >= s.NumRows())
	require.Equal(t, []string{"a", "b", "c"}, s.CopyRow(0))
	require.Equal(t, []string{"99", "x", "y"}, s.CopyRow(100))
}

func TestCallerBufferIsNotAliased(t *testing.T) {
	s, err := CreateStore(1, 2)
	require.Nil(t, err)
	values := []string{"a", "b"}
	_, err = s.AppendRow(values)
	require.Nil(t, err)
	values[0] = "changed"
	require.Equal(t, "a", s.Cell(0, 0))
	row := s.CopyRow(0)
	row[1] = "changed"
	require.Equal(t, "b", s.Cell(0, 1))
}

func TestCopyRows(t *testing.T) {
	s, err := CreateStore(4, 1)
	require.Nil(t, err)
	for i := 0; i < 4; i++ {
		_, err := s.AppendRow([]string{strconv.Itoa(i)})
		require.Nil(t, err)
	}
	require.Equal(t, [][]string{{"1"}, {"2"}}, s.CopyRows(1, 3))
	require.Empty(t, s.CopyRows(2, 2))
}

func TestRelease(t *testing.T) {
	s, err := CreateStore(1, 1)
	require.Nil(t, err)
	_, err = s.AppendRow([]string{"a"})
	require.Nil(t, err)
	s.Release()
	require.Equal(t, 0, s.NumRows())
	require.Equal(t, 0, s.Capacity())
}
