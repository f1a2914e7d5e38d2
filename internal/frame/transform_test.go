package frame

import (
	"math"
	"testing"

	"github.com/go-sif/dataframe"
	errors "github.com/go-sif/dataframe/errors"
	"github.com/stretchr/testify/require"
)

func TestSortValues(t *testing.T) {
	f := createPeopleFrame(t, 3)
	sorted, err := f.SortValues(2, true)
	require.Nil(t, err)
	defer sorted.Destroy()
	require.Equal(t, [][]string{
		{"Jane", "Smith", "25", "Doctor"},
		{"John", "Doe", "30", "Engineer"},
		{"Tom", "Brown", "40", "Lawyer"},
	}, sorted.Head(3))
	require.NotEqual(t, f.ID(), sorted.ID())
	require.Equal(t, f.Columns(), sorted.Columns())
	// the receiver is untouched
	require.Equal(t, "John", f.Head(1)[0][0])

	desc, err := f.SortValues(0, false)
	require.Nil(t, err)
	require.Equal(t, []string{"Tom", "John", "Jane"}, []string{desc.Head(3)[0][0], desc.Head(3)[1][0], desc.Head(3)[2][0]})
}

func TestSortValuesNumericOrder(t *testing.T) {
	f := createSingleColumnFrame(t, "10", "9", "100")
	sorted, err := f.SortValues(0, true)
	require.Nil(t, err)
	require.Equal(t, [][]string{{"9"}, {"10"}, {"100"}}, sorted.Head(3))
	_, err = f.SortValues(1, true)
	_, ok := err.(errors.IndexOutOfRangeError)
	require.True(t, ok)
}

func TestSortValuesIntegersBeyondFloatPrecision(t *testing.T) {
	f := createSingleColumnFrame(t, "9007199254740993", "9007199254740992", "1")
	sorted, err := f.SortValues(0, true)
	require.Nil(t, err)
	defer sorted.Destroy()
	require.Equal(t, [][]string{{"1"}, {"9007199254740992"}, {"9007199254740993"}}, sorted.Head(3))
}

func TestFillNA(t *testing.T) {
	f := createSingleColumnFrame(t, "1", "", "3")
	filled, err := f.FillNA("0")
	require.Nil(t, err)
	require.Equal(t, [][]string{{"1"}, {"0"}, {"3"}}, filled.Head(3))
	dtype, err := filled.Dtype(0)
	require.Nil(t, err)
	require.Equal(t, dataframe.Integer, dtype)
	require.Equal(t, "", f.Head(2)[1][0])
}

func TestClip(t *testing.T) {
	f := createPeopleFrame(t, 3)
	clipped, err := f.Clip(26, 35.5)
	require.Nil(t, err)
	require.Equal(t, [][]string{
		{"John", "Doe", "30", "Engineer"},
		{"Jane", "Smith", "26", "Doctor"},
		{"Tom", "Brown", "35.5", "Lawyer"},
	}, clipped.Head(3))
	require.Equal(t, "25", f.Head(2)[1][2])
}

func TestClipInvalidBounds(t *testing.T) {
	f := createPeopleFrame(t, 3)
	_, err := f.Clip(10, 1)
	_, ok := err.(errors.InvalidArgumentError)
	require.True(t, ok)
}

func TestClipNaNBounds(t *testing.T) {
	f := createSingleColumnFrame(t, "1", "100")
	for _, bounds := range [][2]float64{{math.NaN(), 10}, {0, math.NaN()}} {
		clipped, err := f.Clip(bounds[0], bounds[1])
		require.Nil(t, clipped)
		_, ok := err.(errors.InvalidArgumentError)
		require.True(t, ok)
	}
}

func TestTransformsOnDestroyedFrame(t *testing.T) {
	f := createPeopleFrame(t, 3)
	f.Destroy()
	_, err := f.FillNA("x")
	_, ok := err.(errors.DestroyedFrameError)
	require.True(t, ok)
	_, err = f.Clip(0, 1)
	_, ok = err.(errors.DestroyedFrameError)
	require.True(t, ok)
	_, err = f.SortValues(0, true)
	_, ok = err.(errors.DestroyedFrameError)
	require.True(t, ok)
}
