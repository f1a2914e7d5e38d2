package frame

import (
	"testing"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/go-sif/dataframe"
	errors "github.com/go-sif/dataframe/errors"
	"github.com/go-sif/dataframe/random"
	"github.com/go-sif/dataframe/schema"
	"github.com/stretchr/testify/require"
)

func createSingleColumnFrame(t *testing.T, values ...string) *frameImpl {
	s, err := schema.CreateSchema("values")
	require.Nil(t, err)
	f, err := createFrameImpl(len(values), s, random.NewLockedSource(1), nil)
	require.Nil(t, err)
	for _, v := range values {
		require.Nil(t, f.AddRow([]string{v}))
	}
	return f
}

func TestDtype(t *testing.T) {
	dtype, err := createSingleColumnFrame(t, "1", "2", "3").Dtype(0)
	require.Nil(t, err)
	require.Equal(t, dataframe.Integer, dtype)
	dtype, err = createSingleColumnFrame(t, "1.5", "2").Dtype(0)
	require.Nil(t, err)
	require.Equal(t, dataframe.Real, dtype)
	dtype, err = createSingleColumnFrame(t, "1", "x").Dtype(0)
	require.Nil(t, err)
	require.Equal(t, dataframe.Text, dtype)
}

func TestDtypeOfEmptyFrame(t *testing.T) {
	f := createSingleColumnFrame(t)
	dtype, err := f.Dtype(0)
	require.Nil(t, err)
	require.Equal(t, dataframe.Text, dtype)
}

func TestDtypeOutOfRange(t *testing.T) {
	f := createPeopleFrame(t, 3)
	_, err := f.Dtype(4)
	rangeErr, ok := err.(errors.IndexOutOfRangeError)
	require.True(t, ok)
	require.Equal(t, "column", rangeErr.Axis)
	require.Equal(t, 4, rangeErr.Length)
	_, err = f.Dtype(-1)
	_, ok = err.(errors.IndexOutOfRangeError)
	require.True(t, ok)
}

func TestDtypes(t *testing.T) {
	f := createPeopleFrame(t, 3)
	require.Equal(t, []dataframe.Dtype{dataframe.Text, dataframe.Text, dataframe.Integer, dataframe.Text}, f.Dtypes())
	// inference reflects the current contents
	require.Nil(t, f.AddRow([]string{"Ann", "Lee", "31.5", "Pilot"}))
	require.Equal(t, dataframe.Real, f.Dtypes()[2])
}

func TestDescribe(t *testing.T) {
	f := createSingleColumnFrame(t, "10", "20", "30")
	summaries := f.Describe()
	require.Len(t, summaries, 1)
	require.Equal(t, dataframe.Summary{Column: 0, Name: "values", Dtype: dataframe.Integer, Count: 3, Mean: 20, Min: 10, Max: 30, IntegerMin: 10, IntegerMax: 30}, summaries[0])
}

func TestDescribeOmitsTextColumns(t *testing.T) {
	f := createPeopleFrame(t, 3)
	summaries := f.Describe()
	require.Len(t, summaries, 1)
	require.Equal(t, 2, summaries[0].Column)
	require.Equal(t, "age", summaries[0].Name)
	require.Equal(t, 3, summaries[0].Count)
	require.InDelta(t, 31.6666, summaries[0].Mean, 0.001)
	require.Equal(t, 25.0, summaries[0].Min)
	require.Equal(t, 40.0, summaries[0].Max)
}

func TestDescribeReal(t *testing.T) {
	f := createSingleColumnFrame(t, "1.5", "-2", "3.25")
	summaries := f.Describe()
	require.Len(t, summaries, 1)
	require.Equal(t, dataframe.Real, summaries[0].Dtype)
	require.InDelta(t, 0.9166, summaries[0].Mean, 0.001)
	require.Equal(t, -2.0, summaries[0].Min)
	require.Equal(t, 3.25, summaries[0].Max)
}

func TestDescribeEmptyFrame(t *testing.T) {
	require.Empty(t, createSingleColumnFrame(t).Describe())
}

func TestUnique(t *testing.T) {
	f := createSingleColumnFrame(t, "a", "b", "a", "c")
	values, err := f.Unique(0)
	require.Nil(t, err)
	require.Equal(t, []string{"a", "b", "c"}, values)
}

func TestUniqueIsExactText(t *testing.T) {
	f := createSingleColumnFrame(t, "1", "1.0", "1")
	values, err := f.Unique(0)
	require.Nil(t, err)
	require.Equal(t, []string{"1", "1.0"}, values)
}

func TestUniqueOutOfRange(t *testing.T) {
	f := createSingleColumnFrame(t, "a")
	_, err := f.Unique(1)
	_, ok := err.(errors.IndexOutOfRangeError)
	require.True(t, ok)
}

func TestValueCounts(t *testing.T) {
	f := createSingleColumnFrame(t, "b", "a", "b", "b", "")
	counts, err := f.ValueCounts(0)
	require.Nil(t, err)
	require.Equal(t, []dataframe.ValueCount{{Value: "b", Count: 3}, {Value: "a", Count: 1}, {Value: "", Count: 1}}, counts)
}

func TestNLargestAndNSmallest(t *testing.T) {
	f := createSingleColumnFrame(t, "9", "10", "-1", "3")
	largest, err := f.NLargest(0, 2)
	require.Nil(t, err)
	require.Equal(t, []string{"10", "9"}, largest)
	smallest, err := f.NSmallest(0, 3)
	require.Nil(t, err)
	require.Equal(t, []string{"-1", "3", "9"}, smallest)
	all, err := f.NSmallest(0, 10)
	require.Nil(t, err)
	require.Len(t, all, 4)
	none, err := f.NLargest(0, -1)
	require.Nil(t, err)
	require.Empty(t, none)
}

func TestNSmallestText(t *testing.T) {
	f := createSingleColumnFrame(t, "pear", "apple", "fig")
	smallest, err := f.NSmallest(0, 2)
	require.Nil(t, err)
	require.Equal(t, []string{"apple", "fig"}, smallest)
	_, err = f.NLargest(3, 1)
	_, ok := err.(errors.IndexOutOfRangeError)
	require.True(t, ok)
}

func TestValueIndexCollisionsCompareText(t *testing.T) {
	vi := createValueIndex()
	vi.add("x")
	// pretend "z" hashes into the same bucket as "x"
	vi.buckets[xxhash.Sum64String("z")] = []int{0}
	vi.add("z")
	vi.add("z")
	require.Equal(t, []string{"x", "z"}, vi.values())
	require.Equal(t, 1, vi.counts[0].Count)
	require.Equal(t, 2, vi.counts[1].Count)
}

func TestIntegersBeyondFloatPrecision(t *testing.T) {
	f := createSingleColumnFrame(t, "9007199254740993", "9007199254740992")
	require.Equal(t, dataframe.Integer, f.Dtypes()[0])
	largest, err := f.NLargest(0, 1)
	require.Nil(t, err)
	require.Equal(t, []string{"9007199254740993"}, largest)
	smallest, err := f.NSmallest(0, 1)
	require.Nil(t, err)
	require.Equal(t, []string{"9007199254740992"}, smallest)

	summaries := f.Describe()
	require.Len(t, summaries, 1)
	require.Equal(t, int64(9007199254740992), summaries[0].IntegerMin)
	require.Equal(t, int64(9007199254740993), summaries[0].IntegerMax)
}
