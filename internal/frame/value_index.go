package frame

import (
	xxhash "github.com/cespare/xxhash/v2"
	"github.com/go-sif/dataframe"
)

// valueIndex counts distinct cell values in first-seen order. Values are
// bucketed by their xxhash digest, and compared by full text within a bucket.
type valueIndex struct {
	buckets map[uint64][]int
	counts  []dataframe.ValueCount
}

func createValueIndex() *valueIndex {
	return &valueIndex{
		buckets: make(map[uint64][]int),
		counts:  make([]dataframe.ValueCount, 0),
	}
}

// add records one occurrence of value
func (vi *valueIndex) add(value string) {
	key := xxhash.Sum64String(value)
	for _, pos := range vi.buckets[key] {
		if vi.counts[pos].Value == value {
			vi.counts[pos].Count++
			return
		}
	}
	vi.buckets[key] = append(vi.buckets[key], len(vi.counts))
	vi.counts = append(vi.counts, dataframe.ValueCount{Value: value, Count: 1})
}

// values returns the distinct values seen, in first-seen order
func (vi *valueIndex) values() []string {
	result := make([]string, len(vi.counts))
	for i, vc := range vi.counts {
		result[i] = vc.Value
	}
	return result
}
