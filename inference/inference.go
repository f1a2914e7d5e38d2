package inference

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-sif/dataframe"
)

// ParseInteger parses a cell as a whole number
func ParseInteger(cell string) (int64, bool) {
	v, err := strconv.ParseInt(cell, 10, 64)
	return v, err == nil
}

// ParseReal parses a cell as a finite decimal number. Spellings of NaN and infinity,
// and hexadecimal floats, are not numeric.
func ParseReal(cell string) (float64, bool) {
	if isHex(cell) {
		return 0, false
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func isHex(cell string) bool {
	unsigned := strings.TrimLeft(cell, "+-")
	if len(cell)-len(unsigned) > 1 {
		return false
	}
	return strings.HasPrefix(unsigned, "0x") || strings.HasPrefix(unsigned, "0X")
}

// InferDtype returns Integer if every cell is a whole number, Real if every
// cell is a decimal number, and Text otherwise. No cells yields Text.
func InferDtype(cells []string) dataframe.Dtype {
	if len(cells) == 0 {
		return dataframe.Text
	}
	dtype := dataframe.Integer
	for _, cell := range cells {
		if dtype == dataframe.Integer {
			if _, ok := ParseInteger(cell); ok {
				continue
			}
			dtype = dataframe.Real
		}
		if _, ok := ParseReal(cell); !ok {
			return dataframe.Text
		}
	}
	return dtype
}

// Less orders two cells of a column of the given Dtype. Numeric columns are
// ordered by value, and Text columns lexicographically. Integer columns are
// compared as int64, so no precision is lost above 2^53.
func Less(dtype dataframe.Dtype, a, b string) bool {
	if dtype == dataframe.Integer {
		av, aok := ParseInteger(a)
		bv, bok := ParseInteger(b)
		if aok && bok {
			return av < bv
		}
	}
	if dtype.IsNumeric() {
		av, aok := ParseReal(a)
		bv, bok := ParseReal(b)
		if aok && bok {
			return av < bv
		}
	}
	return a < b
}
