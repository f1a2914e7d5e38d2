package dataframe

// RandomSource produces uniformly distributed integers. Frames draw their
// samples from a RandomSource so that callers may supply a deterministic one.
type RandomSource interface {
	Intn(n int) int // Intn returns a value in [0, n). It panics if n <= 0.
}
