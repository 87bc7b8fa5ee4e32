package maze

// SeededRandom is a deterministic pseudo-random number generator (Mulberry32).
//
// All state arithmetic is done on uint32 so that a seed produces the same
// stream on every platform. Level layouts depend on this bit for bit.
type SeededRandom struct {
	state uint32
}

// NewSeededRandom creates a generator starting from the given seed.
func NewSeededRandom(seed uint32) *SeededRandom {
	return &SeededRandom{state: seed}
}

// Next returns a random float64 in [0, 1).
func (r *SeededRandom) Next() float64 {
	r.state += 0x6d2b79f5
	t := r.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return float64(t^t>>14) / 4294967296
}

// NextInt returns a random int in [0, n).
func (r *SeededRandom) NextInt(n int) int {
	return int(r.Next() * float64(n))
}

// NextRange returns a random int in [lo, hi], both ends inclusive.
func (r *SeededRandom) NextRange(lo, hi int) int {
	return lo + r.NextInt(hi-lo+1)
}

// Shuffle permutes s in place (Fisher-Yates, last index down to 1) and
// returns it. Exactly len(s)-1 values are drawn from r.
func Shuffle[T any](r *SeededRandom, s []T) []T {
	for i := len(s) - 1; i > 0; i-- {
		j := r.NextInt(i + 1)
		s[i], s[j] = s[j], s[i]
	}
	return s
}

// Pick returns one element of s using a single draw.
// s must not be empty.
func Pick[T any](r *SeededRandom, s []T) T {
	return s[r.NextInt(len(s))]
}
