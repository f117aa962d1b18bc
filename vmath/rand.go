package vmath

// Rand is the uniform integer source injected into the simulation.
// Substituting a fixed-sequence source makes ticks deterministic in tests.
type Rand interface {
	// IntRange returns a uniform integer in [lo, hi).
	IntRange(lo, hi int) int
}

// FastRand is a xorshift64 generator. Not safe for concurrent use; the
// simulation owns exactly one.
type FastRand struct {
	state uint64
}

// NewFastRand seeds a generator. Zero seeds are remapped to 1 since
// xorshift has a fixed point at zero.
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

func (r *FastRand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo)
}

// SeqRand replays a fixed value sequence, wrapping at the end.
// Test double for FastRand.
type SeqRand struct {
	Values []int
	pos    int
}

func (r *SeqRand) IntRange(lo, hi int) int {
	if len(r.Values) == 0 {
		return lo
	}
	v := r.Values[r.pos%len(r.Values)]
	r.pos++
	return v
}
