package sim

// RNG is the randomness the generator and star placement draw from.
// Passing it explicitly keeps level generation reproducible from a seed.
type RNG interface {
	// Intn returns an int in [0, n). It returns 0 when n <= 0.
	Intn(n int) int
	// Float64 returns a float in [0, 1).
	Float64() float64
}

// XorShift is a deterministic xorshift64 generator.
type XorShift struct {
	state uint64
}

const defaultSeed = 88172645463325252

// NewRNG creates a generator. A zero seed is replaced by a fixed constant,
// since xorshift never leaves the all-zero state.
func NewRNG(seed uint64) *XorShift {
	if seed == 0 {
		seed = defaultSeed
	}
	return &XorShift{state: seed}
}

// Next returns the next raw 64-bit value.
func (r *XorShift) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Float64 returns a random float64 in [0, 1).
func (r *XorShift) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Intn returns a random int in [0, n).
func (r *XorShift) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}
