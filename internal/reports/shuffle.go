package reports

import "math/rand/v2"

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Shuffle returns a permuted copy of names. The permutation depends only on
// seed and the input order.
func Shuffle(names []string, seed int64) []string {
	out := make([]string, len(names))
	copy(out, names)
	r := newRand(seed)
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
