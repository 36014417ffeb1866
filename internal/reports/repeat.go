package reports

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// RepeatSeed seeds every repeat selection. It is built from a fixed date and
// time rather than taken from the caller, so the same positions are drawn on
// every run over a pool of the same size.
const RepeatSeed int64 = 220830 + 543417

// RepeatOptions controls Repeat.
type RepeatOptions struct {
	// TwoFolders samples from condition1 names only and appends the matching
	// condition2 names after them.
	TwoFolders bool
	// Diagnostics receives the sampling pool in two-folder mode. Nil
	// discards it.
	Diagnostics Diagnostics
}

// Repeat returns names followed by count randomly chosen entries to be shown a
// second time. In two-folder mode the result grows by 2*count. names is not
// modified.
func Repeat(names []string, count int, opts RepeatOptions) ([]string, error) {
	r := newRand(RepeatSeed)

	var subset []string
	if opts.TwoFolders {
		pool := make([]string, 0, len(names))
		for _, name := range names {
			if strings.Contains(name, Condition1) {
				pool = append(pool, name)
			}
		}
		if opts.Diagnostics != nil {
			if err := opts.Diagnostics.RepeatPool(names, pool); err != nil {
				return nil, fmt.Errorf("repeat diagnostics: %w", err)
			}
		}
		picked, err := sample(r, pool, count)
		if err != nil {
			return nil, err
		}
		subset = make([]string, 0, 2*len(picked))
		subset = append(subset, picked...)
		for _, name := range picked {
			subset = append(subset, strings.ReplaceAll(name, Condition1, Condition2))
		}
	} else {
		picked, err := sample(r, names, count)
		if err != nil {
			return nil, err
		}
		subset = picked
	}

	out := make([]string, 0, len(names)+len(subset))
	out = append(out, names...)
	out = append(out, subset...)
	return out, nil
}

// sample draws k distinct positions from population without replacement.
func sample(r *rand.Rand, population []string, k int) ([]string, error) {
	if k < 0 || k > len(population) {
		return nil, &SampleSizeError{Requested: k, Available: len(population)}
	}
	perm := r.Perm(len(population))
	out := make([]string, k)
	for i := 0; i < k; i++ {
		out[i] = population[perm[i]]
	}
	return out, nil
}
