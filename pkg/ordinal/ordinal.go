package ordinal

import (
	"errors"
	"fmt"
	"math/big"
	"math/rand"
)

var (
	// ErrVoterCount is returned when a sampler is asked for fewer than one
	// voter.
	ErrVoterCount = errors.New("number of voters must be at least 1")

	// ErrCandidateCount is returned when a sampler is asked for fewer than
	// one candidate.
	ErrCandidateCount = errors.New("number of candidates must be at least 1")

	// ErrTreeShape is returned by [GroupSeparable] for tree shapes outside
	// the [TreeShape] constants.
	ErrTreeShape = errors.New("unknown tree shape")

	// ErrNilRand is returned when no random source is supplied.
	ErrNilRand = errors.New("nil random source")
)

func validateDimensions(numVoters, numCandidates int) error {
	if numVoters < 1 {
		return fmt.Errorf("%w: got %d", ErrVoterCount, numVoters)
	}
	if numCandidates < 1 {
		return fmt.Errorf("%w: got %d", ErrCandidateCount, numCandidates)
	}
	return nil
}

// drawWeighted picks an index with probability proportional to its weight.
// The weights must not all be zero.
func drawWeighted(rng *rand.Rand, weights []*big.Int) int {
	total := new(big.Int)
	for _, w := range weights {
		total.Add(total, w)
	}
	x := new(big.Int).Rand(rng, total)
	for i, w := range weights {
		if x.Cmp(w) < 0 {
			return i
		}
		x.Sub(x, w)
	}
	return len(weights) - 1
}
