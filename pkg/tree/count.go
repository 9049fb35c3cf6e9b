package tree

import (
	"fmt"
	"math/big"
	"math/rand"
)

// AnyInternal leaves the number of internal nodes unconstrained: the random
// generators then draw it with probability proportional to the number of
// trees carrying each count, and [Count], [All] and [ForEach] range over every
// valid count.
const AnyInternal = -1

// validateCounts checks a (leaves, internal) pair against the Schröder tree
// constraints. numInternal may be AnyInternal.
func validateCounts(numLeaves, numInternal int) error {
	if numLeaves < 1 {
		return fmt.Errorf("%w: got %d", ErrLeafCount, numLeaves)
	}
	if numInternal == AnyInternal {
		return nil
	}
	if numInternal < 0 {
		return fmt.Errorf("%w: got %d", ErrInternalCount, numInternal)
	}
	if numInternal == 0 && numLeaves != 1 {
		return fmt.Errorf("%w: zero internal nodes requires exactly one leaf, got %d", ErrInternalCount, numLeaves)
	}
	if numInternal > numLeaves-1 {
		return fmt.Errorf("%w: got %d for %d leaves (at most %d)", ErrInternalCount, numInternal, numLeaves, numLeaves-1)
	}
	return nil
}

// schroederCount returns the number of Schröder trees with numLeaves leaves
// and numInternal internal nodes:
//
//	C(n-1, k) * C(n-1+k, n) / (n-1)
//
// The division is always exact. Callers guarantee numLeaves >= 2 and
// 1 <= numInternal <= numLeaves-1.
func schroederCount(numLeaves, numInternal int) *big.Int {
	n, k := int64(numLeaves), int64(numInternal)
	c := new(big.Int).Binomial(n-1, k)
	c.Mul(c, new(big.Int).Binomial(n-1+k, n))
	return c.Div(c, big.NewInt(n-1))
}

// Count returns the number of Schröder trees with the given number of leaves
// and internal nodes. With numInternal set to [AnyInternal] the counts are
// summed over every valid internal count, yielding the little Schröder
// numbers (1, 1, 3, 11, 45, 197, ...).
func Count(numLeaves, numInternal int) (*big.Int, error) {
	if err := validateCounts(numLeaves, numInternal); err != nil {
		return nil, err
	}
	if numLeaves == 1 {
		return big.NewInt(1), nil
	}
	if numInternal == AnyInternal {
		total := new(big.Int)
		for k := 1; k < numLeaves; k++ {
			total.Add(total, schroederCount(numLeaves, k))
		}
		return total, nil
	}
	return schroederCount(numLeaves, numInternal), nil
}

// randomInternalCount draws a number of internal nodes for a tree with
// numLeaves leaves, weighted by the number of trees carrying each count.
// Callers guarantee numLeaves >= 2.
func randomInternalCount(numLeaves int, rng *rand.Rand) int {
	weights := make([]*big.Int, numLeaves-1)
	total := new(big.Int)
	for k := 1; k < numLeaves; k++ {
		weights[k-1] = schroederCount(numLeaves, k)
		total.Add(total, weights[k-1])
	}
	x := new(big.Int).Rand(rng, total)
	for i, w := range weights {
		if x.Cmp(w) < 0 {
			return i + 1
		}
		x.Sub(x, w)
	}
	return numLeaves - 1
}
