package profiles

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/stat/combin"
)

// Binomial returns the binomial coefficient C(n, k), or 0 when the pair
// lies outside the Pascal triangle.
func Binomial(n, k int) int {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	return combin.Binomial(n, k)
}

// AscendingFactorial returns the generalised ascending factorial
// value * (value + increment) * ... * (value + (length-1) * increment).
// A length of zero yields 1.
func AscendingFactorial(value, length int, increment float64) (float64, error) {
	if value < 0 {
		return 0, fmt.Errorf("%w: value %d", ErrNegativeArgument, value)
	}
	if length < 0 {
		return 0, fmt.Errorf("%w: length %d", ErrNegativeArgument, length)
	}
	result := 1.0
	for i := range length {
		result *= float64(value) + float64(i)*increment
	}
	return result, nil
}

// Powerset returns every subset of s with at least minSize elements, the
// full set included. Subsets are listed smallest first, following the order
// of s, and each subset is sorted ascending.
func Powerset(s []int, minSize int) [][]int {
	return subsets(s, minSize, len(s)+1)
}

// ProperPowerset is [Powerset] restricted to proper subsets: the full set
// is left out.
func ProperPowerset(s []int, minSize int) [][]int {
	return subsets(s, minSize, len(s))
}

func subsets(s []int, minSize, maxSize int) [][]int {
	var out [][]int
	for r := max(minSize, 0); r < maxSize; r++ {
		if r == 0 {
			out = append(out, []int{})
			continue
		}
		for _, idx := range combin.Combinations(len(s), r) {
			sub := make([]int, r)
			for i, j := range idx {
				sub[i] = s[j]
			}
			slices.Sort(sub)
			out = append(out, sub)
		}
	}
	return out
}

// KendallTau returns the Kendall tau distance between two rankings: the
// number of candidate pairs the rankings order differently. Both rankings
// must be over the same elements.
func KendallTau(a, b []int) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: lengths %d and %d", ErrRankingMismatch, len(a), len(b))
	}
	posB := make(map[int]int, len(b))
	for i, c := range b {
		posB[c] = i
	}
	seq := make([]int, len(a))
	for i, c := range a {
		p, ok := posB[c]
		if !ok {
			return 0, fmt.Errorf("%w: element %d missing from second ranking", ErrRankingMismatch, c)
		}
		seq[i] = p
	}
	// Inversions of seq counted with a Fenwick tree: each one is a pair
	// ranked one way by a and the other way by b.
	fenwick := make([]int, len(seq)+1)
	inversions := 0
	for i, v := range seq {
		placed := 0
		for q := v + 1; q > 0; q -= q & (-q) {
			placed += fenwick[q]
		}
		inversions += i - placed
		for idx := v + 1; idx < len(fenwick); idx += idx & (-idx) {
			fenwick[idx]++
		}
	}
	return inversions, nil
}
