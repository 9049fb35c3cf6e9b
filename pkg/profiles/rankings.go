package profiles

import (
	"math/big"
	"slices"
)

// AllRankings returns every ranking of numCandidates candidates in
// lexicographic order. Each ranking is a permutation of 0..numCandidates-1.
func AllRankings(numCandidates int) [][]int {
	if numCandidates < 0 {
		return nil
	}
	cur := make([]int, numCandidates)
	for i := range cur {
		cur[i] = i
	}
	var out [][]int
	for {
		out = append(out, slices.Clone(cur))
		if !nextPermutation(cur) {
			return out
		}
	}
}

// NumRankings returns numCandidates factorial as an exact integer.
func NumRankings(numCandidates int) *big.Int {
	if numCandidates < 0 {
		return big.NewInt(0)
	}
	return new(big.Int).MulRange(1, int64(numCandidates))
}

// AllSinglePeakedRankings returns every ranking that is single-peaked on the
// axis 0 < 1 < ... < numCandidates-1. Ranks are filled from the bottom: at
// each step the lowest remaining position receives one end of the shrinking
// candidate interval. There are 2^(numCandidates-1) such rankings.
func AllSinglePeakedRankings(numCandidates int) [][]int {
	if numCandidates < 1 {
		return nil
	}
	var out [][]int
	var fill func(a, b int, rank []int, position int)
	fill = func(a, b int, rank []int, position int) {
		if a == b {
			rank[position] = a
			out = append(out, slices.Clone(rank))
			return
		}
		rank[position] = a
		fill(a+1, b, rank, position-1)
		rank = slices.Clone(rank)
		rank[position] = b
		fill(a, b-1, rank, position-1)
	}
	fill(0, numCandidates-1, make([]int, numCandidates), numCandidates-1)
	return out
}

// AllSinglePeakedCircleRankings returns every ranking single-peaked on the
// circular axis 0, 1, ..., numCandidates-1, 0. Each candidate serves as the
// peak in turn, and the remaining positions take one of the two neighbours
// of the interval already placed, wrapping around the circle. There are
// numCandidates * 2^(numCandidates-2) such rankings.
func AllSinglePeakedCircleRankings(numCandidates int) [][]int {
	if numCandidates < 1 {
		return nil
	}
	if numCandidates == 1 {
		return [][]int{{0}}
	}
	var out [][]int
	var fill func(a, b int, rank []int, position int)
	fill = func(a, b int, rank []int, position int) {
		if a < 0 {
			a += numCandidates
		}
		if b > numCandidates-1 {
			b -= numCandidates
		}
		if a == b {
			rank[position] = a
			out = append(out, slices.Clone(rank))
			return
		}
		rank[position] = a
		fill(a-1, b, rank, position+1)
		rank = slices.Clone(rank)
		rank[position] = b
		fill(a, b+1, rank, position+1)
	}
	for peak := range numCandidates {
		rank := make([]int, numCandidates)
		rank[0] = peak
		fill(peak-1, peak+1, rank, 1)
	}
	return out
}

// nextPermutation advances s to its next lexicographic permutation in
// place, returning false once s is the final (descending) one.
func nextPermutation(s []int) bool {
	i := len(s) - 2
	for i >= 0 && s[i] >= s[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(s) - 1
	for s[j] <= s[i] {
		j--
	}
	s[i], s[j] = s[j], s[i]
	slices.Reverse(s[i+1:])
	return true
}

// distinctPermutations returns the distinct permutations of s in
// lexicographic order. Repeated values yield each arrangement once.
func distinctPermutations(s []int) [][]int {
	cur := slices.Clone(s)
	slices.Sort(cur)
	var out [][]int
	for {
		out = append(out, slices.Clone(cur))
		if !nextPermutation(cur) {
			return out
		}
	}
}

// combinationsWithReplacement calls emit with every nondecreasing index
// sequence of length r over 0..n-1, in lexicographic order. The slice
// passed to emit is reused across calls.
func combinationsWithReplacement(n, r int, emit func([]int)) {
	if r < 0 {
		return
	}
	idx := make([]int, r)
	var rec func(pos, minIdx int)
	rec = func(pos, minIdx int) {
		if pos == r {
			emit(idx)
			return
		}
		for v := minIdx; v < n; v++ {
			idx[pos] = v
			rec(pos+1, v)
		}
	}
	rec(0, 0)
}
