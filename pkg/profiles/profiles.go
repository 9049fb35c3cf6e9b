package profiles

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
)

var (
	// ErrProfileShape is returned when a profile is empty or its rankings
	// have mismatched lengths.
	ErrProfileShape = errors.New("malformed profile")

	// ErrNotGroupSeparable is returned by [GSStructure] when a profile has
	// no group-separable decomposition.
	ErrNotGroupSeparable = errors.New("profile is not group-separable")

	// ErrRankingMismatch is returned by [KendallTau] when the two rankings
	// are not over the same elements.
	ErrRankingMismatch = errors.New("rankings are not over the same elements")

	// ErrNegativeArgument is returned by [AscendingFactorial] when value or
	// length is negative.
	ErrNegativeArgument = errors.New("argument must be nonnegative")
)

// AllAnonymousProfiles returns every anonymous profile with the given
// dimensions: a multiset of numVoters rankings, stored with the rankings in
// lexicographic order so that voter order carries no information. Profiles
// share ranking slices with each other; treat them as read-only.
func AllAnonymousProfiles(numVoters, numCandidates int) [][][]int {
	rankings := AllRankings(numCandidates)
	var out [][][]int
	combinationsWithReplacement(len(rankings), numVoters, func(idx []int) {
		prof := make([][]int, numVoters)
		for i, j := range idx {
			prof[i] = rankings[j]
		}
		out = append(out, prof)
	})
	return out
}

// NumAnonymousProfiles returns the number of anonymous profiles,
// C(m! + n - 1, n) for n voters and m candidates.
func NumAnonymousProfiles(numVoters, numCandidates int) *big.Int {
	if numVoters < 0 {
		return big.NewInt(0)
	}
	pool := NumRankings(numCandidates)
	pool.Add(pool, big.NewInt(int64(numVoters-1)))
	// C(pool, numVoters) built up one factor at a time; the running product
	// of i consecutive integers is divisible by i, so every Div is exact.
	result := big.NewInt(1)
	term := new(big.Int)
	for i := 1; i <= numVoters; i++ {
		term.Sub(pool, big.NewInt(int64(numVoters-i)))
		result.Mul(result, term)
		result.Div(result, big.NewInt(int64(i)))
	}
	return result
}

// AllProfiles returns every profile with the given dimensions: each
// anonymous profile expanded into the distinct orderings of its rows.
// Orderings of distinct anonymous profiles never coincide, so the result is
// duplicate-free. Profiles share ranking slices; treat them as read-only.
func AllProfiles(numVoters, numCandidates int) [][][]int {
	rankings := AllRankings(numCandidates)
	var out [][][]int
	combinationsWithReplacement(len(rankings), numVoters, func(idx []int) {
		for _, perm := range distinctPermutations(idx) {
			prof := make([][]int, numVoters)
			for i, j := range perm {
				prof[i] = rankings[j]
			}
			out = append(out, prof)
		}
	})
	return out
}

// AllNonIsomorphicProfiles returns one representative per candidate-renaming
// class: every profile is relabelled so that its first ranking reads
// 0..m-1, and the first occurrence of each relabelled form is kept, in
// order. With nil profiles every profile from [AllProfiles] is considered.
func AllNonIsomorphicProfiles(numVoters, numCandidates int, profiles [][][]int) [][][]int {
	if profiles == nil {
		profiles = AllProfiles(numVoters, numCandidates)
	}
	seen := make(map[string]struct{})
	var out [][][]int
	for _, profile := range profiles {
		canon := relabelByFirst(profile)
		key := profileKey(canon)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, canon)
	}
	return out
}

// relabelByFirst renames candidates by their position in the first ranking.
func relabelByFirst(profile [][]int) [][]int {
	if len(profile) == 0 {
		return nil
	}
	pos := make(map[int]int, len(profile[0]))
	for i, c := range profile[0] {
		pos[c] = i
	}
	canon := make([][]int, len(profile))
	for i, row := range profile {
		canon[i] = make([]int, len(row))
		for j, c := range row {
			canon[i][j] = pos[c]
		}
	}
	return canon
}

func profileKey(profile [][]int) string {
	var b strings.Builder
	for _, row := range profile {
		for _, c := range row {
			b.WriteString(strconv.Itoa(c))
			b.WriteByte(',')
		}
		b.WriteByte(';')
	}
	return b.String()
}
