package ordinal

import (
	"math/big"
	"math/rand"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/prefsample/pkg/observability"
)

// SingleCrossing samples a single-crossing profile by walking a random
// domain: starting from 0 > 1 > ... the domain applies one uniformly chosen
// ascending adjacent swap per step until reaching the full reversal, and
// each voter draws a position in the domain uniformly. Votes are returned
// ordered by domain position, so the profile is single-crossing as given.
//
// The distribution over single-crossing profiles is not uniform; see
// [SingleCrossingImpartial] for the exact but exponential alternative.
func SingleCrossing(numVoters, numCandidates int, rng *rand.Rand) ([][]int, error) {
	if err := validateDimensions(numVoters, numCandidates); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	start := time.Now()

	domainSize := numCandidates*(numCandidates-1)/2 + 1
	domain := make([][]int, 1, domainSize)
	domain[0] = make([]int, numCandidates)
	for i := range domain[0] {
		domain[0][i] = i
	}
	for line := 1; line < domainSize; line++ {
		prev := domain[line-1]
		var swaps []int
		for j := 0; j < numCandidates-1; j++ {
			if prev[j] < prev[j+1] {
				swaps = append(swaps, j)
			}
		}
		j := swaps[rng.Intn(len(swaps))]
		next := slices.Clone(prev)
		next[j], next[j+1] = prev[j+1], prev[j]
		domain = append(domain, next)
	}

	idx := make([]int, numVoters)
	for i := range idx {
		idx[i] = rng.Intn(domainSize)
	}
	slices.Sort(idx)
	votes := make([][]int, numVoters)
	for i, d := range idx {
		votes[i] = slices.Clone(domain[d])
	}

	observability.Profile().OnProfileSampled("single-crossing", numVoters, numCandidates, time.Since(start))
	return votes, nil
}

// scNode is one vote in the lattice of all rankings, linked to the votes
// reachable by a single ascending adjacent swap.
type scNode struct {
	vote    []int
	next    []int
	allNext []int
	counts  map[int]*big.Int
}

// SingleCrossingImpartial samples uniformly over the anonymous,
// non-isomorphic single-crossing profiles: the first vote is always
// 0 > 1 > ... and later votes only move further down the swap lattice. Each
// step draws the next vote weighted by the number of profile completions it
// admits, which makes every profile equally likely. Building the lattice
// enumerates all rankings, so the running time grows with the factorial of
// the number of candidates.
func SingleCrossingImpartial(numVoters, numCandidates int, rng *rand.Rand) ([][]int, error) {
	if err := validateDimensions(numVoters, numCandidates); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	start := time.Now()

	var nodes []*scNode
	index := make(map[string]int)
	var build func(vote []int) int
	build = func(vote []int) int {
		key := voteKey(vote)
		if i, ok := index[key]; ok {
			return i
		}
		i := len(nodes)
		nodes = append(nodes, &scNode{vote: slices.Clone(vote), counts: make(map[int]*big.Int)})
		index[key] = i
		for j := 0; j < len(vote)-1; j++ {
			if vote[j] < vote[j+1] {
				succ := slices.Clone(vote)
				succ[j], succ[j+1] = succ[j+1], succ[j]
				si := build(succ)
				nodes[i].next = append(nodes[i].next, si)
			}
		}
		return i
	}
	identity := make([]int, numCandidates)
	for i := range identity {
		identity[i] = i
	}
	top := build(identity)

	// Reachable sets, each including the node itself. The lattice is
	// acyclic: every swap adds an inversion.
	var fill func(i int)
	fill = func(i int) {
		if nodes[i].allNext != nil {
			return
		}
		set := map[int]struct{}{i: {}}
		for _, s := range nodes[i].next {
			fill(s)
			for _, x := range nodes[s].allNext {
				set[x] = struct{}{}
			}
		}
		list := make([]int, 0, len(set))
		for x := range set {
			list = append(list, x)
		}
		slices.Sort(list)
		nodes[i].allNext = list
	}
	fill(top)

	var countElections func(i, n int) *big.Int
	countElections = func(i, n int) *big.Int {
		if n < 2 {
			return big.NewInt(int64(n))
		}
		if c, ok := nodes[i].counts[n]; ok {
			return c
		}
		total := new(big.Int)
		for _, s := range nodes[i].allNext {
			total.Add(total, countElections(s, n-1))
		}
		nodes[i].counts[n] = total
		return total
	}

	cur := top
	votes := make([][]int, 0, numVoters)
	votes = append(votes, slices.Clone(nodes[top].vote))
	for remaining := numVoters; remaining > 1; remaining-- {
		cands := nodes[cur].allNext
		weights := make([]*big.Int, len(cands))
		for i, s := range cands {
			weights[i] = countElections(s, remaining-1)
		}
		cur = cands[drawWeighted(rng, weights)]
		votes = append(votes, slices.Clone(nodes[cur].vote))
	}

	observability.Profile().OnProfileSampled("single-crossing-impartial", numVoters, numCandidates, time.Since(start))
	return votes, nil
}

func voteKey(vote []int) string {
	var b strings.Builder
	for _, c := range vote {
		b.WriteString(strconv.Itoa(c))
		b.WriteByte(',')
	}
	return b.String()
}
