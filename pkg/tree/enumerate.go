package tree

import (
	"math/rand"
	"slices"

	"github.com/matzehuels/prefsample/pkg/observability"
)

// enumNode is the lightweight node used while composing candidate trees.
// Candidates share subtrees; converting to a [Tree] unshares them.
type enumNode struct {
	label    int
	children []*enumNode
}

func enumTree(root *enumNode) *Tree {
	t := &Tree{}
	var copyIn func(n *enumNode) int
	copyIn = func(n *enumNode) int {
		idx := t.add(n.label)
		for _, c := range n.children {
			t.attach(idx, copyIn(c))
		}
		return idx
	}
	t.root = copyIn(root)
	return t
}

// ForEach enumerates every Schröder tree with the given number of leaves and
// internal nodes, calling fn once per distinct plane tree. Enumeration stops
// early when fn returns false. With numInternal set to [AnyInternal] the
// internal counts 1 through numLeaves-1 are covered in order; within one
// count the order is deterministic but unspecified.
//
// The enumeration is exhaustive and meant for small leaf counts; it
// underpins [All] and [SchroederBruteForce] and serves as a counting oracle.
func ForEach(numLeaves, numInternal int, fn func(*Tree) bool) error {
	if err := validateCounts(numLeaves, numInternal); err != nil {
		return err
	}
	if numLeaves == 1 {
		fn(singleNode())
		return nil
	}
	lo, hi := numInternal, numInternal
	if numInternal == AnyInternal {
		lo, hi = 1, numLeaves-1
	}
	seen := make(map[string]struct{})
	for k := lo; k <= hi; k++ {
		for _, root := range enumCandidates(numLeaves, k, 0) {
			t := enumTree(root)
			key := t.ShapeString()
			if _, dup := seen[key]; dup {
				continue
			}
			if t.NumInternal() != k {
				continue
			}
			seen[key] = struct{}{}
			if !fn(t) {
				return nil
			}
		}
	}
	return nil
}

// All returns every Schröder tree with the given number of leaves and
// internal nodes. See [ForEach] for the enumeration contract.
func All(numLeaves, numInternal int) ([]*Tree, error) {
	var out []*Tree
	err := ForEach(numLeaves, numInternal, func(t *Tree) bool {
		out = append(out, t)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SchroederBruteForce samples a Schröder tree uniformly at random by
// enumerating every tree and picking one. The frontier of the picked tree is
// relabelled 0..numLeaves-1 left to right; raw enumeration labels are not
// unique. Uniformity is immediate at the cost of exhaustive enumeration,
// which makes this sampler the oracle the faster ones are tested against.
func SchroederBruteForce(numLeaves, numInternal int, rng *rand.Rand) (*Tree, error) {
	if err := validateCounts(numLeaves, numInternal); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	trees, err := All(numLeaves, numInternal)
	if err != nil {
		return nil, err
	}
	t := trees[rng.Intn(len(trees))]
	_ = t.RenameFrontier(nil)
	observability.Sampler().OnTreeSampled("schroeder-brute-force", numLeaves, t.NumInternal())
	return t, nil
}

// enumCandidates composes every candidate subtree placing leavesToPlace
// leaves with at most internalBudget internal nodes below one parent: the
// parent takes some leaf children and some internal children, the remaining
// leaves are partitioned across the internal children (two minimum each),
// and every distinct arrangement of the child multiset is expanded through
// the cartesian product of the child candidate sets. The budget is a loose
// bound; callers filter for exact internal counts. Labels follow a counter
// that advances by the leaf demand of each child, so they are deterministic
// but not unique within a candidate.
func enumCandidates(leavesToPlace, internalBudget, counter int) []*enumNode {
	if leavesToPlace == 0 {
		return []*enumNode{{label: counter}}
	}
	if leavesToPlace == 2 {
		return []*enumNode{{
			label:    counter,
			children: []*enumNode{{label: counter + 1}, {label: counter + 2}},
		}}
	}

	var out []*enumNode
	for leaves := 0; leaves <= leavesToPlace; leaves++ {
		for internal := max(2-leaves, 0); internal < min(leavesToPlace/2+1, internalBudget); internal++ {
			if leavesToPlace-leaves < internal*2 {
				continue
			}
			for _, part := range partitionLeaves(internal, leavesToPlace-leaves) {
				counts := make([]int, leaves, leaves+internal)
				counts = append(counts, part...)
				for _, arrangement := range distinctPermutations(counts) {
					cc := counter
					options := make([][]*enumNode, len(arrangement))
					for i, m := range arrangement {
						options[i] = enumCandidates(m, internalBudget-internal, cc)
						cc += max(m, 1)
					}
					eachProduct(options, func(combo []*enumNode) {
						out = append(out, &enumNode{label: cc, children: slices.Clone(combo)})
					})
				}
			}
		}
	}
	return out
}

// eachProduct calls fn with every element of the cartesian product of the
// option sets, first set varying slowest. The combination slice is reused
// between calls.
func eachProduct(options [][]*enumNode, fn func([]*enumNode)) {
	combo := make([]*enumNode, len(options))
	var rec func(pos int)
	rec = func(pos int) {
		if pos == len(options) {
			fn(combo)
			return
		}
		for _, opt := range options[pos] {
			combo[pos] = opt
			rec(pos + 1)
		}
	}
	rec(0)
}

// partitionLeaves lists every way to hand numLeaves leaves to numNodes
// internal children so that each receives at least two.
func partitionLeaves(numNodes, numLeaves int) [][]int {
	var res [][]int
	combinationsWithReplacement(numNodes, numLeaves-2*numNodes, func(combo []int) {
		part := make([]int, numNodes)
		for i := range part {
			part[i] = 2
		}
		for _, idx := range combo {
			part[idx]++
		}
		res = append(res, part)
	})
	return res
}

// combinationsWithReplacement calls emit with every nondecreasing sequence
// of length r over 0..n-1, in lexicographic order. With r == 0 it emits one
// empty sequence; with r < 0, or r > 0 and n == 0, it emits nothing. The
// slice passed to emit is reused between calls.
func combinationsWithReplacement(n, r int, emit func([]int)) {
	if r < 0 {
		return
	}
	combo := make([]int, r)
	var rec func(pos, minVal int)
	rec = func(pos, minVal int) {
		if pos == r {
			emit(combo)
			return
		}
		for v := minVal; v < n; v++ {
			combo[pos] = v
			rec(pos+1, v)
		}
	}
	rec(0, 0)
}

// distinctPermutations lists the distinct permutations of the multiset in
// lexicographic order.
func distinctPermutations(vals []int) [][]int {
	cur := slices.Clone(vals)
	slices.Sort(cur)
	var out [][]int
	for {
		out = append(out, slices.Clone(cur))
		if !nextPermutation(cur) {
			return out
		}
	}
}

// nextPermutation rearranges vals into the next lexicographic permutation,
// reporting false once vals is the last (descending) one.
func nextPermutation(vals []int) bool {
	i := len(vals) - 2
	for i >= 0 && vals[i] >= vals[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(vals) - 1
	for vals[j] <= vals[i] {
		j--
	}
	vals[i], vals[j] = vals[j], vals[i]
	slices.Reverse(vals[i+1:])
	return true
}
