package ordinal

import (
	"fmt"
	"math/big"
	"math/rand"
	"time"

	"github.com/matzehuels/prefsample/pkg/observability"
	"github.com/matzehuels/prefsample/pkg/tree"
)

// TreeShape selects the decomposition-tree generator used by
// [GroupSeparable].
type TreeShape int

const (
	// ShapeSchroeder samples Schröder trees with the Alonso-Rémy-Schott
	// word construction.
	ShapeSchroeder TreeShape = iota
	// ShapeSchroederUniform samples Schröder trees uniformly at random by
	// full enumeration. Exact but exponential in the number of candidates.
	ShapeSchroederUniform
	// ShapeSchroederLescanne samples Schröder trees by rejection, redrawing
	// the internal-node count until it matches the request.
	ShapeSchroederLescanne
	// ShapeCaterpillar always decomposes along the caterpillar tree.
	ShapeCaterpillar
	// ShapeBalanced always decomposes along the balanced binary tree.
	ShapeBalanced
)

// String returns the shape name used in logs and error messages.
func (s TreeShape) String() string {
	switch s {
	case ShapeSchroeder:
		return "schroeder"
	case ShapeSchroederUniform:
		return "schroeder-uniform"
	case ShapeSchroederLescanne:
		return "schroeder-lescanne"
	case ShapeCaterpillar:
		return "caterpillar"
	case ShapeBalanced:
		return "balanced"
	}
	return fmt.Sprintf("TreeShape(%d)", int(s))
}

// GroupSeparable samples a group-separable profile following Faliszewski,
// Karpov and Obraztsova (2022): a decomposition tree is drawn with the
// requested shape, each voter flips the child order beneath a random subset
// of internal nodes, and their vote reads the leaves left to right. The
// first vote relabels candidates with a uniformly random permutation.
//
// For the Schröder shapes the number of internal nodes is drawn first,
// weighted by the number of group-separable profiles each count admits.
// Votes within a profile are not independent: they share one tree.
func GroupSeparable(numVoters, numCandidates int, shape TreeShape, rng *rand.Rand) ([][]int, error) {
	if err := validateDimensions(numVoters, numCandidates); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	start := time.Now()

	var t *tree.Tree
	var err error
	switch shape {
	case ShapeSchroeder, ShapeSchroederUniform, ShapeSchroederLescanne:
		numInternal := 0
		if numCandidates > 1 {
			weights := make([]*big.Int, numCandidates-1)
			for r := 1; r < numCandidates; r++ {
				weights[r-1] = numGroupSeparable(numCandidates, r, numVoters)
			}
			numInternal = drawWeighted(rng, weights) + 1
		}
		switch shape {
		case ShapeSchroeder:
			t, err = tree.Schroeder(numCandidates, numInternal, rng)
		case ShapeSchroederUniform:
			t, err = tree.SchroederBruteForce(numCandidates, numInternal, rng)
		default:
			t, err = tree.SchroederLescanne(numCandidates, numInternal, rng)
		}
	case ShapeCaterpillar:
		t, err = tree.Caterpillar(numCandidates)
	case ShapeBalanced:
		t, err = tree.Balanced(numCandidates)
	default:
		return nil, fmt.Errorf("%w %v: choose one of schroeder, schroeder-uniform, schroeder-lescanne, caterpillar, balanced", ErrTreeShape, shape)
	}
	if err != nil {
		return nil, err
	}

	inner := t.InternalNodes()

	votes := make([][]int, 0, numVoters)
	frontier := sampleVote(t)
	firstVote := rng.Perm(numCandidates)
	voteMap := make(map[int]int, numCandidates)
	for i, leaf := range frontier {
		voteMap[leaf] = firstVote[i]
	}
	votes = append(votes, firstVote)

	signatures := sampleSignatures(rng, numVoters-1, len(inner))
	for i := 1; i < numVoters; i++ {
		for j, node := range inner {
			t.SetReverse(node, signatures[i-1][j])
		}
		raw := sampleVote(t)
		vote := make([]int, len(raw))
		for p, c := range raw {
			vote[p] = voteMap[c]
		}
		votes = append(votes, vote)
	}

	observability.Profile().OnProfileSampled("group-separable", numVoters, numCandidates, time.Since(start))
	return votes, nil
}

// numGroupSeparable counts the group-separable profiles with n voters over
// m candidates whose decomposition tree has r internal nodes.
func numGroupSeparable(m, r, n int) *big.Int {
	w := new(big.Int).Binomial(int64(m-1), int64(r))
	w.Mul(w, new(big.Int).Binomial(int64(m-1+r), int64(m)))
	base := new(big.Int).Lsh(big.NewInt(1), uint(n-1))
	base.Sub(base, big.NewInt(1))
	return w.Mul(w, base.Exp(base, big.NewInt(int64(r-1)), nil))
}

// sampleVote reads the leaf labels of the tree left to right, flipping
// child order beneath every node whose reverse flag disagrees with the flip
// inherited from its ancestors.
func sampleVote(t *tree.Tree) []int {
	var out []int
	var walk func(node int, flipped bool)
	walk = func(node int, flipped bool) {
		if t.IsLeaf(node) {
			out = append(out, t.Label(node))
			return
		}
		children := t.Children(node)
		if flipped == t.Reverse(node) {
			for _, c := range children {
				walk(c, false)
			}
		} else {
			for i := len(children) - 1; i >= 0; i-- {
				walk(children[i], true)
			}
		}
	}
	walk(t.Root(), false)
	return out
}

// sampleSignatures draws one boolean flip per extra voter and internal
// node, column by column. Columns past the first are redrawn until at least
// one voter sets the flag.
func sampleSignatures(rng *rand.Rand, rows, cols int) [][]bool {
	sigs := make([][]bool, rows)
	for i := range sigs {
		sigs[i] = make([]bool, cols)
	}
	column := make([]bool, rows)
	for r := range cols {
		for {
			anySet := false
			for i := range column {
				column[i] = rng.Intn(2) == 0
				anySet = anySet || column[i]
			}
			if r == 0 || anySet || rows == 0 {
				break
			}
		}
		for i := range sigs {
			sigs[i][r] = column[i]
		}
	}
	return sigs
}
