package tree

import (
	"math/rand"
	"slices"

	"github.com/matzehuels/prefsample/pkg/observability"
)

// schroederSym is one symbol of the word encoding a tree: a node symbol
// carrying a label, or an edge-closing symbol.
type schroederSym struct {
	node  bool
	label int
}

// Schroeder samples a Schröder tree uniformly at random with the given
// number of leaves, using the bijection of Alonso, Rémy and Schott (1997):
// a shuffled word of node patterns is completed with the missing edges, the
// cycle lemma picks the unique rotation that encodes a tree, and the word is
// folded into that tree.
//
// With numInternal set to [AnyInternal] the number of internal nodes is drawn
// first, weighted by the number of trees carrying each count, so the result
// is uniform over all Schröder trees with numLeaves leaves.
func Schroeder(numLeaves, numInternal int, rng *rand.Rand) (*Tree, error) {
	if err := validateCounts(numLeaves, numInternal); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	if numLeaves == 1 {
		observability.Sampler().OnTreeSampled("schroeder", 1, 0)
		return singleNode(), nil
	}
	k := numInternal
	if k == AnyInternal {
		k = randomInternalCount(numLeaves, rng)
	}
	seq := schroederSequence(numLeaves, k, rng)
	t := parseSequence(rotateToRoot(seq))
	observability.Sampler().OnTreeSampled("schroeder", numLeaves, k)
	return t, nil
}

// schroederSequence builds a random word with numLeaves leaf symbols and
// numInternal internal symbols, each internal symbol followed by a run of two
// or more closing symbols. The numLeaves-1-numInternal extra closes are split
// across the runs as a uniform composition; every tree then has exactly
// numLeaves+numInternal equally likely words mapping to it, one per
// node-aligned rotation.
func schroederSequence(numLeaves, numInternal int, rng *rand.Rand) []schroederSym {
	patterns := make([]bool, numLeaves+numInternal)
	for i := numLeaves; i < len(patterns); i++ {
		patterns[i] = true
	}
	rng.Shuffle(len(patterns), func(i, j int) {
		patterns[i], patterns[j] = patterns[j], patterns[i]
	})

	extra := randomComposition(numLeaves-1-numInternal, numInternal, rng)

	seq := make([]schroederSym, 0, 2*(numLeaves+numInternal)-1)
	leafCtr, internalCtr := 0, 0
	for _, internal := range patterns {
		if !internal {
			seq = append(seq, schroederSym{node: true, label: leafCtr})
			leafCtr++
			continue
		}
		seq = append(seq, schroederSym{node: true, label: internalCtr})
		for range 2 + extra[internalCtr] {
			seq = append(seq, schroederSym{})
		}
		internalCtr++
	}
	return seq
}

// randomComposition splits total across count non-negative parts, uniform
// over all C(total+count-1, count-1) ordered compositions: a stars-and-bars
// draw picking count-1 bar slots out of total+count-1. Callers guarantee
// count >= 1 and total >= 0.
func randomComposition(total, count int, rng *rand.Rand) []int {
	bars := rng.Perm(total + count - 1)[:count-1]
	slices.Sort(bars)
	parts := make([]int, count)
	prev := -1
	for i, b := range bars {
		parts[i] = b - prev - 1
		prev = b
	}
	parts[count-1] = total + count - 1 - prev - 1
	return parts
}

// rotateToRoot applies the cycle lemma. Scanning the word and tracking the
// height (+1 per node symbol, -1 per closing symbol), the rotation starting
// at the last node symbol attaining the minimum height is the unique one
// that encodes a single tree.
func rotateToRoot(seq []schroederSym) []schroederSym {
	height, minHeight, posMin := 0, 0, 0
	for pos, s := range seq {
		if !s.node {
			height--
			continue
		}
		if height <= minHeight {
			posMin = pos
			minHeight = height
		}
		height++
	}
	rotated := make([]schroederSym, 0, len(seq))
	rotated = append(rotated, seq[posMin:]...)
	rotated = append(rotated, seq[:posMin]...)
	return rotated
}

// parseSequence folds a rotated word into its tree: node symbols push onto a
// stack, and each closing symbol attaches the next-to-top node as a child of
// the top one.
func parseSequence(seq []schroederSym) *Tree {
	t := &Tree{nodes: make([]treeNode, 0, (len(seq)+1)/2)}
	stack := make([]int, 0, (len(seq)+1)/2)
	for _, s := range seq {
		if s.node {
			stack = append(stack, t.add(s.label))
			continue
		}
		parent := stack[len(stack)-1]
		child := stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		t.attach(parent, child)
		stack = append(stack, parent)
	}
	t.root = stack[0]
	return t
}
