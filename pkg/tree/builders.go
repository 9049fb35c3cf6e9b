package tree

import "fmt"

// Caterpillar builds the caterpillar tree with the given number of leaves:
// every internal node has one leaf child and one internal child, except the
// deepest one which has two leaf children. With one leaf the result is a
// single node, even though strictly speaking that is not a caterpillar.
func Caterpillar(numLeaves int) (*Tree, error) {
	if numLeaves < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrLeafCount, numLeaves)
	}
	t := singleNode()
	if numLeaves == 1 {
		return t, nil
	}

	cur := t.root
	ctr := 1
	for numLeaves > 2 {
		leaf := t.add(ctr)
		ctr++
		inner := t.add(ctr)
		ctr++
		t.attach(cur, leaf)
		t.attach(cur, inner)
		cur = inner
		numLeaves--
	}
	leaf1 := t.add(ctr)
	ctr++
	leaf2 := t.add(ctr)
	t.attach(cur, leaf1)
	t.attach(cur, leaf2)
	return t, nil
}

// Balanced builds the balanced binary tree with the given number of leaves.
// Children are attached in breadth-first order, so the leaf depths differ by
// at most one.
func Balanced(numLeaves int) (*Tree, error) {
	if numLeaves < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrLeafCount, numLeaves)
	}
	t := singleNode()
	if numLeaves == 1 {
		return t, nil
	}

	ctr := 1
	queue := []int{t.root}
	for ctr < 2*numLeaves-1 {
		cur := queue[0]
		queue = queue[1:]
		for range 2 {
			inner := t.add(ctr)
			ctr++
			t.attach(cur, inner)
			queue = append(queue, inner)
		}
	}
	return t, nil
}
