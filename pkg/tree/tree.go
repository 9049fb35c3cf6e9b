package tree

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrLeafCount is returned when a leaf count is not strictly positive.
	ErrLeafCount = errors.New("number of leaves must be at least 1")

	// ErrInternalCount is returned when an internal node count is impossible
	// for the requested number of leaves.
	ErrInternalCount = errors.New("invalid number of internal nodes")

	// ErrNilRand is returned by the random generators when no random source
	// is provided.
	ErrNilRand = errors.New("nil random source")

	// ErrFrontierSize is returned by [Tree.RenameFrontier] when the name list
	// does not cover the frontier exactly.
	ErrFrontierSize = errors.New("frontier name count mismatch")
)

// Tree is an ordered rooted tree stored in a flat arena. Nodes are addressed
// by arena index; child order is significant. The zero value is not usable -
// trees are created by the generators and builders in this package
// ([Schroeder], [Caterpillar], [Balanced], ...).
//
// A Tree is not safe for concurrent mutation. Read-only use from multiple
// goroutines is fine.
type Tree struct {
	nodes []treeNode
	root  int
}

type treeNode struct {
	label    int
	parent   int   // arena index, -1 for the root
	children []int // arena indices, left to right
	reverse  bool
}

// add appends an unattached node and returns its arena index.
func (t *Tree) add(label int) int {
	t.nodes = append(t.nodes, treeNode{label: label, parent: -1})
	return len(t.nodes) - 1
}

// attach appends child to parent's child list.
func (t *Tree) attach(parent, child int) {
	t.nodes[parent].children = append(t.nodes[parent].children, child)
	t.nodes[child].parent = parent
}

// singleNode returns the one-node tree labelled 0.
func singleNode() *Tree {
	return &Tree{nodes: []treeNode{{label: 0, parent: -1}}}
}

// walk visits every node reachable from the root in preorder, children left
// to right. It stops early when fn returns false.
func (t *Tree) walk(fn func(idx int) bool) {
	stack := []int{t.root}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(idx) {
			return
		}
		kids := t.nodes[idx].children
		for j := len(kids) - 1; j >= 0; j-- {
			stack = append(stack, kids[j])
		}
	}
}

// Root returns the arena index of the root node.
func (t *Tree) Root() int { return t.root }

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	n := 0
	t.walk(func(int) bool { n++; return true })
	return n
}

// Label returns the label of the node at arena index idx.
func (t *Tree) Label(idx int) int { return t.nodes[idx].label }

// Parent returns the arena index of idx's parent, or -1 for the root.
func (t *Tree) Parent(idx int) int { return t.nodes[idx].parent }

// Children returns the child indices of idx in left-to-right order.
// The returned slice is owned by the tree and must not be modified.
func (t *Tree) Children(idx int) []int { return t.nodes[idx].children }

// IsLeaf reports whether the node at idx has no children.
func (t *Tree) IsLeaf(idx int) bool { return len(t.nodes[idx].children) == 0 }

// Reverse reports whether the traversal-order flag is set on idx.
// The flag is used by the group-separable sampler to flip child order
// while reading out votes; it has no effect on the tree structure itself.
func (t *Tree) Reverse(idx int) bool { return t.nodes[idx].reverse }

// SetReverse sets the traversal-order flag on idx.
func (t *Tree) SetReverse(idx int, v bool) { t.nodes[idx].reverse = v }

// ClearReverse clears the traversal-order flag on every node.
func (t *Tree) ClearReverse() {
	for i := range t.nodes {
		t.nodes[i].reverse = false
	}
}

// NumLeaves returns the number of leaves.
func (t *Tree) NumLeaves() int {
	n := 0
	t.walk(func(idx int) bool {
		if len(t.nodes[idx].children) == 0 {
			n++
		}
		return true
	})
	return n
}

// NumInternal returns the number of internal nodes.
func (t *Tree) NumInternal() int {
	n := 0
	t.walk(func(idx int) bool {
		if len(t.nodes[idx].children) > 0 {
			n++
		}
		return true
	})
	return n
}

// Leaves returns the arena indices of the frontier in left-to-right order.
func (t *Tree) Leaves() []int {
	var out []int
	t.walk(func(idx int) bool {
		if len(t.nodes[idx].children) == 0 {
			out = append(out, idx)
		}
		return true
	})
	return out
}

// InternalNodes returns the arena indices of the internal nodes in preorder,
// root first.
func (t *Tree) InternalNodes() []int {
	var out []int
	t.walk(func(idx int) bool {
		if len(t.nodes[idx].children) > 0 {
			out = append(out, idx)
		}
		return true
	})
	return out
}

// Find returns the arena index of the first node with the given label in
// preorder, or -1 if no node carries it.
func (t *Tree) Find(label int) int {
	found := -1
	t.walk(func(idx int) bool {
		if t.nodes[idx].label == label {
			found = idx
			return false
		}
		return true
	})
	return found
}

// IsSchroeder reports whether every internal node has at least two children.
func (t *Tree) IsSchroeder() bool {
	ok := true
	t.walk(func(idx int) bool {
		if len(t.nodes[idx].children) == 1 {
			ok = false
			return false
		}
		return true
	})
	return ok
}

// String renders the tree with node labels, e.g. "2(0(), 1())". Leaves render
// as "label()"; nodes with a single child are elided in favour of that child.
func (t *Tree) String() string {
	var b strings.Builder
	t.writeTree(&b, t.root)
	return b.String()
}

func (t *Tree) writeTree(b *strings.Builder, idx int) {
	n := &t.nodes[idx]
	if len(n.children) == 1 {
		t.writeTree(b, n.children[0])
		return
	}
	b.WriteString(strconv.Itoa(n.label))
	b.WriteByte('(')
	for j, c := range n.children {
		if j > 0 {
			b.WriteString(", ")
		}
		t.writeTree(b, c)
	}
	b.WriteByte(')')
}

// ShapeString renders the label-free shape of the tree, e.g. "2(_, 2(_, _))".
// Leaves render as "_", internal nodes as their child count. Child order is
// preserved, so two plane trees have equal shape strings exactly when they
// are equal as ordered trees. [ForEach] uses this as its deduplication key.
func (t *Tree) ShapeString() string {
	var b strings.Builder
	t.writeShape(&b, t.root)
	return b.String()
}

func (t *Tree) writeShape(b *strings.Builder, idx int) {
	n := &t.nodes[idx]
	if len(n.children) == 0 {
		b.WriteByte('_')
		return
	}
	b.WriteString(strconv.Itoa(len(n.children)))
	b.WriteByte('(')
	for j, c := range n.children {
		if j > 0 {
			b.WriteString(", ")
		}
		t.writeShape(b, c)
	}
	b.WriteByte(')')
}

// ShapeHash returns a structural hash that ignores labels and child order:
// two trees that are isomorphic up to reordering children hash equally.
// It complements [Tree.ShapeString], which is order-sensitive.
func (t *Tree) ShapeHash() uint64 {
	return t.shapeHash(t.root)
}

func (t *Tree) shapeHash(idx int) uint64 {
	n := &t.nodes[idx]
	h := fnv.New64a()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(len(n.children)))
	h.Write(buf[:])
	if len(n.children) > 0 {
		sub := make([]uint64, len(n.children))
		for j, c := range n.children {
			sub[j] = t.shapeHash(c)
		}
		slices.Sort(sub)
		for _, s := range sub {
			binary.BigEndian.PutUint64(buf[:], s)
			h.Write(buf[:])
		}
	}
	return h.Sum64()
}

// Clone returns a deep copy of the tree. The copy uses a fresh, compact
// arena, so indices are not interchangeable between the two trees.
func (t *Tree) Clone() *Tree {
	c := &Tree{nodes: make([]treeNode, 0, len(t.nodes))}
	c.root = c.cloneFrom(t, t.root)
	return c
}

func (c *Tree) cloneFrom(src *Tree, idx int) int {
	ci := c.add(src.nodes[idx].label)
	c.nodes[ci].reverse = src.nodes[idx].reverse
	for _, child := range src.nodes[idx].children {
		c.attach(ci, c.cloneFrom(src, child))
	}
	return ci
}

// RenameFrontier relabels the leaves in left-to-right order. With nil names
// the leaves are labelled 0, 1, 2, ...; otherwise names must hold exactly one
// label per leaf or [ErrFrontierSize] is returned.
func (t *Tree) RenameFrontier(names []int) error {
	leaves := t.Leaves()
	if names != nil && len(names) != len(leaves) {
		return fmt.Errorf("%w: got %d names for %d leaves", ErrFrontierSize, len(names), len(leaves))
	}
	for i, idx := range leaves {
		if names == nil {
			t.nodes[idx].label = i
		} else {
			t.nodes[idx].label = names[i]
		}
	}
	return nil
}

// MergeWithParent removes the first node found with the given label and
// splices its children into its parent at the removed node's position,
// preserving child order. It reports whether a merge happened; the root and
// unknown labels are left untouched.
func (t *Tree) MergeWithParent(label int) bool {
	idx := t.Find(label)
	if idx < 0 {
		return false
	}
	p := t.nodes[idx].parent
	if p < 0 {
		return false
	}
	pos := slices.Index(t.nodes[p].children, idx)
	merged := make([]int, 0, len(t.nodes[p].children)-1+len(t.nodes[idx].children))
	merged = append(merged, t.nodes[p].children[:pos]...)
	merged = append(merged, t.nodes[idx].children...)
	merged = append(merged, t.nodes[p].children[pos+1:]...)
	t.nodes[p].children = merged
	for _, c := range t.nodes[idx].children {
		t.nodes[c].parent = p
	}
	t.nodes[idx].children = nil
	t.nodes[idx].parent = -1
	return true
}
