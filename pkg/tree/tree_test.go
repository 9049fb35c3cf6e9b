package tree

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCaterpillar_Structure(t *testing.T) {
	tests := []struct {
		numLeaves int
		want      string
		wantLen   int
	}{
		{1, "0()", 1},
		{2, "0(1(), 2())", 3},
		{3, "0(1(), 2(3(), 4()))", 5},
		{4, "0(1(), 2(3(), 4(5(), 6())))", 7},
	}
	for _, tt := range tests {
		tr, err := Caterpillar(tt.numLeaves)
		if err != nil {
			t.Fatalf("Caterpillar(%d): %v", tt.numLeaves, err)
		}
		if got := tr.String(); got != tt.want {
			t.Errorf("Caterpillar(%d) = %s, want %s", tt.numLeaves, got, tt.want)
		}
		if got := tr.Len(); got != tt.wantLen {
			t.Errorf("Caterpillar(%d) has %d nodes, want %d", tt.numLeaves, got, tt.wantLen)
		}
		if got := tr.NumLeaves(); got != tt.numLeaves {
			t.Errorf("Caterpillar(%d) has %d leaves", tt.numLeaves, got)
		}
		if !tr.IsSchroeder() {
			t.Errorf("Caterpillar(%d) is not a Schröder tree", tt.numLeaves)
		}
	}
}

func TestBalanced_Structure(t *testing.T) {
	tests := []struct {
		numLeaves int
		want      string
	}{
		{1, "0()"},
		{2, "0(1(), 2())"},
		{3, "0(1(3(), 4()), 2())"},
		{4, "0(1(3(), 4()), 2(5(), 6()))"},
	}
	for _, tt := range tests {
		tr, err := Balanced(tt.numLeaves)
		if err != nil {
			t.Fatalf("Balanced(%d): %v", tt.numLeaves, err)
		}
		if got := tr.String(); got != tt.want {
			t.Errorf("Balanced(%d) = %s, want %s", tt.numLeaves, got, tt.want)
		}
		if got := tr.NumLeaves(); got != tt.numLeaves {
			t.Errorf("Balanced(%d) has %d leaves", tt.numLeaves, got)
		}
		if !tr.IsSchroeder() {
			t.Errorf("Balanced(%d) is not a Schröder tree", tt.numLeaves)
		}
	}
}

func TestBuilders_LeafCounts(t *testing.T) {
	for n := 1; n <= 12; n++ {
		cat, err := Caterpillar(n)
		if err != nil {
			t.Fatalf("Caterpillar(%d): %v", n, err)
		}
		bal, err := Balanced(n)
		if err != nil {
			t.Fatalf("Balanced(%d): %v", n, err)
		}
		if cat.NumLeaves() != n || bal.NumLeaves() != n {
			t.Errorf("n=%d: got %d caterpillar and %d balanced leaves", n, cat.NumLeaves(), bal.NumLeaves())
		}
		wantInternal := n - 1
		if n == 1 {
			wantInternal = 0
		}
		if cat.NumInternal() != wantInternal {
			t.Errorf("Caterpillar(%d) has %d internal nodes, want %d", n, cat.NumInternal(), wantInternal)
		}
		if bal.NumInternal() != wantInternal {
			t.Errorf("Balanced(%d) has %d internal nodes, want %d", n, bal.NumInternal(), wantInternal)
		}
	}
}

func TestBuilders_RejectBadLeafCount(t *testing.T) {
	for _, n := range []int{0, -1, -10} {
		if _, err := Caterpillar(n); !errors.Is(err, ErrLeafCount) {
			t.Errorf("Caterpillar(%d) error = %v, want ErrLeafCount", n, err)
		}
		if _, err := Balanced(n); !errors.Is(err, ErrLeafCount) {
			t.Errorf("Balanced(%d) error = %v, want ErrLeafCount", n, err)
		}
	}
}

func TestTree_StringElidesSingleChild(t *testing.T) {
	tr := singleNode()
	a := tr.add(1)
	tr.attach(tr.root, a)
	b := tr.add(2)
	tr.attach(a, b)
	c := tr.add(3)
	tr.attach(a, c)

	if got := tr.String(); got != "1(2(), 3())" {
		t.Errorf("String() = %s, want 1(2(), 3())", got)
	}
	if tr.IsSchroeder() {
		t.Error("tree with a single-child node should not be Schröder")
	}
	if got := tr.NumInternal(); got != 2 {
		t.Errorf("NumInternal() = %d, want 2", got)
	}
}

func TestTree_ShapeStringIsOrderSensitive(t *testing.T) {
	left := singleNode()
	inner := left.add(1)
	left.attach(left.root, inner)
	left.attach(inner, left.add(2))
	left.attach(inner, left.add(3))
	left.attach(left.root, left.add(4))

	right := singleNode()
	right.attach(right.root, right.add(4))
	inner = right.add(1)
	right.attach(right.root, inner)
	right.attach(inner, right.add(2))
	right.attach(inner, right.add(3))

	ls, rs := left.ShapeString(), right.ShapeString()
	if ls != "2(2(_, _), _)" {
		t.Errorf("left shape = %s, want 2(2(_, _), _)", ls)
	}
	if rs != "2(_, 2(_, _))" {
		t.Errorf("right shape = %s, want 2(_, 2(_, _))", rs)
	}
	if ls == rs {
		t.Error("mirrored trees must have distinct shape strings")
	}
	if left.ShapeHash() != right.ShapeHash() {
		t.Error("mirrored trees must have equal shape hashes")
	}
}

func TestTree_ShapeHashSeparatesShapes(t *testing.T) {
	flat, err := All(3, 1)
	if err != nil {
		t.Fatal(err)
	}
	cat, err := Caterpillar(3)
	if err != nil {
		t.Fatal(err)
	}
	if flat[0].ShapeHash() == cat.ShapeHash() {
		t.Error("distinct shapes should hash differently")
	}
}

func TestTree_RenameFrontier(t *testing.T) {
	tr, err := Caterpillar(4)
	if err != nil {
		t.Fatal(err)
	}
	leafLabels := func() []int {
		var out []int
		for _, idx := range tr.Leaves() {
			out = append(out, tr.Label(idx))
		}
		return out
	}

	if diff := cmp.Diff([]int{1, 3, 5, 6}, leafLabels()); diff != "" {
		t.Fatalf("initial frontier mismatch (-want +got):\n%s", diff)
	}

	if err := tr.RenameFrontier(nil); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3}, leafLabels()); diff != "" {
		t.Errorf("default rename mismatch (-want +got):\n%s", diff)
	}

	if err := tr.RenameFrontier([]int{9, 8, 7, 6}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{9, 8, 7, 6}, leafLabels()); diff != "" {
		t.Errorf("explicit rename mismatch (-want +got):\n%s", diff)
	}

	if err := tr.RenameFrontier([]int{1, 2}); !errors.Is(err, ErrFrontierSize) {
		t.Errorf("short rename error = %v, want ErrFrontierSize", err)
	}
	if diff := cmp.Diff([]int{9, 8, 7, 6}, leafLabels()); diff != "" {
		t.Errorf("failed rename must not change labels (-want +got):\n%s", diff)
	}
}

func TestTree_MergeWithParent(t *testing.T) {
	tr := singleNode()
	a := tr.add(1)
	tr.attach(tr.root, a)
	tr.attach(a, tr.add(2))
	tr.attach(a, tr.add(3))
	tr.attach(tr.root, tr.add(4))

	if !tr.MergeWithParent(1) {
		t.Fatal("merge of internal node should succeed")
	}
	if got := tr.String(); got != "0(2(), 3(), 4())" {
		t.Errorf("after merge String() = %s, want 0(2(), 3(), 4())", got)
	}
	if got := tr.Len(); got != 4 {
		t.Errorf("after merge Len() = %d, want 4", got)
	}

	if tr.MergeWithParent(0) {
		t.Error("merging the root should report false")
	}
	if tr.MergeWithParent(99) {
		t.Error("merging an unknown label should report false")
	}
}

func TestTree_MergePreservesChildOrder(t *testing.T) {
	tr := singleNode()
	tr.attach(tr.root, tr.add(1))
	mid := tr.add(2)
	tr.attach(tr.root, mid)
	tr.attach(mid, tr.add(3))
	tr.attach(mid, tr.add(4))
	tr.attach(tr.root, tr.add(5))

	tr.MergeWithParent(2)
	if got := tr.String(); got != "0(1(), 3(), 4(), 5())" {
		t.Errorf("String() = %s, want 0(1(), 3(), 4(), 5())", got)
	}
}

func TestTree_Clone(t *testing.T) {
	orig, err := Caterpillar(5)
	if err != nil {
		t.Fatal(err)
	}
	before := orig.String()

	clone := orig.Clone()
	if clone.String() != before {
		t.Fatalf("clone renders %s, want %s", clone.String(), before)
	}
	if clone.ShapeHash() != orig.ShapeHash() {
		t.Error("clone must share the original's shape hash")
	}

	if err := clone.RenameFrontier(nil); err != nil {
		t.Fatal(err)
	}
	if orig.String() != before {
		t.Errorf("mutating the clone changed the original: %s", orig.String())
	}
	if clone.String() == before {
		t.Error("rename on the clone had no effect")
	}
	if clone.ShapeHash() != orig.ShapeHash() {
		t.Error("relabelling must not change the shape hash")
	}
}

func TestTree_Find(t *testing.T) {
	tr, err := Caterpillar(3)
	if err != nil {
		t.Fatal(err)
	}
	idx := tr.Find(3)
	if idx < 0 || tr.Label(idx) != 3 {
		t.Errorf("Find(3) = %d", idx)
	}
	if got := tr.Find(99); got != -1 {
		t.Errorf("Find(99) = %d, want -1", got)
	}
}

func TestTree_FindReturnsFirstInPreorder(t *testing.T) {
	tr := singleNode()
	first := tr.add(7)
	tr.attach(tr.root, first)
	tr.attach(tr.root, tr.add(7))

	if got := tr.Find(7); got != first {
		t.Errorf("Find(7) = %d, want leftmost occurrence %d", got, first)
	}
}

func TestTree_LeavesInOrder(t *testing.T) {
	tr, err := Balanced(4)
	if err != nil {
		t.Fatal(err)
	}
	var labels []int
	for _, idx := range tr.Leaves() {
		labels = append(labels, tr.Label(idx))
	}
	if diff := cmp.Diff([]int{3, 4, 5, 6}, labels); diff != "" {
		t.Errorf("frontier order mismatch (-want +got):\n%s", diff)
	}
}

func TestTree_InternalNodesInPreorder(t *testing.T) {
	tr, err := Caterpillar(4)
	if err != nil {
		t.Fatal(err)
	}
	var labels []int
	for _, idx := range tr.InternalNodes() {
		labels = append(labels, tr.Label(idx))
	}
	if diff := cmp.Diff([]int{0, 2, 4}, labels); diff != "" {
		t.Errorf("internal node order mismatch (-want +got):\n%s", diff)
	}
}

func TestTree_ReverseFlags(t *testing.T) {
	tr, err := Balanced(4)
	if err != nil {
		t.Fatal(err)
	}
	internal := tr.InternalNodes()
	for _, idx := range internal {
		tr.SetReverse(idx, true)
	}
	for _, idx := range internal {
		if !tr.Reverse(idx) {
			t.Fatalf("node %d flag not set", idx)
		}
	}
	tr.ClearReverse()
	for _, idx := range internal {
		if tr.Reverse(idx) {
			t.Errorf("node %d flag survived ClearReverse", idx)
		}
	}
}

func TestTree_ParentChildWiring(t *testing.T) {
	tr, err := Balanced(4)
	if err != nil {
		t.Fatal(err)
	}
	if got := tr.Parent(tr.Root()); got != -1 {
		t.Errorf("root parent = %d, want -1", got)
	}
	for _, idx := range tr.InternalNodes() {
		for _, c := range tr.Children(idx) {
			if tr.Parent(c) != idx {
				t.Errorf("child %d has parent %d, want %d", c, tr.Parent(c), idx)
			}
		}
	}
	for _, idx := range tr.Leaves() {
		if !tr.IsLeaf(idx) {
			t.Errorf("node %d reported by Leaves but not IsLeaf", idx)
		}
	}
}
