package tree

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/matzehuels/prefsample/pkg/observability"
)

var samplers = []struct {
	name string
	fn   func(numLeaves, numInternal int, rng *rand.Rand) (*Tree, error)
}{
	{"schroeder", Schroeder},
	{"lescanne", SchroederLescanne},
	{"bruteforce", SchroederBruteForce},
}

func TestSamplers_ProduceValidTrees(t *testing.T) {
	for _, s := range samplers {
		t.Run(s.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(31))
			for n := 1; n <= 6; n++ {
				counts := []int{AnyInternal}
				for k := 1; k <= n-1; k++ {
					counts = append(counts, k)
				}
				for _, k := range counts {
					tr, err := s.fn(n, k, rng)
					if err != nil {
						t.Fatalf("(%d, %d): %v", n, k, err)
					}
					if got := tr.NumLeaves(); got != n {
						t.Errorf("(%d, %d): got %d leaves", n, k, got)
					}
					if !tr.IsSchroeder() {
						t.Errorf("(%d, %d): not a Schröder tree: %s", n, k, tr)
					}
					internal := tr.NumInternal()
					switch {
					case k != AnyInternal && internal != k:
						t.Errorf("(%d, %d): got %d internal nodes", n, k, internal)
					case k == AnyInternal && n > 1 && (internal < 1 || internal > n-1):
						t.Errorf("(%d, any): got %d internal nodes", n, internal)
					}
				}
			}
		})
	}
}

func TestSamplers_SingleLeaf(t *testing.T) {
	for _, s := range samplers {
		for _, k := range []int{0, AnyInternal} {
			rng := rand.New(rand.NewSource(1))
			tr, err := s.fn(1, k, rng)
			if err != nil {
				t.Fatalf("%s(1, %d): %v", s.name, k, err)
			}
			if tr.Len() != 1 || tr.String() != "0()" {
				t.Errorf("%s(1, %d) = %s", s.name, k, tr)
			}
		}
	}
}

func TestSamplers_DeterministicForSeed(t *testing.T) {
	for _, s := range samplers {
		a, err := s.fn(7, AnyInternal, rand.New(rand.NewSource(99)))
		if err != nil {
			t.Fatalf("%s: %v", s.name, err)
		}
		b, err := s.fn(7, AnyInternal, rand.New(rand.NewSource(99)))
		if err != nil {
			t.Fatalf("%s: %v", s.name, err)
		}
		if a.String() != b.String() {
			t.Errorf("%s: same seed gave %s and %s", s.name, a, b)
		}
	}
}

func TestSamplers_VaryAcrossDraws(t *testing.T) {
	for _, s := range samplers {
		rng := rand.New(rand.NewSource(5))
		shapes := make(map[string]struct{})
		for range 50 {
			tr, err := s.fn(7, AnyInternal, rng)
			if err != nil {
				t.Fatalf("%s: %v", s.name, err)
			}
			shapes[tr.ShapeString()] = struct{}{}
		}
		if len(shapes) < 2 {
			t.Errorf("%s: 50 draws produced a single shape", s.name)
		}
	}
}

func TestSamplers_RejectInvalidArguments(t *testing.T) {
	tests := []struct {
		numLeaves   int
		numInternal int
		want        error
	}{
		{0, AnyInternal, ErrLeafCount},
		{-2, 1, ErrLeafCount},
		{4, -2, ErrInternalCount},
		{4, 0, ErrInternalCount},
		{4, 4, ErrInternalCount},
		{2, 5, ErrInternalCount},
	}
	for _, s := range samplers {
		rng := rand.New(rand.NewSource(1))
		for _, tt := range tests {
			_, err := s.fn(tt.numLeaves, tt.numInternal, rng)
			if !errors.Is(err, tt.want) {
				t.Errorf("%s(%d, %d) error = %v, want %v", s.name, tt.numLeaves, tt.numInternal, err, tt.want)
			}
		}
		if _, err := s.fn(5, AnyInternal, nil); !errors.Is(err, ErrNilRand) {
			t.Errorf("%s with nil rng: error = %v, want ErrNilRand", s.name, err)
		}
		if _, err := s.fn(0, 1, nil); !errors.Is(err, ErrLeafCount) {
			t.Errorf("%s(0, 1) with nil rng: error = %v, want ErrLeafCount", s.name, err)
		}
	}
}

func TestSamplers_LeafLabelsArePermutation(t *testing.T) {
	for _, s := range samplers {
		t.Run(s.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(17))
			for range 25 {
				tr, err := s.fn(6, AnyInternal, rng)
				if err != nil {
					t.Fatal(err)
				}
				var labels []int
				for _, idx := range tr.Leaves() {
					labels = append(labels, tr.Label(idx))
				}
				slices.Sort(labels)
				for i, l := range labels {
					if l != i {
						t.Fatalf("leaf labels %v are not a permutation of 0..5", labels)
					}
				}
			}
		})
	}
}

func TestSchroeder_WordProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	parameters.SetSeed(1840)
	properties := gopter.NewProperties(parameters)

	properties.Property("rotated word encodes a single tree", prop.ForAll(
		func(numLeaves int, seed int64) bool {
			rng := rand.New(rand.NewSource(seed))
			numInternal := 1 + rng.Intn(numLeaves-1)
			rotated := rotateToRoot(schroederSequence(numLeaves, numInternal, rng))
			if !wordParses(rotated) {
				return false
			}
			tr := parseSequence(rotated)
			return tr.NumLeaves() == numLeaves &&
				tr.NumInternal() == numInternal &&
				tr.IsSchroeder()
		},
		gen.IntRange(2, 24),
		gen.Int64(),
	))

	properties.Property("sampled trees are Schröder", prop.ForAll(
		func(numLeaves int, seed int64) bool {
			rng := rand.New(rand.NewSource(seed))
			tr, err := Schroeder(numLeaves, AnyInternal, rng)
			if err != nil {
				return false
			}
			return tr.NumLeaves() == numLeaves && tr.IsSchroeder()
		},
		gen.IntRange(1, 40),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

// wordParses simulates the parse stack: every closing symbol must find a
// child and a parent, and exactly the root may remain at the end.
func wordParses(seq []schroederSym) bool {
	depth := 0
	for _, s := range seq {
		if s.node {
			depth++
			continue
		}
		if depth < 2 {
			return false
		}
		depth--
	}
	return depth == 1
}

func TestRandomComposition_SplitsTotal(t *testing.T) {
	tests := []struct {
		total int
		count int
	}{
		{0, 1},
		{0, 4},
		{2, 2},
		{5, 3},
		{7, 1},
	}
	rng := rand.New(rand.NewSource(23))
	for _, tt := range tests {
		for range 20 {
			parts := randomComposition(tt.total, tt.count, rng)
			if len(parts) != tt.count {
				t.Fatalf("randomComposition(%d, %d) has %d parts", tt.total, tt.count, len(parts))
			}
			sum := 0
			for _, p := range parts {
				if p < 0 {
					t.Fatalf("randomComposition(%d, %d) = %v has a negative part", tt.total, tt.count, parts)
				}
				sum += p
			}
			if sum != tt.total {
				t.Errorf("randomComposition(%d, %d) = %v sums to %d", tt.total, tt.count, parts, sum)
			}
		}
	}
}

func TestRandomComposition_UniformOverSplits(t *testing.T) {
	// Splitting 2 across 2 parts has three compositions; a draw weighted by
	// multinomial coefficients would hit (1,1) twice as often as the others.
	const draws = 6000
	rng := rand.New(rand.NewSource(29))
	counts := make(map[int]int)
	for range draws {
		parts := randomComposition(2, 2, rng)
		counts[parts[0]]++
	}
	if len(counts) != 3 {
		t.Fatalf("saw %d distinct splits, want 3", len(counts))
	}
	for first, got := range counts {
		if got < 1800 || got > 2200 {
			t.Errorf("split (%d,%d) drawn %d times, want about %d", first, 2-first, got, draws/3)
		}
	}
}

func TestSamplers_UniformOverTrees(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping chi-square test in short mode")
	}
	cases := []struct {
		name        string
		numLeaves   int
		numInternal int
		draws       int
	}{
		{"5-any", 5, AnyInternal, 9000},
		{"5-2", 5, 2, 6000},
		{"5-3", 5, 3, 6000},
	}
	for _, tc := range cases {
		all, err := All(tc.numLeaves, tc.numInternal)
		if err != nil {
			t.Fatal(err)
		}
		for _, s := range samplers {
			t.Run(s.name+"/"+tc.name, func(t *testing.T) {
				rng := rand.New(rand.NewSource(7))
				counts := make(map[string]int, len(all))
				for range tc.draws {
					tr, err := s.fn(tc.numLeaves, tc.numInternal, rng)
					if err != nil {
						t.Fatal(err)
					}
					counts[tr.ShapeString()]++
				}
				if len(counts) != len(all) {
					t.Fatalf("(%d, %d): saw %d distinct shapes, want %d",
						tc.numLeaves, tc.numInternal, len(counts), len(all))
				}
				expected := float64(tc.draws) / float64(len(all))
				chi2 := 0.0
				for _, tr := range all {
					d := float64(counts[tr.ShapeString()]) - expected
					chi2 += d * d / expected
				}
				// Loose threshold: flags structural bias, not sampling noise.
				dist := distuv.ChiSquared{K: float64(len(all) - 1)}
				if p := 1 - dist.CDF(chi2); p < 1e-6 {
					t.Errorf("(%d, %d): chi-square = %.1f, p = %g",
						tc.numLeaves, tc.numInternal, chi2, p)
				}
			})
		}
	}
}

type recordingHooks struct {
	sampled    int
	rejections int
}

func (h *recordingHooks) OnTreeSampled(string, int, int) { h.sampled++ }
func (h *recordingHooks) OnRejection(string, int)        { h.rejections++ }

func TestSchroederLescanne_ReportsRejections(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetSamplerHooks(hooks)
	t.Cleanup(observability.Reset)

	rng := rand.New(rand.NewSource(11))
	for range 20 {
		if _, err := SchroederLescanne(6, 3, rng); err != nil {
			t.Fatal(err)
		}
	}
	if hooks.sampled != 20 {
		t.Errorf("sampled hook fired %d times, want 20", hooks.sampled)
	}
	if hooks.rejections == 0 {
		t.Error("rejection sampling reported no rejections over 20 draws")
	}
}
