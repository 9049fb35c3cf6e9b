package profiles

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// GSNode is one node of a group-separable decomposition: the candidate set
// it covers and the sub-clusters it splits into. Leaves have no children.
type GSNode struct {
	Cands    []int
	Children []*GSNode
}

// String renders the decomposition by candidate-set sizes, with child
// renderings sorted, e.g. "4(2(), 2())". Two decompositions with the same
// cluster sizes render identically regardless of candidate names.
func (n *GSNode) String() string {
	subs := make([]string, len(n.Children))
	for i, c := range n.Children {
		subs[i] = c.String()
	}
	slices.Sort(subs)
	return strconv.Itoa(len(n.Cands)) + "(" + strings.Join(subs, ", ") + ")"
}

// GSStructure computes the group-separable decomposition of a profile. Each
// candidate cluster is split at the longest prefix, in first-vote order,
// that every voter ranks entirely above or entirely below the remainder.
// Profiles admitting no such split return [ErrNotGroupSeparable].
func GSStructure(profile [][]int) (*GSNode, error) {
	if len(profile) == 0 {
		return nil, fmt.Errorf("%w: empty profile", ErrProfileShape)
	}
	for _, row := range profile {
		if len(row) != len(profile[0]) {
			return nil, fmt.Errorf("%w: rankings have different lengths", ErrProfileShape)
		}
	}
	root := &GSNode{Cands: slices.Clone(profile[0])}
	if err := gsSplit(profile, profile[0], root); err != nil {
		return nil, err
	}
	return root, nil
}

func gsSplit(profile [][]int, cands []int, node *GSNode) error {
	if len(cands) < 2 {
		return nil
	}
	if len(cands) == 2 {
		node.Children = append(node.Children, &GSNode{Cands: slices.Clone(cands)})
		return nil
	}
	inCands := intSet(cands)
	for j := len(cands) - 1; j >= 1; j-- {
		inSub := intSet(cands[:j])
		separate, allSubAbove, allSubBelow := true, true, true
		for _, rank := range profile {
			above, below, constrained := rankSplit(rank, inSub, inCands)
			if !constrained {
				continue
			}
			if above {
				allSubBelow = false
			}
			if below {
				allSubAbove = false
			}
			if !above && !below {
				separate = false
				break
			}
		}
		if !separate {
			continue
		}
		// The full prefix separating in a single shared direction means the
		// cluster has no finer structure.
		if j == len(cands)-1 && (allSubBelow || allSubAbove) {
			node.Children = append(node.Children, &GSNode{Cands: slices.Clone(cands)})
			return nil
		}
		left := &GSNode{Cands: slices.Clone(cands[:j])}
		node.Children = append(node.Children, left)
		if err := gsSplit(profile, cands[:j], left); err != nil {
			return err
		}
		right := &GSNode{Cands: slices.Clone(cands[j:])}
		node.Children = append(node.Children, right)
		return gsSplit(profile, cands[j:], right)
	}
	return ErrNotGroupSeparable
}

// rankSplit reports how one vote places the candidates of inSub against the
// other members of inCands: entirely above, entirely below, or neither.
// Votes featuring only one side report constrained false.
func rankSplit(rank []int, inSub, inCands map[int]struct{}) (above, below, constrained bool) {
	subMin, subMax := len(rank), -1
	outMin, outMax := len(rank), -1
	for i, c := range rank {
		if _, ok := inSub[c]; ok {
			if i < subMin {
				subMin = i
			}
			if i > subMax {
				subMax = i
			}
		} else if _, ok := inCands[c]; ok {
			if i < outMin {
				outMin = i
			}
			if i > outMax {
				outMax = i
			}
		}
	}
	if subMax < 0 || outMax < 0 {
		return false, false, false
	}
	return subMax < outMin, subMin > outMax, true
}

func intSet(s []int) map[int]struct{} {
	set := make(map[int]struct{}, len(s))
	for _, v := range s {
		set[v] = struct{}{}
	}
	return set
}

// AllGroupSeparableProfiles returns the group-separable profiles among the
// given ones: the profiles in which every candidate subset with proper
// subsets admits one that all voters rank entirely above or entirely below
// the rest of the subset. With nil profiles every profile from
// [AllProfiles] is considered.
func AllGroupSeparableProfiles(numVoters, numCandidates int, profiles [][][]int) [][][]int {
	if profiles == nil {
		profiles = AllProfiles(numVoters, numCandidates)
	}
	axis := make([]int, numCandidates)
	for i := range axis {
		axis[i] = i
	}
	var res [][][]int
	for _, profile := range profiles {
		if groupSeparable(profile, axis) {
			res = append(res, profile)
		}
	}
	return res
}

func groupSeparable(profile [][]int, axis []int) bool {
	for _, cands := range Powerset(axis, 1) {
		proper := ProperPowerset(cands, 1)
		if len(proper) == 0 {
			continue
		}
		inCands := intSet(cands)
		found := false
		for _, subcands := range proper {
			if votersSeparate(profile, intSet(subcands), inCands) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// votersSeparate reports whether every voter ranks the inSub candidates
// entirely above or entirely below the other members of inCands.
func votersSeparate(profile [][]int, inSub, inCands map[int]struct{}) bool {
	for _, rank := range profile {
		above, below, constrained := rankSplit(rank, inSub, inCands)
		if constrained && !above && !below {
			return false
		}
	}
	return true
}

// AllGSStructures returns the distinct decomposition renderings of the
// given group-separable profiles, in first-seen order. With nil profiles
// those from [AllGroupSeparableProfiles] are used. A profile that is not
// group-separable surfaces as an error.
func AllGSStructures(numVoters, numCandidates int, gsProfiles [][][]int) ([]string, error) {
	if gsProfiles == nil {
		gsProfiles = AllGroupSeparableProfiles(numVoters, numCandidates, nil)
	}
	seen := make(map[string]struct{})
	var out []string
	for _, profile := range gsProfiles {
		node, err := GSStructure(profile)
		if err != nil {
			return nil, err
		}
		s := node.String()
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out, nil
}
