package profiles

// IsSingleCrossing reports whether the profile is single-crossing in its
// given voter order: along the sequence of votes, every pair of candidates
// changes relative order at most once.
func IsSingleCrossing(profile [][]int) bool {
	if len(profile) == 0 {
		return true
	}
	positions := make([]map[int]int, len(profile))
	for i, vote := range profile {
		positions[i] = make(map[int]int, len(vote))
		for p, c := range vote {
			positions[i][c] = p
		}
	}
	first := profile[0]
	for i, cand1 := range first {
		for _, cand2 := range first[i+1:] {
			cand1Over := true
			for _, pos := range positions {
				if pos[cand1] < pos[cand2] && !cand1Over {
					return false
				}
				if pos[cand1] > pos[cand2] {
					cand1Over = false
				}
			}
		}
	}
	return true
}

// AllSingleCrossingProfiles returns the single-crossing profiles among the
// given ones. With fixOrder only the given voter order is tested; otherwise
// a profile qualifies when some reordering of its voters is single-crossing,
// and the profile is kept in its original order. With nil profiles every
// profile from [AllProfiles] is considered.
func AllSingleCrossingProfiles(numVoters, numCandidates int, profiles [][][]int, fixOrder bool) [][][]int {
	if profiles == nil {
		profiles = AllProfiles(numVoters, numCandidates)
	}
	var res [][][]int
	for _, profile := range profiles {
		if fixOrder {
			if IsSingleCrossing(profile) {
				res = append(res, profile)
			}
			continue
		}
		idx := make([]int, len(profile))
		for i := range idx {
			idx[i] = i
		}
		reordered := make([][]int, len(profile))
		for {
			for i, j := range idx {
				reordered[i] = profile[j]
			}
			if IsSingleCrossing(reordered) {
				res = append(res, profile)
				break
			}
			if !nextPermutation(idx) {
				break
			}
		}
	}
	return res
}
