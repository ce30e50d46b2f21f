package mcda

import "sort"

// Scores is the raw output of an assessment method. Most methods produce a
// single component; some fuzzy variants produce several (for example the
// S, R and Q vectors of VIKOR), and the last component is the one reported.
type Scores [][]float64

// Single wraps a one-component result.
func Single(v []float64) Scores { return Scores{v} }

// Primary returns the reported component.
func (s Scores) Primary() []float64 {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

// RankDescending ranks alternatives so that the highest preference gets
// position 1. Ties share the average of the positions they span.
func RankDescending(pref []float64) []float64 {
	idx := make([]int, len(pref))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return pref[idx[a]] > pref[idx[b]] })

	ranks := make([]float64, len(pref))
	for start := 0; start < len(idx); {
		end := start + 1
		for end < len(idx) && pref[idx[end]] == pref[idx[start]] {
			end++
		}
		avg := float64(start+end+1) / 2
		for k := start; k < end; k++ {
			ranks[idx[k]] = avg
		}
		start = end
	}
	return ranks
}

// RankAscending is RankDescending for methods where lower scores win.
func RankAscending(pref []float64) []float64 {
	neg := make([]float64, len(pref))
	for i, v := range pref {
		neg[i] = -v
	}
	return RankDescending(neg)
}
