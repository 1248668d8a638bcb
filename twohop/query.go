package twohop

import "math"

// Query returns d_G(u,v) via the 2-hop oracle: the minimum, over every
// pivot o common to L(u) and L(v), of L(u,o)+L(v,o). Returns +Inf if u and
// v share no pivot (including when either is absent from the index).
//
// Complexity: O(min(|L(u)|, |L(v)|)), via a hash-join over the smaller
// label set (§4.3: "a merge-style intersection ... or a hash-join over the
// smaller label set").
func (idx *Index) Query(u, v int64) float64 {
	lu, lv := idx.byPivot[u], idx.byPivot[v]
	if len(lu) == 0 || len(lv) == 0 {
		return math.Inf(1)
	}
	if len(lv) < len(lu) {
		lu, lv = lv, lu
	}

	best := math.Inf(1)
	for pivot, du := range lu {
		if dv, ok := lv[pivot]; ok {
			if sum := du + dv; sum < best {
				best = sum
			}
		}
	}

	return best
}
