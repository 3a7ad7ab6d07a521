package match

// sequenceRatio measures character-level alignment between a and b as a
// ratio in [0,1]: twice the summed size of all matching blocks divided by
// the combined length. Identical strings score 1.0, disjoint strings score
// near 0.0. Two empty strings score 1.0.
func sequenceRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}
	return 2.0 * float64(matchingSize(ra, rb)) / float64(total)
}

type span struct{ alo, ahi, blo, bhi int }

// matchingSize sums the sizes of maximal matching blocks: find the longest
// common block, then recurse into the pieces to its left and right.
func matchingSize(a, b []rune) int {
	// positions of each rune in b, ascending
	b2j := make(map[rune][]int, len(b))
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}

	matched := 0
	stack := []span{{0, len(a), 0, len(b)}}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		i, j, k := longestMatch(a, b2j, s.alo, s.ahi, s.blo, s.bhi)
		if k == 0 {
			continue
		}
		matched += k
		stack = append(stack,
			span{s.alo, i, s.blo, j},
			span{i + k, s.ahi, j + k, s.bhi},
		)
	}

	return matched
}

// longestMatch finds the longest block a[i:i+k] == b[j:j+k] within
// a[alo:ahi] and b[blo:bhi]. Ties resolve to the block starting earliest
// in a, then earliest in b.
func longestMatch(a []rune, b2j map[rune][]int, alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	besti, bestj = alo, blo

	// j2len[j] is the length of the matching run ending at a[i-1], b[j].
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int, len(j2len))
		for _, j := range b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}

	return besti, bestj, bestsize
}
