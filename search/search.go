/*
Copyright 2003-2008 Yuta Mori. Go port copyright 2011-2017 Frederic Langlet.
Licensed under the Apache License, Version 2.0 (the "License")
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package search locates a pattern (or a single byte) within a string given
// its suffix array, via a three-way binary search that narrows to the
// contiguous run of SA entries whose suffix carries the pattern as a
// prefix, without ever re-comparing a byte range twice.
package search

// compare compares P against the suffix of t starting at suf, resuming from
// the match-length already established by the caller (both sides agreed on
// that many leading bytes already). It returns the usual negative/zero/
// positive comparison result and, via match, the new common-prefix length.
func compare(t []byte, p []byte, suf int, match *int) int {
	tsize := len(t)
	psize := len(p)
	i := suf + *match
	j := *match
	r := 0

	for i < tsize && j < psize {
		r = int(t[i]) - int(p[j])

		if r != 0 {
			break
		}

		i++
		j++
	}

	*match = j

	if r == 0 {
		if j != psize {
			return -1
		}

		return 0
	}

	return r
}

func min(a, b int) int {
	if a < b {
		return a
	}

	return b
}

// Search implements sa_search(T, P, SA) -> (count, idx): idx is the rank of
// the leftmost occurrence of P in SA and count the number of occurrences.
// An empty pattern matches every suffix, returning (len(sa), 0). When P does
// not occur in T, count is 0 and idx is P's insertion rank into SA (the rank
// at which P would sort), except when T itself is empty, where idx is -1.
func Search(t []byte, p []byte, sa []int) (int, int) {
	if len(t) == 0 || len(sa) == 0 {
		return 0, -1
	}

	if len(p) == 0 {
		return len(sa), 0
	}

	var i, j, k int

	lmatch, rmatch := 0, 0
	size := len(sa)
	half := size >> 1

	for size > 0 {
		match := min(lmatch, rmatch)
		r := compare(t, p, sa[i+half], &match)

		if r < 0 {
			i += half + 1
			half -= boolToInt(size&1 == 0)
			lmatch = match
		} else if r > 0 {
			rmatch = match
		} else {
			lsize := half
			j = i
			rsize := size - half - 1
			k = i + half + 1

			llmatch, lrmatch := lmatch, match

			for h := lsize >> 1; lsize > 0; lsize, h = h, h>>1 {
				lm := min(llmatch, lrmatch)
				r := compare(t, p, sa[j+h], &lm)

				if r < 0 {
					j += h + 1
					h -= boolToInt(lsize&1 == 0)
					llmatch = lm
				} else {
					lrmatch = lm
				}
			}

			rlmatch, rrmatch := match, rmatch

			for h := rsize >> 1; rsize > 0; rsize, h = h, h>>1 {
				rm := min(rlmatch, rrmatch)
				r := compare(t, p, sa[k+h], &rm)

				if r <= 0 {
					k += h + 1
					h -= boolToInt(rsize&1 == 0)
					rlmatch = rm
				} else {
					rrmatch = rm
				}
			}

			break
		}

		size = half
		half >>= 1
	}

	if k-j > 0 {
		return k - j, j
	}

	return k - j, i
}

// SimpleSearch implements sa_simplesearch(T, SA, c) -> (count, idx): the
// same leftmost-run binary search as Search, specialized to a single byte.
// As with Search, a non-occurring c yields count == 0 and idx set to c's
// insertion rank into SA, except idx == -1 when T is empty.
func SimpleSearch(t []byte, sa []int, c byte) (int, int) {
	if len(t) == 0 || len(sa) == 0 {
		return 0, -1
	}

	var i, j, k int

	size := len(sa)
	half := size >> 1
	cc := int(c)

	for size > 0 {
		p := sa[i+half]
		r := charCompare(t, p, cc)

		if r < 0 {
			i += half + 1
			half -= boolToInt(size&1 == 0)
		} else if r == 0 {
			lsize := half
			j = i
			rsize := size - half - 1
			k = i + half + 1

			for h := lsize >> 1; lsize > 0; lsize, h = h, h>>1 {
				p := sa[j+h]

				if charCompare(t, p, cc) < 0 {
					j += h + 1
					h -= boolToInt(lsize&1 == 0)
				}
			}

			for h := rsize >> 1; rsize > 0; rsize, h = h, h>>1 {
				p := sa[k+h]

				if charCompare(t, p, cc) <= 0 {
					k += h + 1
					h -= boolToInt(rsize&1 == 0)
				}
			}

			break
		}

		size = half
		half >>= 1
	}

	if k-j > 0 {
		return k - j, j
	}

	return k - j, i
}

func charCompare(t []byte, pos int, c int) int {
	if pos < len(t) {
		return int(t[pos]) - c
	}

	return -1
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}
