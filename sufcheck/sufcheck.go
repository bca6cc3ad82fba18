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

// Package sufcheck verifies that a candidate suffix array is in fact the
// suffix array of its source string, in four increasingly expensive
// passes.
package sufcheck

import (
	"fmt"
	"time"

	root "github.com/y-256/libdivsufsort"
)

// Verify implements sufcheck(T, SA, n, verbose): it checks in order
// (1) argument validity, (2) that every SA[i] lies in [0,n), (3) that SA is
// ordered by first character, (4) a full LF-mapping round trip confirming
// total lexicographic order. It returns nil on success and one of
// root.ErrInvalidArguments / root.ErrCheckFailed on the first failing pass.
// If l is non-nil, it receives EVT_SUFCHECK_START on entry and
// EVT_SUFCHECK_END only when every pass succeeds.
func Verify(t []byte, sa []int, verbose bool, l root.Listener) error {
	n := len(t)

	if l != nil {
		l.ProcessEvent(root.NewEvent(root.EVT_SUFCHECK_START, int64(n), time.Time{}))
	}

	if sa == nil || len(sa) < n {
		report(verbose, -1, "Invalid arguments")
		return root.ErrInvalidArguments
	}

	if n == 0 {
		if l != nil {
			l.ProcessEvent(root.NewEvent(root.EVT_SUFCHECK_END, 0, time.Time{}))
		}

		return nil
	}

	// Range check: every SA[i] must lie in [0, n).
	for i := 0; i < n; i++ {
		if sa[i] < 0 || sa[i] >= n {
			report(verbose, -2, fmt.Sprintf("Out of range: SA[%d]=%d not in [0,%d)", i, sa[i], n))
			return root.ErrCheckFailed
		}
	}

	// First-character ordering: T[SA[i]] must be non-decreasing.
	for i := 1; i < n; i++ {
		if t[sa[i-1]] > t[sa[i]] {
			report(verbose, -3, fmt.Sprintf("Suffixes in wrong order: SA[%d]=%d, SA[%d]=%d", i-1, sa[i-1], i, sa[i]))
			return root.ErrCheckFailed
		}
	}

	// LF round trip. For every position p > 0, its byte-rotation
	// predecessor p-1 starts with c = T[p-1]; walking SA in rank order and
	// consuming each character's bucket front-to-back must land predecessor
	// p-1 exactly on the slot the bucket counter points to. This is the same
	// consistency the induced sort itself relies on, so it catches any
	// transposition or misplacement plain adjacency checks miss.
	//
	// A plain (unterminated) suffix array has no sentinel row for the empty
	// suffix, so position 0 has no predecessor and is skipped; the bucket
	// consumption that row would have contributed is instead primed by a
	// single virtual step for the last character of t, whose suffix is by
	// construction the first entry of its bucket.
	var c [256]int

	for i := 0; i < n; i++ {
		c[t[i]]++
	}

	sum := 0

	for i := 0; i < 256; i++ {
		cnt := c[i]
		c[i] = sum
		sum += cnt
	}

	c0 := t[n-1]

	if c[c0] >= n || sa[c[c0]] != n-1 {
		report(verbose, -4, fmt.Sprintf("Suffix in wrong position: SA[%d]=%d", c[c0], n-1))
		return root.ErrCheckFailed
	}

	c[c0]++

	for i := 0; i < n; i++ {
		p := sa[i]

		if p == 0 {
			continue
		}

		p--
		cc := t[p]
		rank := c[cc]

		if rank >= n || sa[rank] != p {
			report(verbose, -4, fmt.Sprintf("Suffix in wrong position: SA[%d]=%d", rank, p))
			return root.ErrCheckFailed
		}

		c[cc]++
	}

	if verbose {
		fmt.Printf("sufcheck: %d suffixes OK\n", n)
	}

	if l != nil {
		l.ProcessEvent(root.NewEvent(root.EVT_SUFCHECK_END, int64(n), time.Time{}))
	}

	return nil
}

func report(verbose bool, code int, msg string) {
	if verbose {
		fmt.Printf("sufcheck: error %d: %s\n", code, msg)
	}
}
