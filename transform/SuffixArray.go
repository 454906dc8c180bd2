/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package transform

import "sort"

// BuildSuffixArray returns a 1-indexed permutation SA of {1, ..., n} (n =
// len(text)) such that the suffix starting at SA[k]-1 (0-indexed) is the
// k-th smallest in lexicographic order (spec section 4.3).
//
// Comparisons use plain byte lexicographic order. The sentinel '$'
// (0x24) compares less than every other symbol admitted by the alphabet
// because it is numerically the smallest byte value in range, so no
// special-casing is needed in the comparator.
//
// This is the naive O(n^2 log n) construction the spec explicitly
// tolerates at the budgeted input sizes: building every suffix as an
// index is free (a Go slice expression does not copy), but each of the
// O(n log n) comparisons the sort performs may itself walk up to n bytes,
// which is where the quadratic term comes from. progress, if non-nil, is
// invoked periodically with (comparisons done, comparisons expected) so a
// caller can drive a progress indicator; it may be called from within
// sort.Slice's comparator and must not block.
func BuildSuffixArray(text []byte, progress func(done, total int)) []int {
	n := len(text)
	sa := make([]int, n)

	for i := range sa {
		sa[i] = i
	}

	// sort.Slice is not guaranteed O(n log n) comparisons in the worst
	// case, but for the text sizes this format targets it is the
	// idiomatic choice over hand-rolling a sort.
	total := EstimateComparisons(n)

	done := 0

	sort.Slice(sa, func(i, j int) bool {
		done++

		if progress != nil && total > 0 && done%256 == 0 {
			progress(done, total)
		}

		return lessSuffix(text, sa[i], sa[j])
	})

	if progress != nil {
		progress(total, total)
	}

	out := make([]int, n)
	for k, idx := range sa {
		out[k] = idx + 1 // convert to the 1-indexed wire convention
	}

	return out
}

// EstimateComparisons returns the n*log2(n) comparison-count estimate
// BuildSuffixArray uses as its progress total, exposed so a caller can
// size a progress bar before construction starts.
func EstimateComparisons(n int) int {
	if n <= 1 {
		return 0
	}

	lg := 0
	for m := n; m > 1; m >>= 1 {
		lg++
	}

	return n * lg
}

// lessSuffix reports whether the suffix of text starting at i sorts
// before the suffix starting at j, using plain byte lexicographic order.
func lessSuffix(text []byte, i, j int) bool {
	a := text[i:]
	b := text[j:]
	n := len(a)

	if len(b) < n {
		n = len(b)
	}

	for k := 0; k < n; k++ {
		if a[k] != b[k] {
			return a[k] < b[k]
		}
	}

	return len(a) < len(b)
}
