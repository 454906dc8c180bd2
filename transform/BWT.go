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

import (
	"errors"
	"fmt"

	"github.com/nathanfrederickk/bwt-zip/internal"
)

// The Burrows-Wheeler Transform is a reversible permutation of the input
// that groups similar contexts together, improving compressibility of
// whatever entropy coder runs over its output.

// The initial text can be found here:
// Burrows M and Wheeler D, [A block sorting lossless data compression algorithm]
// Technical Report 124, Digital Equipment Corporation, 1994

// E.G.    0123456
// Source: banana$
// Suffix  pos     Sorted suffix  pos   Sorted rotation
// banana$  1  ->  $               7    $banana
//  anana$  2  ->  a$              6    a$banan
//   nana$  3  ->  ana$            4    ana$ban
//    ana$  4  ->  anana$          2    anana$b
//     na$  5  ->  banana$         1    banana$
//      a$  6  ->  na$             5    na$bana
//       $  7  ->  nana$           3    nana$ba
// Suffix array SA (1-indexed) : 7 6 4 2 1 5 3
// BWT[k] = T[(SA[k] + n - 2) mod n] => BWT("banana$") = "annb$aa"
//
// This file implements Forward per spec section 4.4 directly off the
// suffix array built by SuffixArray.go, and Inverse via the LF-mapping
// described in the same section (no primary-index indirection, no
// chunking: the whole transform is a single pass over an in-memory
// buffer, per spec section 5).

// ErrNoSentinel is returned by Inverse when the input does not contain
// exactly one sentinel symbol, a structural corruption per spec section 9
// ("a malformed stream that decodes to a BWT lacking exactly one '$' must
// be rejected with DecodeStructural").
var ErrNoSentinel = errors.New("transform: bwt string must contain exactly one sentinel")

// Forward computes the Burrows-Wheeler Transform of textWithSentinel,
// which must already end in the sentinel '$' appended exactly once by the
// caller. progress, if non-nil, is forwarded to BuildSuffixArray to drive
// a progress indicator during suffix array construction, the only
// superlinear step in the pipeline.
func Forward(textWithSentinel []byte, progress func(done, total int)) ([]byte, error) {
	n := len(textWithSentinel)

	if n == 0 {
		return nil, errors.New("transform: input must contain at least the sentinel")
	}

	sa := BuildSuffixArray(textWithSentinel, progress)
	bwt := make([]byte, n)

	for k := 0; k < n; k++ {
		// SA[k] is 1-indexed; (SA[k] + n - 2) mod n converts it to the
		// 0-indexed position of the character preceding the rotation
		// that starts at SA[k]-1.
		bwt[k] = textWithSentinel[(sa[k]+n-2)%n]
	}

	return bwt, nil
}

// Inverse reconstructs the original text (sentinel stripped) from its
// Burrows-Wheeler Transform via LF-mapping, per spec section 4.4.
func Inverse(bwt []byte) ([]byte, error) {
	n := len(bwt)

	if n == 0 {
		return nil, ErrNoSentinel
	}

	sentinels := 0
	var counts [internal.AlphabetLen]int

	for _, b := range bwt {
		if int(b) < internal.AlphabetMin || int(b) > internal.AlphabetMax {
			return nil, fmt.Errorf("transform: byte 0x%02X outside the admitted alphabet", b)
		}

		if b == internal.Sentinel {
			sentinels++
		}

		counts[b-internal.AlphabetMin]++
	}

	if sentinels != 1 {
		return nil, ErrNoSentinel
	}

	// first_occurrence[c]: cumulative count of symbols smaller than c,
	// i.e. the index in the sorted BWT (the first column of the sorted
	// rotations) where c first appears.
	var firstOccurrence [internal.AlphabetLen]int
	sum := 0

	for c := 0; c < internal.AlphabetLen; c++ {
		firstOccurrence[c] = sum
		sum += counts[c]
	}

	// rank[k]: the 1-indexed occurrence count of bwt[k] within bwt[0..k].
	rank := make([]int, n)
	var seen [internal.AlphabetLen]int

	for k := 0; k < n; k++ {
		c := bwt[k] - internal.AlphabetMin
		seen[c]++
		rank[k] = seen[c]
	}

	out := make([]byte, n-1)
	k := 0

	// Row 0 is the row whose first character is the sentinel; its last
	// column, bwt[0], is the last character of the original text, so it
	// is written first, into out[n-2]. Walk backwards, writing right to left, until the sentinel
	// itself is reached as bwt[k].
	for i := n - 2; i >= 0; i-- {
		if bwt[k] == internal.Sentinel {
			break
		}

		out[i] = bwt[k]
		c := bwt[k] - internal.AlphabetMin
		k = firstOccurrence[c] + rank[k] - 1
	}

	// A genuine BWT output reaches the sentinel in exactly n-1 steps. If
	// the loop ran out of output slots first, the LF-chain never closed
	// and bwt is not a valid permutation of any rotation matrix.
	if bwt[k] != internal.Sentinel {
		return nil, fmt.Errorf("transform: %w: LF-mapping chain did not close at the sentinel", ErrNoSentinel)
	}

	return out, nil
}
