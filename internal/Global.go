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

// Package internal holds small helpers shared by the bwt-zip packages that
// do not belong in any single public package: the fixed alphabet bounds
// and the symbol frequency histogram used by both the Huffman builder and
// the compressor's header emission.
package internal

import "fmt"

// Alphabet bounds, per spec section 3: printable ASCII in [0x24, 0x7E],
// 91 symbols wide, with the sentinel '$' (0x24) the lowest-valued symbol.
const (
	AlphabetMin = 0x24
	AlphabetMax = 0x7E
	AlphabetLen = AlphabetMax - AlphabetMin + 1
	Sentinel    = byte(AlphabetMin)
)

// InAlphabet reports whether b is a valid input symbol, i.e. printable
// ASCII in [0x24, 0x7E] and not the reserved sentinel.
func InAlphabet(b byte) bool {
	return b >= AlphabetMin && b <= AlphabetMax && b != Sentinel
}

// ComputeHistogram counts occurrences of each symbol of block into freqs,
// a length-AlphabetLen array indexed by (byte - AlphabetMin). It mirrors
// the unrolled-by-4 scanning style kanzi-go's internal.ComputeHistogram
// uses for its order-0 byte histogram, simplified for a fixed, narrow
// alphabet and no running total slot.
func ComputeHistogram(block []byte, freqs []int) error {
	if len(freqs) != AlphabetLen {
		return fmt.Errorf("internal: frequency table must have length %d, got %d", AlphabetLen, len(freqs))
	}

	end4 := len(block) &^ 3

	for i := 0; i < end4; i += 4 {
		b0, b1, b2, b3 := block[i], block[i+1], block[i+2], block[i+3]

		if b0 < AlphabetMin || b0 > AlphabetMax || b1 < AlphabetMin || b1 > AlphabetMax ||
			b2 < AlphabetMin || b2 > AlphabetMax || b3 < AlphabetMin || b3 > AlphabetMax {
			return fmt.Errorf("internal: byte outside the admitted alphabet [0x%02X, 0x%02X]", AlphabetMin, AlphabetMax)
		}

		freqs[b0-AlphabetMin]++
		freqs[b1-AlphabetMin]++
		freqs[b2-AlphabetMin]++
		freqs[b3-AlphabetMin]++
	}

	for i := end4; i < len(block); i++ {
		b := block[i]

		if b < AlphabetMin || b > AlphabetMax {
			return fmt.Errorf("internal: byte outside the admitted alphabet [0x%02X, 0x%02X]", AlphabetMin, AlphabetMax)
		}

		freqs[b-AlphabetMin]++
	}

	return nil
}
