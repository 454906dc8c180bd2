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

// Run is a maximal run of one repeated symbol in a BWT buffer.
type Run struct {
	Symbol byte
	Length int
}

// SplitRuns walks bwt left to right and accumulates maximal runs of
// equal symbols, flushing each run as soon as a boundary is found and
// flushing the trailing run unconditionally once the loop ends. The
// comparison-then-flush shape mirrors the reference implementation's
// message() loop exactly, including its treatment of a length-1 input
// (no comparisons run, the single byte flushes as its own one-element
// run after the loop) and of a single all-repeated-symbol input (the
// loop never flushes, so the whole buffer is one run flushed once,
// after the loop exits).
func SplitRuns(bwt []byte) []Run {
	if len(bwt) == 0 {
		return nil
	}

	var runs []Run
	counter := 1

	for i := 0; i < len(bwt)-1; i++ {
		if bwt[i] == bwt[i+1] {
			counter++
			continue
		}

		runs = append(runs, Run{Symbol: bwt[i], Length: counter})
		counter = 1
	}

	runs = append(runs, Run{Symbol: bwt[len(bwt)-1], Length: counter})
	return runs
}

// JoinRuns is the inverse of SplitRuns: it expands each run back into
// its repeated symbols, in order, appending the result to dst.
func JoinRuns(dst []byte, runs []Run) []byte {
	for _, r := range runs {
		for i := 0; i < r.Length; i++ {
			dst = append(dst, r.Symbol)
		}
	}

	return dst
}
