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

package entropy

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nathanfrederickk/bwt-zip/bitstream"
	"github.com/nathanfrederickk/bwt-zip/internal"
)

func freqsOf(block []byte) []int {
	freqs := make([]int, internal.AlphabetLen)

	for _, b := range block {
		freqs[b-internal.AlphabetMin]++
	}

	return freqs
}

func TestBuildCodesRejectsEmptyAlphabet(t *testing.T) {
	_, err := BuildCodes(make([]int, internal.AlphabetLen))
	require.ErrorIs(t, err, ErrEmptyAlphabet)
}

func TestBuildCodesSingleSymbol(t *testing.T) {
	freqs := freqsOf([]byte("aaaa"))
	codes, err := BuildCodes(freqs)
	require.NoError(t, err)
	require.Len(t, codes, 1)
	require.Equal(t, byte('a'), codes[0].Symbol)
	require.Equal(t, "0", codes[0].Bits)
}

func TestBuildCodesProducesPrefixFreeCodes(t *testing.T) {
	freqs := freqsOf([]byte("the quick brown fox jumps over the lazy dog$"))
	codes, err := BuildCodes(freqs)
	require.NoError(t, err)
	require.Greater(t, len(codes), 1)

	for i := range codes {
		for j := range codes {
			if i == j {
				continue
			}

			require.Falsef(t, strings.HasPrefix(codes[j].Bits, codes[i].Bits),
				"code %q for %q is a prefix of code %q for %q", codes[i].Bits, codes[i].Symbol, codes[j].Bits, codes[j].Symbol)
		}
	}
}

func TestHuffmanRoundTripSingleRun(t *testing.T) {
	codes, err := BuildCodes(freqsOf([]byte("aaaa")))
	require.NoError(t, err)

	w := bitstream.NewBitWriter()
	enc, err := NewHuffmanEncoder(w, codes)
	require.NoError(t, err)
	require.NoError(t, enc.EncodeRun('a', 4))

	r := bitstream.NewBitReader(w.Finish())
	dec, err := NewHuffmanDecoder(r, codes)
	require.NoError(t, err)

	symbol, runLength, err := dec.DecodeRun()
	require.NoError(t, err)
	require.Equal(t, byte('a'), symbol)
	require.Equal(t, 4, runLength)
}

func TestHuffmanRoundTripManyRuns(t *testing.T) {
	type run struct {
		symbol byte
		length int
	}

	runs := []run{{'b', 3}, {'a', 1}, {'n', 2}, {'$', 1}}

	freqs := make([]int, internal.AlphabetLen)
	for _, r := range runs {
		freqs[r.symbol-internal.AlphabetMin] += r.length
	}

	codes, err := BuildCodes(freqs)
	require.NoError(t, err)

	w := bitstream.NewBitWriter()
	enc, err := NewHuffmanEncoder(w, codes)
	require.NoError(t, err)

	for _, r := range runs {
		require.NoError(t, enc.EncodeRun(r.symbol, r.length))
	}

	reader := bitstream.NewBitReader(w.Finish())
	dec, err := NewHuffmanDecoder(reader, codes)
	require.NoError(t, err)

	for _, want := range runs {
		symbol, length, err := dec.DecodeRun()
		require.NoError(t, err)
		require.Equal(t, want.symbol, symbol)
		require.Equal(t, want.length, length)
	}
}

func TestHuffmanEncoderRejectsUnknownSymbol(t *testing.T) {
	codes, err := BuildCodes(freqsOf([]byte("aaaa")))
	require.NoError(t, err)

	w := bitstream.NewBitWriter()
	enc, err := NewHuffmanEncoder(w, codes)
	require.NoError(t, err)
	require.Error(t, enc.EncodeRun('b', 1))
}

func TestHuffmanDecoderRejectsCodeThatExtendsPastLeaf(t *testing.T) {
	codes := []Code{{Symbol: 'a', Bits: "0"}, {Symbol: 'b', Bits: "00"}}
	_, err := NewHuffmanDecoder(bitstream.NewBitReader(nil), codes)
	require.Error(t, err)
}

func TestHuffmanDecoderRejectsCodeLandingOnOccupiedNode(t *testing.T) {
	codes := []Code{{Symbol: 'a', Bits: "01"}, {Symbol: 'b', Bits: "01"}}
	_, err := NewHuffmanDecoder(bitstream.NewBitReader(nil), codes)
	require.Error(t, err)
}

func TestHuffmanRandomAlphabetsRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	for trial := 0; trial < 100; trial++ {
		distinct := 1 + rng.Intn(internal.AlphabetLen)
		perm := rng.Perm(internal.AlphabetLen)[:distinct]

		freqs := make([]int, internal.AlphabetLen)
		for _, idx := range perm {
			freqs[idx] = 1 + rng.Intn(50)
		}

		codes, err := BuildCodes(freqs)
		require.NoError(t, err)

		var runs []Code
		for _, c := range codes {
			runs = append(runs, c)
		}

		w := bitstream.NewBitWriter()
		enc, err := NewHuffmanEncoder(w, codes)
		require.NoError(t, err)

		for _, c := range runs {
			require.NoError(t, enc.EncodeRun(c.Symbol, 1+rng.Intn(5)))
		}

		reader := bitstream.NewBitReader(w.Finish())
		dec, err := NewHuffmanDecoder(reader, codes)
		require.NoError(t, err)

		for range runs {
			_, _, err := dec.DecodeRun()
			require.NoError(t, err)
		}
	}
}
