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

// Package codec orchestrates a full compress/decompress round trip out
// of the lower-level bitstream, elias, transform and entropy packages,
// per spec sections 4.6 and 4.7: header emission/parsing, payload
// emission/parsing, and the BWT forward/inverse calls that bookend them.
package codec

import (
	"fmt"

	bwtzip "github.com/nathanfrederickk/bwt-zip"
	"github.com/nathanfrederickk/bwt-zip/bitstream"
	"github.com/nathanfrederickk/bwt-zip/elias"
	"github.com/nathanfrederickk/bwt-zip/entropy"
	"github.com/nathanfrederickk/bwt-zip/internal"
)

const symbolBits = 7 // every admitted symbol fits [0x24, 0x7E] in 7 bits

// writeHeader emits Elias(n), Elias(u), then u repetitions of
// (7-bit symbol, Elias(code length), raw code bits), per spec section 4.6.
func writeHeader(w *bitstream.BitWriter, n int, codes []entropy.Code) error {
	if err := elias.Encode(w, uint64(n)); err != nil {
		return fmt.Errorf("codec: header: %w", err)
	}

	if err := elias.Encode(w, uint64(len(codes))); err != nil {
		return fmt.Errorf("codec: header: %w", err)
	}

	for _, c := range codes {
		w.WriteBits(uint64(c.Symbol), symbolBits)

		if err := elias.Encode(w, uint64(len(c.Bits))); err != nil {
			return fmt.Errorf("codec: header: %w", err)
		}

		w.WriteBitString(c.Bits)
	}

	return nil
}

// readHeader parses the header writeHeader produces, per spec section
// 4.7: n, then u, then u (symbol, code) pairs.
func readHeader(r *bitstream.BitReader) (n int, codes []entropy.Code, err error) {
	nv, err := elias.Decode(r)
	if err != nil {
		return 0, nil, wrapTruncated(err, "text length")
	}

	uv, err := elias.Decode(r)
	if err != nil {
		return 0, nil, wrapTruncated(err, "distinct symbol count")
	}

	codes = make([]entropy.Code, 0, uv)

	for i := uint64(0); i < uv; i++ {
		sym, err := r.ReadBits(symbolBits)
		if err != nil {
			return 0, nil, wrapTruncated(err, "symbol table entry")
		}

		if sym < internal.AlphabetMin || sym > internal.AlphabetMax {
			return 0, nil, bwtzip.NewCodecError(fmt.Sprintf("codec: header symbol 0x%02X outside the admitted alphabet", sym), bwtzip.ErrDecodeStructural)
		}

		codeLen, err := elias.Decode(r)
		if err != nil {
			return 0, nil, wrapTruncated(err, "huffman code length")
		}

		bits, err := readBitString(r, uint(codeLen))
		if err != nil {
			return 0, nil, wrapTruncated(err, "huffman code bits")
		}

		codes = append(codes, entropy.Code{Symbol: byte(sym), Bits: bits})
	}

	return int(nv), codes, nil
}

// readBitString reads count bits from r and renders them as a "0"/"1" string.
func readBitString(r *bitstream.BitReader, count uint) (string, error) {
	buf := make([]byte, count)

	for i := uint(0); i < count; i++ {
		bit, err := r.ReadBit()
		if err != nil {
			return "", err
		}

		if bit == 1 {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}

	return string(buf), nil
}

func wrapTruncated(err error, what string) error {
	return bwtzip.WrapCodecError(fmt.Errorf("codec: truncated while reading %s: %w", what, err), bwtzip.ErrDecodeTruncated)
}
