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

package codec

import (
	"errors"
	"fmt"
	"time"

	bwtzip "github.com/nathanfrederickk/bwt-zip"
	"github.com/nathanfrederickk/bwt-zip/bitstream"
	"github.com/nathanfrederickk/bwt-zip/entropy"
	"github.com/nathanfrederickk/bwt-zip/transform"
)

// Decompressor inverts the artifact a Compressor produces: header
// parse, Huffman trie rebuild, run-length payload parse, inverse BWT.
// Per spec section 4.7's state machine, any error along the way is
// terminal; Decompress never returns a partial string alongside an error.
type Decompressor struct {
	listeners []bwtzip.Listener
}

// NewDecompressor creates a Decompressor with no listeners registered.
func NewDecompressor() *Decompressor {
	return &Decompressor{}
}

// AddListener registers l to receive lifecycle events during Decompress.
func (d *Decompressor) AddListener(l bwtzip.Listener) {
	d.listeners = append(d.listeners, l)
}

func (d *Decompressor) notify(evt *bwtzip.Event) {
	for _, l := range d.listeners {
		l.ProcessEvent(evt)
	}
}

// Decompress parses data and returns the original text, sentinel
// stripped.
func (d *Decompressor) Decompress(data []byte) (string, error) {
	d.notify(bwtzip.NewEvent(bwtzip.EvtDecompressionStart, int64(len(data)), time.Time{}))

	r := bitstream.NewBitReader(data)

	n, codes, err := readHeader(r)
	if err != nil {
		return "", err
	}

	d.notify(bwtzip.NewEvent(bwtzip.EvtAfterHeaderDecoding, int64(n), time.Time{}))

	if len(codes) == 0 {
		if n > 0 {
			return "", bwtzip.NewCodecError("codec: empty huffman table with nonzero text length", bwtzip.ErrInternal)
		}

		return "", nil
	}

	dec, err := entropy.NewHuffmanDecoder(r, codes)
	if err != nil {
		return "", bwtzip.WrapCodecError(err, bwtzip.ErrDecodeStructural)
	}

	d.notify(bwtzip.NewEvent(bwtzip.EvtBeforeEntropy, int64(n), time.Time{}))

	var runs []transform.Run
	total := 0

	for total < n {
		symbol, runLength, err := dec.DecodeRun()

		if err != nil {
			var codecErr *bwtzip.CodecError
			if errors.As(err, &codecErr) {
				return "", err
			}

			if errors.Is(err, bitstream.ErrEndOfStream) {
				return "", bwtzip.WrapCodecError(fmt.Errorf("codec: truncated while decoding payload: %w", err), bwtzip.ErrDecodeTruncated)
			}

			return "", bwtzip.WrapCodecError(err, bwtzip.ErrInternal)
		}

		if runLength < 1 || total+runLength > n {
			return "", bwtzip.NewCodecError("codec: decoded symbol count disagrees with the declared text length", bwtzip.ErrDecodeStructural)
		}

		runs = append(runs, transform.Run{Symbol: symbol, Length: runLength})
		total += runLength
	}

	bwt := transform.JoinRuns(make([]byte, 0, n), runs)

	d.notify(bwtzip.NewEvent(bwtzip.EvtAfterEntropy, int64(len(bwt)), time.Time{}))
	d.notify(bwtzip.NewEvent(bwtzip.EvtBeforeTransform, int64(len(bwt)), time.Time{}))

	text, err := transform.Inverse(bwt)
	if err != nil {
		return "", bwtzip.WrapCodecError(err, bwtzip.ErrDecodeStructural)
	}

	d.notify(bwtzip.NewEvent(bwtzip.EvtAfterTransform, int64(len(text)), time.Time{}))
	d.notify(bwtzip.NewEvent(bwtzip.EvtDecompressionEnd, int64(len(text)), time.Time{}))

	return string(text), nil
}
