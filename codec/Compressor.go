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
	"time"

	bwtzip "github.com/nathanfrederickk/bwt-zip"
	"github.com/nathanfrederickk/bwt-zip/bitstream"
	"github.com/nathanfrederickk/bwt-zip/entropy"
	"github.com/nathanfrederickk/bwt-zip/internal"
	"github.com/nathanfrederickk/bwt-zip/textsrc"
	"github.com/nathanfrederickk/bwt-zip/transform"
)

// Compressor turns admitted-alphabet text into the self-describing
// bitstream described by spec section 6's wire format. It carries no
// mutable state between calls to Compress; each call is independent.
type Compressor struct {
	listeners []bwtzip.Listener
}

// NewCompressor creates a Compressor with no listeners registered.
func NewCompressor() *Compressor {
	return &Compressor{}
}

// AddListener registers l to receive lifecycle events during Compress.
func (c *Compressor) AddListener(l bwtzip.Listener) {
	c.listeners = append(c.listeners, l)
}

func (c *Compressor) notify(evt *bwtzip.Event) {
	for _, l := range c.listeners {
		l.ProcessEvent(evt)
	}
}

// Compress validates text against the admitted alphabet, computes its
// Burrows-Wheeler transform, run-length- and Huffman-encodes the result,
// and returns the packed, byte-aligned artifact.
func (c *Compressor) Compress(text string) ([]byte, error) {
	c.notify(bwtzip.NewEvent(bwtzip.EvtCompressionStart, int64(len(text)), time.Time{}))

	if err := textsrc.ValidateAlphabet(text); err != nil {
		return nil, err
	}

	withSentinel := make([]byte, len(text)+1)
	copy(withSentinel, text)
	withSentinel[len(text)] = internal.Sentinel

	c.notify(bwtzip.NewEvent(bwtzip.EvtBeforeTransform, int64(len(withSentinel)), time.Time{}))

	progress := func(done, total int) {
		if total > 0 {
			c.notify(bwtzip.NewEvent(bwtzip.EvtSuffixArrayProgress, int64(done), time.Time{}))
		}
	}

	bwt, err := transform.Forward(withSentinel, progress)
	if err != nil {
		return nil, bwtzip.WrapCodecError(err, bwtzip.ErrInternal)
	}

	c.notify(bwtzip.NewEvent(bwtzip.EvtAfterTransform, int64(len(bwt)), time.Time{}))

	var freqs [internal.AlphabetLen]int
	if err := internal.ComputeHistogram(bwt, freqs[:]); err != nil {
		return nil, bwtzip.WrapCodecError(err, bwtzip.ErrInternal)
	}

	codes, err := entropy.BuildCodes(freqs[:])
	if err != nil {
		return nil, bwtzip.WrapCodecError(err, bwtzip.ErrInternal)
	}

	w := bitstream.NewBitWriter()

	if err := writeHeader(w, len(withSentinel), codes); err != nil {
		return nil, bwtzip.WrapCodecError(err, bwtzip.ErrInternal)
	}

	c.notify(bwtzip.NewEvent(bwtzip.EvtBeforeEntropy, int64(len(bwt)), time.Time{}))

	enc, err := entropy.NewHuffmanEncoder(w, codes)
	if err != nil {
		return nil, bwtzip.WrapCodecError(err, bwtzip.ErrInternal)
	}

	for _, run := range transform.SplitRuns(bwt) {
		if err := enc.EncodeRun(run.Symbol, run.Length); err != nil {
			return nil, bwtzip.WrapCodecError(err, bwtzip.ErrInternal)
		}
	}

	out := w.Finish()

	c.notify(bwtzip.NewEvent(bwtzip.EvtAfterEntropy, int64(len(out)), time.Time{}))
	c.notify(bwtzip.NewEvent(bwtzip.EvtCompressionEnd, int64(len(out)), time.Time{}))

	return out, nil
}
