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

// Package entropy builds and applies the per-message, non-canonical
// Huffman code described in spec section 4.5: a fresh tree grown from
// this message's own symbol frequencies, with no chunking and no
// canonical re-ranking, its codes serialized verbatim into the header
// so the decoder can rebuild an equivalent trie regardless of how ties
// were broken while building it.
package entropy

import (
	"container/heap"
	"errors"
	"fmt"

	bwtzip "github.com/nathanfrederickk/bwt-zip"
	"github.com/nathanfrederickk/bwt-zip/bitstream"
	"github.com/nathanfrederickk/bwt-zip/elias"
	"github.com/nathanfrederickk/bwt-zip/internal"
)

// ErrEmptyAlphabet is returned by BuildCodes when every frequency is zero.
var ErrEmptyAlphabet = errors.New("entropy: huffman table requires at least one symbol")

// node is a node of the Huffman merge tree. Leaves carry a symbol;
// internal nodes only carry the combined frequency of their subtree.
type node struct {
	symbol      byte
	isLeaf      bool
	freq        int
	left, right *node
	seq         int // insertion order, breaks frequency ties deterministically
}

// nodeHeap is a min-priority queue ordered by frequency, then by
// insertion order so that equal-frequency nodes always resolve the
// same way for a given build (spec section 4.5's tie-breaking note:
// any total order is fine, but it must be total, not flaky).
type nodeHeap []*node

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*node)) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}

	return h[i].seq < h[j].seq
}

func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Code pairs a symbol with the prefix-free bit string ("0"/"1" runes)
// assigned to it by BuildCodes.
type Code struct {
	Symbol byte
	Bits   string
}

// BuildCodes grows a Huffman tree from freqs (a length-internal.AlphabetLen
// table indexed by symbol-internal.AlphabetMin, as produced by
// internal.ComputeHistogram) and returns one Code per symbol with a
// nonzero frequency, in the order a depth-first walk of the finished
// tree visits them (0 on a left descent, 1 on a right descent, per the
// DESIGN NOTES' preference for an explicit tree over a reverse-at-end
// string payload).
//
// A single-symbol alphabet is a degenerate case with no merge at all;
// it is assigned the one-bit code "0" so that every symbol still gets a
// nonempty code, per spec section 3's Huffman table invariant.
func BuildCodes(freqs []int) ([]Code, error) {
	if len(freqs) != internal.AlphabetLen {
		return nil, fmt.Errorf("entropy: frequency table must have length %d, got %d", internal.AlphabetLen, len(freqs))
	}

	h := &nodeHeap{}
	heap.Init(h)
	seq := 0

	for i, f := range freqs {
		if f <= 0 {
			continue
		}

		heap.Push(h, &node{symbol: byte(internal.AlphabetMin + i), isLeaf: true, freq: f, seq: seq})
		seq++
	}

	if h.Len() == 0 {
		return nil, ErrEmptyAlphabet
	}

	if h.Len() == 1 {
		only := (*h)[0]
		return []Code{{Symbol: only.symbol, Bits: "0"}}, nil
	}

	// Repeated extraction of the two minimum-weight nodes; the lighter
	// (or tie-broken first) of the pair becomes the left child and so
	// accumulates a leading '0', the other the right child and a '1'.
	for h.Len() > 1 {
		left := heap.Pop(h).(*node)
		right := heap.Pop(h).(*node)

		parent := &node{freq: left.freq + right.freq, left: left, right: right, seq: seq}
		seq++
		heap.Push(h, parent)
	}

	root := (*h)[0]
	var codes []Code

	var walk func(n *node, bits string)
	walk = func(n *node, bits string) {
		if n.isLeaf {
			codes = append(codes, Code{Symbol: n.symbol, Bits: bits})
			return
		}

		walk(n.left, bits+"0")
		walk(n.right, bits+"1")
	}

	walk(root, "")
	return codes, nil
}

// HuffmanEncoder writes Huffman-coded symbols and their Elias-coded run
// lengths to a bitstream, per spec section 4.6's payload emission rule.
// It implements bwtzip.EntropyEncoder.
type HuffmanEncoder struct {
	w     *bitstream.BitWriter
	codes map[byte]string
}

// NewHuffmanEncoder builds an encoder that writes to w using codes, the
// table produced by BuildCodes.
func NewHuffmanEncoder(w *bitstream.BitWriter, codes []Code) (*HuffmanEncoder, error) {
	if w == nil {
		return nil, errors.New("entropy: nil bitstream")
	}

	if len(codes) == 0 {
		return nil, ErrEmptyAlphabet
	}

	m := make(map[byte]string, len(codes))

	for _, c := range codes {
		if c.Bits == "" {
			return nil, fmt.Errorf("entropy: empty huffman code for symbol 0x%02X", c.Symbol)
		}

		m[c.Symbol] = c.Bits
	}

	return &HuffmanEncoder{w: w, codes: m}, nil
}

// EncodeRun writes code(c) followed by Elias(runLength).
func (e *HuffmanEncoder) EncodeRun(c byte, runLength int) error {
	bits, ok := e.codes[c]

	if !ok {
		return fmt.Errorf("entropy: symbol 0x%02X is not present in this message's huffman table", c)
	}

	if runLength < 1 {
		return fmt.Errorf("entropy: run length must be >= 1, got %d", runLength)
	}

	e.w.WriteBitString(bits)
	return elias.Encode(e.w, uint64(runLength))
}

// trieNode is one slot of the arena-addressed binary trie the DESIGN
// NOTES recommend in place of a pointer-chasing node graph: children
// are indices into HuffmanDecoder.nodes, with 0 reserved for "absent"
// (the trie's own root occupies index 0 and is never itself a target
// child, since every child is appended to the arena after the root).
type trieNode struct {
	left, right int
	symbol      byte
	isLeaf      bool
}

// HuffmanDecoder rebuilds a message's Huffman trie from the codes read
// out of its header and decodes symbol/run-length pairs from it. It
// implements bwtzip.EntropyDecoder.
type HuffmanDecoder struct {
	r     *bitstream.BitReader
	nodes []trieNode
}

// NewHuffmanDecoder builds a fresh trie from codes (as parsed from the
// header by the codec package) and a decoder reading from r.
func NewHuffmanDecoder(r *bitstream.BitReader, codes []Code) (*HuffmanDecoder, error) {
	if r == nil {
		return nil, errors.New("entropy: nil bitstream")
	}

	if len(codes) == 0 {
		return nil, ErrEmptyAlphabet
	}

	d := &HuffmanDecoder{r: r, nodes: make([]trieNode, 1)}

	for _, c := range codes {
		if err := d.insert(c.Symbol, c.Bits); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// insert adds one (symbol, code) leaf to the trie, creating internal
// nodes along the path as needed. Landing on an existing leaf mid-path,
// or finding the terminal slot already occupied, is the structural
// corruption spec section 4.7 calls out explicitly.
func (d *HuffmanDecoder) insert(symbol byte, bits string) error {
	if bits == "" {
		return bwtzip.NewCodecError(fmt.Sprintf("entropy: empty huffman code for symbol 0x%02X", symbol), bwtzip.ErrDecodeStructural)
	}

	cur := 0

	for i := 0; i < len(bits); i++ {
		if d.nodes[cur].isLeaf {
			return bwtzip.NewCodecError(fmt.Sprintf("entropy: code for symbol 0x%02X extends past an existing leaf", symbol), bwtzip.ErrDecodeStructural)
		}

		var next int
		if bits[i] == '0' {
			next = d.nodes[cur].left
		} else {
			next = d.nodes[cur].right
		}

		if next == 0 {
			d.nodes = append(d.nodes, trieNode{})
			next = len(d.nodes) - 1

			if bits[i] == '0' {
				d.nodes[cur].left = next
			} else {
				d.nodes[cur].right = next
			}
		}

		cur = next
	}

	if d.nodes[cur].isLeaf || d.nodes[cur].left != 0 || d.nodes[cur].right != 0 {
		return bwtzip.NewCodecError(fmt.Sprintf("entropy: code for symbol 0x%02X lands on an occupied node", symbol), bwtzip.ErrDecodeStructural)
	}

	d.nodes[cur].isLeaf = true
	d.nodes[cur].symbol = symbol
	return nil
}

// DecodeRun walks the trie from its root consuming bits until a leaf is
// reached, then Elias-decodes the run length that follows it.
func (d *HuffmanDecoder) DecodeRun() (byte, int, error) {
	cur := 0

	for !d.nodes[cur].isLeaf {
		bit, err := d.r.ReadBit()

		if err != nil {
			return 0, 0, err
		}

		var next int
		if bit == 0 {
			next = d.nodes[cur].left
		} else {
			next = d.nodes[cur].right
		}

		if next == 0 {
			return 0, 0, bwtzip.NewCodecError("entropy: huffman code has no outgoing edge for the bit just read", bwtzip.ErrDecodeStructural)
		}

		cur = next
	}

	symbol := d.nodes[cur].symbol

	k, err := elias.Decode(d.r)
	if err != nil {
		return 0, 0, err
	}

	return symbol, int(k), nil
}
