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

// Package bwtzip defines the top level interfaces and the error taxonomy
// shared by the bwt-zip codec.
//
// The implementations of these interfaces live in sub-packages: bitstream
// for MSB-first bit packing, elias for the variable-length integer code,
// transform for the suffix array and Burrows-Wheeler transform, entropy
// for the per-message Huffman code, and codec for the orchestration of a
// full compress/decompress round trip.
package bwtzip

import "fmt"

// Error codes carried by CodecError. Mirrors the taxonomy of spec section 7:
// IO, InputDomain, DecodeTruncated, DecodeStructural, Internal.
const (
	ErrMissingParam     = 1
	ErrOpenFile         = 2
	ErrReadFile         = 3
	ErrWriteFile        = 4
	ErrInputDomain      = 5
	ErrDecodeTruncated  = 6
	ErrDecodeStructural = 7
	ErrInternal         = 8
	ErrUnknown          = 127
)

// CodecError is an extended error carrying a stable numeric code from the
// taxonomy above, so that callers can switch on failure class instead of
// matching message strings.
type CodecError struct {
	msg  string
	code int
	err  error
}

// NewCodecError creates a CodecError with the given message and code.
func NewCodecError(msg string, code int) *CodecError {
	return &CodecError{msg: msg, code: code}
}

// WrapCodecError creates a CodecError that wraps an underlying error.
func WrapCodecError(err error, code int) *CodecError {
	return &CodecError{msg: err.Error(), code: code, err: err}
}

// Error returns the underlying error message together with its code.
func (e *CodecError) Error() string {
	return fmt.Sprintf("%s (code %d)", e.msg, e.code)
}

// Code returns the error code associated with this error.
func (e *CodecError) Code() int {
	return e.code
}

// Unwrap allows errors.Is / errors.As to reach the wrapped cause, if any.
func (e *CodecError) Unwrap() error {
	return e.err
}

// ByteTransform is a function that transforms the input byte slice and writes
// the result to the output byte slice. The result may have a different size.
// Implemented by transform.BWT (forward and inverse Burrows-Wheeler transform).
type ByteTransform interface {
	// Forward applies the function to src and writes the result to dst.
	// Returns the number of bytes read, the number of bytes written and
	// possibly an error.
	Forward(src, dst []byte) (int, int, error)

	// Inverse applies the reverse function to src and writes the result
	// to dst. Returns the number of bytes read, the number of bytes
	// written and possibly an error.
	Inverse(src, dst []byte) (int, int, error)

	// MaxEncodedLen returns the max size required for the encoding output
	// buffer given a source of length srcLen.
	MaxEncodedLen(srcLen int) int
}

// BitWriter appends bits to a growing buffer, MSB-first, per spec section 4.1.
type BitWriter interface {
	// WriteBit appends the least significant bit of the input value.
	WriteBit(bit int)

	// WriteBits appends the 'count' least significant bits of value,
	// MSB-first. Count must be in [1..64].
	WriteBits(value uint64, count uint) uint

	// Len returns the number of bits written so far.
	Len() uint64

	// Finish pads the final partial byte with zero bits in the
	// low-order positions and returns the packed buffer.
	Finish() []byte
}

// BitReader consumes bits from a packed MSB-first buffer, per spec section 4.1.
type BitReader interface {
	// ReadBit returns the next bit and advances the read position.
	ReadBit() (int, error)

	// ReadBits reads 'count' bits (in [1..64]) and returns them right
	// aligned in a uint64.
	ReadBits(count uint) (uint64, error)

	// Peek returns the next 'count' bits without advancing the read
	// position. It is an error to peek past the end of the buffer.
	Peek(count uint) (uint64, error)

	// BitAt returns the bit at absolute index i (0 = MSB of byte 0).
	BitAt(i uint64) (int, error)

	// Pos returns the current read position, in bits.
	Pos() uint64

	// Len returns the total number of bits available to read.
	Len() uint64
}

// EntropyEncoder entropy encodes a stream of symbols to a BitWriter.
type EntropyEncoder interface {
	// EncodeRun writes the Huffman code for symbol c followed by the
	// Elias code of its run length, per spec section 4.6.
	EncodeRun(c byte, runLength int) error
}

// EntropyDecoder entropy decodes a stream of symbols from a BitReader.
type EntropyDecoder interface {
	// DecodeRun reads one Huffman-coded symbol and its Elias-coded run
	// length, per spec section 4.7.
	DecodeRun() (c byte, runLength int, err error)
}

// Listener receives lifecycle events emitted during compression and
// decompression (see Event.go). Implemented by the CLI's verbose printer.
type Listener interface {
	ProcessEvent(evt *Event)
}
