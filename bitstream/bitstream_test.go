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

package bitstream

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteBitAlignedBytes(t *testing.T) {
	w := NewBitWriter()
	w.WriteBits(0xCA, 8)
	w.WriteBits(0xFE, 8)
	buf := w.Finish()
	require.Equal(t, []byte{0xCA, 0xFE}, buf)
}

func TestWriteBitMisaligned(t *testing.T) {
	w := NewBitWriter()
	w.WriteBit(1)
	w.WriteBits(0x2A, 7) // 0101010, total so far: 1 0101010 = 0xAA
	buf := w.Finish()
	require.Equal(t, []byte{0xAA}, buf)
}

func TestFinishPadsWithZeros(t *testing.T) {
	w := NewBitWriter()
	w.WriteBits(0x5, 3) // 101
	buf := w.Finish()
	require.Equal(t, []byte{0xA0}, buf) // 101 00000
}

func TestBitAtMatchesMSBFirstPacking(t *testing.T) {
	r := NewBitReader([]byte{0b10110010})
	expected := []int{1, 0, 1, 1, 0, 0, 1, 0}

	for i, want := range expected {
		got, err := r.BitAt(uint64(i))
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestReadBitsRoundTrip(t *testing.T) {
	w := NewBitWriter()
	w.WriteBits(13, 4)
	w.WriteBits(1, 1)
	w.WriteBits(255, 8)
	buf := w.Finish()

	r := NewBitReader(buf)
	v, err := r.ReadBits(4)
	require.NoError(t, err)
	require.EqualValues(t, 13, v)

	v, err = r.ReadBits(1)
	require.NoError(t, err)
	require.EqualValues(t, 1, v)

	v, err = r.ReadBits(8)
	require.NoError(t, err)
	require.EqualValues(t, 255, v)
}

func TestPeekDoesNotAdvance(t *testing.T) {
	w := NewBitWriter()
	w.WriteBits(0x3, 2)
	buf := w.Finish()

	r := NewBitReader(buf)
	v1, err := r.Peek(2)
	require.NoError(t, err)
	v2, err := r.Peek(2)
	require.NoError(t, err)
	require.Equal(t, v1, v2)
	require.EqualValues(t, 0, r.Pos())
}

func TestReadPastEndIsError(t *testing.T) {
	r := NewBitReader([]byte{0xFF})
	_, err := r.ReadBits(8)
	require.NoError(t, err)
	_, err = r.ReadBit()
	require.ErrorIs(t, err, ErrEndOfStream)
}

func TestRandomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(64)
		var values []uint64
		var widths []uint
		w := NewBitWriter()

		for i := 0; i < n; i++ {
			width := uint(1 + rng.Intn(20))
			value := uint64(rng.Int63()) & ((uint64(1) << width) - 1)
			widths = append(widths, width)
			values = append(values, value)
			w.WriteBits(value, width)
		}

		buf := w.Finish()
		r := NewBitReader(buf)

		for i := 0; i < n; i++ {
			got, err := r.ReadBits(widths[i])
			require.NoError(t, err)
			require.Equalf(t, values[i], got, "trial %d, field %d", trial, i)
		}
	}
}
