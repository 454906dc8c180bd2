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

package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInAlphabetBounds(t *testing.T) {
	require.True(t, InAlphabet('a'))
	require.True(t, InAlphabet(AlphabetMax))
	require.False(t, InAlphabet(Sentinel))
	require.False(t, InAlphabet(AlphabetMin-1))
	require.False(t, InAlphabet(AlphabetMax+1))
}

func TestComputeHistogramCounts(t *testing.T) {
	freqs := make([]int, AlphabetLen)
	require.NoError(t, ComputeHistogram([]byte("banana$"), freqs))
	require.Equal(t, 3, freqs['a'-AlphabetMin])
	require.Equal(t, 2, freqs['n'-AlphabetMin])
	require.Equal(t, 1, freqs['b'-AlphabetMin])
	require.Equal(t, 1, freqs[Sentinel-AlphabetMin])
}

func TestComputeHistogramRejectsWrongTableLength(t *testing.T) {
	require.Error(t, ComputeHistogram([]byte("a"), make([]int, 3)))
}

func TestComputeHistogramRejectsOutOfAlphabetByte(t *testing.T) {
	require.Error(t, ComputeHistogram([]byte("a\x01b"), make([]int, AlphabetLen)))
}
