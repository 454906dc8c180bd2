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

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nathanfrederickk/bwt-zip/internal"
)

func TestSplitRunsEmpty(t *testing.T) {
	require.Nil(t, SplitRuns(nil))
}

func TestSplitRunsSingleByte(t *testing.T) {
	runs := SplitRuns([]byte("a"))
	require.Equal(t, []Run{{Symbol: 'a', Length: 1}}, runs)
}

func TestSplitRunsAllRepeated(t *testing.T) {
	runs := SplitRuns([]byte("aaaa"))
	require.Equal(t, []Run{{Symbol: 'a', Length: 4}}, runs)
}

func TestSplitRunsMixed(t *testing.T) {
	runs := SplitRuns([]byte("annb$aa"))
	require.Equal(t, []Run{
		{Symbol: 'a', Length: 1},
		{Symbol: 'n', Length: 2},
		{Symbol: 'b', Length: 1},
		{Symbol: '$', Length: 1},
		{Symbol: 'a', Length: 2},
	}, runs)
}

func TestJoinRunsInverseOfSplit(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(300)
		buf := make([]byte, n)

		for i := range buf {
			buf[i] = byte(internal.AlphabetMin + rng.Intn(internal.AlphabetLen))
		}

		runs := SplitRuns(buf)
		require.Equal(t, buf, JoinRuns(nil, runs))
	}
}
