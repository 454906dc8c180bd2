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

// Package textsrc is the external collaborator spec section 1 carves out
// of the codec core: reading an input file into the single concatenated
// string the compressor operates on, and writing the bytes or the
// recovered text back out. Neither function belongs to the bit-level
// pipeline; both are kept here so codec never touches an *os.File.
package textsrc

import (
	"bufio"
	"os"
	"strings"

	bwtzip "github.com/nathanfrederickk/bwt-zip"
	"github.com/nathanfrederickk/bwt-zip/internal"
)

// ReadText reads path line by line, trims trailing whitespace from each
// line (spec section 6: "trailing whitespace on lines is trimmed and
// lines are concatenated with no separator"), and concatenates the
// result with no separator between lines. This narrows the original
// `bwtzip.py` reader's Python str.strip() (both ends) to trailing-only,
// per the spec's explicit wording.
func ReadText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", bwtzip.WrapCodecError(err, bwtzip.ErrOpenFile)
	}
	defer f.Close()

	var sb strings.Builder
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	for scanner.Scan() {
		sb.WriteString(strings.TrimRight(scanner.Text(), " \t\r\n\v\f"))
	}

	if err := scanner.Err(); err != nil {
		return "", bwtzip.WrapCodecError(err, bwtzip.ErrReadFile)
	}

	return sb.String(), nil
}

// ValidateAlphabet reports a CodecError (ErrInputDomain) if text contains
// any byte outside the admitted printable-ASCII range, or an embedded
// sentinel (spec section 6: "no embedded '$' in user data; the sentinel
// is reserved").
func ValidateAlphabet(text string) error {
	for i := 0; i < len(text); i++ {
		b := text[i]

		if b == internal.Sentinel {
			return bwtzip.NewCodecError("textsrc: input text must not contain the reserved sentinel '$'", bwtzip.ErrInputDomain)
		}

		if !internal.InAlphabet(b) {
			return bwtzip.NewCodecError("textsrc: input text contains a byte outside the admitted alphabet [0x24, 0x7E]", bwtzip.ErrInputDomain)
		}
	}

	return nil
}

// WriteBytes writes data to path, overwriting any existing file.
func WriteBytes(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return bwtzip.WrapCodecError(err, bwtzip.ErrWriteFile)
	}

	return nil
}

// WriteText writes text to path, overwriting any existing file.
func WriteText(path string, text string) error {
	return WriteBytes(path, []byte(text))
}
