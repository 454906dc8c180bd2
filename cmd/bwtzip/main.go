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

// Command bwtzip compresses a single text file into bwtencoded.bin in
// the current directory, per spec section 6's command surface.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	bwtzip "github.com/nathanfrederickk/bwt-zip"
	"github.com/nathanfrederickk/bwt-zip/app"
	"github.com/nathanfrederickk/bwt-zip/codec"
	"github.com/nathanfrederickk/bwt-zip/textsrc"
	"github.com/nathanfrederickk/bwt-zip/transform"
)

const outputName = "bwtencoded.bin"

func main() {
	var verbose bool
	var progress bool

	cmd := &cobra.Command{
		Use:   "bwtzip <input-file>",
		Short: "Compress a printable-ASCII text file into a self-describing BWT+Huffman bitstream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], verbose, progress)
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print lifecycle events as compression proceeds")
	cmd.Flags().BoolVar(&progress, "progress", false, "show a progress bar during suffix array construction")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bwtzip:", err)
		os.Exit(exitCode(err))
	}
}

func run(inputPath string, verbose, progress bool) error {
	text, err := textsrc.ReadText(inputPath)
	if err != nil {
		return err
	}

	if err := textsrc.ValidateAlphabet(text); err != nil {
		return err
	}

	c := codec.NewCompressor()

	if verbose {
		printer, err := app.NewInfoPrinter(2, os.Stderr)
		if err != nil {
			return err
		}

		c.AddListener(printer)
	}

	if progress {
		total := transform.EstimateComparisons(len(text) + 1)
		c.AddListener(app.NewSuffixArrayProgressBar(total, os.Stderr))
	}

	data, err := c.Compress(text)
	if err != nil {
		return err
	}

	return textsrc.WriteBytes(outputName, data)
}

func exitCode(err error) int {
	var codecErr *bwtzip.CodecError
	if errors.As(err, &codecErr) {
		return codecErr.Code()
	}

	return bwtzip.ErrUnknown
}
