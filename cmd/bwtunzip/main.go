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

// Command bwtunzip decompresses a bwtzip artifact into recovered.txt in
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
)

const outputName = "recovered.txt"

func main() {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "bwtunzip <encoded-file>",
		Short: "Decompress a bwtzip artifact back into its original text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], verbose)
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print lifecycle events as decompression proceeds")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bwtunzip:", err)
		os.Exit(exitCode(err))
	}
}

func run(inputPath string, verbose bool) error {
	data, err := readArtifact(inputPath)
	if err != nil {
		return err
	}

	d := codec.NewDecompressor()

	if verbose {
		printer, err := app.NewInfoPrinter(2, os.Stderr)
		if err != nil {
			return err
		}

		d.AddListener(printer)
	}

	text, err := d.Decompress(data)
	if err != nil {
		// A failed decode must never leave a partial recovered.txt behind
		// for a downstream consumer to mistake for real output.
		os.Remove(outputName)
		return err
	}

	return textsrc.WriteText(outputName, text)
}

func readArtifact(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, bwtzip.WrapCodecError(err, bwtzip.ErrOpenFile)
	}

	return data, nil
}

func exitCode(err error) int {
	var codecErr *bwtzip.CodecError
	if errors.As(err, &codecErr) {
		return codecErr.Code()
	}

	return bwtzip.ErrUnknown
}
