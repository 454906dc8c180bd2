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

// Package app holds the CLI-facing pieces shared by cmd/bwtzip and
// cmd/bwtunzip: an Event-driven InfoPrinter adapted from kanzi-go's
// app.InfoPrinter (dropping its per-block CSV/table machinery, since
// this format has exactly one block and no checksum), and a
// progressbar/v2-backed listener for the one superlinear stage, suffix
// array construction.
package app

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v2"

	bwtzip "github.com/nathanfrederickk/bwt-zip"
)

// InfoPrinter writes one human-readable line per lifecycle event to its
// writer, gated by a verbosity level: 0 prints nothing, 1 prints start
// and end markers, 2 and above also print the transform/entropy stage
// boundaries and their elapsed time.
type InfoPrinter struct {
	writer io.Writer
	level  uint
	stage  map[int]time.Time
}

// NewInfoPrinter creates an InfoPrinter writing to w at the given
// verbosity level.
func NewInfoPrinter(level uint, w io.Writer) (*InfoPrinter, error) {
	if w == nil {
		return nil, errors.New("app: invalid nil writer")
	}

	return &InfoPrinter{writer: w, level: level, stage: make(map[int]time.Time)}, nil
}

// ProcessEvent implements bwtzip.Listener.
func (p *InfoPrinter) ProcessEvent(evt *bwtzip.Event) {
	if p.level == 0 {
		return
	}

	switch evt.Type() {
	case bwtzip.EvtCompressionStart, bwtzip.EvtDecompressionStart:
		p.stage[evt.Type()] = evt.Time()
		fmt.Fprintln(p.writer, evt.String())

	case bwtzip.EvtBeforeTransform, bwtzip.EvtBeforeEntropy:
		p.stage[evt.Type()] = evt.Time()

		if p.level >= 2 {
			fmt.Fprintln(p.writer, evt.String())
		}

	case bwtzip.EvtAfterTransform:
		p.printStageDuration(evt, bwtzip.EvtBeforeTransform)

	case bwtzip.EvtAfterEntropy:
		p.printStageDuration(evt, bwtzip.EvtBeforeEntropy)

	case bwtzip.EvtAfterHeaderDecoding:
		if p.level >= 2 {
			fmt.Fprintln(p.writer, evt.String())
		}

	case bwtzip.EvtCompressionEnd, bwtzip.EvtDecompressionEnd:
		fmt.Fprintln(p.writer, evt.String())

	default:
		if p.level >= 3 {
			fmt.Fprintln(p.writer, evt.String())
		}
	}
}

func (p *InfoPrinter) printStageDuration(evt *bwtzip.Event, startType int) {
	if p.level < 2 {
		return
	}

	start, ok := p.stage[startType]

	if !ok {
		fmt.Fprintln(p.writer, evt.String())
		return
	}

	ms := evt.Time().Sub(start).Nanoseconds() / int64(time.Millisecond)
	fmt.Fprintf(p.writer, "%s [%d ms]\n", evt.String(), ms)
}

// SuffixArrayProgressBar drives a progressbar/v2 bar off
// EvtSuffixArrayProgress events, in the same spirit as
// cosnicolaou/pbzip2's cmd/pbzip2/main.go progressBar function driving a
// bar off a channel of progress updates. total is the number of
// comparisons BuildSuffixArray expects to perform.
type SuffixArrayProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewSuffixArrayProgressBar creates a progress bar of total units
// writing to w.
func NewSuffixArrayProgressBar(total int, w io.Writer) *SuffixArrayProgressBar {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetPredictTime(true))

	return &SuffixArrayProgressBar{bar: bar}
}

// ProcessEvent implements bwtzip.Listener. Only EvtSuffixArrayProgress
// events move the bar; everything else is ignored, so this listener can
// be registered alongside an InfoPrinter without double-reporting.
func (p *SuffixArrayProgressBar) ProcessEvent(evt *bwtzip.Event) {
	if evt.Type() != bwtzip.EvtSuffixArrayProgress {
		return
	}

	_ = p.bar.Set(int(evt.Size()))
}
