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

package bwtzip

import (
	"fmt"
	"time"
)

// Event types emitted by the codec at the lifecycle points a Listener
// (the CLI's verbose printer, or a progress bar) can react to. There is no
// per-block id and no hash event: the core is single-pass and carries no
// checksum, per spec sections 5 and 6.
const (
	EvtCompressionStart    = 0 // Compression starts
	EvtDecompressionStart  = 1 // Decompression starts
	EvtBeforeTransform     = 2 // BWT forward/inverse starts
	EvtAfterTransform      = 3 // BWT forward/inverse ends
	EvtBeforeEntropy       = 4 // Huffman/Elias encoding or decoding starts
	EvtAfterEntropy        = 5 // Huffman/Elias encoding or decoding ends
	EvtCompressionEnd      = 6 // Compression ends
	EvtDecompressionEnd    = 7 // Decompression ends
	EvtAfterHeaderDecoding = 8 // Header decoding ends
	EvtSuffixArrayProgress = 9 // Suffix array construction has advanced by some amount
)

// Event is a compression/decompression lifecycle event.
type Event struct {
	eventType int
	size      int64
	eventTime time.Time
	msg       string
}

// NewEventFromString creates an Event instance that wraps a message.
func NewEventFromString(evtType int, msg string, evtTime time.Time) *Event {
	if evtTime.IsZero() {
		evtTime = time.Now()
	}

	return &Event{eventType: evtType, msg: msg, eventTime: evtTime}
}

// NewEvent creates an Event instance carrying a size (e.g. bytes processed
// so far, or suffix comparisons performed so far for EvtSuffixArrayProgress).
func NewEvent(evtType int, size int64, evtTime time.Time) *Event {
	if evtTime.IsZero() {
		evtTime = time.Now()
	}

	return &Event{eventType: evtType, size: size, eventTime: evtTime}
}

// Type returns the event type.
func (e *Event) Type() int {
	return e.eventType
}

// Time returns the event timestamp.
func (e *Event) Time() time.Time {
	return e.eventTime
}

// Size returns the size info carried by the event.
func (e *Event) Size() int64 {
	return e.size
}

// String returns a human readable representation of the event.
func (e *Event) String() string {
	if len(e.msg) > 0 {
		return e.msg
	}

	t := ""

	switch e.eventType {
	case EvtBeforeTransform:
		t = "BEFORE_TRANSFORM"
	case EvtAfterTransform:
		t = "AFTER_TRANSFORM"
	case EvtBeforeEntropy:
		t = "BEFORE_ENTROPY"
	case EvtAfterEntropy:
		t = "AFTER_ENTROPY"
	case EvtCompressionStart:
		t = "COMPRESSION_START"
	case EvtDecompressionStart:
		t = "DECOMPRESSION_START"
	case EvtCompressionEnd:
		t = "COMPRESSION_END"
	case EvtDecompressionEnd:
		t = "DECOMPRESSION_END"
	case EvtAfterHeaderDecoding:
		t = "AFTER_HEADER_DECODING"
	case EvtSuffixArrayProgress:
		t = "SUFFIX_ARRAY_PROGRESS"
	}

	return fmt.Sprintf("{ \"type\":\"%s\", \"size\":%d, \"time\":%d }", t, e.size,
		e.eventTime.UnixNano()/1000000)
}
