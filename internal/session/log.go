// Package session holds the per-session event log and recording.
//
// Normalized events are stored packed, one 32-bit value per row, so the
// viewer can reconstruct any row on demand without a side table.
package session

import (
	"github.com/keyscope/keyscope/internal/rawkey"
)

// DefaultMaxEvents bounds the in-memory log when no limit is configured.
const DefaultMaxEvents = 10000

// Log is a bounded in-memory log of packed events. Oldest events are
// dropped once the bound is reached. Log is not safe for concurrent
// use; the processing pipeline is single-threaded.
type Log struct {
	events []rawkey.Packed
	max    int
}

// NewLog creates a log bounded to max events; max <= 0 uses
// DefaultMaxEvents.
func NewLog(max int) *Log {
	if max <= 0 {
		max = DefaultMaxEvents
	}
	return &Log{
		events: make([]rawkey.Packed, 0, 64),
		max:    max,
	}
}

// Append packs and stores an event.
func (l *Log) Append(ev rawkey.Event) {
	if len(l.events) >= l.max {
		n := copy(l.events, l.events[1:])
		l.events = l.events[:n]
	}
	l.events = append(l.events, rawkey.Pack(ev))
}

// Len returns the number of stored events.
func (l *Log) Len() int {
	return len(l.events)
}

// At returns the packed event at index i.
func (l *Log) At(i int) rawkey.Packed {
	return l.events[i]
}

// Clear removes all stored events.
func (l *Log) Clear() {
	l.events = l.events[:0]
}

// Consume implements the pipeline sink.
func (l *Log) Consume(ev rawkey.Event) {
	l.Append(ev)
}
