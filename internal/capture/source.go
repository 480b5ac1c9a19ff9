// Package capture defines the boundary where raw keyboard reports enter
// the engine.
//
// The engine itself never touches hardware; a Source delivers reports
// one at a time, already decoded into make code, virtual key, and flag
// bits. ReplaySource reads reports from a recorded JSON-lines stream,
// which is also the seam where a platform raw-input adapter would plug in.
package capture

import (
	"bufio"
	"io"

	"github.com/tidwall/gjson"

	"github.com/keyscope/keyscope/internal/rawkey"
)

// Source delivers raw keyboard reports one at a time.
type Source interface {
	// Next returns the next report. It returns io.EOF when the stream
	// is exhausted.
	Next() (rawkey.RawEvent, error)
}

// ReplaySource reads reports from a JSON-lines stream. Each line is an
// object with "make", "vk", and "flags" fields; missing or malformed
// fields read as 0 and lines that are not JSON objects are skipped, so
// a damaged recording degrades instead of failing.
type ReplaySource struct {
	scanner *bufio.Scanner
}

// NewReplaySource creates a source reading from r.
func NewReplaySource(r io.Reader) *ReplaySource {
	return &ReplaySource{scanner: bufio.NewScanner(r)}
}

// Next returns the next recorded report.
func (s *ReplaySource) Next() (rawkey.RawEvent, error) {
	for s.scanner.Scan() {
		line := s.scanner.Bytes()
		if !gjson.ValidBytes(line) {
			continue
		}
		return rawkey.RawEvent{
			MakeCode:   uint16(gjson.GetBytes(line, "make").Uint()),
			VirtualKey: uint16(gjson.GetBytes(line, "vk").Uint()),
			Flags:      rawkey.Flag(gjson.GetBytes(line, "flags").Uint()),
		}, nil
	}
	if err := s.scanner.Err(); err != nil {
		return rawkey.RawEvent{}, err
	}
	return rawkey.RawEvent{}, io.EOF
}
