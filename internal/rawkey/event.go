package rawkey

import (
	"fmt"
	"strings"
)

// Flag holds the raw-input flag bits of a keyboard report.
type Flag uint16

const (
	// FlagBreak indicates a key release (break) rather than a press (make).
	FlagBreak Flag = 1 << iota

	// FlagE0 indicates the report was prefixed with the E0 extended-key byte.
	FlagE0

	// FlagE1 indicates the report was prefixed with the E1 lead-in byte
	// (used only by Pause/Break).
	FlagE1
)

// Has returns true if f contains the specified flag.
func (f Flag) Has(flag Flag) bool {
	return f&flag != 0
}

// String returns a human-readable representation like "Break|E0".
func (f Flag) String() string {
	if f == 0 {
		return "Make"
	}

	var parts []string
	if f.Has(FlagBreak) {
		parts = append(parts, "Break")
	}
	if f.Has(FlagE0) {
		parts = append(parts, "E0")
	}
	if f.Has(FlagE1) {
		parts = append(parts, "E1")
	}
	return strings.Join(parts, "|")
}

// Adjustment records which normalization steps modified an event.
// The values match the adjustment byte of the packed encoding.
type Adjustment uint8

const (
	// AdjMakeCodeMapped indicates the make code was synthesized from the
	// virtual-key code because the hardware omitted it.
	AdjMakeCodeMapped Adjustment = 0x01

	// AdjVirtualKeyAdjusted indicates a shared virtual-key code was
	// resolved to its left/right-specific variant.
	AdjVirtualKeyAdjusted Adjustment = 0x02

	// AdjExtendedLookup indicates the scan-code lookup must use the
	// extended-key table, independent of whether the E0 flag was
	// physically present. NumLock sends make code 0x45 without E0 yet
	// still lives in the extended table.
	AdjExtendedLookup Adjustment = 0x80
)

// Has returns true if a contains the specified adjustment.
func (a Adjustment) Has(adj Adjustment) bool {
	return a&adj != 0
}

// String returns a human-readable representation like "MakeCodeMapped|ExtendedLookup".
func (a Adjustment) String() string {
	if a == 0 {
		return "None"
	}

	var parts []string
	if a.Has(AdjMakeCodeMapped) {
		parts = append(parts, "MakeCodeMapped")
	}
	if a.Has(AdjVirtualKeyAdjusted) {
		parts = append(parts, "VirtualKeyAdjusted")
	}
	if a.Has(AdjExtendedLookup) {
		parts = append(parts, "ExtendedLookup")
	}
	return strings.Join(parts, "|")
}

// RawEvent is one keyboard report as delivered by the raw-input layer.
type RawEvent struct {
	// MakeCode is the AT scan code, 0 if the hardware did not supply one.
	MakeCode uint16

	// VirtualKey is the OS-level virtual-key code.
	VirtualKey uint16

	// Flags carries the break/E0/E1 bits of the report.
	Flags Flag
}

// Event is a normalized keyboard report. It extends the raw report with
// the adjustments applied during normalization; the adjustment set only
// ever grows, it never removes information from the raw report.
type Event struct {
	RawEvent

	// Adjustments records which normalization steps modified the event.
	Adjustments Adjustment

	// Down is true for a key press, false for a release.
	Down bool
}

// NewEvent seeds an Event from a raw report. Reports that physically
// carried the E0 prefix start with the extended-lookup adjustment set.
func NewEvent(raw RawEvent) Event {
	var adj Adjustment
	if raw.Flags.Has(FlagE0) {
		adj = AdjExtendedLookup
	}
	return Event{
		RawEvent:    raw,
		Adjustments: adj,
		Down:        !raw.Flags.Has(FlagBreak),
	}
}

// LookupCode returns the key for scan-code table lookups: the make code,
// shifted into the extended range when the extended-lookup adjustment is set.
func (e Event) LookupCode() uint16 {
	if e.Adjustments.Has(AdjExtendedLookup) {
		return e.MakeCode | 0x100
	}
	return e.MakeCode
}

// Equals returns true if two events carry the same normalized identity.
func (e Event) Equals(other Event) bool {
	return e.RawEvent == other.RawEvent &&
		e.Adjustments == other.Adjustments &&
		e.Down == other.Down
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{MakeCode: %#04x, VirtualKey: %#04x, Flags: %s, Adjustments: %s, Down: %v}",
		e.MakeCode, e.VirtualKey, e.Flags, e.Adjustments, e.Down)
}
