package rawkey

import (
	"testing"
)

func TestPackLayout(t *testing.T) {
	ev := Event{
		RawEvent: RawEvent{
			MakeCode:   0x45,
			VirtualKey: 0x90,
			Flags:      FlagBreak | FlagE0,
		},
		Adjustments: AdjExtendedLookup,
	}

	got := Pack(ev)
	want := Packed(0x45 | 0x03<<8 | 0x90<<16 | 0x80<<24)
	if got != want {
		t.Errorf("Pack() = %#08x, want %#08x", got, want)
	}
}

func TestPackRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
	}{
		{
			"plain press",
			NewEvent(RawEvent{MakeCode: 0x1E, VirtualKey: 'A'}),
		},
		{
			"release",
			NewEvent(RawEvent{MakeCode: 0x1E, VirtualKey: 'A', Flags: FlagBreak}),
		},
		{
			"extended",
			NewEvent(RawEvent{MakeCode: 0x1D, VirtualKey: 0xA3, Flags: FlagE0}),
		},
		{
			"numlock adjusted",
			Event{
				RawEvent:    RawEvent{MakeCode: 0x45, VirtualKey: 0x90},
				Adjustments: AdjExtendedLookup,
				Down:        true,
			},
		},
		{
			"all adjustments",
			Event{
				RawEvent:    RawEvent{MakeCode: 0x53, VirtualKey: 0x2E, Flags: FlagBreak | FlagE0},
				Adjustments: AdjMakeCodeMapped | AdjVirtualKeyAdjusted | AdjExtendedLookup,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pack(tt.ev).Event(); !got.Equals(tt.ev) {
				t.Errorf("round trip = %#v, want %#v", got, tt.ev)
			}
		})
	}
}

func TestPackRoundTripExhaustiveBytes(t *testing.T) {
	// Every combination of the low flag bits and adjustment bits must
	// survive the trip for single-byte make and virtual-key codes.
	for flags := Flag(0); flags < 8; flags++ {
		for _, adj := range []Adjustment{0, AdjMakeCodeMapped, AdjVirtualKeyAdjusted, AdjExtendedLookup, 0x83} {
			ev := Event{
				RawEvent:    RawEvent{MakeCode: 0x39, VirtualKey: 0x20, Flags: flags},
				Adjustments: adj,
				Down:        !flags.Has(FlagBreak),
			}
			if got := Pack(ev).Event(); !got.Equals(ev) {
				t.Errorf("round trip flags=%d adj=%#x: got %#v, want %#v", flags, adj, got, ev)
			}
		}
	}
}

func TestPackTruncatesWideFields(t *testing.T) {
	ev := Event{
		RawEvent: RawEvent{MakeCode: 0x145, VirtualKey: 0x190},
		Down:     true,
	}

	got := Pack(ev).Event()
	if got.MakeCode != 0x45 {
		t.Errorf("make code = %#x, want truncation to 0x45", got.MakeCode)
	}
	if got.VirtualKey != 0x90 {
		t.Errorf("virtual key = %#x, want truncation to 0x90", got.VirtualKey)
	}
}

func TestPackedFieldAccessors(t *testing.T) {
	p := Pack(NewEvent(RawEvent{MakeCode: 0x1C, VirtualKey: 0x0D}))
	if p.MakeCode() != 0x1C {
		t.Errorf("MakeCode() = %#x, want 0x1c", p.MakeCode())
	}
	if p.VirtualKey() != 0x0D {
		t.Errorf("VirtualKey() = %#x, want 0x0d", p.VirtualKey())
	}
}

func TestPackedLookupCodeRestored(t *testing.T) {
	ev := Event{
		RawEvent:    RawEvent{MakeCode: 0x45, VirtualKey: 0x90},
		Adjustments: AdjExtendedLookup,
		Down:        true,
	}

	if got := Pack(ev).Event().LookupCode(); got != 0x145 {
		t.Errorf("restored LookupCode() = %#x, want 0x145", got)
	}
}
