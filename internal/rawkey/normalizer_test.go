package rawkey

import (
	"testing"
)

func TestNormalizeOverrunDiscarded(t *testing.T) {
	n := NewNormalizer()

	events := []RawEvent{
		{MakeCode: overrunMakeCode},
		{MakeCode: overrunMakeCode, VirtualKey: 'A'},
		{MakeCode: overrunMakeCode, Flags: FlagBreak | FlagE0},
	}
	for _, raw := range events {
		if _, ok := n.Normalize(raw); ok {
			t.Errorf("overrun report %+v should be discarded", raw)
		}
	}
}

func TestNormalizePlainKey(t *testing.T) {
	n := NewNormalizer()

	ev, ok := n.Normalize(RawEvent{MakeCode: 0x1E, VirtualKey: 'A'})
	if !ok {
		t.Fatal("plain key press should produce an event")
	}
	if ev.MakeCode != 0x1E || ev.VirtualKey != 'A' {
		t.Errorf("event = %#v, want make 0x1e vk 'A'", ev)
	}
	if ev.Adjustments != 0 {
		t.Errorf("plain key should be unadjusted, got %s", ev.Adjustments)
	}
	if !ev.Down {
		t.Error("make report should be a key press")
	}
}

func TestNormalizeE1Sequence(t *testing.T) {
	n := NewNormalizer()

	// Pause/Break arrives as an E1-flagged Ctrl report followed by 0x45.
	if _, ok := n.Normalize(RawEvent{MakeCode: 0x1D, VirtualKey: VKControl, Flags: FlagE1}); ok {
		t.Fatal("E1 lead-in should produce no event")
	}
	if n.Pending() != SeqE1 {
		t.Fatalf("pending = %s, want E1", n.Pending())
	}

	ev, ok := n.Normalize(RawEvent{MakeCode: 0x45, VirtualKey: VKNumLock})
	if !ok {
		t.Fatal("report after E1 lead-in should produce an event")
	}
	if ev.VirtualKey != VKPause {
		t.Errorf("virtual key = %#x, want VKPause", ev.VirtualKey)
	}
	if !ev.Adjustments.Has(AdjVirtualKeyAdjusted) {
		t.Error("Pause reassignment should mark VirtualKeyAdjusted")
	}
	if ev.Adjustments.Has(AdjExtendedLookup) {
		t.Error("Pause should not be marked for extended lookup")
	}
	if n.Pending() != SeqNone {
		t.Error("pending state should be consumed")
	}
}

func TestNormalizeNumLockWithoutE1(t *testing.T) {
	n := NewNormalizer()

	ev, ok := n.Normalize(RawEvent{MakeCode: 0x45, VirtualKey: VKNumLock})
	if !ok {
		t.Fatal("lone 0x45 should produce an event")
	}
	if ev.VirtualKey != VKNumLock {
		t.Errorf("virtual key = %#x, want VKNumLock unchanged", ev.VirtualKey)
	}
	if !ev.Adjustments.Has(AdjExtendedLookup) {
		t.Error("NumLock must be marked for extended lookup despite no E0 flag")
	}
	if ev.LookupCode() != 0x145 {
		t.Errorf("LookupCode() = %#x, want 0x145", ev.LookupCode())
	}
}

func TestNormalizeE0FakeShiftSequence(t *testing.T) {
	n := NewNormalizer()

	// Fake left-shift lead-in, then a real Right-Ctrl.
	if _, ok := n.Normalize(RawEvent{MakeCode: 0x2A, VirtualKey: VKShift, Flags: FlagE0}); ok {
		t.Fatal("fake-shift lead-in should produce no event")
	}
	if n.Pending() != SeqE0 {
		t.Fatalf("pending = %s, want E0", n.Pending())
	}

	ev, ok := n.Normalize(RawEvent{MakeCode: 0x1D, VirtualKey: VKControl, Flags: FlagE0})
	if !ok {
		t.Fatal("report after fake-shift lead-in should produce an event")
	}
	if ev.VirtualKey != VKRControl {
		t.Errorf("virtual key = %#x, want VKRControl", ev.VirtualKey)
	}
	if !ev.Adjustments.Has(AdjVirtualKeyAdjusted) {
		t.Error("Right-Ctrl resolution should mark VirtualKeyAdjusted")
	}
	if n.Pending() != SeqNone {
		t.Error("pending state should be consumed")
	}
}

func TestNormalizeShiftDisambiguation(t *testing.T) {
	tests := []struct {
		name     string
		makeCode uint16
		wantVK   uint16
	}{
		{"left", 0x2A, VKLShift},
		{"right", 0x36, VKRShift},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNormalizer()
			ev, ok := n.Normalize(RawEvent{MakeCode: tt.makeCode, VirtualKey: VKShift})
			if !ok {
				t.Fatal("shift press should produce an event")
			}
			if ev.VirtualKey != tt.wantVK {
				t.Errorf("virtual key = %#x, want %#x", ev.VirtualKey, tt.wantVK)
			}
			if !ev.Adjustments.Has(AdjVirtualKeyAdjusted) {
				t.Error("shift resolution should mark VirtualKeyAdjusted")
			}
		})
	}
}

func TestNormalizeLeftVariantsUnchanged(t *testing.T) {
	// Without E0, the generic Ctrl/Alt codes already denote the left key.
	tests := []struct {
		name   string
		raw    RawEvent
		wantVK uint16
	}{
		{"ctrl", RawEvent{MakeCode: 0x1D, VirtualKey: VKControl}, VKControl},
		{"alt", RawEvent{MakeCode: 0x38, VirtualKey: VKMenu}, VKMenu},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNormalizer()
			ev, ok := n.Normalize(tt.raw)
			if !ok {
				t.Fatal("modifier press should produce an event")
			}
			if ev.VirtualKey != tt.wantVK {
				t.Errorf("virtual key = %#x, want %#x unchanged", ev.VirtualKey, tt.wantVK)
			}
			if ev.Adjustments.Has(AdjVirtualKeyAdjusted) {
				t.Error("left-variant modifier should not be marked adjusted")
			}
		})
	}
}

func TestNormalizeRightAltViaE0(t *testing.T) {
	n := NewNormalizer()

	ev, ok := n.Normalize(RawEvent{MakeCode: 0x38, VirtualKey: VKMenu, Flags: FlagE0})
	if !ok {
		t.Fatal("AltGr press should produce an event")
	}
	if ev.VirtualKey != VKRMenu {
		t.Errorf("virtual key = %#x, want VKRMenu", ev.VirtualKey)
	}
	if !ev.Adjustments.Has(AdjExtendedLookup) {
		t.Error("E0 report should carry the extended-lookup adjustment")
	}
}

func TestNormalizeMissingMakeCode(t *testing.T) {
	n := NewNormalizer()

	ev, ok := n.Normalize(RawEvent{MakeCode: 0, VirtualKey: 'Q'})
	if !ok {
		t.Fatal("synthesizable report should produce an event")
	}
	if ev.MakeCode != 0x10 {
		t.Errorf("make code = %#x, want 0x10 synthesized from VK", ev.MakeCode)
	}
	if !ev.Adjustments.Has(AdjMakeCodeMapped) {
		t.Error("synthesis should mark MakeCodeMapped")
	}
}

func TestNormalizeUnresolvableDiscarded(t *testing.T) {
	n := NewNormalizer()

	// 0x07 has no scan translation; the report has no usable identity.
	if _, ok := n.Normalize(RawEvent{MakeCode: 0, VirtualKey: 0x07}); ok {
		t.Error("report with no recoverable make code should be discarded")
	}
}

func TestNormalizeCustomMapper(t *testing.T) {
	n := NewNormalizerWithMapper(func(vk uint16) uint16 {
		if vk == 0xE8 {
			return 0x77
		}
		return 0
	})

	ev, ok := n.Normalize(RawEvent{MakeCode: 0, VirtualKey: 0xE8})
	if !ok {
		t.Fatal("custom mapper should resolve the report")
	}
	if ev.MakeCode != 0x77 {
		t.Errorf("make code = %#x, want 0x77", ev.MakeCode)
	}
}

func TestNormalizePendingConsumedOnce(t *testing.T) {
	n := NewNormalizer()

	n.Normalize(RawEvent{MakeCode: 0x1D, VirtualKey: VKControl, Flags: FlagE1})

	// The pending state is consumed by the next report regardless of its
	// content; a later 0x45 is NumLock again.
	if _, ok := n.Normalize(RawEvent{MakeCode: 0x1E, VirtualKey: 'A'}); !ok {
		t.Fatal("intervening key should produce an event")
	}

	ev, ok := n.Normalize(RawEvent{MakeCode: 0x45, VirtualKey: VKNumLock})
	if !ok {
		t.Fatal("0x45 should produce an event")
	}
	if ev.VirtualKey != VKNumLock {
		t.Errorf("virtual key = %#x, want VKNumLock after pending consumed", ev.VirtualKey)
	}
}

func TestNormalizerReset(t *testing.T) {
	n := NewNormalizer()

	n.Normalize(RawEvent{MakeCode: 0x1D, VirtualKey: VKControl, Flags: FlagE1})
	n.Reset()

	ev, ok := n.Normalize(RawEvent{MakeCode: 0x45, VirtualKey: VKNumLock})
	if !ok {
		t.Fatal("0x45 should produce an event")
	}
	if ev.VirtualKey == VKPause {
		t.Error("Reset should drop the pending E1 state")
	}
}
