package rawkey

// overrunMakeCode is the keyboard buffer-overrun sentinel. Reports
// carrying it mark dropped input, not a real key.
const overrunMakeCode = 0xFF

// fakeShiftMakeCode is the make code of the fake left-shift report that
// leads in a genuine E0 sequence.
const fakeShiftMakeCode = 0x2A

// pauseNumLockMakeCode is shared by Pause/Break (after an E1 lead-in)
// and NumLock (without one).
const pauseNumLockMakeCode = 0x45

// Normalizer turns raw keyboard reports into normalized events. It
// carries the pending prefix-sequence state across reports; one
// Normalizer serves one input source and is not safe for concurrent use.
type Normalizer struct {
	pending Sequence
	mapper  ScanMapper
}

// NewNormalizer creates a normalizer using the built-in virtual-key to
// scan-code translation.
func NewNormalizer() *Normalizer {
	return NewNormalizerWithMapper(DefaultScanMapper)
}

// NewNormalizerWithMapper creates a normalizer with a custom virtual-key
// to scan-code translation, used when make-code synthesis should defer
// to the OS layout.
func NewNormalizerWithMapper(mapper ScanMapper) *Normalizer {
	if mapper == nil {
		mapper = DefaultScanMapper
	}
	return &Normalizer{mapper: mapper}
}

// Pending returns the current prefix-sequence state.
func (n *Normalizer) Pending() Sequence {
	return n.pending
}

// Reset clears any pending prefix-sequence state.
func (n *Normalizer) Reset() {
	n.pending = SeqNone
}

// Normalize processes one raw report. It returns the normalized event
// and true, or a zero event and false when the report produces no
// displayable key: overrun markers, prefix lead-ins, and reports whose
// key identity cannot be recovered are all silently discarded.
func (n *Normalizer) Normalize(raw RawEvent) (Event, bool) {
	if raw.MakeCode == overrunMakeCode {
		return Event{}, false
	}

	// Prefix lead-ins qualify the next report and are not keys themselves.
	if raw.Flags.Has(FlagE1) {
		n.pending = SeqE1
		return Event{}, false
	}
	if raw.Flags.Has(FlagE0) && raw.MakeCode == fakeShiftMakeCode {
		n.pending = SeqE0
		return Event{}, false
	}

	pending := n.pending
	n.pending = SeqNone

	ev := NewEvent(raw)

	if ev.MakeCode == 0 {
		// Flags are still set correctly even when the make code is missing.
		ev.MakeCode = n.mapper(ev.VirtualKey)
		ev.Adjustments |= AdjMakeCodeMapped
		if ev.MakeCode == 0 {
			return Event{}, false
		}
	}

	if ev.MakeCode == pauseNumLockMakeCode {
		if pending == SeqE1 {
			// Must be Pause/Break
			ev.VirtualKey = VKPause
			ev.Adjustments |= AdjVirtualKeyAdjusted
		} else {
			// Must be NumLock
			ev.Adjustments |= AdjExtendedLookup
		}
	}

	// Resolve shared modifier codes to their left/right variants. The
	// generic code already denotes the left key when E0 is absent.
	isE0 := ev.Flags.Has(FlagE0)
	switch ev.VirtualKey {
	case VKShift:
		switch ev.MakeCode {
		case 0x2A:
			ev.VirtualKey = VKLShift
			ev.Adjustments |= AdjVirtualKeyAdjusted
		case 0x36:
			ev.VirtualKey = VKRShift
			ev.Adjustments |= AdjVirtualKeyAdjusted
		}
	case VKControl:
		if isE0 {
			ev.VirtualKey = VKRControl
			ev.Adjustments |= AdjVirtualKeyAdjusted
		}
	case VKMenu:
		if isE0 {
			ev.VirtualKey = VKRMenu
			ev.Adjustments |= AdjVirtualKeyAdjusted
		}
	}

	return ev, true
}
