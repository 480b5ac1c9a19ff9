package rawkey

// Packed is a 32-bit encoding of an Event, laid out as four bytes
// {makeCode, flags, virtualKey, adjustments} from least significant to
// most. It lets an event ride along as an opaque per-row payload and be
// reconstructed on demand without a side table.
//
// Packing then unpacking reproduces the event exactly whenever each
// field fits in 8 bits. Wider values are silently truncated; the codec
// performs no validation and never fails.
type Packed uint32

// Pack encodes an event into its 32-bit representation.
func Pack(e Event) Packed {
	return Packed(uint32(e.MakeCode&0xFF) |
		uint32(e.Flags&0xFF)<<8 |
		uint32(e.VirtualKey&0xFF)<<16 |
		uint32(e.Adjustments)<<24)
}

// Event decodes the packed representation. Down is reconstructed from
// the break bit of the restored flags byte.
func (p Packed) Event() Event {
	raw := RawEvent{
		MakeCode:   uint16(p & 0xFF),
		VirtualKey: uint16(p >> 16 & 0xFF),
		Flags:      Flag(p >> 8 & 0xFF),
	}
	return Event{
		RawEvent:    raw,
		Adjustments: Adjustment(p >> 24),
		Down:        !raw.Flags.Has(FlagBreak),
	}
}

// MakeCode returns the make-code byte without decoding the whole event.
func (p Packed) MakeCode() uint16 {
	return uint16(p & 0xFF)
}

// VirtualKey returns the virtual-key byte without decoding the whole event.
func (p Packed) VirtualKey() uint16 {
	return uint16(p >> 16 & 0xFF)
}
