package rawkey

// Sequence tracks a pending multi-byte scan-code prefix between reports.
// The AT scan-code set prefixes certain keys with a lead-in report (the
// E1 byte for Pause/Break, the fake left-shift 0xE0 0x2A pair for some
// E0 keys); the lead-in itself is not a key press, it only qualifies the
// report that follows.
type Sequence int

const (
	// SeqNone indicates no prefix is pending.
	SeqNone Sequence = iota

	// SeqE0 indicates a fake left-shift E0 lead-in was absorbed.
	SeqE0

	// SeqE1 indicates an E1 lead-in was absorbed.
	SeqE1
)

// String returns the sequence state name.
func (s Sequence) String() string {
	switch s {
	case SeqNone:
		return "None"
	case SeqE0:
		return "E0"
	case SeqE1:
		return "E1"
	default:
		return "Unknown"
	}
}
