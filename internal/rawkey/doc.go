// Package rawkey normalizes raw PC keyboard input events.
//
// The raw-input facility delivers keyboard reports as a make code (AT
// scan code), a virtual-key code, and a small set of flag bits. The
// encoding carries historical baggage: two-byte E0/E1 prefix sequences,
// shared virtual-key codes for the left/right modifier pairs, and
// synthetic presses that omit the make code entirely. This package
// reconstructs a canonical key identity from that stream:
//
//   - RawEvent: one report as delivered by the input layer
//   - Event: a normalized report plus the adjustments applied to it
//   - Normalizer: the stateful decoder that turns the former into the latter
//   - Packed: a 32-bit lossless encoding of an Event for opaque storage
//
// A Normalizer is single-writer state for one input source. Processing
// never fails; reports that carry no usable key identity are discarded.
package rawkey
