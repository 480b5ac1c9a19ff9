// Package keynames resolves normalized key codes to display names.
//
// Two tables are provided: a scan-code table mapping lookup codes
// (make code, offset by 0x100 for extended keys) to a portable key code
// plus names in the SFML, raylib, and GLFW vocabularies, and a
// virtual-key table mapping virtual-key codes to their symbolic and
// friendly names. Both tables are built once from line-oriented text
// records and are immutable afterwards; lookups never fail, absent keys
// resolve to a designated fallback entry.
package keynames

import (
	"strconv"
	"strings"
)

// Fallback table keys. A constructed table always contains its fallback.
const (
	// ScanFallback is the scan-code table's fallback key.
	ScanFallback uint16 = 0x000

	// VKFallback is the virtual-key table's fallback key.
	VKFallback uint16 = 0xFF
)

// Entry is one scan-code table record: a portable key code and the
// key's name in the SFML, raylib, and GLFW vocabularies.
type Entry struct {
	// Code is a portable numeric key code, 0 when the key has none.
	Code int

	// Sml is the SFML scancode name.
	Sml string

	// Ray is the raylib key constant name.
	Ray string

	// Glfw is the GLFW key constant name.
	Glfw string
}

// VKEntry is one virtual-key table record.
type VKEntry struct {
	// Sym is the symbolic constant name, e.g. "VK_SHIFT".
	Sym string

	// Name is the friendly display name, e.g. "Shift".
	Name string
}

// ScanTable maps scan-code lookup codes to display entries.
type ScanTable struct {
	entries map[uint16]Entry
}

// VKTable maps virtual-key codes to display entries.
type VKTable struct {
	entries map[uint16]VKEntry
}

// Lookup resolves a lookup code. Absent codes resolve to the 0x000
// fallback entry.
func (t *ScanTable) Lookup(code uint16) Entry {
	if e, ok := t.entries[code]; ok {
		return e
	}
	return t.entries[ScanFallback]
}

// Len returns the number of entries, including the fallback.
func (t *ScanTable) Len() int {
	return len(t.entries)
}

// Lookup resolves a virtual-key code. Absent codes resolve to the 0xFF
// fallback entry.
func (t *VKTable) Lookup(vk uint16) VKEntry {
	if e, ok := t.entries[vk]; ok {
		return e
	}
	return t.entries[VKFallback]
}

// Len returns the number of entries, including the fallback.
func (t *VKTable) Len() int {
	return len(t.entries)
}

// ParseScanTable builds a scan-code table from text records of the form
//
//	hex_scan_code=decimal_key_code,sml,ray,glfw
//
// one per line. Malformed numeric fields degrade to 0 and the entry is
// still constructed; a degraded mapping beats a missing one. If the
// input lacks the 0x000 fallback record, an unknown-key fallback is
// synthesized so the lookup contract always holds.
func ParseScanTable(text string) *ScanTable {
	entries := make(map[uint16]Entry)

	for _, line := range splitLines(text) {
		key, rest, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		code, rest, _ := cutField(rest)
		sml, rest, _ := cutField(rest)
		ray, glfw, _ := cutField(rest)

		entries[parseUint16(key, 16)] = Entry{
			Code: parseInt(code, 10),
			Sml:  sml,
			Ray:  ray,
			Glfw: glfw,
		}
	}

	if _, ok := entries[ScanFallback]; !ok {
		entries[ScanFallback] = Entry{Sml: "Unknown", Ray: "KEY_NULL", Glfw: "GLFW_KEY_UNKNOWN"}
	}

	return &ScanTable{entries: entries}
}

// ParseVKTable builds a virtual-key table from text records of the form
//
//	hex_vk=sym,name
//
// one per line, with the same tolerant-parse policy as ParseScanTable
// and the 0xFF fallback synthesized when absent.
func ParseVKTable(text string) *VKTable {
	entries := make(map[uint16]VKEntry)

	for _, line := range splitLines(text) {
		key, rest, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		sym, name, _ := cutField(rest)

		entries[parseUint16(key, 16)] = VKEntry{Sym: sym, Name: name}
	}

	if _, ok := entries[VKFallback]; !ok {
		entries[VKFallback] = VKEntry{Sym: "VK__none_", Name: "Unknown"}
	}

	return &VKTable{entries: entries}
}

// splitLines yields trimmed, non-empty lines.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// cutField splits off the next comma-separated field.
func cutField(s string) (field, rest string, found bool) {
	field, rest, found = strings.Cut(s, ",")
	return strings.TrimSpace(field), rest, found
}

// parseUint16 parses a numeric field, accepting an optional 0x prefix
// for base-16 fields. Malformed input degrades to 0.
func parseUint16(s string, base int) uint16 {
	s = strings.TrimSpace(s)
	if base == 16 {
		s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	}
	v, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return 0
	}
	return uint16(v)
}

// parseInt parses a numeric field, malformed input degrades to 0.
func parseInt(s string, base int) int {
	v, err := strconv.ParseInt(strings.TrimSpace(s), base, 32)
	if err != nil {
		return 0
	}
	return int(v)
}
