// Package viewer renders the normalized event log as a terminal table.
package viewer

import (
	"fmt"

	"github.com/keyscope/keyscope/internal/config"
	"github.com/keyscope/keyscope/internal/keynames"
	"github.com/keyscope/keyscope/internal/rawkey"
)

// Column indices of the event table.
const (
	ColSym = iota
	ColName
	ColVKey
	ColMake
	ColFlags
	ColKey
	ColCode
	numColumns
)

// columnTitles are the header captions, in column order.
var columnTitles = [numColumns]string{"Sym", "Name", "VKey", "Make", "Flags", "Key", "Code"}

// columnWidths are the minimum cell widths, in column order.
var columnWidths = [numColumns]int{20, 16, 10, 10, 12, 24, 8}

// naText is shown for key codes with no portable value.
const naText = "n/a"

// Row is one rendered table row.
type Row struct {
	// Cells holds the formatted cell text, in column order.
	Cells [numColumns]string

	// Emphasis marks cells whose underlying value was adjusted during
	// normalization, rendered bold as a hint to the user.
	Emphasis [numColumns]bool

	// Down is true for key presses, shown with a distinct row marker.
	Down bool
}

// formatter renders packed events into rows using the lookup tables and
// the configured column formats.
type formatter struct {
	scan    *keynames.ScanTable
	vk      *keynames.VKTable
	formats config.ColumnFormats
}

// Render formats one packed event.
func (f *formatter) Render(p rawkey.Packed) Row {
	ev := p.Event()

	vkEntry := f.vk.Lookup(ev.VirtualKey)
	scanEntry := f.scan.Lookup(ev.LookupCode())

	var row Row
	row.Down = ev.Down
	row.Cells[ColSym] = vkEntry.Sym
	row.Cells[ColName] = vkEntry.Name
	row.Cells[ColVKey] = formatNumeric(ev.VirtualKey, f.formats.VKey, 2)
	row.Cells[ColMake] = formatNumeric(ev.MakeCode, f.formats.Make, 2)
	row.Cells[ColFlags] = formatNumeric(uint16(ev.Flags), f.formats.Flags, 2)
	row.Cells[ColKey] = vocabularyName(scanEntry, f.formats.Key)
	row.Cells[ColCode] = formatCode(scanEntry.Code, f.formats.Code)

	// Bold the columns the normalizer rewrote: the virtual-key columns
	// for a VK substitution, the make column for a synthesized code.
	if ev.Adjustments.Has(rawkey.AdjVirtualKeyAdjusted) {
		row.Emphasis[ColSym] = true
		row.Emphasis[ColName] = true
		row.Emphasis[ColVKey] = true
	}
	if ev.Adjustments.Has(rawkey.AdjMakeCodeMapped) {
		row.Emphasis[ColMake] = true
	}

	return row
}

// formatNumeric renders v in the selected base; width is the minimum
// digit count for hex output.
func formatNumeric(v uint16, format string, width int) string {
	switch format {
	case config.FormatHex:
		return fmt.Sprintf("%#0*x", width, v)
	case config.FormatBin:
		return fmt.Sprintf("%#08b", v)
	default:
		return fmt.Sprintf("%d", v)
	}
}

// vocabularyName picks the scan entry's name in the selected vocabulary.
func vocabularyName(e keynames.Entry, format string) string {
	switch format {
	case config.FormatRay:
		return e.Ray
	case config.FormatGlfw:
		return e.Glfw
	default:
		return e.Sml
	}
}

// formatCode renders the portable key code, or naText when the key has
// none.
func formatCode(code int, format string) string {
	if code <= 0 {
		return naText
	}
	return formatNumeric(uint16(code), format, 3)
}

// cycleFormat advances a column to its next display format.
func cycleFormat(col int, formats *config.ColumnFormats) {
	switch col {
	case ColVKey:
		formats.VKey = nextNumeric(formats.VKey)
	case ColMake:
		formats.Make = nextNumeric(formats.Make)
	case ColFlags:
		formats.Flags = nextNumeric(formats.Flags)
	case ColKey:
		formats.Key = nextVocabulary(formats.Key)
	case ColCode:
		formats.Code = nextNumeric(formats.Code)
	}
}

func nextNumeric(format string) string {
	switch format {
	case config.FormatDec:
		return config.FormatHex
	case config.FormatHex:
		return config.FormatBin
	default:
		return config.FormatDec
	}
}

func nextVocabulary(format string) string {
	switch format {
	case config.FormatSml:
		return config.FormatRay
	case config.FormatRay:
		return config.FormatGlfw
	default:
		return config.FormatSml
	}
}
