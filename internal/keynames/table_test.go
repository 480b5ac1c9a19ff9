package keynames

import (
	"testing"
)

func TestParseScanTable(t *testing.T) {
	table := ParseScanTable(`
0x000=0,Unknown,KEY_NULL,GLFW_KEY_UNKNOWN
0x01E=65,A,KEY_A,GLFW_KEY_A
0x145=282,NumLock,KEY_NUM_LOCK,GLFW_KEY_NUM_LOCK
`)

	if table.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", table.Len())
	}

	e := table.Lookup(0x1E)
	if e.Code != 65 || e.Sml != "A" || e.Ray != "KEY_A" || e.Glfw != "GLFW_KEY_A" {
		t.Errorf("Lookup(0x1e) = %+v", e)
	}

	e = table.Lookup(0x145)
	if e.Sml != "NumLock" {
		t.Errorf("Lookup(0x145).Sml = %q, want NumLock", e.Sml)
	}
}

func TestParseScanTableFallback(t *testing.T) {
	table := ParseScanTable("0x000=0,Unknown,KEY_NULL,GLFW_KEY_UNKNOWN\n0x01E=65,A,KEY_A,GLFW_KEY_A\n")

	e := table.Lookup(0xBEEF)
	if e.Sml != "Unknown" {
		t.Errorf("absent key resolved to %+v, want the 0x000 fallback", e)
	}
}

func TestParseScanTableSynthesizesFallback(t *testing.T) {
	// Input without a 0x000 record still satisfies the lookup contract.
	table := ParseScanTable("0x01E=65,A,KEY_A,GLFW_KEY_A\n")

	e := table.Lookup(0x999)
	if e.Sml != "Unknown" || e.Code != 0 {
		t.Errorf("synthesized fallback = %+v", e)
	}
}

func TestParseScanTableTolerantNumerics(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"bad key code", "0x01E=sixtyfive,A,KEY_A,GLFW_KEY_A"},
		{"empty key code", "0x01E=,A,KEY_A,GLFW_KEY_A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := ParseScanTable(tt.line)
			e := table.Lookup(0x1E)
			if e.Code != 0 {
				t.Errorf("malformed numeric should degrade to 0, got %d", e.Code)
			}
			if e.Sml != "A" {
				t.Errorf("entry should still be constructed, got %+v", e)
			}
		})
	}
}

func TestParseScanTableMalformedKey(t *testing.T) {
	// A malformed scan code degrades to key 0, overwriting nothing vital;
	// lines without '=' are skipped entirely.
	table := ParseScanTable("garbage\nalso=1,X,KEY_X,GLFW_KEY_X\n0x01E=65,A,KEY_A,GLFW_KEY_A\n")

	if e := table.Lookup(0x1E); e.Sml != "A" {
		t.Errorf("well-formed line should survive malformed neighbors, got %+v", e)
	}
}

func TestParseVKTable(t *testing.T) {
	table := ParseVKTable(`
0x10=VK_SHIFT,Shift
0xA1=VK_RSHIFT,Right Shift
0xFF=VK__none_,Unknown
`)

	if table.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", table.Len())
	}

	e := table.Lookup(0xA1)
	if e.Sym != "VK_RSHIFT" || e.Name != "Right Shift" {
		t.Errorf("Lookup(0xa1) = %+v", e)
	}
}

func TestParseVKTableFallback(t *testing.T) {
	table := ParseVKTable("0x10=VK_SHIFT,Shift\n0xFF=VK__none_,Unknown\n")

	if e := table.Lookup(0xE8); e.Sym != "VK__none_" {
		t.Errorf("absent key resolved to %+v, want the 0xFF fallback", e)
	}

	// And synthesized when the data omits it.
	table = ParseVKTable("0x10=VK_SHIFT,Shift\n")
	if e := table.Lookup(0xE8); e.Name != "Unknown" {
		t.Errorf("synthesized fallback = %+v", e)
	}
}

func TestDefaultTables(t *testing.T) {
	scan := DefaultScanTable()
	vk := DefaultVKTable()

	tests := []struct {
		code uint16
		sml  string
	}{
		{0x01E, "A"},
		{0x039, "Space"},
		{0x045, "Pause"},
		{0x145, "NumLock"},
		{0x11D, "RControl"},
		{0x000, "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.sml, func(t *testing.T) {
			if e := scan.Lookup(tt.code); e.Sml != tt.sml {
				t.Errorf("scan Lookup(%#x).Sml = %q, want %q", tt.code, e.Sml, tt.sml)
			}
		})
	}

	if e := vk.Lookup(0xA3); e.Sym != "VK_RCONTROL" {
		t.Errorf("vk Lookup(0xa3) = %+v", e)
	}
	if e := vk.Lookup(0xFF); e.Name != "Unknown" {
		t.Errorf("vk fallback = %+v", e)
	}
}

func TestDefaultTablesShared(t *testing.T) {
	if DefaultScanTable() != DefaultScanTable() {
		t.Error("DefaultScanTable should return the shared instance")
	}
}
