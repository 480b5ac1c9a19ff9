package keynames

import (
	_ "embed"
	"sync"
)

//go:embed data/scancodes.txt
var scanCodeData string

//go:embed data/vkeys.txt
var vkeyData string

var (
	defaultOnce sync.Once
	defaultScan *ScanTable
	defaultVK   *VKTable
)

// DefaultScanTable returns the scan-code table built from the bundled
// mapping data. The table is constructed once and shared; it is safe
// for concurrent readers.
func DefaultScanTable() *ScanTable {
	defaultOnce.Do(buildDefaults)
	return defaultScan
}

// DefaultVKTable returns the virtual-key table built from the bundled
// mapping data.
func DefaultVKTable() *VKTable {
	defaultOnce.Do(buildDefaults)
	return defaultVK
}

func buildDefaults() {
	defaultScan = ParseScanTable(scanCodeData)
	defaultVK = ParseVKTable(vkeyData)
}
