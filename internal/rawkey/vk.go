package rawkey

// Virtual-key codes used by the normalizer. The values are the standard
// Windows virtual-key set; only the codes the decision procedure touches
// are named here, the full display mapping lives in the keynames tables.
const (
	VKBack    uint16 = 0x08
	VKTab     uint16 = 0x09
	VKReturn  uint16 = 0x0D
	VKShift   uint16 = 0x10
	VKControl uint16 = 0x11
	VKMenu    uint16 = 0x12
	VKPause   uint16 = 0x13
	VKCapital uint16 = 0x14
	VKEscape  uint16 = 0x1B
	VKSpace   uint16 = 0x20

	VKPrior    uint16 = 0x21
	VKNext     uint16 = 0x22
	VKEnd      uint16 = 0x23
	VKHome     uint16 = 0x24
	VKLeft     uint16 = 0x25
	VKUp       uint16 = 0x26
	VKRight    uint16 = 0x27
	VKDown     uint16 = 0x28
	VKSnapshot uint16 = 0x2C
	VKInsert   uint16 = 0x2D
	VKDelete   uint16 = 0x2E

	VKLWin uint16 = 0x5B
	VKRWin uint16 = 0x5C
	VKApps uint16 = 0x5D

	VKNumpad0  uint16 = 0x60
	VKMultiply uint16 = 0x6A
	VKAdd      uint16 = 0x6B
	VKSubtract uint16 = 0x6D
	VKDecimal  uint16 = 0x6E
	VKDivide   uint16 = 0x6F

	VKF1  uint16 = 0x70
	VKF11 uint16 = 0x7A
	VKF12 uint16 = 0x7B

	VKNumLock uint16 = 0x90
	VKScroll  uint16 = 0x91

	VKLShift   uint16 = 0xA0
	VKRShift   uint16 = 0xA1
	VKLControl uint16 = 0xA2
	VKRControl uint16 = 0xA3
	VKLMenu    uint16 = 0xA4
	VKRMenu    uint16 = 0xA5

	VKOem1      uint16 = 0xBA // ;:
	VKOemPlus   uint16 = 0xBB
	VKOemComma  uint16 = 0xBC
	VKOemMinus  uint16 = 0xBD
	VKOemPeriod uint16 = 0xBE
	VKOem2      uint16 = 0xBF // /?
	VKOem3      uint16 = 0xC0 // `~
	VKOem4      uint16 = 0xDB // [{
	VKOem5      uint16 = 0xDC // \|
	VKOem6      uint16 = 0xDD // ]}
	VKOem7      uint16 = 0xDE // '"
)

// ScanMapper translates a virtual-key code to a scan code, returning 0
// when no translation exists. It stands in for the OS virtual-key to
// scan-code translation used when a report omits its make code.
type ScanMapper func(vk uint16) uint16

// vkScanMap is the US-layout translation table backing DefaultScanMapper.
var vkScanMap = map[uint16]uint16{
	VKBack:    0x0E,
	VKTab:     0x0F,
	VKReturn:  0x1C,
	VKShift:   0x2A, // generic Shift maps to the left variant
	VKControl: 0x1D,
	VKMenu:    0x38,
	VKPause:   0x45,
	VKCapital: 0x3A,
	VKEscape:  0x01,
	VKSpace:   0x39,

	VKPrior:    0x49,
	VKNext:     0x51,
	VKEnd:      0x4F,
	VKHome:     0x47,
	VKLeft:     0x4B,
	VKUp:       0x48,
	VKRight:    0x4D,
	VKDown:     0x50,
	VKSnapshot: 0x54,
	VKInsert:   0x52,
	VKDelete:   0x53,

	// '0'-'9'
	0x30: 0x0B, 0x31: 0x02, 0x32: 0x03, 0x33: 0x04, 0x34: 0x05,
	0x35: 0x06, 0x36: 0x07, 0x37: 0x08, 0x38: 0x09, 0x39: 0x0A,

	// 'A'-'Z'
	0x41: 0x1E, 0x42: 0x30, 0x43: 0x2E, 0x44: 0x20, 0x45: 0x12,
	0x46: 0x21, 0x47: 0x22, 0x48: 0x23, 0x49: 0x17, 0x4A: 0x24,
	0x4B: 0x25, 0x4C: 0x26, 0x4D: 0x32, 0x4E: 0x31, 0x4F: 0x18,
	0x50: 0x19, 0x51: 0x10, 0x52: 0x13, 0x53: 0x1F, 0x54: 0x14,
	0x55: 0x16, 0x56: 0x2F, 0x57: 0x11, 0x58: 0x2D, 0x59: 0x15,
	0x5A: 0x2C,

	VKLWin: 0x5B,
	VKRWin: 0x5C,
	VKApps: 0x5D,

	// Numpad 0-9
	0x60: 0x52, 0x61: 0x4F, 0x62: 0x50, 0x63: 0x51, 0x64: 0x4B,
	0x65: 0x4C, 0x66: 0x4D, 0x67: 0x47, 0x68: 0x48, 0x69: 0x49,

	VKMultiply: 0x37,
	VKAdd:      0x4E,
	VKSubtract: 0x4A,
	VKDecimal:  0x53,
	VKDivide:   0x35,

	// F1-F12
	0x70: 0x3B, 0x71: 0x3C, 0x72: 0x3D, 0x73: 0x3E, 0x74: 0x3F,
	0x75: 0x40, 0x76: 0x41, 0x77: 0x42, 0x78: 0x43, 0x79: 0x44,
	0x7A: 0x57, 0x7B: 0x58,

	VKNumLock: 0x45,
	VKScroll:  0x46,

	VKLShift:   0x2A,
	VKRShift:   0x36,
	VKLControl: 0x1D,
	VKRControl: 0x1D,
	VKLMenu:    0x38,
	VKRMenu:    0x38,

	VKOem1:      0x27,
	VKOemPlus:   0x0D,
	VKOemComma:  0x33,
	VKOemMinus:  0x0C,
	VKOemPeriod: 0x34,
	VKOem2:      0x35,
	VKOem3:      0x29,
	VKOem4:      0x1A,
	VKOem5:      0x2B,
	VKOem6:      0x1B,
	VKOem7:      0x28,
}

// DefaultScanMapper translates using the built-in US-layout table.
// Unknown virtual keys map to 0.
func DefaultScanMapper(vk uint16) uint16 {
	return vkScanMap[vk]
}
