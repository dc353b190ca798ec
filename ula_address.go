// ula_address.go - ZX Spectrum display file address encode/decode

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

/*
ula_address.go - Display File Address Codec

The ULA does not store the bitmap linearly. A pixel row Y (0-191) is spread
over the address like this:

  high byte: 0 1 0 Y7 Y6 Y2 Y1 Y0
  low byte:  Y5 Y4 Y3 X4 X3 X2 X1 X0

so the screen is split into three thirds of 64 rows, and inside each third the
rows of every 8x8 character cell are 256 bytes apart. X is the block column.

Attributes are linear: 0x5800 + row*32 + column.

All functions here are pure. Range checking is the caller's job; the screen
renderer panics on addresses outside the display file before decoding.
*/

package main

// ULABitmapLineAddress returns the display file address of the first block of
// pixel row line (0-191).
func ULABitmapLineAddress(line int) uint16 {
	l := uint16(line)
	return ULA_VRAM_BASE | (l<<5)&0x1800 | (l<<8)&0x0700 | (l<<2)&0x00E0
}

// ULABitmapAddress returns the display file address of block col on row line.
func ULABitmapAddress(line, col int) uint16 {
	return ULABitmapLineAddress(line) | uint16(col&0x1F)
}

// ULABitmapLine extracts the pixel row from a bitmap address.
func ULABitmapLine(addr uint16) int {
	h := uint8(addr >> 8)
	l := uint8(addr)
	y := (h & 0x07) | ((l >> 2) & 0x38) | ((h << 3) & 0xC0)
	return int(y)
}

// ULABitmapColumn extracts the block column (0-31) from a bitmap address.
func ULABitmapColumn(addr uint16) int {
	return int(uint8(addr) & 0x1F)
}

// ULAAttrAddress returns the address of the attribute for cell (row, col).
func ULAAttrAddress(row, col int) uint16 {
	return uint16(ULA_ATTR_START + row*ULA_ATTR_COLS + col)
}

// ULAAttrRow returns the attribute cell row (0-23) of an attribute address.
func ULAAttrRow(addr uint16) int {
	return int((addr - ULA_ATTR_START) / ULA_ATTR_COLS)
}

// ULAAttrColumn returns the attribute cell column (0-31) of an attribute address.
func ULAAttrColumn(addr uint16) int {
	return int((addr - ULA_ATTR_START) % ULA_ATTR_COLS)
}

// isULABitmapAddress reports whether addr lies in the bitmap section.
func isULABitmapAddress(addr uint16) bool {
	return addr >= ULA_BITMAP_START && addr <= ULA_BITMAP_END
}

// isULAAttrAddress reports whether addr lies in the attribute section.
func isULAAttrAddress(addr uint16) bool {
	return addr >= ULA_ATTR_START && addr <= ULA_ATTR_END
}
