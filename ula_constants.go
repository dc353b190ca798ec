// ula_constants.go - ZX Spectrum ULA display file layout and screen constants

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
ula_constants.go - ZX Spectrum ULA Screen Constants

This file defines the display file layout, the frame geometry and the beam
timing offsets used by the ULA screen renderer.

Display File:
  - Bitmap:     0x4000-0x57FF (6144 bytes, non-linear row order)
  - Attributes: 0x5800-0x5AFF (768 bytes, 32x24 cells, linear)

Frame Geometry:
  - Canvas: 256x192 pixels (32x192 blocks of 8x1, 32x24 cells of 8x8)
  - Border: 32 pixels left/right, 24 pixels top/bottom → 320x240 frame
  - Output: RGBA, 4 bytes per pixel, row-major

Attribute Byte Format:
  Bit 7: FLASH (swap INK/PAPER while the flash phase is set)
  Bit 6: BRIGHT (full intensity for both INK and PAPER)
  Bits 5-3: PAPER (background color, 0-7)
  Bits 2-0: INK (foreground color, 0-7)
*/

package main

// =============================================================================
// ULA Display File Layout
// =============================================================================

const (
	// Display file base address (bitmap starts here)
	ULA_VRAM_BASE = 0x4000

	// Bitmap section: 6144 bytes (256x192 / 8)
	ULA_BITMAP_START = 0x4000
	ULA_BITMAP_END   = 0x57FF
	ULA_BITMAP_SIZE  = ULA_BITMAP_END - ULA_BITMAP_START + 1

	// Attribute section: 768 bytes (32x24 cells)
	ULA_ATTR_START = 0x5800
	ULA_ATTR_END   = 0x5AFF
	ULA_ATTR_SIZE  = ULA_ATTR_END - ULA_ATTR_START + 1

	// Total display file size, also the size of a .scr dump
	ULA_VRAM_SIZE = ULA_BITMAP_SIZE + ULA_ATTR_SIZE // 6912 bytes
)

// =============================================================================
// ULA Frame Geometry
// =============================================================================

const (
	// Canvas (the area driven by the display file)
	ULA_CANVAS_WIDTH  = 256
	ULA_CANVAS_HEIGHT = 192

	// Canvas origin inside the frame, equal to the border thickness
	ULA_CANVAS_X = 32
	ULA_CANVAS_Y = 24

	// Total frame dimensions (canvas + border)
	ULA_FRAME_WIDTH  = ULA_CANVAS_WIDTH + ULA_CANVAS_X*2  // 320
	ULA_FRAME_HEIGHT = ULA_CANVAS_HEIGHT + ULA_CANVAS_Y*2 // 240

	ULA_BYTES_PER_PIXEL = 4
	ULA_PIXEL_COUNT     = ULA_FRAME_WIDTH * ULA_FRAME_HEIGHT
	ULA_TEXTURE_SIZE    = ULA_PIXEL_COUNT * ULA_BYTES_PER_PIXEL

	// One bitmap byte covers an 8x1 block, one attribute an 8x8 cell
	ULA_BLOCK_WIDTH = 8
	ULA_CELL_HEIGHT = 8
	ULA_ATTR_COLS   = ULA_CANVAS_WIDTH / ULA_BLOCK_WIDTH  // 32
	ULA_ATTR_ROWS   = ULA_CANVAS_HEIGHT / ULA_CELL_HEIGHT // 24

	// Border patch painted by SetBorder (top-left corner only)
	ULA_BORDER_PATCH = 16
)

// =============================================================================
// ULA Timing Constants
// =============================================================================

const (
	// Flash toggle interval in frames (full flash cycle = 64 frames)
	ULA_FLASH_FRAMES = 32

	// Contention starts one T-state before the first pixel; the beam reaches a
	// block two T-states after ClocksFirstPixel.
	ULA_BEAM_ORIGIN_DELAY = 2

	// Two adjacent blocks (16 pixels) are fetched every 8 T-states
	ULA_CLOCKS_PER_BLOCK_PAIR = 8
)

// =============================================================================
// ULA Port and Palette Intensities
// =============================================================================

const (
	// Z80: ULA via port I/O at 0xFE; any even port selects the ULA.
	// Bits 0-2 = border color, bit 3 = MIC, bit 4 = EAR
	Z80_ULA_PORT = 0xFE

	// Channel intensity for BRIGHT=0 and BRIGHT=1
	ULA_INTENSITY_NORMAL = 0x88
	ULA_INTENSITY_BRIGHT = 0xFF

	// Saturated 205 level table used by the "vivid" palette
	ULA_INTENSITY_VIVID = 0xCD
)
