// video_ula.go - ZX Spectrum ULA screen renderer with beam timing

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
video_ula.go - ZX Spectrum ULA Screen Renderer

This module rebuilds the visible frame from the display file while following
the beam of the real hardware. Every display file store arrives with the
T-state count of the current frame, and the renderer decides whether the
beam has already scanned the affected pixels:

- beam not there yet: the block is redrawn at once, so this frame shows it
- beam already past:  only the grids change, the pixels stay stale until the
                      full redraw in NewFrame

This is what makes "racing the beam" effects and mid-scan tearing appear the
same way they did on the real machine.

Signal Flow:
1. CPU core stores to 0x4000-0x5AFF → WriteBitmapByte / WriteAttrByte
2. CPU core writes port 0xFE       → SetBorder
3. Frame boundary                  → NewFrame (flash + full redraw)
4. Presentation layer              → CloneTexture

Everything here is synchronous and single-threaded; the caller must deliver
writes in program order with non-decreasing clocks inside a frame.
*/

package main

import (
	"fmt"
)

// ULAScreen owns the bitmap grid, the attribute grid and the RGBA texture.
type ULAScreen struct {
	machine ZXMachine
	specs   ZXSpecs
	palette ULAPalette

	bitmap     [ULA_CANVAS_HEIGHT][ULA_ATTR_COLS]uint8
	attributes [ULA_ATTR_ROWS][ULA_ATTR_COLS]ULAAttribute

	// RGBA frame, ULA_FRAME_WIDTH x ULA_FRAME_HEIGHT
	buffer []byte

	border       uint8
	flash        bool
	frameCounter uint64
}

// NewULAScreen creates a screen bound to a machine model and a palette. The
// texture is fully populated on return: opaque black border and a canvas
// drawn from the zeroed grids.
func NewULAScreen(machine ZXMachine, palette ULAPalette) *ULAScreen {
	s := &ULAScreen{
		machine: machine,
		specs:   machine.Specs(),
		palette: NewULAPalette(palette.Name, palette.Normal, palette.Bright),
		buffer:  make([]byte, ULA_TEXTURE_SIZE),
	}

	black := s.palette.RGBA(ULAAttribute{}, false, false)
	for i := 0; i < len(s.buffer); i += ULA_BYTES_PER_PIXEL {
		copy(s.buffer[i:i+ULA_BYTES_PER_PIXEL], black[:])
	}
	s.redrawCanvas()

	return s
}

// SetBorder changes the border color. Only the ink bits of colorByte matter.
//
// The border model is partial: the 16x16 patch at the frame origin is
// painted and the rest of the border keeps its previous content. clock is
// accepted for API symmetry with the display file writes and is not used.
func (s *ULAScreen) SetBorder(colorByte uint8, clock uint64) {
	s.border = colorByte & 0x07

	attr := ULAAttributeFromByte(colorByte)
	color := s.palette.RGBA(attr, true, false)
	for y := range ULA_BORDER_PATCH {
		row := y * ULA_FRAME_WIDTH * ULA_BYTES_PER_PIXEL
		for x := range ULA_BORDER_PATCH {
			pixel := row + x*ULA_BYTES_PER_PIXEL
			copy(s.buffer[pixel:pixel+ULA_BYTES_PER_PIXEL], color[:])
		}
	}
}

// NewFrame runs the frame boundary work: advance the flash phase every
// ULA_FLASH_FRAMES frames and redraw the whole canvas from the grids, which
// catches up on every write the beam had already passed.
func (s *ULAScreen) NewFrame() {
	s.frameCounter++
	if s.frameCounter%ULA_FLASH_FRAMES == 0 {
		s.flash = !s.flash
	}
	s.redrawCanvas()
}

func (s *ULAScreen) redrawCanvas() {
	for line := range ULA_CANVAS_HEIGHT {
		for col := range ULA_ATTR_COLS {
			s.updateBufferBlock(line, col)
		}
	}
}

// updateBufferBlock redraws one 8x1 block from the grids.
func (s *ULAScreen) updateBufferBlock(line, col int) {
	data := s.bitmap[line][col]
	attr := s.attributes[line/ULA_CELL_HEIGHT][col]

	// Resolve colors once per block
	inkColor := s.palette.RGBA(attr, true, s.flash)
	paperColor := s.palette.RGBA(attr, false, s.flash)

	base := ((line+ULA_CANVAS_Y)*ULA_FRAME_WIDTH + ULA_CANVAS_X + col*ULA_BLOCK_WIDTH) * ULA_BYTES_PER_PIXEL
	for bit := range ULA_BLOCK_WIDTH {
		pixel := base + bit*ULA_BYTES_PER_PIXEL
		if (data<<bit)&0x80 != 0 {
			copy(s.buffer[pixel:pixel+ULA_BYTES_PER_PIXEL], inkColor[:])
		} else {
			copy(s.buffer[pixel:pixel+ULA_BYTES_PER_PIXEL], paperColor[:])
		}
	}
}

// beamOrigin is the T-state at which the beam reaches column col of canvas
// row 0.
func (s *ULAScreen) beamOrigin(col int) uint64 {
	return uint64(s.specs.ClocksFirstPixel+ULA_BEAM_ORIGIN_DELAY) +
		uint64((col/2)*ULA_CLOCKS_PER_BLOCK_PAIR)
}

// lineTime is the T-state at which the beam reaches block col of row line.
func (s *ULAScreen) lineTime(line, col int) uint64 {
	return s.beamOrigin(col) + uint64(line*s.specs.ClocksLine)
}

// WriteBitmapByte stores a bitmap byte written at T-state clock.
// Panics when addr is outside 0x4000-0x57FF.
func (s *ULAScreen) WriteBitmapByte(addr uint16, clock uint64, data uint8) {
	if !isULABitmapAddress(addr) {
		panic(fmt.Sprintf("WriteBitmapByte: address $%04X outside bitmap $%04X-$%04X",
			addr, ULA_BITMAP_START, ULA_BITMAP_END))
	}
	line := ULABitmapLine(addr)
	col := ULABitmapColumn(addr)
	s.bitmap[line][col] = data

	if clock < s.lineTime(line, col) {
		s.updateBufferBlock(line, col)
	}
}

// WriteAttrByte stores an attribute written at T-state clock. Only the rows
// of the cell the beam has not scanned yet are redrawn now.
// Panics when addr is outside 0x5800-0x5AFF.
func (s *ULAScreen) WriteAttrByte(addr uint16, clock uint64, value uint8) {
	if !isULAAttrAddress(addr) {
		panic(fmt.Sprintf("WriteAttrByte: address $%04X outside attributes $%04X-$%04X",
			addr, ULA_ATTR_START, ULA_ATTR_END))
	}
	row := ULAAttrRow(addr)
	col := ULAAttrColumn(addr)
	s.attributes[row][col] = ULAAttributeFromByte(value)

	// Row the beam is on for this column; 0 before the first pixel
	origin := s.beamOrigin(col)
	beamLine := 0
	if clock >= origin {
		beamLine = int((clock-origin)/uint64(s.specs.ClocksLine)) + 1
	}

	firstLine := row * ULA_CELL_HEIGHT
	var blockTime uint64
	switch {
	case beamLine <= firstLine:
		blockTime = s.lineTime(firstLine, col)
	case beamLine < firstLine+ULA_CELL_HEIGHT:
		blockTime = s.lineTime(firstLine+beamLine%ULA_CELL_HEIGHT, col)
	default:
		blockTime = s.lineTime(firstLine+ULA_CELL_HEIGHT-1, col)
	}

	if clock < blockTime {
		for line := beamLine%ULA_CELL_HEIGHT + firstLine; line < firstLine+ULA_CELL_HEIGHT; line++ {
			s.updateBufferBlock(line, col)
		}
	}
}

// CloneTexture returns the RGBA frame. The slice aliases the renderer's
// buffer and must be treated as read-only; copy it to keep a frame.
func (s *ULAScreen) CloneTexture() []byte {
	return s.buffer
}

// Dimensions returns the frame size in pixels.
func (s *ULAScreen) Dimensions() (w, h int) {
	return ULA_FRAME_WIDTH, ULA_FRAME_HEIGHT
}

// FlashPhase reports whether flashing cells currently show swapped colors.
func (s *ULAScreen) FlashPhase() bool {
	return s.flash
}

// FrameCount returns the number of NewFrame calls so far.
func (s *ULAScreen) FrameCount() uint64 {
	return s.frameCounter
}

// Border returns the last border color (0-7).
func (s *ULAScreen) Border() uint8 {
	return s.border
}

// Machine returns the machine model the screen times against.
func (s *ULAScreen) Machine() ZXMachine {
	return s.machine
}

// Specs returns the timing constants in use.
func (s *ULAScreen) Specs() ZXSpecs {
	return s.specs
}
