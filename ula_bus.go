// ula_bus.go - Z80-side memory/port bus that feeds the ULA screen.

package main

import (
	"fmt"
	"io"
)

// ZXBus is the CPU core's view of the 48K address space and the ULA port.
// It carries the T-state counter of the current frame and forwards every
// display file store and border write to the screen at that clock.
type ZXBus struct {
	ram    [0x10000]byte
	screen *ULAScreen
	specs  ZXSpecs
	clock  uint64
	frames uint64
}

func NewZXBus(screen *ULAScreen) *ZXBus {
	return &ZXBus{
		screen: screen,
		specs:  screen.Specs(),
	}
}

func (b *ZXBus) Read(addr uint16) byte {
	return b.ram[addr]
}

// Write stores a byte. The ROM below 0x4000 is read-only.
func (b *ZXBus) Write(addr uint16, value byte) {
	if addr < ULA_VRAM_BASE {
		return
	}
	switch {
	case isULABitmapAddress(addr):
		b.screen.WriteBitmapByte(addr, b.clock, value)
	case isULAAttrAddress(addr):
		b.screen.WriteAttrByte(addr, b.clock, value)
	}
	b.ram[addr] = value
}

func (b *ZXBus) In(port uint16) byte {
	return 0xFF
}

// Out handles port writes. Any even port reaches the ULA.
func (b *ZXBus) Out(port uint16, value byte) {
	if port&0x01 == 0 {
		b.screen.SetBorder(value&0x07, b.clock)
	}
}

// Tick advances the frame clock.
func (b *ZXBus) Tick(cycles int) {
	b.clock += uint64(cycles)
}

// Clock returns the T-state count since the start of the frame.
func (b *ZXBus) Clock() uint64 {
	return b.clock
}

// Frames returns the number of completed frames.
func (b *ZXBus) Frames() uint64 {
	return b.frames
}

// FrameDue reports whether the clock has reached the end of the frame.
func (b *ZXBus) FrameDue() bool {
	return b.clock >= uint64(b.specs.ClocksFrame)
}

// EndFrame closes the current frame: the screen redraws and the clock moves
// back by one frame length, keeping any overshoot.
func (b *ZXBus) EndFrame() {
	b.screen.NewFrame()
	b.frames++
	if b.clock >= uint64(b.specs.ClocksFrame) {
		b.clock -= uint64(b.specs.ClocksFrame)
	} else {
		b.clock = 0
	}
}

// LoadSCR copies a 6912 byte screen dump into the display file through the
// normal write path at the current clock.
func (b *ZXBus) LoadSCR(r io.Reader) error {
	data := make([]byte, ULA_VRAM_SIZE)
	if _, err := io.ReadFull(r, data); err != nil {
		return fmt.Errorf("load scr: need %d bytes: %w", ULA_VRAM_SIZE, err)
	}
	for i, v := range data {
		b.Write(uint16(ULA_VRAM_BASE+i), v)
	}
	return nil
}
