// ula_machine.go - ZX Spectrum machine models and their frame timings

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

package main

import (
	"fmt"
	"strings"
)

// ZXMachine selects the hardware model whose beam timing the screen follows.
type ZXMachine int

const (
	ZXSpectrum48K ZXMachine = iota
	ZXSpectrum128K
)

// ZXSpecs holds the per-model timing constants, all in CPU T-states.
type ZXSpecs struct {
	Name string

	// CPU clock in Hz
	CPUHz int

	// T-state at which the beam starts the first canvas row
	ClocksFirstPixel int

	// T-states per scanline, including border and retrace
	ClocksLine int

	// T-states per frame (the interrupt period)
	ClocksFrame int

	// Length of the INT pulse
	InterruptLength int
}

var zxSpecs = [...]ZXSpecs{
	ZXSpectrum48K: {
		Name:             "48K",
		CPUHz:            3_500_000,
		ClocksFirstPixel: 14336,
		ClocksLine:       224,
		ClocksFrame:      69888,
		InterruptLength:  32,
	},
	ZXSpectrum128K: {
		Name:             "128K",
		CPUHz:            3_546_900,
		ClocksFirstPixel: 14362,
		ClocksLine:       228,
		ClocksFrame:      70908,
		InterruptLength:  36,
	},
}

// Specs returns the timing constants for the model.
func (m ZXMachine) Specs() ZXSpecs {
	if m < 0 || int(m) >= len(zxSpecs) {
		panic(fmt.Sprintf("ZXMachine.Specs: unknown machine %d", int(m)))
	}
	return zxSpecs[m]
}

func (m ZXMachine) String() string {
	if m < 0 || int(m) >= len(zxSpecs) {
		return fmt.Sprintf("ZXMachine(%d)", int(m))
	}
	return zxSpecs[m].Name
}

// FramesPerSecond is the display refresh rate implied by the frame length.
func (s ZXSpecs) FramesPerSecond() float64 {
	return float64(s.CPUHz) / float64(s.ClocksFrame)
}

// ParseZXMachine accepts "48k", "48", "128k" or "128" in any case.
func ParseZXMachine(name string) (ZXMachine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "48k", "48":
		return ZXSpectrum48K, nil
	case "128k", "128":
		return ZXSpectrum128K, nil
	}
	return 0, fmt.Errorf("unknown machine %q (want 48k or 128k)", name)
}
