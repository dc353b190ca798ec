// ula_palette_test.go - ULA attribute and palette tests

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
	"testing"
)

// TestULA_AttributeFromByte tests attribute byte decoding
func TestULA_AttributeFromByte(t *testing.T) {
	tests := []struct {
		data   uint8
		expect ULAAttribute
	}{
		{0x00, ULAAttribute{Ink: ULAColorBlack, Paper: ULAColorBlack}},
		{0x07, ULAAttribute{Ink: ULAColorWhite, Paper: ULAColorBlack}},
		{0x38, ULAAttribute{Ink: ULAColorBlack, Paper: ULAColorWhite}},
		{0x47, ULAAttribute{Ink: ULAColorWhite, Paper: ULAColorBlack, Bright: true}},
		{0x8A, ULAAttribute{Ink: ULAColorRed, Paper: ULAColorBlue, Flash: true}},
		{0xFF, ULAAttribute{Ink: ULAColorWhite, Paper: ULAColorWhite, Flash: true, Bright: true}},
	}
	for _, tt := range tests {
		got := ULAAttributeFromByte(tt.data)
		if got != tt.expect {
			t.Errorf("$%02X: got %+v, expected %+v", tt.data, got, tt.expect)
		}
		if b := got.Byte(); b != tt.data {
			t.Errorf("$%02X: Byte() got $%02X", tt.data, b)
		}
	}
}

func TestULA_ColorFromBitsPanics(t *testing.T) {
	for bits := uint8(0); bits < 8; bits++ {
		if got := ULAColorFromBits(bits); uint8(got) != bits {
			t.Errorf("bits %d: got %d", bits, got)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for color code 8")
		}
	}()
	ULAColorFromBits(8)
}

func TestULA_ColorNames(t *testing.T) {
	if ULAColorYellow.String() != "yellow" {
		t.Errorf("got %q, expected yellow", ULAColorYellow.String())
	}
	if ULAColor(9).String() != "ULAColor(9)" {
		t.Errorf("got %q", ULAColor(9).String())
	}
}

// TestULA_PaletteIntensity tests the two brightness levels
func TestULA_PaletteIntensity(t *testing.T) {
	p := DefaultULAPalette()

	tests := []struct {
		attr   uint8
		expect [4]byte
	}{
		{0x07, [4]byte{0x88, 0x88, 0x88, 0xFF}},
		{0x47, [4]byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{0x01, [4]byte{0x00, 0x00, 0x88, 0xFF}},
		{0x42, [4]byte{0xFF, 0x00, 0x00, 0xFF}},
		{0x04, [4]byte{0x00, 0x88, 0x00, 0xFF}},
		{0x46, [4]byte{0xFF, 0xFF, 0x00, 0xFF}},
		{0x03, [4]byte{0x88, 0x00, 0x88, 0xFF}},
		{0x05, [4]byte{0x00, 0x88, 0x88, 0xFF}},
	}
	for _, tt := range tests {
		got := p.RGBA(ULAAttributeFromByte(tt.attr), true, false)
		if got != tt.expect {
			t.Errorf("attr $%02X ink: got %v, expected %v", tt.attr, got, tt.expect)
		}
	}
}

// TestULA_PaletteBlackHasNoBright tests that black is the same at both levels
func TestULA_PaletteBlackHasNoBright(t *testing.T) {
	black := [4]byte{0, 0, 0, 0xFF}
	for _, p := range []ULAPalette{DefaultULAPalette(), VividULAPalette()} {
		for _, attr := range []uint8{0x00, 0x40, 0x80, 0xC0} {
			for _, state := range []bool{false, true} {
				for _, phase := range []bool{false, true} {
					got := p.RGBA(ULAAttributeFromByte(attr), state, phase)
					if got != black {
						t.Errorf("%s attr $%02X: got %v, expected %v", p.Name, attr, got, black)
					}
				}
			}
		}
	}
}

// TestULA_PaletteFlashSwap tests ink/paper selection with flash
func TestULA_PaletteFlashSwap(t *testing.T) {
	p := DefaultULAPalette()
	ink := [4]byte{0x88, 0x88, 0x00, 0xFF}   // yellow
	paper := [4]byte{0x00, 0x00, 0x88, 0xFF} // blue

	steady := ULAAttributeFromByte(0x0E)
	flashing := ULAAttributeFromByte(0x8E)

	tests := []struct {
		name   string
		attr   ULAAttribute
		state  bool
		phase  bool
		expect [4]byte
	}{
		{"steady set", steady, true, false, ink},
		{"steady clear", steady, false, false, paper},
		{"steady set phase on", steady, true, true, ink},
		{"steady clear phase on", steady, false, true, paper},
		{"flash set phase off", flashing, true, false, ink},
		{"flash clear phase off", flashing, false, false, paper},
		{"flash set phase on", flashing, true, true, paper},
		{"flash clear phase on", flashing, false, true, ink},
	}
	for _, tt := range tests {
		if got := p.RGBA(tt.attr, tt.state, tt.phase); got != tt.expect {
			t.Errorf("%s: got %v, expected %v", tt.name, got, tt.expect)
		}
	}
}

func TestULA_PaletteByName(t *testing.T) {
	for _, name := range []string{"", "default", "DEFAULT"} {
		p, err := ULAPaletteByName(name)
		if err != nil {
			t.Fatalf("%q: %v", name, err)
		}
		if p.Normal != ULA_INTENSITY_NORMAL || p.Bright != ULA_INTENSITY_BRIGHT {
			t.Errorf("%q: got levels $%02X/$%02X", name, p.Normal, p.Bright)
		}
	}

	p, err := ULAPaletteByName("vivid")
	if err != nil {
		t.Fatalf("vivid: %v", err)
	}
	if got := p.RGBA(ULAAttributeFromByte(0x02), true, false); got[0] != ULA_INTENSITY_VIVID {
		t.Errorf("vivid red: got %d, expected %d", got[0], ULA_INTENSITY_VIVID)
	}

	if _, err := ULAPaletteByName("sepia"); err == nil {
		t.Error("Expected error for unknown palette")
	}
}
