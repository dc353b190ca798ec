// ula_palette.go - ZX Spectrum colors, attributes and RGBA palette

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
ula_palette.go - ULA Color / Attribute Model

The ULA produces 8 colors at two brightness levels. Black has no bright
variant, so the visible set is 15 colors. The color index is the GRB bit
pattern: bit 0 = blue, bit 1 = red, bit 2 = green.

A palette converts (attribute, pixel state, flash phase) into one RGBA pixel:

  ink   when state XOR (attribute.Flash AND flashPhase)
  paper otherwise
*/

package main

import (
	"fmt"
	"strings"
)

// ULAColor is one of the 8 ULA colors.
type ULAColor uint8

const (
	ULAColorBlack ULAColor = iota
	ULAColorBlue
	ULAColorRed
	ULAColorPurple
	ULAColorGreen
	ULAColorCyan
	ULAColorYellow
	ULAColorWhite
)

var ulaColorNames = [8]string{
	"black", "blue", "red", "purple", "green", "cyan", "yellow", "white",
}

func (c ULAColor) String() string {
	if int(c) < len(ulaColorNames) {
		return ulaColorNames[c]
	}
	return fmt.Sprintf("ULAColor(%d)", uint8(c))
}

// ULAColorFromBits returns the color for a 3-bit code.
// Panics when bits is greater than 7.
func ULAColorFromBits(bits uint8) ULAColor {
	if bits > 7 {
		panic(fmt.Sprintf("ULAColorFromBits: invalid color code %d", bits))
	}
	return ULAColor(bits)
}

// ULAAttribute is a decoded attribute byte.
type ULAAttribute struct {
	Ink    ULAColor
	Paper  ULAColor
	Flash  bool
	Bright bool
}

// ULAAttributeFromByte decodes an attribute byte (FBPPPIII).
func ULAAttributeFromByte(data uint8) ULAAttribute {
	return ULAAttribute{
		Ink:    ULAColorFromBits(data & 0x07),
		Paper:  ULAColorFromBits((data >> 3) & 0x07),
		Flash:  data&0x80 != 0,
		Bright: data&0x40 != 0,
	}
}

// Byte encodes the attribute back to its display file form.
func (a ULAAttribute) Byte() uint8 {
	b := uint8(a.Ink) | uint8(a.Paper)<<3
	if a.Bright {
		b |= 0x40
	}
	if a.Flash {
		b |= 0x80
	}
	return b
}

// ULAPalette holds the channel intensity for normal and bright colors.
type ULAPalette struct {
	Name   string
	Normal uint8
	Bright uint8

	// Pre-built RGBA lookup: [0..7] = normal, [8..15] = bright
	rgba [16][ULA_BYTES_PER_PIXEL]byte
}

// NewULAPalette builds a palette from two channel intensities.
func NewULAPalette(name string, normal, bright uint8) ULAPalette {
	p := ULAPalette{Name: name, Normal: normal, Bright: bright}
	for i := range 8 {
		p.rgba[i] = ulaColorRGBA(ULAColor(i), normal)
		p.rgba[8+i] = ulaColorRGBA(ULAColor(i), bright)
	}
	return p
}

// DefaultULAPalette returns the 0x88/0xFF palette.
func DefaultULAPalette() ULAPalette {
	return NewULAPalette("default", ULA_INTENSITY_NORMAL, ULA_INTENSITY_BRIGHT)
}

// VividULAPalette returns the more saturated 0xCD/0xFF palette.
func VividULAPalette() ULAPalette {
	return NewULAPalette("vivid", ULA_INTENSITY_VIVID, ULA_INTENSITY_BRIGHT)
}

// ULAPaletteByName looks up a built-in palette.
func ULAPaletteByName(name string) (ULAPalette, error) {
	switch strings.ToLower(name) {
	case "", "default":
		return DefaultULAPalette(), nil
	case "vivid":
		return VividULAPalette(), nil
	}
	return ULAPalette{}, fmt.Errorf("unknown palette %q (want default or vivid)", name)
}

func ulaColorRGBA(c ULAColor, level uint8) [ULA_BYTES_PER_PIXEL]byte {
	switch c {
	case ULAColorBlue:
		return [4]byte{0x00, 0x00, level, 0xFF}
	case ULAColorRed:
		return [4]byte{level, 0x00, 0x00, 0xFF}
	case ULAColorPurple:
		return [4]byte{level, 0x00, level, 0xFF}
	case ULAColorGreen:
		return [4]byte{0x00, level, 0x00, 0xFF}
	case ULAColorCyan:
		return [4]byte{0x00, level, level, 0xFF}
	case ULAColorYellow:
		return [4]byte{level, level, 0x00, 0xFF}
	case ULAColorWhite:
		return [4]byte{level, level, level, 0xFF}
	}
	return [4]byte{0x00, 0x00, 0x00, 0xFF}
}

// RGBA returns the pixel color for an attribute, a bitmap bit and the flash
// phase.
func (p ULAPalette) RGBA(attr ULAAttribute, state, flashPhase bool) [ULA_BYTES_PER_PIXEL]byte {
	color := attr.Paper
	if state != (attr.Flash && flashPhase) {
		color = attr.Ink
	}
	if attr.Bright {
		return p.rgba[8+color]
	}
	return p.rgba[color]
}
