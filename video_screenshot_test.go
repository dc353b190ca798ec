// video_screenshot_test.go - PNG screenshot tests

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
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestScreenshot_PNGDimensions(t *testing.T) {
	screen := NewULAScreen(ZXSpectrum48K, DefaultULAPalette())
	screen.SetBorder(0x42, 0)

	for _, scale := range []int{1, 2, 3} {
		data, err := ScreenshotPNG(screen.CloneTexture(), scale)
		if err != nil {
			t.Fatalf("scale %d: %v", scale, err)
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("scale %d: decode: %v", scale, err)
		}
		b := img.Bounds()
		if b.Dx() != ULA_FRAME_WIDTH*scale || b.Dy() != ULA_FRAME_HEIGHT*scale {
			t.Errorf("scale %d: got %dx%d", scale, b.Dx(), b.Dy())
		}

		// Border patch corner survives scaling with hard edges
		got := color.RGBAModel.Convert(img.At(16*scale-1, 0)).(color.RGBA)
		if got != (color.RGBA{0xFF, 0x00, 0x00, 0xFF}) {
			t.Errorf("scale %d: patch edge got %v", scale, got)
		}
		got = color.RGBAModel.Convert(img.At(16*scale, 0)).(color.RGBA)
		if got != (color.RGBA{0x00, 0x00, 0x00, 0xFF}) {
			t.Errorf("scale %d: outside patch got %v", scale, got)
		}
	}
}

func TestScreenshot_BadTexture(t *testing.T) {
	_, err := ScreenshotPNG(make([]byte, 10), 1)
	var ve *VideoError
	if !errors.As(err, &ve) {
		t.Fatalf("got %v, expected *VideoError", err)
	}
}

func TestScreenshot_SaveFile(t *testing.T) {
	screen := NewULAScreen(ZXSpectrum128K, VividULAPalette())
	path := filepath.Join(t.TempDir(), "frame.png")

	if err := SaveScreenshot(path, screen.CloneTexture(), 2); err != nil {
		t.Fatalf("SaveScreenshot: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != 640 || cfg.Height != 480 {
		t.Errorf("got %dx%d, expected 640x480", cfg.Width, cfg.Height)
	}
}

func TestScreenshot_ClampScale(t *testing.T) {
	tests := []struct{ in, expect int }{
		{-1, 1}, {0, 1}, {1, 1}, {4, 4}, {8, 8}, {20, 8},
	}
	for _, tt := range tests {
		if got := ClampScale(tt.in); got != tt.expect {
			t.Errorf("ClampScale(%d): got %d, expected %d", tt.in, got, tt.expect)
		}
	}
}
