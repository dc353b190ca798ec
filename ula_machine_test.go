// ula_machine_test.go - Machine timing model tests

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
	"math"
	"testing"
)

func TestULA_MachineSpecs(t *testing.T) {
	tests := []struct {
		machine ZXMachine
		expect  ZXSpecs
	}{
		{ZXSpectrum48K, ZXSpecs{"48K", 3_500_000, 14336, 224, 69888, 32}},
		{ZXSpectrum128K, ZXSpecs{"128K", 3_546_900, 14362, 228, 70908, 36}},
	}
	for _, tt := range tests {
		if got := tt.machine.Specs(); got != tt.expect {
			t.Errorf("%s: got %+v, expected %+v", tt.machine, got, tt.expect)
		}
	}
}

// TestULA_MachineFrameRate tests the derived refresh rate
func TestULA_MachineFrameRate(t *testing.T) {
	fps := ZXSpectrum48K.Specs().FramesPerSecond()
	if math.Abs(fps-50.08) > 0.01 {
		t.Errorf("48K: got %.3f Hz, expected about 50.08", fps)
	}
	fps = ZXSpectrum128K.Specs().FramesPerSecond()
	if math.Abs(fps-50.02) > 0.01 {
		t.Errorf("128K: got %.3f Hz, expected about 50.02", fps)
	}
}

func TestULA_ParseMachine(t *testing.T) {
	tests := []struct {
		name    string
		expect  ZXMachine
		wantErr bool
	}{
		{"48k", ZXSpectrum48K, false},
		{"48K", ZXSpectrum48K, false},
		{" 128k ", ZXSpectrum128K, false},
		{"128", ZXSpectrum128K, false},
		{"+3", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseZXMachine(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: error %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.expect {
			t.Errorf("%q: got %s, expected %s", tt.name, got, tt.expect)
		}
	}
}

func TestULA_UnknownMachinePanics(t *testing.T) {
	if got := ZXMachine(5).String(); got != "ZXMachine(5)" {
		t.Errorf("got %q", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for unknown machine")
		}
	}()
	ZXMachine(5).Specs()
}
