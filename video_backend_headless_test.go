//go:build headless

package main

import (
	"bytes"
	"errors"
	"testing"
)

func TestHeadlessOutput_SetDisplayConfig_StoresFullscreen(t *testing.T) {
	out := &HeadlessVideoOutput{}
	cfg := ULADisplayConfig(3, 50)
	cfg.Fullscreen = true
	if err := out.SetDisplayConfig(cfg); err != nil {
		t.Fatalf("SetDisplayConfig returned error: %v", err)
	}
	got := out.GetDisplayConfig()
	if !got.Fullscreen || got.Scale != 3 {
		t.Fatalf("expected Scale=3, Fullscreen=true; got Scale=%d, Fullscreen=%v", got.Scale, got.Fullscreen)
	}
	if out.GetRefreshRate() != 50 {
		t.Fatalf("expected refresh 50, got %d", out.GetRefreshRate())
	}
}

func TestHeadlessOutput_UpdateFrameCopies(t *testing.T) {
	vo, err := NewVideoOutput(VIDEO_BACKEND_EBITEN)
	if err != nil {
		t.Fatalf("NewVideoOutput: %v", err)
	}
	out := vo.(*HeadlessVideoOutput)
	if err := out.SetDisplayConfig(ULADisplayConfig(1, 50)); err != nil {
		t.Fatal(err)
	}
	if err := out.Start(); err != nil {
		t.Fatal(err)
	}

	screen := NewULAScreen(ZXSpectrum48K, DefaultULAPalette())
	screen.SetBorder(0x47, 0)
	if err := out.UpdateFrame(screen.CloneTexture()); err != nil {
		t.Fatalf("UpdateFrame: %v", err)
	}
	screen.SetBorder(0x00, 0)

	last := out.LastFrame()
	if last[0] != 0xFF {
		t.Fatalf("expected the stored frame to keep the old border, got %d", last[0])
	}
	if !bytes.Equal(last[ULA_TEXTURE_SIZE-4:], []byte{0, 0, 0, 0xFF}) {
		t.Fatalf("unexpected last pixel %v", last[ULA_TEXTURE_SIZE-4:])
	}
	if out.GetFrameCount() != 1 {
		t.Fatalf("expected frame count 1, got %d", out.GetFrameCount())
	}
}

func TestHeadlessOutput_UpdateFrameWrongSize(t *testing.T) {
	out := &HeadlessVideoOutput{}
	if err := out.SetDisplayConfig(ULADisplayConfig(2, 50)); err != nil {
		t.Fatal(err)
	}
	err := out.UpdateFrame(make([]byte, 16))
	var ve *VideoError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *VideoError, got %v", err)
	}
}

func TestHeadlessOutput_CloseSignalsDone(t *testing.T) {
	vo, err := NewEbitenOutput()
	if err != nil {
		t.Fatal(err)
	}
	if err := vo.Start(); err != nil {
		t.Fatal(err)
	}
	if !vo.IsStarted() {
		t.Fatal("expected started")
	}
	if err := vo.Close(); err != nil {
		t.Fatal(err)
	}
	select {
	case <-vo.Done():
	default:
		t.Fatal("expected Done to be closed after Close")
	}
	if err := vo.Close(); err != nil {
		t.Fatalf("second Close returned error: %v", err)
	}
	if vo.IsStarted() {
		t.Fatal("expected stopped after Close")
	}
}
