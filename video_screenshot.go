// video_screenshot.go - PNG screenshots of the ULA texture

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
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// TextureImage copies an RGBA texture into an *image.RGBA.
func TextureImage(texture []byte) (*image.RGBA, error) {
	if len(texture) != ULA_TEXTURE_SIZE {
		return nil, &VideoError{
			Operation: "screenshot",
			Details:   fmt.Sprintf("texture is %d bytes, expected %d", len(texture), ULA_TEXTURE_SIZE),
		}
	}
	img := image.NewRGBA(image.Rect(0, 0, ULA_FRAME_WIDTH, ULA_FRAME_HEIGHT))
	copy(img.Pix, texture)
	return img, nil
}

// ScaleImage returns src enlarged by an integer factor with hard pixel edges.
func ScaleImage(src *image.RGBA, scale int) *image.RGBA {
	scale = ClampScale(scale)
	if scale == 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// WriteScreenshotPNG encodes the texture as PNG, scaled by scale.
func WriteScreenshotPNG(w io.Writer, texture []byte, scale int) error {
	img, err := TextureImage(texture)
	if err != nil {
		return err
	}
	if err := png.Encode(w, ScaleImage(img, scale)); err != nil {
		return &VideoError{Operation: "screenshot", Details: "png encode", Err: err}
	}
	return nil
}

// ScreenshotPNG returns the encoded PNG bytes.
func ScreenshotPNG(texture []byte, scale int) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteScreenshotPNG(&buf, texture, scale); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SaveScreenshot writes the texture to filename as PNG.
func SaveScreenshot(filename string, texture []byte, scale int) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WriteScreenshotPNG(f, texture, scale); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
