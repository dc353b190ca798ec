// terminal_preview.go - ANSI truecolor preview of the ULA texture

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
terminal_preview.go - Terminal Preview

Prints the frame to a terminal with the upper half block character: the
foreground color paints the top pixel row of a character cell and the
background paints the bottom one, so each text row shows two sampled rows.
The frame is sampled nearest-neighbour down to the requested column count.
*/

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	terminalPreviewDefaultCols = 80
	terminalPreviewMaxCols     = ULA_FRAME_WIDTH
)

// TerminalColumns returns the width of stdout when it is a terminal, or
// the default preview width otherwise.
func TerminalColumns() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return terminalPreviewDefaultCols
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		fmt.Fprintf(os.Stderr, "terminal_preview: failed to get terminal size: %v\n", err)
		return terminalPreviewDefaultCols
	}
	return w
}

// RenderTerminalPreview writes the texture as ANSI half blocks, cols wide.
func RenderTerminalPreview(w io.Writer, texture []byte, cols int) error {
	if len(texture) != ULA_TEXTURE_SIZE {
		return &VideoError{
			Operation: "terminal preview",
			Details:   fmt.Sprintf("texture is %d bytes, expected %d", len(texture), ULA_TEXTURE_SIZE),
		}
	}
	cols = max(1, min(cols, terminalPreviewMaxCols))

	// Terminal cells are about twice as tall as wide; each cell holds two
	// sampled rows, so sampling at the column step keeps the aspect.
	rows := max(2, ULA_FRAME_HEIGHT*cols/ULA_FRAME_WIDTH)
	if rows%2 != 0 {
		rows++
	}

	out := bufio.NewWriter(w)
	for ty := 0; ty < rows; ty += 2 {
		top := ty * ULA_FRAME_HEIGHT / rows
		bottom := min((ty+1)*ULA_FRAME_HEIGHT/rows, ULA_FRAME_HEIGHT-1)
		for tx := range cols {
			x := tx * ULA_FRAME_WIDTH / cols
			t := texturePixel(texture, x, top)
			b := texturePixel(texture, x, bottom)
			fmt.Fprintf(out, "\033[38;2;%d;%d;%dm\033[48;2;%d;%d;%dm▀", t[0], t[1], t[2], b[0], b[1], b[2])
		}
		out.WriteString("\033[0m\n")
	}
	return out.Flush()
}

func texturePixel(texture []byte, x, y int) []byte {
	i := (y*ULA_FRAME_WIDTH + x) * ULA_BYTES_PER_PIXEL
	return texture[i : i+ULA_BYTES_PER_PIXEL]
}
