// main.go - ZX Spectrum ULA screen viewer

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
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"sync/atomic"
)

func boilerPlate() {
	fmt.Println("\n\033[38;2;255;20;147mZX Spectrum ULA Screen\033[0m")
	fmt.Println("Beam-timed display file renderer for 48K and 128K machines.")
	fmt.Println("(c) 2024 - 2026 Zayn Otley")
	fmt.Println("License: GPLv3 or later")
}

type viewerConfig struct {
	machine     ZXMachine
	palette     ULAPalette
	scrPath     string
	scriptPath  string
	frames      int
	pngPath     string
	pngScale    int
	termPreview bool
	scale       int
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if cfg == nil {
		os.Exit(0)
	}

	boilerPlate()
	if err := run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags returns a nil config when the command only printed information.
func parseFlags(args []string) (*viewerConfig, error) {
	var (
		machineName string
		paletteName string
		frames      string
		showFeature bool
		cfg         viewerConfig
	)

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&machineName, "machine", "48k", "Machine timing model: 48k or 128k")
	flagSet.StringVar(&paletteName, "palette", "default", "Palette: default or vivid")
	flagSet.StringVar(&cfg.scriptPath, "script", "", "Lua script driving the display file")
	flagSet.StringVar(&frames, "frames", "0", "Number of frames to run (0 = until the window closes)")
	flagSet.StringVar(&cfg.pngPath, "png", "", "Write the final frame to this PNG file")
	flagSet.IntVar(&cfg.pngScale, "png-scale", 1, "Integer scale for the PNG output")
	flagSet.BoolVar(&cfg.termPreview, "term", false, "Print the final frame to the terminal")
	flagSet.IntVar(&cfg.scale, "scale", 2, "Window scale")
	flagSet.BoolVar(&showFeature, "features", false, "Print machines and compiled features")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: ./zxscreen [-machine 48k|128k] [-palette default|vivid] [-script file.lua] [-frames N] [-png out.png] [-term] [screen.scr]")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}
	if showFeature {
		printFeatures()
		return nil, nil
	}

	var err error
	if cfg.machine, err = ParseZXMachine(machineName); err != nil {
		return nil, err
	}
	if cfg.palette, err = ULAPaletteByName(paletteName); err != nil {
		return nil, err
	}
	if cfg.frames, err = parseFrameCount(frames); err != nil {
		return nil, fmt.Errorf("invalid -frames: %w", err)
	}
	cfg.scrPath = flagSet.Arg(0)
	return &cfg, nil
}

func parseFrameCount(value string) (int, error) {
	parsed, err := strconv.ParseUint(value, 0, 31)
	if err != nil {
		return 0, err
	}
	return int(parsed), nil
}

// batch reports whether the viewer runs without a window.
func (cfg *viewerConfig) batch() bool {
	return cfg.pngPath != "" || cfg.termPreview
}

func run(cfg *viewerConfig) error {
	screen := NewULAScreen(cfg.machine, cfg.palette)
	bus := NewZXBus(screen)

	if cfg.scrPath != "" {
		f, err := os.Open(cfg.scrPath)
		if err != nil {
			return err
		}
		err = bus.LoadSCR(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", cfg.scrPath, err)
		}
		fmt.Printf("Loaded screen: %s\n", cfg.scrPath)
	}

	host := NewScriptHost(bus)
	defer host.Close()
	if cfg.scriptPath != "" {
		if err := host.RunFile(cfg.scriptPath); err != nil {
			return err
		}
		fmt.Printf("Running script: %s\n", cfg.scriptPath)
	}

	if cfg.batch() {
		return runBatch(cfg, host, screen)
	}
	return runWindow(cfg, host, screen)
}

func runBatch(cfg *viewerConfig, host *ScriptHost, screen *ULAScreen) error {
	frames := max(cfg.frames, 1)
	for n := range frames {
		if err := host.Frame(n); err != nil {
			return err
		}
	}

	texture := screen.CloneTexture()
	if cfg.pngPath != "" {
		if err := SaveScreenshot(cfg.pngPath, texture, cfg.pngScale); err != nil {
			return err
		}
		fmt.Printf("Wrote %s after %d frames\n", cfg.pngPath, screen.FrameCount())
	}
	if cfg.termPreview {
		return RenderTerminalPreview(os.Stdout, texture, TerminalColumns())
	}
	return nil
}

func runWindow(cfg *viewerConfig, host *ScriptHost, screen *ULAScreen) error {
	out, err := NewVideoOutput(VIDEO_BACKEND_EBITEN)
	if err != nil {
		return err
	}
	defer out.Close()

	fps := int(math.Round(screen.Specs().FramesPerSecond()))
	if err := out.SetDisplayConfig(ULADisplayConfig(cfg.scale, fps)); err != nil {
		return err
	}

	// The status text is built on this goroutine; the backend only reads it.
	var status atomic.Value
	status.Store(statusLine(screen))
	if sp, ok := out.(interface{ SetStatusProvider(StatusProvider) }); ok {
		sp.SetStatusProvider(func() string { return status.Load().(string) })
	}

	if err := out.Start(); err != nil {
		return &VideoError{Operation: "start", Details: "backend start", Err: err}
	}
	fmt.Println("F11 Fullscreen  F12 Status Bar  Ctrl+Shift+C Copy Screenshot")

	for n := 0; cfg.frames == 0 || n < cfg.frames; n++ {
		select {
		case <-out.Done():
			return nil
		default:
		}
		if err := host.Frame(n); err != nil {
			return err
		}
		if err := out.UpdateFrame(screen.CloneTexture()); err != nil {
			return err
		}
		status.Store(statusLine(screen))
		if err := out.WaitForVSync(); err != nil {
			return err
		}
	}
	return nil
}

func statusLine(screen *ULAScreen) string {
	flash := "off"
	if screen.FlashPhase() {
		flash = "on"
	}
	return fmt.Sprintf("%s  frame %d  border %d  flash %s",
		screen.Machine(), screen.FrameCount(), screen.Border(), flash)
}
