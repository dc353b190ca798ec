package main

import (
	"fmt"
	"runtime"
	"sort"
)

// Version is overridden at link time with -ldflags "-X main.Version=...".
var Version = "dev"

// compiledFeatures tracks build-time feature flags via init() registration.
var compiledFeatures []string

func init() {
	compiledFeatures = append(compiledFeatures, "script:lua", "preview:terminal", "screenshot:png")
}

func printFeatures() {
	fmt.Printf("ZX ULA Screen %s\n", Version)
	fmt.Printf("  Go version: %s\n", runtime.Version())
	fmt.Printf("  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Println()
	fmt.Println("Machines:")
	for _, m := range []ZXMachine{ZXSpectrum48K, ZXSpectrum128K} {
		s := m.Specs()
		fmt.Printf("  %-5s first pixel %5d  line %3d  frame %5d  %.2f Hz\n",
			s.Name, s.ClocksFirstPixel, s.ClocksLine, s.ClocksFrame, s.FramesPerSecond())
	}
	fmt.Println()
	fmt.Println("Compiled features:")

	sort.Strings(compiledFeatures)
	for _, f := range compiledFeatures {
		fmt.Printf("  %s\n", f)
	}
	if len(compiledFeatures) == 0 {
		fmt.Println("  (none)")
	}
}
