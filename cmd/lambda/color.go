package main

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/WilliamRagstad/lamda-calc/config"
	"github.com/WilliamRagstad/lamda-calc/untyped"
)

func paletteFor(mode string, f *os.File) untyped.Palette {
	switch mode {
	case config.ColorAlways:
		return untyped.ANSI
	case config.ColorNever:
		return untyped.Plain
	}
	// NO_COLOR convention: https://no-color.org/
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return untyped.Plain
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return untyped.Plain
	}
	if os.Getenv("TERM") == "dumb" {
		return untyped.Plain
	}
	return untyped.ANSI
}
