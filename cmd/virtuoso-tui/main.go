package main

import (
	"fmt"
	"os"

	"github.com/handiism/virtuoso/internal/config"
	"github.com/handiism/virtuoso/internal/theory"
	"github.com/handiism/virtuoso/internal/tui"
)

func main() {
	settings, err := config.Load(config.DefaultPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	opts := tui.Options{
		Settings: settings,
		Root:     theory.MustParseNote("C"),
		Type:     theory.Major,
	}
	if err := tui.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
