// Package main provides the virtuoso CLI.
//
// Usage:
//
//	virtuoso [flags] <command> [args]
//
// Commands:
//
//	render    - ABC or MIDI for one key
//	scale     - notes of a scale up and down
//	key       - key signature of a key
//	circle    - the circle of fifths
//	roots     - selectable roots
//	next/prev - step around the circle
//	relative  - relative major or minor
//	export    - write exercises for many keys
//	practice  - interactive browser
//	config    - manage settings
package main

import (
	"fmt"
	"os"

	"github.com/handiism/virtuoso/cmd/virtuoso/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
