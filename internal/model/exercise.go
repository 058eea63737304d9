package model

import (
	"fmt"
	"strings"

	ioutils "github.com/handiism/virtuoso/internal/io"
	"github.com/handiism/virtuoso/internal/notation"
	"github.com/handiism/virtuoso/internal/theory"
)

// Exercise is one planned output file: a root and scale type rendered in
// the format of its book.
//
// Example:
//
//	cfg := &ExerciseConfig{FileNameFormat: "{num} {root} {scale}"}
//	ex := NewExercise(book, 3, theory.MustParseNote("D"), theory.Major, cfg)
//	// ex.Path = "/scales/midi/03 D major.mid"
type Exercise struct {
	// Book is the parent book.
	Book *Book

	// Number is the 1-indexed position in the book. ABC tune books use it
	// as the X: reference number.
	Number int

	Root theory.Note
	Type theory.ScaleType

	// Title is the display name, e.g. "F♯ Minor (Harmonic)".
	Title string

	// Path is the computed file path including extension.
	Path string
}

// ExerciseConfig holds exercise file naming settings.
//
// FileNameFormat is written without extension and accepts:
//   - {num} - exercise number (2 digits, zero-padded)
//   - {root} - root name, e.g. "F#"
//   - {key} - key name, "m" appended for minor, e.g. "F#m"
//   - {scale} - scale type slug, e.g. "harmonic-minor"
//   - {mode} - "major" or "minor"
//   - {title} - display title
type ExerciseConfig struct {
	FileNameFormat string
}

// NewExercise creates an Exercise with its path computed inside book.
func NewExercise(book *Book, number int, root theory.Note, t theory.ScaleType, cfg *ExerciseConfig) *Exercise {
	ex := &Exercise{
		Book:   book,
		Number: number,
		Root:   root,
		Type:   t,
		Title:  notation.Title(root, t),
	}

	ex.Path = limitPath(book.Path, ex.parseFileName(cfg), book.Format.Extension())

	return ex
}

// Key returns the key name: the root, with "m" for minor scale types.
func (e *Exercise) Key() string {
	if e.Type.IsMinor() {
		return e.Root.Name() + "m"
	}
	return e.Root.Name()
}

// Mode returns "major" or "minor".
func (e *Exercise) Mode() string {
	if e.Type.IsMinor() {
		return "minor"
	}
	return "major"
}

func (e *Exercise) parseFileName(cfg *ExerciseConfig) string {
	fileName := cfg.FileNameFormat
	fileName = strings.ReplaceAll(fileName, "{num}", fmt.Sprintf("%02d", e.Number))
	fileName = strings.ReplaceAll(fileName, "{root}", e.Root.Name())
	fileName = strings.ReplaceAll(fileName, "{key}", e.Key())
	fileName = strings.ReplaceAll(fileName, "{scale}", e.Type.Slug())
	fileName = strings.ReplaceAll(fileName, "{mode}", e.Mode())
	fileName = strings.ReplaceAll(fileName, "{title}", e.Title)
	fileName = ioutils.SanitizeFileName(fileName)
	if fileName == "" {
		fileName = fmt.Sprintf("%02d", e.Number)
	}
	return fileName
}
