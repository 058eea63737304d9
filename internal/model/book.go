package model

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	ioutils "github.com/handiism/virtuoso/internal/io"
)

// Book is one output set: every exercise of a run written in a single
// format, plus an index file collecting them.
//
// For ABC output the index is a tune book holding every exercise as a
// numbered tune. For MIDI output it is a playlist of the .mid files in
// the configured PlaylistFormat.
//
// Example:
//
//	cfg := &PathConfig{
//	    OutputPath:         "/scales/{format}",
//	    BookFileNameFormat: "{title}",
//	}
//	book := NewBook("Scales", FormatMIDI, cfg)
//	// book.Path = "/scales/midi"
//	// book.IndexPath = "/scales/midi/Scales.m3u"
type Book struct {
	// Title names the book. It is used as the tune book title and in the
	// index file name.
	Title string

	// Format is the file format of every exercise in the book.
	Format OutputFormat

	// Exercises holds the exercises in the order they were planned.
	Exercises []*Exercise

	// Path is the computed directory where exercise files are written.
	Path string

	// IndexPath is the computed path of the tune book or playlist.
	IndexPath string

	// Playlist is the index format of a MIDI book. Unused for ABC.
	Playlist PlaylistFormat
}

// NewBook creates a Book with paths computed from cfg.
//
// The OutputPath and BookFileNameFormat templates accept the placeholders
// {format} ("abc" or "midi") and {title}.
func NewBook(title string, format OutputFormat, cfg *PathConfig) *Book {
	book := &Book{
		Title:    title,
		Format:   format,
		Playlist: cfg.PlaylistFormat,
	}

	book.Path = book.parseFolderPath(cfg)
	book.IndexPath = book.parseIndexPath(cfg)

	return book
}

// PathConfig holds path formatting settings for books.
type PathConfig struct {
	// OutputPath is the directory template. Example: "/scales/{format}"
	OutputPath string

	// BookFileNameFormat is the index file name template, without
	// extension. Example: "{title}"
	BookFileNameFormat string

	// PlaylistFormat selects the index format of MIDI books.
	PlaylistFormat PlaylistFormat
}

// OutputFormat is a supported exercise file format.
type OutputFormat int

const (
	// FormatABC writes ABC notation text.
	FormatABC OutputFormat = iota

	// FormatMIDI writes Standard MIDI Files.
	FormatMIDI
)

// OutputFormats lists every supported format.
var OutputFormats = []OutputFormat{FormatABC, FormatMIDI}

// ErrInvalidFormat is returned when a format name is not recognised.
var ErrInvalidFormat = errors.New("invalid output format")

// String returns "abc" or "midi".
func (f OutputFormat) String() string {
	switch f {
	case FormatMIDI:
		return "midi"
	default:
		return "abc"
	}
}

// Extension returns the exercise file extension, including the dot.
func (f OutputFormat) Extension() string {
	switch f {
	case FormatMIDI:
		return ".mid"
	default:
		return ".abc"
	}
}

// IndexExtension returns the default extension of the book index: a tune
// book for ABC and an M3U playlist for MIDI.
func (f OutputFormat) IndexExtension() string {
	switch f {
	case FormatMIDI:
		return ".m3u"
	default:
		return ".abc"
	}
}

// ParseOutputFormat accepts "abc", "midi" or "mid", case-insensitively.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "abc":
		return FormatABC, nil
	case "midi", "mid":
		return FormatMIDI, nil
	default:
		return FormatABC, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f OutputFormat) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *OutputFormat) UnmarshalText(text []byte) error {
	parsed, err := ParseOutputFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

func (b *Book) replacePlaceholders(s string) string {
	s = strings.ReplaceAll(s, "{format}", ioutils.SanitizeFileName(b.Format.String()))
	s = strings.ReplaceAll(s, "{title}", ioutils.SanitizeFileName(b.Title))
	return s
}

// parseFolderPath computes the book folder path from the config template.
func (b *Book) parseFolderPath(cfg *PathConfig) string {
	path := b.replacePlaceholders(cfg.OutputPath)

	// Windows MAX_PATH for directories
	if len(path) >= 248 {
		path = path[:247]
	}

	return path
}

// parseIndexPath computes the full tune book or playlist path.
func (b *Book) parseIndexPath(cfg *PathConfig) string {
	fileName := ioutils.SanitizeFileName(b.replacePlaceholders(cfg.BookFileNameFormat))
	if fileName == "" {
		fileName = "index"
	}
	ext := b.Format.IndexExtension()
	if b.Format == FormatMIDI {
		ext = b.Playlist.Extension()
	}
	return limitPath(b.Path, fileName, ext)
}

// limitPath joins dir and fileName+ext, shortening fileName when the
// result would exceed the Windows path limit.
func limitPath(dir, fileName, ext string) string {
	filePath := filepath.Join(dir, fileName+ext)
	if len(filePath) >= 260 {
		maxLen := 259 - len(filepath.Join(dir, ext))
		if maxLen > 0 && maxLen < len(fileName) {
			filePath = filepath.Join(dir, fileName[:maxLen]+ext)
		}
	}
	return filePath
}
