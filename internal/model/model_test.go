package model

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/handiism/virtuoso/internal/theory"
)

func TestBook_PathComputation(t *testing.T) {
	cfg := &PathConfig{
		OutputPath:         filepath.Join("scales", "{format}"),
		BookFileNameFormat: "{title} ({format})",
	}

	tests := []struct {
		format    OutputFormat
		wantPath  string
		wantIndex string
	}{
		{FormatABC, filepath.Join("scales", "abc"), filepath.Join("scales", "abc", "Daily (abc).abc")},
		{FormatMIDI, filepath.Join("scales", "midi"), filepath.Join("scales", "midi", "Daily (midi).m3u")},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			book := NewBook("Daily", tt.format, cfg)
			if book.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", book.Path, tt.wantPath)
			}
			if book.IndexPath != tt.wantIndex {
				t.Errorf("IndexPath = %q, want %q", book.IndexPath, tt.wantIndex)
			}
		})
	}
}

func TestBook_EmptyIndexName(t *testing.T) {
	book := NewBook("", FormatABC, &PathConfig{OutputPath: "out", BookFileNameFormat: "{title}"})
	if want := filepath.Join("out", "index.abc"); book.IndexPath != want {
		t.Errorf("IndexPath = %q, want %q", book.IndexPath, want)
	}
}

func TestExercise_PathComputation(t *testing.T) {
	book := NewBook("Scales", FormatMIDI, &PathConfig{OutputPath: "out", BookFileNameFormat: "{title}"})

	tests := []struct {
		format string
		root   string
		st     theory.ScaleType
		want   string
	}{
		{"{num} {root} {scale}", "D", theory.Major, "03 D major.mid"},
		{"{key}-{mode}", "F#", theory.HarmonicMinor, "F#m-minor.mid"},
		{"{title}", "Bb", theory.MelodicMinor, "B♭ Minor (Melodic).mid"},
		{"", "C", theory.Major, "03.mid"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			ex := NewExercise(book, 3, theory.MustParseNote(tt.root), tt.st, &ExerciseConfig{FileNameFormat: tt.format})
			if want := filepath.Join("out", tt.want); ex.Path != want {
				t.Errorf("Path = %q, want %q", ex.Path, want)
			}
		})
	}
}

func TestExercise_LongPathIsShortened(t *testing.T) {
	book := NewBook("Scales", FormatABC, &PathConfig{OutputPath: "out", BookFileNameFormat: "{title}"})
	ex := NewExercise(book, 1, theory.MustParseNote("C"), theory.Major, &ExerciseConfig{FileNameFormat: strings.Repeat("x", 400)})

	if len(ex.Path) >= 260 {
		t.Errorf("len(Path) = %d, want < 260", len(ex.Path))
	}
	if !strings.HasSuffix(ex.Path, ".abc") {
		t.Errorf("Path %q lost its extension", ex.Path)
	}
}

func TestOutputFormat_Extension(t *testing.T) {
	tests := []struct {
		format    OutputFormat
		want      string
		wantIndex string
	}{
		{FormatABC, ".abc", ".abc"},
		{FormatMIDI, ".mid", ".m3u"},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.Extension(); got != tt.want {
				t.Errorf("Extension() = %q, want %q", got, tt.want)
			}
			if got := tt.format.IndexExtension(); got != tt.wantIndex {
				t.Errorf("IndexExtension() = %q, want %q", got, tt.wantIndex)
			}
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    OutputFormat
		wantErr bool
	}{
		{"abc", FormatABC, false},
		{"MIDI", FormatMIDI, false},
		{" mid ", FormatMIDI, false},
		{"wav", FormatABC, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("ParseOutputFormat(%q) error = %v, want ErrInvalidFormat", tt.input, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseOutputFormat(%q) = %v, %v; want %v", tt.input, got, err, tt.want)
			}
		})
	}
}

func TestOutputFormat_JSON(t *testing.T) {
	var got []OutputFormat
	if err := json.Unmarshal([]byte(`["midi","abc"]`), &got); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if len(got) != 2 || got[0] != FormatMIDI || got[1] != FormatABC {
		t.Errorf("Unmarshal = %v", got)
	}

	data, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(data) != `["midi","abc"]` {
		t.Errorf("Marshal = %s", data)
	}
}

func TestBook_PlaylistExtension(t *testing.T) {
	tests := []struct {
		format   OutputFormat
		playlist PlaylistFormat
		want     string
	}{
		{FormatMIDI, PlaylistM3U, "Scales.m3u"},
		{FormatMIDI, PlaylistPLS, "Scales.pls"},
		{FormatMIDI, PlaylistWPL, "Scales.wpl"},
		{FormatMIDI, PlaylistZPL, "Scales.zpl"},
		{FormatABC, PlaylistPLS, "Scales.abc"},
	}

	for _, tt := range tests {
		t.Run(tt.format.String()+"-"+tt.playlist.String(), func(t *testing.T) {
			cfg := &PathConfig{OutputPath: "out", BookFileNameFormat: "{title}", PlaylistFormat: tt.playlist}
			book := NewBook("Scales", tt.format, cfg)
			if want := filepath.Join("out", tt.want); book.IndexPath != want {
				t.Errorf("IndexPath = %q, want %q", book.IndexPath, want)
			}
			if book.Playlist != tt.playlist {
				t.Errorf("Playlist = %v, want %v", book.Playlist, tt.playlist)
			}
		})
	}
}

func TestParsePlaylistFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    PlaylistFormat
		wantErr bool
	}{
		{"m3u", PlaylistM3U, false},
		{"", PlaylistM3U, false},
		{"PLS", PlaylistPLS, false},
		{"wpl", PlaylistWPL, false},
		{" zpl", PlaylistZPL, false},
		{"xspf", PlaylistM3U, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePlaylistFormat(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("ParsePlaylistFormat(%q) error = %v, want ErrInvalidFormat", tt.input, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParsePlaylistFormat(%q) = %v, %v; want %v", tt.input, got, err, tt.want)
			}
		})
	}
}
