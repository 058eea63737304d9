package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/handiism/virtuoso/internal/model"
	"github.com/handiism/virtuoso/internal/theory"
)

// AllRoots selects every root of the circle matching each scale type.
const AllRoots = "all"

// ErrInvalidSettings is returned by Validate.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings holds all configuration options.
type Settings struct {
	// Output
	OutputPath         string               `json:"output_path"`
	FileNameFormat     string               `json:"file_name_format"`
	BookFileNameFormat string               `json:"book_file_name_format"`
	BookTitle          string               `json:"book_title"`
	Formats            []model.OutputFormat `json:"formats"`
	SkipExisting       bool                 `json:"skip_existing"`

	// Exercise selection
	ScaleTypes []theory.ScaleType `json:"scale_types"`
	Roots      []string           `json:"roots"` // note names, or ["all"]

	// Rendering
	MaxConcurrentExercises int     `json:"max_concurrent_exercises"`
	Tempo                  float64 `json:"tempo"` // quarter notes per minute, MIDI only

	// Index settings
	CreateBook     bool                 `json:"create_book"`
	PlaylistFormat model.PlaylistFormat `json:"playlist_format"` // m3u, pls, wpl, zpl
	M3UExtended    bool                 `json:"m3u_extended"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		OutputPath:         filepath.Join(homeDir, "Music", "Virtuoso", "{format}"),
		FileNameFormat:     "{num} {key} {scale}",
		BookFileNameFormat: "{title}",
		BookTitle:          "Scales and Cadences",
		Formats:            []model.OutputFormat{model.FormatABC},
		SkipExisting:       false,

		ScaleTypes: []theory.ScaleType{theory.Major, theory.HarmonicMinor},
		Roots:      []string{AllRoots},

		MaxConcurrentExercises: 4,
		Tempo:                  80,

		CreateBook:     true,
		PlaylistFormat: model.PlaylistM3U,
		M3UExtended:    true,
	}
}

// DefaultPath returns the settings file location under the user's
// configuration directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "virtuoso", "settings.json")
}

// Load reads settings from a JSON file. A missing file yields the
// defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate reports the first setting that cannot be used for an export.
func (s *Settings) Validate() error {
	switch {
	case len(s.Formats) == 0:
		return fmt.Errorf("%w: no output formats", ErrInvalidSettings)
	case len(s.ScaleTypes) == 0:
		return fmt.Errorf("%w: no scale types", ErrInvalidSettings)
	case len(s.Roots) == 0:
		return fmt.Errorf("%w: no roots", ErrInvalidSettings)
	case s.MaxConcurrentExercises < 1:
		return fmt.Errorf("%w: max_concurrent_exercises must be at least 1", ErrInvalidSettings)
	case s.Tempo < 0:
		return fmt.Errorf("%w: negative tempo", ErrInvalidSettings)
	case s.OutputPath == "":
		return fmt.Errorf("%w: empty output path", ErrInvalidSettings)
	}

	if _, err := s.ResolveRoots(theory.Major); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return nil
}

// ResolveRoots returns the roots to export for scale type t. "all" expands
// to the circle of t in circle order; other entries are parsed as note
// names and keep their spelling.
func (s *Settings) ResolveRoots(t theory.ScaleType) ([]theory.Note, error) {
	var roots []theory.Note
	for _, name := range s.Roots {
		if strings.EqualFold(strings.TrimSpace(name), AllRoots) {
			roots = append(roots, theory.CircleFor(t)[:]...)
			continue
		}
		n, err := theory.ParseNote(name)
		if err != nil {
			return nil, err
		}
		n.Octave = theory.ReferenceOctave
		roots = append(roots, n)
	}
	return roots, nil
}

// ToPathConfig converts settings to PathConfig.
func (s *Settings) ToPathConfig() *model.PathConfig {
	return &model.PathConfig{
		OutputPath:         s.OutputPath,
		BookFileNameFormat: s.BookFileNameFormat,
		PlaylistFormat:     s.PlaylistFormat,
	}
}

// ToExerciseConfig converts settings to ExerciseConfig.
func (s *Settings) ToExerciseConfig() *model.ExerciseConfig {
	return &model.ExerciseConfig{
		FileNameFormat: s.FileNameFormat,
	}
}
