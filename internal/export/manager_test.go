package export

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/handiism/virtuoso/internal/config"
	"github.com/handiism/virtuoso/internal/model"
	"github.com/handiism/virtuoso/internal/theory"
)

func testSettings(t *testing.T) *config.Settings {
	t.Helper()
	s := config.DefaultSettings()
	s.OutputPath = filepath.Join(t.TempDir(), "{format}")
	s.Formats = []model.OutputFormat{model.FormatABC, model.FormatMIDI}
	s.ScaleTypes = []theory.ScaleType{theory.Major, theory.MelodicMinor}
	s.Roots = []string{"C", "Bb"}
	s.BookTitle = "Daily"
	return s
}

type eventLog struct {
	mu     sync.Mutex
	events []ProgressEvent
}

func (l *eventLog) add(e ProgressEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}

func (l *eventLog) count(level ProgressLevel) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range l.events {
		if e.Level == level {
			n++
		}
	}
	return n
}

func TestManager_Export(t *testing.T) {
	s := testSettings(t)
	var log eventLog
	m := NewManager(s, log.add)

	if err := m.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if len(m.Books()) != 2 {
		t.Fatalf("len(Books()) = %d, want 2", len(m.Books()))
	}
	if _, _, total := m.Progress(); total != 8 {
		t.Errorf("total = %d, want 8", total)
	}

	if err := m.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	written, failed, _ := m.Progress()
	if written != 8 || failed != 0 {
		t.Errorf("Progress() = %d written, %d failed; want 8, 0", written, failed)
	}
	if log.count(LevelError) != 0 {
		t.Errorf("got %d error events", log.count(LevelError))
	}

	abcBook := m.Books()[0]
	first, err := os.ReadFile(abcBook.Exercises[0].Path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(first), "X: 1\nT: C Major\nM: 2/4\n") {
		t.Errorf("unexpected ABC file:\n%s", first)
	}
	if got := filepath.Base(abcBook.Exercises[3].Path); got != "04 Bbm melodic-minor.abc" {
		t.Errorf("fourth exercise file = %q", got)
	}

	index, err := os.ReadFile(abcBook.IndexPath)
	if err != nil {
		t.Fatalf("tune book not written: %v", err)
	}
	if strings.Count(string(index), "\nX: ") != 4 {
		t.Errorf("tune book should hold 4 tunes:\n%s", index)
	}

	midiBook := m.Books()[1]
	data, err := os.ReadFile(midiBook.Exercises[1].Path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := smf.ReadFrom(bytes.NewReader(data)); err != nil {
		t.Errorf("written MIDI file does not parse: %v", err)
	}

	playlist, err := os.ReadFile(midiBook.IndexPath)
	if err != nil {
		t.Fatalf("playlist not written: %v", err)
	}
	if !strings.HasPrefix(string(playlist), "#EXTM3U\n") || !strings.Contains(string(playlist), "02 Bb major.mid\n") {
		t.Errorf("unexpected playlist:\n%s", playlist)
	}
}

func TestManager_SkipExisting(t *testing.T) {
	s := testSettings(t)
	s.Formats = []model.OutputFormat{model.FormatABC}
	s.SkipExisting = true
	s.CreateBook = false

	m := NewManager(s, nil)
	if err := m.Initialize(); err != nil {
		t.Fatal(err)
	}

	ex := m.Books()[0].Exercises[0]
	if err := os.MkdirAll(filepath.Dir(ex.Path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(ex.Path, []byte("kept"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := m.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	got, _ := os.ReadFile(ex.Path)
	if string(got) != "kept" {
		t.Errorf("existing file was overwritten: %q", got)
	}
	if written, _, total := m.Progress(); written != total {
		t.Errorf("written = %d, want %d", written, total)
	}
	if _, err := os.Stat(m.Books()[0].IndexPath); !os.IsNotExist(err) {
		t.Error("tune book should not be written when CreateBook is false")
	}
}

func TestManager_WritesIndexAfterExercises(t *testing.T) {
	s := testSettings(t)
	s.PlaylistFormat = model.PlaylistPLS

	var log eventLog
	m := NewManager(s, log.add)
	if err := m.Initialize(); err != nil {
		t.Fatal(err)
	}
	if err := m.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if log.count(LevelWarning) != 0 {
		t.Errorf("warning events = %d, want 0", log.count(LevelWarning))
	}

	created := 0
	log.mu.Lock()
	for _, e := range log.events {
		if e.Level == LevelSuccess && strings.HasPrefix(e.Message, "Created ") {
			created++
		}
	}
	log.mu.Unlock()
	if created != 2 {
		t.Errorf("index success events = %d, want 2", created)
	}

	midiBook := m.Books()[1]
	if filepath.Ext(midiBook.IndexPath) != ".pls" {
		t.Errorf("IndexPath = %q, want a .pls playlist", midiBook.IndexPath)
	}
	playlist, err := os.ReadFile(midiBook.IndexPath)
	if err != nil {
		t.Fatalf("playlist not written: %v", err)
	}
	if !strings.Contains(string(playlist), "NumberOfEntries=4\n") {
		t.Errorf("unexpected playlist:\n%s", playlist)
	}
}

func TestManager_FailedFileDoesNotStopOthers(t *testing.T) {
	s := testSettings(t)
	s.Formats = []model.OutputFormat{model.FormatABC}

	var log eventLog
	m := NewManager(s, log.add)
	if err := m.Initialize(); err != nil {
		t.Fatal(err)
	}

	// A directory in the way makes the rename fail.
	blocked := m.Books()[0].Exercises[1].Path
	if err := os.MkdirAll(filepath.Join(blocked, "child"), 0755); err != nil {
		t.Fatal(err)
	}

	if err := m.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	written, failed, total := m.Progress()
	if failed != 1 || written != total-1 {
		t.Errorf("Progress() = %d written, %d failed of %d", written, failed, total)
	}
	if log.count(LevelError) != 1 {
		t.Errorf("error events = %d, want 1", log.count(LevelError))
	}
	if log.count(LevelWarning) != 1 {
		t.Errorf("warning events = %d, want 1", log.count(LevelWarning))
	}
}

func TestManager_Cancelled(t *testing.T) {
	m := NewManager(testSettings(t), nil)
	if err := m.Initialize(); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := m.Start(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Start() error = %v, want context.Canceled", err)
	}
	if written, _, _ := m.Progress(); written != 0 {
		t.Errorf("written = %d after cancellation, want 0", written)
	}
}

func TestManager_InvalidSettings(t *testing.T) {
	s := testSettings(t)
	s.Roots = []string{"X"}
	if err := NewManager(s, nil).Initialize(); !errors.Is(err, config.ErrInvalidSettings) {
		t.Errorf("Initialize() error = %v, want ErrInvalidSettings", err)
	}
}

func TestRender(t *testing.T) {
	b := model.NewBook("", model.FormatABC, &model.PathConfig{OutputPath: "out"})
	ex := model.NewExercise(b, 7, theory.MustParseNote("G"), theory.Major, &model.ExerciseConfig{FileNameFormat: "{key}"})

	data, err := Render(ex, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "X: 7\nT: G Major\n") || !strings.Contains(string(data), "\nK: G\n") {
		t.Errorf("Render() =\n%s", data)
	}
}
