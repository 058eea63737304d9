package tui

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/handiism/virtuoso/internal/config"
	"github.com/handiism/virtuoso/internal/export"
	"github.com/handiism/virtuoso/internal/model"
	"github.com/handiism/virtuoso/internal/theory"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	settings := config.DefaultSettings()
	settings.OutputPath = filepath.Join(t.TempDir(), "{format}")
	settings.Formats = []model.OutputFormat{model.FormatABC, model.FormatMIDI}
	return NewModel(settings, NewSession(theory.MustParseNote("C"), theory.Major, rand.New(rand.NewPCG(3, 4))))
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_Navigation(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		wantRoot string
		wantType theory.ScaleType
	}{
		{"right", []tea.KeyMsg{{Type: tea.KeyRight}}, "G", theory.Major},
		{"left", []tea.KeyMsg{{Type: tea.KeyLeft}}, "F", theory.Major},
		{"relative", []tea.KeyMsg{runes("r")}, "A", theory.HarmonicMinor},
		{"mode", []tea.KeyMsg{runes("m")}, "C", theory.HarmonicMinor},
		{"melodic", []tea.KeyMsg{runes("l")}, "C", theory.MelodicMinor},
		{"melodic then harmonic", []tea.KeyMsg{runes("l"), runes("h")}, "C", theory.HarmonicMinor},
		{"natural then right", []tea.KeyMsg{runes("n"), {Type: tea.KeyRight}}, "G", theory.NaturalMinor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := press(t, newTestModel(t), tt.keys...)
			s := m.Session()
			if s.Root.Name() != tt.wantRoot || s.Type != tt.wantType {
				t.Errorf("session = %s %s, want %s %s", s.Root.Name(), s.Type, tt.wantRoot, tt.wantType)
			}
		})
	}
}

func TestModel_Shuffle(t *testing.T) {
	m, _ := press(t, newTestModel(t), runes("s"))
	if m.Session().Root.PitchEqual(theory.MustParseNote("C")) {
		t.Error("shuffle kept the same root")
	}
}

func TestModel_RootInput(t *testing.T) {
	m, _ := press(t, newTestModel(t), runes("/"))
	if m.State() != StateRootInput {
		t.Fatalf("State() = %v, want StateRootInput", m.State())
	}

	m, _ = press(t, m, runes("F#"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.State() != StateBrowse {
		t.Errorf("State() = %v, want StateBrowse", m.State())
	}
	if got := m.Session().Root.Name(); got != "F#" {
		t.Errorf("root = %s, want F#", got)
	}

	m, _ = press(t, m, runes("/"), runes("X"), tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Session().Root.Name(); got != "F#" {
		t.Errorf("invalid input changed root to %s", got)
	}
	if m.statusLevel != export.LevelError || m.status == "" {
		t.Errorf("invalid input should set an error status, got %q", m.status)
	}
}

func TestModel_ExportCurrent(t *testing.T) {
	m, cmd := press(t, newTestModel(t), runes("e"))
	if cmd == nil {
		t.Fatal("export key returned no command")
	}

	msg, ok := cmd().(ExportedMsg)
	if !ok {
		t.Fatalf("command returned %T, want ExportedMsg", msg)
	}
	if msg.Err != nil {
		t.Fatalf("export error = %v", msg.Err)
	}
	if len(msg.Paths) != 2 {
		t.Fatalf("exported %d files, want 2", len(msg.Paths))
	}
	for _, p := range msg.Paths {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("exported file missing: %v", err)
		}
	}

	next, _ := m.Update(msg)
	m = next.(Model)
	if m.statusLevel != export.LevelSuccess {
		t.Errorf("status level = %v, want success", m.statusLevel)
	}
}

func TestModel_ExportAll(t *testing.T) {
	m, _ := press(t, newTestModel(t), runes("x"))
	if m.State() != StateExporting {
		t.Fatalf("State() = %v, want StateExporting", m.State())
	}

	initMsg := initExport(m.settings, m.events)().(ExportInitMsg)
	if initMsg.Err != nil {
		t.Fatalf("init error = %v", initMsg.Err)
	}
	next, _ := m.Update(initMsg)
	m = next.(Model)

	done := runExport(m.ctx, m.manager)().(ExportDoneMsg)
	next, _ = m.Update(done)
	m = next.(Model)

	if m.State() != StateComplete {
		t.Fatalf("State() = %v (err %v), want StateComplete", m.State(), m.err)
	}
	if m.written != 48 || m.total != 48 {
		t.Errorf("written %d of %d, want 48 of 48", m.written, m.total)
	}
	if !strings.Contains(m.View(), "Export Complete") {
		t.Error("view should report completion")
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.State() != StateBrowse {
		t.Errorf("State() = %v, want StateBrowse", m.State())
	}
}

func TestModel_View(t *testing.T) {
	view := newTestModel(t).View()
	for _, want := range []string{"C Major", "K: C", "CDEF GABc"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModel_Quit(t *testing.T) {
	_, cmd := press(t, newTestModel(t), runes("q"))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
}
