package tui

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/handiism/virtuoso/internal/theory"
)

func newTestSession(root string, t theory.ScaleType) Session {
	return NewSession(theory.MustParseNote(root), t, rand.New(rand.NewPCG(1, 2)))
}

func TestSession_Fifths(t *testing.T) {
	tests := []struct {
		root     string
		st       theory.ScaleType
		wantNext string
		wantPrev string
	}{
		{"C", theory.Major, "G", "F"},
		{"F#", theory.Major, "Db", "B"},
		{"A", theory.HarmonicMinor, "E", "D"},
		{"D#", theory.NaturalMinor, "Bb", "G#"},
	}

	for _, tt := range tests {
		t.Run(tt.root+" "+tt.st.String(), func(t *testing.T) {
			s := newTestSession(tt.root, tt.st)
			s.NextFifth()
			if got := s.Root.Name(); got != tt.wantNext {
				t.Errorf("NextFifth() root = %s, want %s", got, tt.wantNext)
			}

			s = newTestSession(tt.root, tt.st)
			s.PrevFifth()
			if got := s.Root.Name(); got != tt.wantPrev {
				t.Errorf("PrevFifth() root = %s, want %s", got, tt.wantPrev)
			}
		})
	}
}

func TestSession_Relative(t *testing.T) {
	s := newTestSession("C", theory.Major)

	s.Relative()
	if s.Root.Name() != "A" || s.Type != theory.HarmonicMinor {
		t.Errorf("Relative() of C major = %s %s, want A harmonic minor", s.Root.Name(), s.Type)
	}

	s.Relative()
	if s.Root.Name() != "C" || s.Type != theory.Major {
		t.Errorf("Relative() of A minor = %s %s, want C major", s.Root.Name(), s.Type)
	}

	s = newTestSession("Bb", theory.MelodicMinor)
	s.Relative()
	if s.Root.Name() != "Db" || s.Type != theory.Major {
		t.Errorf("Relative() of Bb melodic minor = %s %s, want Db major", s.Root.Name(), s.Type)
	}
}

func TestSession_ToggleModeKeepsPitch(t *testing.T) {
	s := newTestSession("Db", theory.Major)

	s.ToggleMode()
	if s.Root.Name() != "C#" || s.Type != theory.HarmonicMinor {
		t.Errorf("ToggleMode() = %s %s, want C# harmonic minor", s.Root.Name(), s.Type)
	}

	s.ToggleMode()
	if s.Root.Name() != "Db" || s.Type != theory.Major {
		t.Errorf("ToggleMode() back = %s %s, want Db major", s.Root.Name(), s.Type)
	}
}

func TestSession_SetMinorTypeIsRemembered(t *testing.T) {
	s := newTestSession("Eb", theory.Major)

	s.SetMinorType(theory.MelodicMinor)
	if s.Root.Name() != "D#" || s.Type != theory.MelodicMinor {
		t.Fatalf("SetMinorType() = %s %s, want D# melodic minor", s.Root.Name(), s.Type)
	}

	s.ToggleMode()
	s.ToggleMode()
	if s.Type != theory.MelodicMinor {
		t.Errorf("Type after two toggles = %s, want melodic minor", s.Type)
	}

	s.SetMinorType(theory.Major)
	if s.Type != theory.MelodicMinor {
		t.Errorf("SetMinorType(Major) should be ignored, got %s", s.Type)
	}
}

func TestSession_ShuffleNeverRepeats(t *testing.T) {
	s := newTestSession("C", theory.Major)
	for i := 0; i < 100; i++ {
		prev := s.Root
		s.Shuffle()
		if s.Root.PitchEqual(prev) {
			t.Fatalf("Shuffle() repeated %s", prev.Name())
		}
		if _, ok := theory.MajorCircle.IndexOf(s.Root); !ok {
			t.Fatalf("Shuffle() gave %s, not on the major circle", s.Root.Name())
		}
	}
}

func TestSession_SetRoot(t *testing.T) {
	s := newTestSession("C", theory.Major)

	if err := s.SetRoot("c#5"); err != nil {
		t.Fatalf("SetRoot() error = %v", err)
	}
	if s.Root.String() != "C#4" {
		t.Errorf("Root = %s, want C#4", s.Root)
	}

	if err := s.SetRoot("H"); !errors.Is(err, theory.ErrInvalidNote) {
		t.Errorf("SetRoot(H) error = %v, want ErrInvalidNote", err)
	}
	if s.Root.String() != "C#4" {
		t.Errorf("failed SetRoot changed root to %s", s.Root)
	}
}

func TestSession_KeySignature(t *testing.T) {
	tests := []struct {
		root string
		st   theory.ScaleType
		want string
	}{
		{"C", theory.Major, "no accidentals"},
		{"D", theory.Major, "2♯ (F# C#)"},
		{"F", theory.Major, "1♭ (Bb)"},
		{"C", theory.HarmonicMinor, "3♭ (Bb Eb Ab)"},
	}

	for _, tt := range tests {
		s := newTestSession(tt.root, tt.st)
		if got := s.KeySignature(); got != tt.want {
			t.Errorf("%s %s KeySignature() = %q, want %q", tt.root, tt.st, got, tt.want)
		}
	}
}
