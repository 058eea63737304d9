package tui

import (
	"fmt"
	"math/rand/v2"

	"github.com/handiism/virtuoso/internal/notation"
	"github.com/handiism/virtuoso/internal/theory"
)

// Session is the practice state behind the browser: the current root and
// scale type, plus the minor flavour to come back to when switching modes.
type Session struct {
	Root theory.Note
	Type theory.ScaleType

	minorType theory.ScaleType
	rng       *rand.Rand
}

// NewSession starts at root in scale type t. A nil rng uses the global
// generator for shuffling.
func NewSession(root theory.Note, t theory.ScaleType, rng *rand.Rand) Session {
	s := Session{
		Root:      theory.CanonicalRoot(root, t),
		Type:      t,
		minorType: theory.HarmonicMinor,
		rng:       rng,
	}
	if t.IsMinor() {
		s.minorType = t
	}
	return s
}

// NextFifth moves clockwise on the circle of the current mode.
func (s *Session) NextFifth() {
	if next, ok := theory.CircleFor(s.Type).Next(s.Root); ok {
		s.Root = next
	}
}

// PrevFifth moves counter-clockwise on the circle of the current mode.
func (s *Session) PrevFifth() {
	if prev, ok := theory.CircleFor(s.Type).Prev(s.Root); ok {
		s.Root = prev
	}
}

// Relative jumps to the relative key: a major key goes to its harmonic
// minor, a minor key to its major.
func (s *Session) Relative() {
	s.Root = theory.RelativeNote(s.Root, s.Type)
	if s.Type.IsMinor() {
		s.Type = theory.Major
	} else {
		s.Type = theory.HarmonicMinor
		s.minorType = theory.HarmonicMinor
	}
}

// ToggleMode switches to the parallel key, keeping the root pitch and
// respelling it for the new circle.
func (s *Session) ToggleMode() {
	if s.Type.IsMinor() {
		s.Type = theory.Major
	} else {
		s.Type = s.minorType
	}
	s.Root = theory.CanonicalRoot(s.Root, s.Type)
}

// SetMinorType selects a minor flavour, switching to minor if needed.
func (s *Session) SetMinorType(t theory.ScaleType) {
	if !t.IsMinor() {
		return
	}
	s.minorType = t
	if !s.Type.IsMinor() {
		s.Root = theory.CanonicalRoot(s.Root, t)
	}
	s.Type = t
}

// Shuffle picks a random root other than the current one.
func (s *Session) Shuffle() {
	s.Root = theory.CanonicalRoot(theory.RandomRoot(s.rng, s.Root), s.Type)
}

// SetRoot parses a note name and makes it the root, keeping the typed
// spelling.
func (s *Session) SetRoot(name string) error {
	n, err := theory.ParseNote(name)
	if err != nil {
		return err
	}
	n.Octave = theory.ReferenceOctave
	s.Root = n
	return nil
}

// Title names the current exercise.
func (s *Session) Title() string {
	return notation.Title(s.Root, s.Type)
}

// Exercise builds the current exercise.
func (s *Session) Exercise() *notation.Exercise {
	return notation.Build(s.Root, s.Type)
}

// KeySignature describes the current key signature.
func (s *Session) KeySignature() string {
	key := theory.KeySignatureMap(s.Root, s.Type.IsMinor())
	switch {
	case key.Sharps() > 0:
		return fmt.Sprintf("%d♯ (%s)", key.Sharps(), key)
	case key.Flats() > 0:
		return fmt.Sprintf("%d♭ (%s)", key.Flats(), key)
	}
	return "no accidentals"
}
