package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/handiism/virtuoso/internal/theory"
)

// ReferenceOctave is written with upper-case letters and no markers.
const ReferenceOctave = 4

// ErrInvalidPitch is returned when a pitch token cannot be decoded.
var ErrInvalidPitch = errors.New("invalid pitch")

// PitchText writes a letter in the given octave using case and
// octave markers.
func PitchText(l theory.Letter, octave int) string {
	name := l.String()
	if octave > ReferenceOctave {
		return strings.ToLower(name) + strings.Repeat("'", octave-ReferenceOctave-1)
	}
	return name + strings.Repeat(",", ReferenceOctave-octave)
}

// ParseOctave reads a pitch token written by PitchText, optionally
// preceded by accidental markers, and returns its letter and octave.
func ParseOctave(text string) (theory.Letter, int, error) {
	s := strings.TrimLeft(text, "^_=")
	if s == "" {
		return theory.C, 0, fmt.Errorf("%w: %q", ErrInvalidPitch, text)
	}
	letter, err := theory.ParseLetter(s[:1])
	if err != nil {
		return theory.C, 0, fmt.Errorf("%w: %q", ErrInvalidPitch, text)
	}

	lower := s[0] >= 'a' && s[0] <= 'z'
	marks := s[1:]
	raised := strings.Count(marks, "'")
	lowered := strings.Count(marks, ",")
	if raised+lowered != len(marks) || (lower && lowered > 0) || (!lower && raised > 0) {
		return theory.C, 0, fmt.Errorf("%w: %q", ErrInvalidPitch, text)
	}

	if lower {
		return letter, ReferenceOctave + 1 + raised, nil
	}
	return letter, ReferenceOctave - lowered, nil
}

// accidentalText is the ABC marker for an explicitly written accidental.
func accidentalText(a theory.Accidental) string {
	switch a {
	case theory.Sharp:
		return "^"
	case theory.DoubleSharp:
		return "^^"
	case theory.Flat:
		return "_"
	case theory.DoubleFlat:
		return "__"
	default:
		return "="
	}
}

// NoteText writes a note under a key signature. The accidental is omitted
// when the key already implies it.
func NoteText(n theory.Note, key theory.KeySignature) string {
	acc := ""
	if n.Accidental != key.Implied(n.Letter) {
		acc = accidentalText(n.Accidental)
	}
	return acc + PitchText(n.Letter, n.Octave)
}
