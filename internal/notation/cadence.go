package notation

import "github.com/handiism/virtuoso/internal/theory"

// Chord durations in units of the default note length (a sixteenth).
const (
	chordLength      = 4
	finalChordLength = 8
)

// Voicing lists, per chord, the semitone offsets from the root.
type Voicing [5][]int

// Right-hand cadence: tonic, ii/IV, cadential six-four, V7, tonic.
var (
	majorRightHand = Voicing{
		{0},
		{2, 9, 12},
		{4, 7, 12},
		{2, 5, 7, 11},
		{0, 4, 7, 12},
	}
	minorRightHand = Voicing{
		{0},
		{2, 8, 12},
		{3, 7, 12},
		{2, 5, 7, 11},
		{0, 3, 7, 12},
	}
	leftHand = Voicing{
		{-12},
		{5, -7},
		{7, -5},
		{-5, -17},
		{0, -12},
	}
)

// CadenceVoicing returns the right- and left-hand voicings for the mode
// of t.
func CadenceVoicing(t theory.ScaleType) (rh, lh Voicing) {
	if t.IsMinor() {
		return minorRightHand, leftHand
	}
	return majorRightHand, leftHand
}

// speller resolves semitone offsets against a root. The spelling
// preference is fixed once per exercise. Cadence tones are spelled with
// the letter they have in the cadence scale (E♯, not F, in F♯ major), so
// preferFlat only applies to tones outside that scale; the built-in
// voicings never produce one.
type speller struct {
	root       theory.Note
	preferFlat bool
	// byPitchClass holds the cadence scale's letter for each pitch class.
	byPitchClass map[int]theory.Letter
}

func newSpeller(root theory.Note, t theory.ScaleType, key theory.KeySignature) *speller {
	s := &speller{
		root:         root,
		preferFlat:   root.Accidental.IsFlat() || root.SameSpelling(theory.NewNote(theory.F, theory.Natural)) || key.LeansFlat(),
		byPitchClass: make(map[int]theory.Letter, 7),
	}
	scale := theory.Major
	if t.IsMinor() {
		scale = theory.HarmonicMinor
	}
	notes := theory.ScaleNotes(root, scale, theory.Up)
	for _, n := range notes[:7] {
		s.byPitchClass[n.PitchClass()] = n.Letter
	}
	return s
}

// resolve spells the note offset semitones from the root. Tones of the
// cadence scale keep their scale letter; anything else falls back to the
// exercise's sharp or flat preference.
func (s *speller) resolve(offset int) theory.Note {
	abs := s.root.AbsoluteSemitone() + offset
	pc := ((abs % 12) + 12) % 12
	letter, ok := s.byPitchClass[pc]
	if !ok {
		letter = theory.NoteFromSemitone(pc, s.preferFlat).Letter
	}
	return theory.SpellAbsolute(abs, letter)
}

func (s *speller) chords(v Voicing) []Chord {
	chords := make([]Chord, len(v))
	for i, offsets := range v {
		notes := make([]theory.Note, len(offsets))
		for j, off := range offsets {
			notes[j] = s.resolve(off)
		}
		length := chordLength
		if i == len(v)-1 {
			length = finalChordLength
		}
		chords[i] = Chord{Notes: notes, Length: length}
	}
	return chords
}
