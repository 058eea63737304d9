package theory

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ReferenceOctave is the octave of every note held in the circle tables.
const ReferenceOctave = 4

// ErrInvalidNote is returned when a note name cannot be parsed.
var ErrInvalidNote = errors.New("invalid note")

// Letter is a note name. The values follow the cyclic order C..B.
type Letter uint8

const (
	C Letter = iota
	D
	E
	F
	G
	A
	B
)

// Letters lists the seven letter names in scale order.
var Letters = [7]Letter{C, D, E, F, G, A, B}

var letterNames = [7]string{"C", "D", "E", "F", "G", "A", "B"}

// letterSemitones holds the natural semitone of each letter above C.
var letterSemitones = [7]int{0, 2, 4, 5, 7, 9, 11}

// Semitone returns the natural semitone of the letter above C.
func (l Letter) Semitone() int {
	return letterSemitones[l]
}

// Next returns the following letter, wrapping B to C.
func (l Letter) Next() Letter {
	return Letters[(int(l)+1)%7]
}

// Prev returns the preceding letter, wrapping C to B.
func (l Letter) Prev() Letter {
	return Letters[(int(l)+6)%7]
}

func (l Letter) String() string {
	if int(l) < len(letterNames) {
		return letterNames[l]
	}
	return "Letter(" + strconv.Itoa(int(l)) + ")"
}

// ParseLetter parses a single letter name, in either case.
func ParseLetter(s string) (Letter, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, name := range letterNames {
		if s == name {
			return Letters[i], nil
		}
	}
	return C, fmt.Errorf("%w: letter %q", ErrInvalidNote, s)
}

// Accidental is a signed semitone alteration of a letter.
type Accidental int8

const (
	DoubleFlat  Accidental = -2
	Flat        Accidental = -1
	Natural     Accidental = 0
	Sharp       Accidental = 1
	DoubleSharp Accidental = 2
)

// Offset returns the alteration in semitones.
func (a Accidental) Offset() int {
	return int(a)
}

// IsFlat reports whether the accidental lowers the letter.
func (a Accidental) IsFlat() bool {
	return a < 0
}

// String returns the ASCII spelling used in note names: "", "#", "##",
// "b" or "bb".
func (a Accidental) String() string {
	switch a {
	case Sharp:
		return "#"
	case DoubleSharp:
		return "##"
	case Flat:
		return "b"
	case DoubleFlat:
		return "bb"
	default:
		return ""
	}
}

// Symbol returns the typographic accidental sign, empty for natural.
func (a Accidental) Symbol() string {
	switch a {
	case Sharp:
		return "♯"
	case DoubleSharp:
		return "𝄪"
	case Flat:
		return "♭"
	case DoubleFlat:
		return "𝄫"
	default:
		return ""
	}
}

// ParseAccidental accepts "", "n", "#", "##", "b", "bb" and the
// typographic signs.
func ParseAccidental(s string) (Accidental, error) {
	switch s {
	case "", "n", "♮":
		return Natural, nil
	case "#", "♯", "s":
		return Sharp, nil
	case "##", "x", "𝄪", "♯♯":
		return DoubleSharp, nil
	case "b", "♭":
		return Flat, nil
	case "bb", "𝄫", "♭♭":
		return DoubleFlat, nil
	}
	return Natural, fmt.Errorf("%w: accidental %q", ErrInvalidNote, s)
}

// Note is a spelled pitch. Letter and Accidental fix the pitch class;
// Octave orders notes and changes whenever a scale crosses B→C.
type Note struct {
	Letter     Letter
	Accidental Accidental
	Octave     int
}

// NewNote returns a note in the reference octave.
func NewNote(l Letter, a Accidental) Note {
	return Note{Letter: l, Accidental: a, Octave: ReferenceOctave}
}

// semitone is the letter's semitone plus the alteration, not normalised.
// Cb yields -1 and B# yields 12.
func (n Note) semitone() int {
	return n.Letter.Semitone() + n.Accidental.Offset()
}

// PitchClass returns the note's pitch class in 0..11.
func (n Note) PitchClass() int {
	return mod12(n.semitone())
}

// AbsoluteSemitone returns octave*12 plus the altered letter semitone.
// The alteration is not wrapped, so Cb4 lies a semitone below C4 and B#3
// equals C4.
func (n Note) AbsoluteSemitone() int {
	return n.Octave*12 + n.semitone()
}

// PitchEqual reports whether both notes share a pitch class, ignoring
// octave.
func (n Note) PitchEqual(o Note) bool {
	return n.PitchClass() == o.PitchClass()
}

// SameSpelling reports whether letter and accidental match exactly,
// ignoring octave.
func (n Note) SameSpelling(o Note) bool {
	return n.Letter == o.Letter && n.Accidental == o.Accidental
}

// Transpose moves the note by whole octaves.
func (n Note) Transpose(octaves int) Note {
	n.Octave += octaves
	return n
}

// Name returns the letter and accidental, e.g. "F#" or "Bb".
func (n Note) Name() string {
	return n.Letter.String() + n.Accidental.String()
}

// Pretty returns the name with typographic accidentals, e.g. "F♯".
func (n Note) Pretty() string {
	return n.Letter.String() + n.Accidental.Symbol()
}

func (n Note) String() string {
	return n.Name() + strconv.Itoa(n.Octave)
}

// ParseNote parses names such as "C", "f#", "Bb3" or "Ebb-1". A missing
// octave defaults to ReferenceOctave.
func ParseNote(s string) (Note, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Note{}, fmt.Errorf("%w: empty", ErrInvalidNote)
	}
	letter, err := ParseLetter(s[:1])
	if err != nil {
		return Note{}, err
	}
	rest := s[1:]
	end := strings.IndexFunc(rest, func(r rune) bool {
		return r == '-' || (r >= '0' && r <= '9')
	})
	accText, octText := rest, ""
	if end >= 0 {
		accText, octText = rest[:end], rest[end:]
	}
	acc, err := ParseAccidental(accText)
	if err != nil {
		return Note{}, fmt.Errorf("%w in %q", err, s)
	}
	octave := ReferenceOctave
	if octText != "" {
		octave, err = strconv.Atoi(octText)
		if err != nil {
			return Note{}, fmt.Errorf("%w: octave %q", ErrInvalidNote, octText)
		}
	}
	return Note{Letter: letter, Accidental: acc, Octave: octave}, nil
}

// MustParseNote is like ParseNote but panics on error. Intended for
// constants and tests.
func MustParseNote(s string) Note {
	n, err := ParseNote(s)
	if err != nil {
		panic(err)
	}
	return n
}

// AccidentalForTarget returns the accidental that makes letter sound at
// the target pitch class.
//
// The difference from the letter's natural semitone is folded into
// [-6, 6]. Differences beyond a double accidental cannot be spelled on
// this letter and fall back to Natural; scale and cadence construction
// never produce them for roots reachable from the circle tables.
func AccidentalForTarget(target int, letter Letter) Accidental {
	diff := accidentalDiff(target, letter)
	if diff < -2 || diff > 2 {
		return Natural
	}
	return Accidental(diff)
}

func accidentalDiff(target int, letter Letter) int {
	diff := target - letter.Semitone()
	for diff > 6 {
		diff -= 12
	}
	for diff < -6 {
		diff += 12
	}
	return diff
}

func mod12(v int) int {
	v %= 12
	if v < 0 {
		v += 12
	}
	return v
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// SpellAbsolute spells an absolute semitone on the given letter. The
// octave is derived from the spelled note, so B#3 and Cb4 land in the
// octave their letter belongs to.
func SpellAbsolute(absolute int, letter Letter) Note {
	acc := AccidentalForTarget(mod12(absolute), letter)
	n := Note{Letter: letter, Accidental: acc}
	n.Octave = floorDiv(absolute-n.semitone(), 12)
	return n
}
