package theory

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidScaleType is returned by ParseScaleType for unknown names.
var ErrInvalidScaleType = errors.New("invalid scale type")

// ScaleType selects the interval pattern of a scale.
type ScaleType int

const (
	Major ScaleType = iota
	NaturalMinor
	HarmonicMinor
	MelodicMinor
)

// ScaleTypes lists every scale type in display order.
var ScaleTypes = []ScaleType{Major, NaturalMinor, HarmonicMinor, MelodicMinor}

// scaleIntervals holds the ascending semitone steps of each scale type.
var scaleIntervals = map[ScaleType][7]int{
	Major:         {2, 2, 1, 2, 2, 2, 1},
	NaturalMinor:  {2, 1, 2, 2, 1, 2, 2},
	HarmonicMinor: {2, 1, 2, 2, 1, 3, 1},
	MelodicMinor:  {2, 1, 2, 2, 2, 2, 1},
}

func (t ScaleType) String() string {
	switch t {
	case Major:
		return "Major"
	case NaturalMinor:
		return "Minor (Natural)"
	case HarmonicMinor:
		return "Minor (Harmonic)"
	case MelodicMinor:
		return "Minor (Melodic)"
	}
	return fmt.Sprintf("ScaleType(%d)", int(t))
}

// Slug returns a short lowercase identifier suitable for flags and file
// names.
func (t ScaleType) Slug() string {
	switch t {
	case NaturalMinor:
		return "natural-minor"
	case HarmonicMinor:
		return "harmonic-minor"
	case MelodicMinor:
		return "melodic-minor"
	default:
		return "major"
	}
}

// IsMinor reports whether the scale belongs to a minor key.
func (t ScaleType) IsMinor() bool {
	return t != Major
}

// MarshalText implements encoding.TextMarshaler using Slug.
func (t ScaleType) MarshalText() ([]byte, error) {
	return []byte(t.Slug()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseScaleType.
func (t *ScaleType) UnmarshalText(b []byte) error {
	v, err := ParseScaleType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseScaleType accepts display names ("Minor (Harmonic)"), slugs
// ("harmonic-minor") and short aliases ("harmonic", "minor").
func ParseScaleType(s string) (ScaleType, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, t := range ScaleTypes {
		if key == strings.ToLower(t.String()) || key == t.Slug() {
			return t, nil
		}
	}
	switch key {
	case "maj", "ionian":
		return Major, nil
	case "natural", "minor", "min", "aeolian":
		return NaturalMinor, nil
	case "harmonic":
		return HarmonicMinor, nil
	case "melodic":
		return MelodicMinor, nil
	}
	return Major, fmt.Errorf("%w: %q", ErrInvalidScaleType, s)
}

// Direction is the direction a scale is played in.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

// Intervals returns the seven semitone steps walked in the given
// direction. Descending scales walk the ascending steps in reverse,
// except melodic minor, which descends as natural minor.
func Intervals(t ScaleType, dir Direction) [7]int {
	steps, ok := scaleIntervals[t]
	if !ok {
		steps = scaleIntervals[Major]
	}
	if dir == Up {
		return steps
	}
	if t == MelodicMinor {
		steps = scaleIntervals[NaturalMinor]
	}
	var rev [7]int
	for i, s := range steps {
		rev[6-i] = s
	}
	return rev
}

// ScaleNotes spells the scale of type t from root in the given direction,
// unison through octave inclusive.
//
// The letter advances by one name per step regardless of accidentals,
// which keeps every letter present exactly once per octave. The octave
// changes when the letter wraps B→C going up or C→B going down.
func ScaleNotes(root Note, t ScaleType, dir Direction) [8]Note {
	var notes [8]Note
	notes[0] = root

	cur := root
	semitone := root.semitone()
	for i, step := range Intervals(t, dir) {
		if dir == Up {
			semitone += step
			next := cur.Letter.Next()
			if next == C {
				cur.Octave++
			}
			cur.Letter = next
		} else {
			semitone -= step
			next := cur.Letter.Prev()
			if next == B {
				cur.Octave--
			}
			cur.Letter = next
		}
		cur.Accidental = AccidentalForTarget(semitone, cur.Letter)
		notes[i+1] = cur
	}
	return notes
}
