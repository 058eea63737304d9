package notation

import (
	"fmt"
	"strings"

	"github.com/handiism/virtuoso/internal/theory"
)

// Header values shared by every exercise.
const (
	Meter      = "2/4"
	UnitLength = "1/16"
)

// Chord is a group of simultaneous notes held for Length units.
type Chord struct {
	Notes  []theory.Note
	Length int
}

// Staff holds one hand's part.
type Staff struct {
	// Voice is the ABC voice number.
	Voice int

	// Clef is "treble" or "bass".
	Clef string

	// Up is the ascending scale, unison to octave.
	Up [8]theory.Note

	// Down descends from the top of Up back to the root.
	Down [8]theory.Note

	// Cadence holds five chords, the last one twice as long.
	Cadence []Chord
}

// Exercise is a complete scale-and-cadence exercise for one key.
type Exercise struct {
	Root   theory.Note
	Type   theory.ScaleType
	Key    theory.KeySignature
	Treble Staff
	Bass   Staff
}

// Build assembles the exercise for root and scale type t.
//
// The descent starts from the ascent's top note, so melodic minor goes up
// with the raised sixth and seventh and comes down as natural minor. The
// bass plays the same notes an octave lower.
func Build(root theory.Note, t theory.ScaleType) *Exercise {
	key := theory.KeySignatureMap(root, t.IsMinor())

	up := theory.ScaleNotes(root, t, theory.Up)
	down := theory.ScaleNotes(up[7], t, theory.Down)

	sp := newSpeller(root, t, key)
	rh, lh := CadenceVoicing(t)

	ex := &Exercise{
		Root: root,
		Type: t,
		Key:  key,
		Treble: Staff{
			Voice:   1,
			Clef:    "treble",
			Up:      up,
			Down:    down,
			Cadence: sp.chords(rh),
		},
		Bass: Staff{
			Voice:   2,
			Clef:    "bass",
			Up:      transpose(up, -1),
			Down:    transpose(down, -1),
			Cadence: sp.chords(lh),
		},
	}
	return ex
}

func transpose(notes [8]theory.Note, octaves int) [8]theory.Note {
	for i := range notes {
		notes[i] = notes[i].Transpose(octaves)
	}
	return notes
}

// Staves returns the treble and bass staves in voice order.
func (ex *Exercise) Staves() []*Staff {
	return []*Staff{&ex.Treble, &ex.Bass}
}

// KeyField returns the K: value: the root name with "m" for minor keys.
func (ex *Exercise) KeyField() string {
	if ex.Type.IsMinor() {
		return ex.Root.Name() + "m"
	}
	return ex.Root.Name()
}

// Title is a human readable name such as "F♯ Minor (Harmonic)".
func Title(root theory.Note, t theory.ScaleType) string {
	return root.Pretty() + " " + t.String()
}

// Render writes the exercise as ABC text.
func Render(ex *Exercise) string {
	var sb strings.Builder
	writeBody(&sb, ex)
	return sb.String()
}

// Generate builds and renders the exercise for root and scale type t.
func Generate(root theory.Note, t theory.ScaleType) string {
	return Render(Build(root, t))
}

// Tune renders the exercise as a numbered tune with reference and title
// fields, for collecting several exercises in one tune book.
func Tune(ex *Exercise, index int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("X: %d\n", index))
	sb.WriteString(fmt.Sprintf("T: %s\n", Title(ex.Root, ex.Type)))
	writeBody(&sb, ex)
	return sb.String()
}

func writeBody(sb *strings.Builder, ex *Exercise) {
	sb.WriteString("M: " + Meter + "\n")
	sb.WriteString("L: " + UnitLength + "\n")
	sb.WriteString("K: " + ex.KeyField() + "\n")
	for _, st := range ex.Staves() {
		sb.WriteString(fmt.Sprintf("V: %d %s\n", st.Voice, st.Clef))
		sb.WriteString(staffLine(st, ex.Key))
		sb.WriteString("\n")
	}
}

// staffLine writes one staff: up | down :|] cadence |]
func staffLine(st *Staff, key theory.KeySignature) string {
	c := make([]string, len(st.Cadence))
	for i, ch := range st.Cadence {
		c[i] = chordText(ch, key)
	}
	return fmt.Sprintf("%s | %s :|] %s %s | %s %s | %s |]",
		scaleBar(st.Up, key), scaleBar(st.Down, key),
		c[0], c[1], c[2], c[3], c[4])
}

// scaleBar writes eight sixteenths beamed in two groups of four.
func scaleBar(notes [8]theory.Note, key theory.KeySignature) string {
	var sb strings.Builder
	for i, n := range notes {
		if i == 4 {
			sb.WriteByte(' ')
		}
		sb.WriteString(NoteText(n, key))
	}
	return sb.String()
}

func chordText(ch Chord, key theory.KeySignature) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for _, n := range ch.Notes {
		sb.WriteString(NoteText(n, key))
	}
	sb.WriteByte(']')
	sb.WriteString(fmt.Sprint(ch.Length))
	return sb.String()
}
