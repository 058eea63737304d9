package midifile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/handiism/virtuoso/internal/notation"
	"github.com/handiism/virtuoso/internal/theory"
)

const (
	// Resolution is the number of ticks per quarter note.
	Resolution = 960

	// DefaultTempo is used when a caller passes no tempo.
	DefaultTempo = 80.0

	velocity = 80
	piano    = 0
)

// ErrInvalidTempo is returned for negative tempos.
var ErrInvalidTempo = errors.New("invalid tempo")

// Key returns the MIDI key number of n, clamped to 0..127.
func Key(n theory.Note) uint8 {
	k := n.AbsoluteSemitone() + 12
	switch {
	case k < 0:
		return 0
	case k > 127:
		return 127
	}
	return uint8(k)
}

// Units returns the length of the exercise in sixteenths.
func Units(ex *notation.Exercise) int {
	units := len(ex.Treble.Up) + len(ex.Treble.Down)
	for _, ch := range ex.Treble.Cadence {
		units += ch.Length
	}
	return units
}

// Duration returns how long the exercise plays at tempo beats per minute.
func Duration(ex *notation.Exercise, tempo float64) time.Duration {
	if tempo <= 0 {
		tempo = DefaultTempo
	}
	beats := float64(Units(ex)) / 4
	return time.Duration(beats * 60 / tempo * float64(time.Second))
}

// Write encodes ex as a Standard MIDI File. A zero tempo means
// DefaultTempo.
func Write(w io.Writer, ex *notation.Exercise, tempo float64) error {
	s, err := build(ex, tempo)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("write midi: %w", err)
	}
	return nil
}

// Encode returns the Standard MIDI File bytes for ex.
func Encode(ex *notation.Exercise, tempo float64) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, ex, tempo); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func build(ex *notation.Exercise, tempo float64) (*smf.SMF, error) {
	switch {
	case tempo < 0:
		return nil, fmt.Errorf("%w: %g", ErrInvalidTempo, tempo)
	case tempo == 0:
		tempo = DefaultTempo
	}

	ticks := smf.MetricTicks(Resolution)
	s := smf.New()
	s.TimeFormat = ticks

	var conductor smf.Track
	conductor.Add(0, smf.MetaTrackSequenceName(notation.Title(ex.Root, ex.Type)))
	conductor.Add(0, smf.MetaMeter(2, 4))
	conductor.Add(0, smf.MetaTempo(tempo))
	conductor.Close(0)
	if err := s.Add(conductor); err != nil {
		return nil, fmt.Errorf("add conductor track: %w", err)
	}

	for _, st := range ex.Staves() {
		tr := staffTrack(st, ticks.Ticks16th())
		if err := s.Add(tr); err != nil {
			return nil, fmt.Errorf("add %s track: %w", st.Clef, err)
		}
	}
	return s, nil
}

// staffTrack plays the ascent and descent as sixteenths, then the cadence
// chords with their written lengths.
func staffTrack(st *notation.Staff, sixteenth uint32) smf.Track {
	ch := uint8(st.Voice - 1)

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(st.Clef))
	tr.Add(0, midi.ProgramChange(ch, piano))

	for _, run := range [][8]theory.Note{st.Up, st.Down} {
		for _, n := range run {
			addChord(&tr, ch, []theory.Note{n}, sixteenth)
		}
	}
	for _, chord := range st.Cadence {
		addChord(&tr, ch, chord.Notes, sixteenth*uint32(chord.Length))
	}

	tr.Close(0)
	return tr
}

func addChord(tr *smf.Track, ch uint8, notes []theory.Note, length uint32) {
	for _, n := range notes {
		tr.Add(0, midi.NoteOn(ch, Key(n), velocity))
	}
	for i, n := range notes {
		var delta uint32
		if i == 0 {
			delta = length
		}
		tr.Add(delta, midi.NoteOff(ch, Key(n)))
	}
}
