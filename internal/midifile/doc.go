// Package midifile writes exercises as Standard MIDI Files.
//
// Each exercise becomes a format 1 file with a conductor track holding
// the title, the 2/4 meter and the tempo, followed by one track per staff.
// One ABC unit (a sixteenth) lasts a quarter of a beat:
//
//	ex := notation.Build(theory.MustParseNote("E"), theory.Major)
//	var buf bytes.Buffer
//	if err := midifile.Write(&buf, ex, 90); err != nil {
//	    return err
//	}
//
// Middle C (C4) is MIDI key 60.
package midifile
