// Package theory models pitches, scales, key signatures and the tonal
// relationships between keys.
//
// Everything in this package is a pure function of its arguments. Notes
// are small immutable values and every lookup table is read-only, so the
// package can be used from any number of goroutines without coordination.
//
// # Notes
//
// A Note is a letter, an accidental and an octave:
//
//	n := theory.Note{Letter: theory.F, Accidental: theory.Sharp, Octave: 4}
//	fmt.Println(n)              // F#4
//	fmt.Println(n.PitchClass()) // 6
//
// Notes can also be parsed from text:
//
//	n, err := theory.ParseNote("Bb3")
//
// # Scales
//
// ScaleNotes spells an 8-note scale by stepping through the letter names,
// so each letter appears exactly once per octave:
//
//	up := theory.ScaleNotes(root, theory.MelodicMinor, theory.Up)
//	down := theory.ScaleNotes(up[7], theory.MelodicMinor, theory.Down)
//
// # Circle of fifths
//
// NextFifth, PrevFifth and RelativeNote navigate fixed circle tables, so
// enharmonic spelling is always a table lookup:
//
//	theory.NextFifth(theory.MustParseNote("B"))   // F#4
//	theory.RelativeNote(c, theory.Major)          // A4
//
// # Key signatures
//
// KeySignatureMap returns the accidental a key implies for each letter:
//
//	ks := theory.KeySignatureMap(g, false)
//	ks.Implied(theory.F) // Sharp
package theory
