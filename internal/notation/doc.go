// Package notation turns a root and scale type into an ABC-notation
// practice exercise: a two-staff score with an ascending and descending
// scale followed by a five-chord cadence in each hand.
//
// # Basic Usage
//
//	root := theory.MustParseNote("A")
//	fmt.Print(notation.Generate(root, theory.MelodicMinor))
//
// Output:
//
//	M: 2/4
//	L: 1/16
//	K: Am
//	V: 1 treble
//	ABcd e^f^ga | agfe dcBA :|] [A]4 [Bfa]4 | [cea]4 [Bde^g]4 | [Acea]8 |]
//
// # Exercise
//
// Build returns the intermediate Exercise so other writers (MIDI, tune
// books) can render the same content:
//
//	ex := notation.Build(root, theory.Major)
//	for _, n := range ex.Treble.Up {
//	    fmt.Println(n)
//	}
//
// # Accidentals
//
// Accidentals are written only when a note differs from its key
// signature. A natural under a sharp or flat signature is written with
// the explicit "=" marker.
//
// # Octaves
//
// Octave 4 is written in upper case ("C"). Higher octaves use lower case
// with one apostrophe per octave above 5 ("c", "c'"); lower octaves add
// one comma per octave below 4 ("C,", "C,,").
package notation
