package theory

import (
	"math/rand/v2"
	"sort"
)

// Circle is a cycle of twelve keys, each a perfect fifth above the one
// before it. The enharmonic spelling at every position is fixed.
type Circle [12]Note

// MajorCircle holds the major keys from C round the sharp side to the F#
// pivot and back through the flats.
var MajorCircle = Circle{
	NewNote(C, Natural),
	NewNote(G, Natural),
	NewNote(D, Natural),
	NewNote(A, Natural),
	NewNote(E, Natural),
	NewNote(B, Natural),
	NewNote(F, Sharp),
	NewNote(D, Flat),
	NewNote(A, Flat),
	NewNote(E, Flat),
	NewNote(B, Flat),
	NewNote(F, Natural),
}

// MinorCircle holds the relative minor of MajorCircle at the same index.
// The sharp/flat boundary sits between D# minor and Bb minor.
var MinorCircle = Circle{
	NewNote(A, Natural),
	NewNote(E, Natural),
	NewNote(B, Natural),
	NewNote(F, Sharp),
	NewNote(C, Sharp),
	NewNote(G, Sharp),
	NewNote(D, Sharp),
	NewNote(B, Flat),
	NewNote(F, Natural),
	NewNote(C, Natural),
	NewNote(G, Natural),
	NewNote(D, Natural),
}

// CircleFor returns the circle holding keys of the scale type's mode.
func CircleFor(t ScaleType) *Circle {
	if t.IsMinor() {
		return &MinorCircle
	}
	return &MajorCircle
}

// IndexOf finds n by pitch class.
func (c *Circle) IndexOf(n Note) (int, bool) {
	pc := n.PitchClass()
	for i, k := range c {
		if k.PitchClass() == pc {
			return i, true
		}
	}
	return -1, false
}

// Next returns the key a fifth above n.
func (c *Circle) Next(n Note) (Note, bool) {
	i, ok := c.IndexOf(n)
	if !ok {
		return Note{}, false
	}
	return c[(i+1)%len(c)], true
}

// Prev returns the key a fifth below n.
func (c *Circle) Prev(n Note) (Note, bool) {
	i, ok := c.IndexOf(n)
	if !ok {
		return Note{}, false
	}
	return c[(i+len(c)-1)%len(c)], true
}

// NextFifth returns the major-circle key a fifth above n.
func NextFifth(n Note) Note {
	if next, ok := MajorCircle.Next(n); ok {
		return next
	}
	// Unreachable: the circle covers all twelve pitch classes.
	return NoteFromSemitone(n.PitchClass()+7, n.Accidental.IsFlat())
}

// PrevFifth returns the major-circle key a fifth below n.
func PrevFifth(n Note) Note {
	if prev, ok := MajorCircle.Prev(n); ok {
		return prev
	}
	// Unreachable: the circle covers all twelve pitch classes.
	return NoteFromSemitone(n.PitchClass()-7, true)
}

// RelativeNote returns the relative minor of a major root, or the
// relative major of a minor root. The answer always carries the spelling
// of the opposite circle.
func RelativeNote(root Note, t ScaleType) Note {
	if t.IsMinor() {
		if i, ok := MinorCircle.IndexOf(root); ok {
			return MajorCircle[i]
		}
		// Unreachable: the circle covers all twelve pitch classes.
		return NoteFromSemitone(root.PitchClass()+3, root.Accidental.IsFlat())
	}
	if i, ok := MajorCircle.IndexOf(root); ok {
		return MinorCircle[i]
	}
	// Unreachable: the circle covers all twelve pitch classes.
	return NoteFromSemitone(root.PitchClass()-3, root.Accidental.IsFlat() || root.SameSpelling(NewNote(F, Natural)))
}

// CanonicalRoot respells root with the spelling its pitch class has on
// the circle of the scale type's mode, e.g. Ab becomes G# for minor
// scales.
func CanonicalRoot(root Note, t ScaleType) Note {
	c := CircleFor(t)
	if i, ok := c.IndexOf(root); ok {
		return c[i]
	}
	return root
}

// SelectableRoots returns the keys of both circles, one per pitch class
// with the major spelling preferred, ordered by pitch class.
func SelectableRoots() []Note {
	seen := make(map[int]bool, 12)
	roots := make([]Note, 0, 12)
	for _, c := range []*Circle{&MajorCircle, &MinorCircle} {
		for _, n := range c {
			if seen[n.PitchClass()] {
				continue
			}
			seen[n.PitchClass()] = true
			roots = append(roots, n)
		}
	}
	sort.Slice(roots, func(i, j int) bool {
		return roots[i].PitchClass() < roots[j].PitchClass()
	})
	return roots
}

// FindRoot looks a root up among SelectableRoots by its name ("F#").
func FindRoot(name string) (Note, bool) {
	for _, r := range SelectableRoots() {
		if r.Name() == name {
			return r, true
		}
	}
	return Note{}, false
}

// RandomRoot picks a selectable root that is not pitch-equal to previous.
// A nil r uses the package-level generator.
func RandomRoot(r *rand.Rand, previous Note) Note {
	roots := SelectableRoots()
	candidates := roots[:0:0]
	for _, n := range roots {
		if !n.PitchEqual(previous) {
			candidates = append(candidates, n)
		}
	}
	if r == nil {
		return candidates[rand.IntN(len(candidates))]
	}
	return candidates[r.IntN(len(candidates))]
}

// enharmonics maps each pitch class to its spellings with at most one
// accidental, sharp spelling first.
var enharmonics = [12][]Note{
	{NewNote(C, Natural)},
	{NewNote(C, Sharp), NewNote(D, Flat)},
	{NewNote(D, Natural)},
	{NewNote(D, Sharp), NewNote(E, Flat)},
	{NewNote(E, Natural)},
	{NewNote(F, Natural)},
	{NewNote(F, Sharp), NewNote(G, Flat)},
	{NewNote(G, Natural)},
	{NewNote(G, Sharp), NewNote(A, Flat)},
	{NewNote(A, Natural)},
	{NewNote(A, Sharp), NewNote(B, Flat)},
	{NewNote(B, Natural)},
}

// NoteFromSemitone spells a pitch class in the reference octave using a
// natural where one exists, otherwise a sharp, or a flat when preferFlat
// is set.
func NoteFromSemitone(semitone int, preferFlat bool) Note {
	options := enharmonics[mod12(semitone)]
	if preferFlat && len(options) > 1 {
		return options[1]
	}
	return options[0]
}
