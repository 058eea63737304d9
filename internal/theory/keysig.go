package theory

import "strings"

// KeySignature holds the accidental a key implies for each letter,
// indexed by Letter.
type KeySignature [7]Accidental

// KeySignatureMap derives the key signature of root from its ascending
// major scale, or its natural minor scale when isMinor is set.
func KeySignatureMap(root Note, isMinor bool) KeySignature {
	t := Major
	if isMinor {
		t = NaturalMinor
	}
	var ks KeySignature
	for _, n := range ScaleNotes(root, t, Up) {
		ks[n.Letter] = n.Accidental
	}
	return ks
}

// Implied returns the accidental the key gives to letter.
func (ks KeySignature) Implied(l Letter) Accidental {
	return ks[l]
}

// Sharps counts the sharpened letters. A double sharp counts twice.
func (ks KeySignature) Sharps() int {
	n := 0
	for _, a := range ks {
		if a > 0 {
			n += int(a)
		}
	}
	return n
}

// Flats counts the flattened letters. A double flat counts twice.
func (ks KeySignature) Flats() int {
	n := 0
	for _, a := range ks {
		if a < 0 {
			n -= int(a)
		}
	}
	return n
}

// LeansFlat reports whether the signature contains any flat.
func (ks KeySignature) LeansFlat() bool {
	return ks.Flats() > 0
}

// String lists the altered letters in signature order, e.g. "F# C#" or
// "Bb Eb Ab". A key without accidentals yields "none".
func (ks KeySignature) String() string {
	sharpOrder := []Letter{F, C, G, D, A, E, B}
	var parts []string
	for _, l := range sharpOrder {
		if ks[l] > 0 {
			parts = append(parts, l.String()+ks[l].String())
		}
	}
	for i := len(sharpOrder) - 1; i >= 0; i-- {
		l := sharpOrder[i]
		if ks[l] < 0 {
			parts = append(parts, l.String()+ks[l].String())
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}
