package theory

import "testing"

func TestKeySignatureMap(t *testing.T) {
	tests := []struct {
		root    string
		isMinor bool
		want    string
	}{
		{"C", false, "none"},
		{"A", true, "none"},
		{"G", false, "F#"},
		{"D", false, "F# C#"},
		{"E", true, "F#"},
		{"F", false, "Bb"},
		{"Eb", false, "Bb Eb Ab"},
		{"C", true, "Bb Eb Ab"},
		{"F#", false, "F# C# G# D# A# E#"},
		{"D#", true, "F# C# G# D# A# E#"},
		{"Db", false, "Bb Eb Ab Db Gb"},
	}

	for _, tt := range tests {
		t.Run(tt.root, func(t *testing.T) {
			ks := KeySignatureMap(MustParseNote(tt.root), tt.isMinor)
			if got := ks.String(); got != tt.want {
				t.Errorf("KeySignatureMap(%s, %v) = %s, want %s", tt.root, tt.isMinor, got, tt.want)
			}
		})
	}
}

func TestKeySignature_Implied(t *testing.T) {
	g := KeySignatureMap(MustParseNote("G"), false)
	if g.Implied(F) != Sharp {
		t.Errorf("G major implies F%s, want F#", g.Implied(F))
	}
	if g.Implied(C) != Natural {
		t.Errorf("G major implies C%s, want C", g.Implied(C))
	}
}

func TestKeySignature_CountsFollowCircle(t *testing.T) {
	for i, root := range MajorCircle {
		ks := KeySignatureMap(root, false)
		wantSharps, wantFlats := 0, 0
		if i <= 6 {
			wantSharps = i
		} else {
			wantFlats = 12 - i
		}
		if ks.Sharps() != wantSharps || ks.Flats() != wantFlats {
			t.Errorf("%s major: %d sharps %d flats, want %d/%d", root.Name(), ks.Sharps(), ks.Flats(), wantSharps, wantFlats)
		}
		if ks.LeansFlat() != (wantFlats > 0) {
			t.Errorf("%s major: LeansFlat() = %v", root.Name(), ks.LeansFlat())
		}
	}
}
