// Package book writes the index file of an export run.
//
// For ABC books the index is a tune book: every exercise rendered as a
// numbered tune with X: and T: fields, in one file that ABC tools open as
// a collection.
//
//	creator := book.NewCreator(true, 90)
//	content := creator.Create(b)
//	os.WriteFile(b.IndexPath, []byte(content), 0644)
//
// For MIDI books it is a playlist of the exercise files in the book's
// PlaylistFormat: M3U, PLS, WPL or ZPL. Extended M3U playlists carry
// #EXTINF lines with the playing time at the export tempo:
//
//	#EXTM3U
//	#EXTINF:8,C Major
//	01 C major.mid
package book
