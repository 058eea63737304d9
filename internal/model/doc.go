// Package model defines the output plan of an export run.
//
// # Book
//
// A Book is the set of files written in one format, together with an
// index file: an ABC tune book or an M3U playlist of MIDI files.
//
//	book := model.NewBook("Scales", model.FormatABC, pathConfig)
//	fmt.Println(book.Path)      // Where exercise files go
//	fmt.Println(book.IndexPath) // Where the tune book goes
//
// # Exercise
//
// An Exercise is one root and scale type planned into a book:
//
//	ex := model.NewExercise(book, 1, theory.MustParseNote("Bb"), theory.Major, exerciseConfig)
//	fmt.Println(ex.Path) // e.g. "/scales/abc/01 Bb major.abc"
//
// # Path Configuration
//
// Paths are built from templates:
//
//	cfg := &model.PathConfig{
//	    OutputPath:         "/scales/{format}",
//	    BookFileNameFormat: "{title}",
//	}
//
// Book placeholders: {format}, {title}.
// Exercise placeholders: {num}, {root}, {key}, {scale}, {mode}, {title}.
package model
