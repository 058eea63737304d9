// Package export writes batches of exercises to disk.
//
// # Manager
//
// The Manager coordinates an export run:
//
//  1. Validate settings and plan one book per output format
//  2. Render every exercise as ABC or MIDI
//  3. Write files concurrently
//  4. Write the tune book or playlist (optional)
//
// # Basic Usage
//
//	manager := export.NewManager(settings, func(event export.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	if err := manager.Initialize(); err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := manager.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Concurrency
//
// Books are written in parallel, and within a book at most
// settings.MaxConcurrentExercises files are rendered at once.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// A file that fails to write is reported at LevelError and the run
// carries on. Cancelling the context stops it.
package export
