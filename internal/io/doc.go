// Package ioutils provides the file system helpers used when exporting
// exercises.
//
// # File Operations
//
//	// Ensure the output directory exists
//	err := ioutils.EnsureDir("/scales/abc")
//
//	// Write a file atomically
//	err = ioutils.WriteFile(ctx, "/scales/abc/01 C major.abc", data)
//
//	// Skip work that is already done
//	if ioutils.FileExists(path) { ... }
//
// # Filename Sanitization
//
// Use SanitizeFileName to remove invalid characters from filenames:
//
//	safe := ioutils.SanitizeFileName("C: Major/Minor") // Returns "C_ Major_Minor"
package ioutils
