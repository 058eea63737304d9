package ioutils

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// WriteFile writes data to path atomically: the bytes go to a temporary
// file in the same directory, which is then renamed over path. Readers
// never see a partly written exercise.
//
// The file ends with mode 0644. A cancelled ctx aborts before anything is
// written.
//
// Example:
//
//	err := WriteFile(ctx, "/scales/abc/01 C major.abc", []byte(abc))
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

var (
	invalidChars    = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots    = regexp.MustCompile(`\.+$`)
	repeatedSpacing = regexp.MustCompile(`\s+`)
)

// SanitizeFileName removes or replaces characters that are invalid in
// file and folder names on any common platform.
//
//   - <>:"/\|?* and control characters 0x00-0x1f become underscores
//   - trailing dots are removed (Windows)
//   - runs of whitespace collapse to one space, and the ends are trimmed
//
// Example:
//
//	SanitizeFileName("C: Major/Minor") // Returns "C_ Major_Minor"
//	SanitizeFileName("F# minor...")   // Returns "F# minor"
func SanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = repeatedSpacing.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// EnsureDir creates a directory and any missing parents with mode 0755.
// An existing directory is not an error.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
