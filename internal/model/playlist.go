package model

import (
	"fmt"
	"strings"
)

// PlaylistFormat is the index format of a MIDI book.
//
//   - M3U: plain text, optionally extended with #EXTINF lines
//   - PLS: INI-style, used by Winamp
//   - WPL: SMIL XML, Windows Media Player
//   - ZPL: SMIL XML with per-entry metadata, Zune/Groove Music
type PlaylistFormat int

const (
	PlaylistM3U PlaylistFormat = iota
	PlaylistPLS
	PlaylistWPL
	PlaylistZPL
)

// String returns "m3u", "pls", "wpl" or "zpl".
func (p PlaylistFormat) String() string {
	switch p {
	case PlaylistPLS:
		return "pls"
	case PlaylistWPL:
		return "wpl"
	case PlaylistZPL:
		return "zpl"
	default:
		return "m3u"
	}
}

// Extension returns the playlist file extension, including the dot.
func (p PlaylistFormat) Extension() string {
	return "." + p.String()
}

// ParsePlaylistFormat accepts "m3u", "pls", "wpl" or "zpl".
func ParsePlaylistFormat(s string) (PlaylistFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m3u", "":
		return PlaylistM3U, nil
	case "pls":
		return PlaylistPLS, nil
	case "wpl":
		return PlaylistWPL, nil
	case "zpl":
		return PlaylistZPL, nil
	default:
		return PlaylistM3U, fmt.Errorf("%w: playlist %q", ErrInvalidFormat, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p PlaylistFormat) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PlaylistFormat) UnmarshalText(text []byte) error {
	parsed, err := ParsePlaylistFormat(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
