package book

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/handiism/virtuoso/internal/midifile"
	"github.com/handiism/virtuoso/internal/model"
	"github.com/handiism/virtuoso/internal/notation"
)

// Creator generates tune books and playlists.
type Creator struct {
	extended bool    // M3U: include #EXTINF lines
	tempo    float64 // used for playlist durations
}

// NewCreator creates a Creator. extended only affects MIDI playlists;
// tempo is in beats per minute, zero meaning midifile.DefaultTempo.
func NewCreator(extended bool, tempo float64) *Creator {
	return &Creator{
		extended: extended,
		tempo:    tempo,
	}
}

// Create returns the index content for b. Entries refer to exercise files
// by base name, assuming the index sits in the book directory.
func (c *Creator) Create(b *model.Book) string {
	if b.Format != model.FormatMIDI {
		return c.createTuneBook(b)
	}

	switch b.Playlist {
	case model.PlaylistPLS:
		return c.createPLS(b)
	case model.PlaylistWPL:
		return c.createWPL(b)
	case model.PlaylistZPL:
		return c.createZPL(b)
	default:
		return c.createM3U(b)
	}
}

func (c *Creator) duration(ex *model.Exercise) time.Duration {
	return midifile.Duration(notation.Build(ex.Root, ex.Type), c.tempo)
}

func seconds(d time.Duration) int {
	return int(math.Round(d.Seconds()))
}

// createTuneBook writes every exercise as a tune, separated by blank
// lines.
//
//	%abc-2.1
//	% Scales
//
//	X: 1
//	T: C Major
//	...
func (c *Creator) createTuneBook(b *model.Book) string {
	var sb strings.Builder

	sb.WriteString("%abc-2.1\n")
	if b.Title != "" {
		sb.WriteString(fmt.Sprintf("%% %s\n", b.Title))
	}

	for _, ex := range b.Exercises {
		sb.WriteString("\n")
		sb.WriteString(notation.Tune(notation.Build(ex.Root, ex.Type), ex.Number))
	}

	return sb.String()
}

// createM3U writes a playlist of the exercise MIDI files.
func (c *Creator) createM3U(b *model.Book) string {
	var sb strings.Builder

	if c.extended {
		sb.WriteString("#EXTM3U\n")
	}

	for _, ex := range b.Exercises {
		if c.extended {
			sb.WriteString(fmt.Sprintf("#EXTINF:%d,%s\n", seconds(c.duration(ex)), ex.Title))
		}
		sb.WriteString(filepath.Base(ex.Path) + "\n")
	}

	return sb.String()
}

// createPLS writes an INI-style playlist:
//
//	[playlist]
//	File1=01 C major.mid
//	Title1=C Major
//	Length1=8
//	NumberOfEntries=1
//	Version=2
func (c *Creator) createPLS(b *model.Book) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")
	for i, ex := range b.Exercises {
		idx := i + 1
		sb.WriteString(fmt.Sprintf("File%d=%s\n", idx, filepath.Base(ex.Path)))
		sb.WriteString(fmt.Sprintf("Title%d=%s\n", idx, ex.Title))
		sb.WriteString(fmt.Sprintf("Length%d=%d\n", idx, seconds(c.duration(ex))))
	}
	sb.WriteString(fmt.Sprintf("NumberOfEntries=%d\n", len(b.Exercises)))
	sb.WriteString("Version=2\n")

	return sb.String()
}

// createWPL writes a Windows Media Player SMIL playlist.
func (c *Creator) createWPL(b *model.Book) string {
	var sb strings.Builder

	sb.WriteString("<?wpl version=\"1.0\"?>\n")
	sb.WriteString("<smil>\n")
	sb.WriteString("  <head>\n")
	sb.WriteString(fmt.Sprintf("    <title>%s</title>\n", escapeXML(b.Title)))
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString("    <seq>\n")
	for _, ex := range b.Exercises {
		sb.WriteString(fmt.Sprintf("      <media src=\"%s\"/>\n", escapeXML(filepath.Base(ex.Path))))
	}
	sb.WriteString("    </seq>\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</smil>\n")

	return sb.String()
}

// createZPL writes a Zune playlist. Like WPL, with the title and length
// of each entry.
func (c *Creator) createZPL(b *model.Book) string {
	var sb strings.Builder

	sb.WriteString("<?zpl version=\"2.0\"?>\n")
	sb.WriteString("<smil>\n")
	sb.WriteString("  <head>\n")
	sb.WriteString(fmt.Sprintf("    <title>%s</title>\n", escapeXML(b.Title)))
	sb.WriteString("    <meta name=\"Generator\" content=\"Virtuoso\"/>\n")
	sb.WriteString(fmt.Sprintf("    <meta name=\"ItemCount\" content=\"%d\"/>\n", len(b.Exercises)))
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString("    <seq>\n")
	for _, ex := range b.Exercises {
		sb.WriteString(fmt.Sprintf("      <media src=\"%s\" albumTitle=\"%s\" trackTitle=\"%s\" duration=\"%d\"/>\n",
			escapeXML(filepath.Base(ex.Path)),
			escapeXML(b.Title),
			escapeXML(ex.Title),
			c.duration(ex).Milliseconds()))
	}
	sb.WriteString("    </seq>\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</smil>\n")

	return sb.String()
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
