package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/handiism/virtuoso/internal/notation"
	"github.com/handiism/virtuoso/internal/theory"
)

var theoryOpts struct {
	scale string
}

var scaleCmd = &cobra.Command{
	Use:   "scale <root>",
	Short: "List the notes of a scale, up and down",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, t, err := rootAndScale(args[0])
		if err != nil {
			return err
		}
		up := theory.ScaleNotes(root, t, theory.Up)
		down := theory.ScaleNotes(up[7], t, theory.Down)
		return output(cmd, scaleResult{
			Title: notation.Title(root, t),
			Up:    noteNames(up[:]),
			Down:  noteNames(down[:]),
		})
	},
}

var keyCmd = &cobra.Command{
	Use:   "key <root>",
	Short: "Show the key signature of a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, t, err := rootAndScale(args[0])
		if err != nil {
			return err
		}
		return output(cmd, newKeyResult(root, t))
	},
}

var circleOpts struct {
	minor bool
}

var circleCmd = &cobra.Command{
	Use:   "circle",
	Short: "Print the circle of fifths with relative keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := make(circleResult, len(theory.MajorCircle))
		for i := range theory.MajorCircle {
			major, minor := theory.MajorCircle[i], theory.MinorCircle[i]
			key := theory.KeySignatureMap(major, false)
			entries[i] = circleEntry{
				Position:  i,
				Major:     major.Name(),
				Minor:     minor.Name() + "m",
				Signature: key.String(),
			}
		}
		if circleOpts.minor {
			for i := range entries {
				entries[i].Major, entries[i].Minor = entries[i].Minor, entries[i].Major
			}
		}
		return output(cmd, entries)
	},
}

var rootsCmd = &cobra.Command{
	Use:   "roots",
	Short: "List the selectable roots",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return output(cmd, listResult(rootNames(theory.SelectableRoots())))
	},
}

var nextCmd = &cobra.Command{
	Use:   "next <root>",
	Short: "Step a fifth up the circle of the scale's mode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return step(cmd, args[0], (*theory.Circle).Next)
	},
}

var prevCmd = &cobra.Command{
	Use:   "prev <root>",
	Short: "Step a fifth down the circle of the scale's mode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return step(cmd, args[0], (*theory.Circle).Prev)
	},
}

var relativeCmd = &cobra.Command{
	Use:   "relative <root>",
	Short: "Show the relative major or minor of a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, t, err := rootAndScale(args[0])
		if err != nil {
			return err
		}
		rel := theory.RelativeNote(root, t)
		mode := "minor"
		if t.IsMinor() {
			mode = "major"
		}
		return output(cmd, stepResult{From: root.Name(), To: rel.Name(), Mode: mode})
	},
}

func init() {
	for _, c := range []*cobra.Command{scaleCmd, keyCmd, nextCmd, prevCmd, relativeCmd} {
		scaleFlag(c, &theoryOpts.scale)
	}
	circleCmd.Flags().BoolVar(&circleOpts.minor, "minor", false, "list minor keys first")
}

func rootAndScale(name string) (theory.Note, theory.ScaleType, error) {
	root, err := parseRoot(name)
	if err != nil {
		return theory.Note{}, 0, err
	}
	t, err := theory.ParseScaleType(theoryOpts.scale)
	if err != nil {
		return theory.Note{}, 0, err
	}
	return root, t, nil
}

func step(cmd *cobra.Command, name string, move func(*theory.Circle, theory.Note) (theory.Note, bool)) error {
	root, t, err := rootAndScale(name)
	if err != nil {
		return err
	}
	to, ok := move(theory.CircleFor(t), root)
	if !ok {
		return fmt.Errorf("%s is not on the circle", root.Name())
	}
	mode := "major"
	if t.IsMinor() {
		mode = "minor"
	}
	return output(cmd, stepResult{From: root.Name(), To: to.Name(), Mode: mode})
}

// noteNames writes notes with their octave, e.g. "F#4".
func noteNames(notes []theory.Note) []string {
	names := make([]string, len(notes))
	for i, n := range notes {
		names[i] = n.String()
	}
	return names
}

func rootNames(notes []theory.Note) []string {
	names := make([]string, len(notes))
	for i, n := range notes {
		names[i] = n.Name()
	}
	return names
}

type scaleResult struct {
	Title string   `yaml:"title" json:"title"`
	Up    []string `yaml:"up" json:"up"`
	Down  []string `yaml:"down" json:"down"`
}

func (r scaleResult) Text() string {
	return fmt.Sprintf("%s\nup:   %s\ndown: %s\n", r.Title, strings.Join(r.Up, " "), strings.Join(r.Down, " "))
}

type keyResult struct {
	Key       string `yaml:"key" json:"key"`
	Title     string `yaml:"title" json:"title"`
	Signature string `yaml:"signature" json:"signature"`
	Sharps    int    `yaml:"sharps" json:"sharps"`
	Flats     int    `yaml:"flats" json:"flats"`
}

func newKeyResult(root theory.Note, t theory.ScaleType) keyResult {
	key := theory.KeySignatureMap(root, t.IsMinor())
	return keyResult{
		Key:       notation.Build(root, t).KeyField(),
		Title:     notation.Title(root, t),
		Signature: key.String(),
		Sharps:    key.Sharps(),
		Flats:     key.Flats(),
	}
}

func (r keyResult) Text() string {
	return fmt.Sprintf("%s (K: %s)\nsignature: %s\n", r.Title, r.Key, r.Signature)
}

type circleEntry struct {
	Position  int    `yaml:"position" json:"position"`
	Major     string `yaml:"major" json:"major"`
	Minor     string `yaml:"minor" json:"minor"`
	Signature string `yaml:"signature" json:"signature"`
}

type circleResult []circleEntry

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func (r circleResult) Text() string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Key", "Relative", "Signature").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, e := range r {
		t.Row(fmt.Sprint(e.Position), e.Major, e.Minor, e.Signature)
	}
	return t.Render() + "\n"
}

type listResult []string

func (r listResult) Text() string {
	return strings.Join(r, "\n") + "\n"
}

type stepResult struct {
	From string `yaml:"from" json:"from"`
	To   string `yaml:"to" json:"to"`
	Mode string `yaml:"mode" json:"mode"`
}

func (r stepResult) Text() string {
	return r.To + "\n"
}
