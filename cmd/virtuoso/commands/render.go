package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	ioutils "github.com/handiism/virtuoso/internal/io"
	"github.com/handiism/virtuoso/internal/midifile"
	"github.com/handiism/virtuoso/internal/notation"
	"github.com/handiism/virtuoso/internal/theory"
)

var renderOpts struct {
	scale string
	out   string
	midi  bool
	tempo float64
	tune  int
}

var renderCmd = &cobra.Command{
	Use:   "render <root>",
	Short: "Render the exercise for a key as ABC or MIDI",
	Long: `Render the two-staff exercise for a root and scale type.

ABC text goes to stdout unless -o is given. MIDI output needs -o.
With --tune N the ABC carries X: N and a T: title so it can be
appended to a tune book.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	scaleFlag(renderCmd, &renderOpts.scale)
	renderCmd.Flags().StringVarP(&renderOpts.out, "out", "o", "", "output file (default: stdout)")
	renderCmd.Flags().BoolVar(&renderOpts.midi, "midi", false, "write a Standard MIDI File")
	renderCmd.Flags().Float64Var(&renderOpts.tempo, "tempo", midifile.DefaultTempo, "MIDI tempo in quarter notes per minute")
	renderCmd.Flags().IntVar(&renderOpts.tune, "tune", 0, "ABC tune reference number (0 for a bare exercise)")
}

// renderResult is the structured form of a rendered exercise.
type renderResult struct {
	Title string `yaml:"title" json:"title"`
	Key   string `yaml:"key" json:"key"`
	ABC   string `yaml:"abc" json:"abc"`
}

func (r renderResult) Text() string {
	return r.ABC
}

func runRender(cmd *cobra.Command, args []string) error {
	root, err := parseRoot(args[0])
	if err != nil {
		return err
	}
	t, err := theory.ParseScaleType(renderOpts.scale)
	if err != nil {
		return err
	}

	ex := notation.Build(root, t)

	if renderOpts.midi {
		if renderOpts.out == "" {
			return fmt.Errorf("--midi needs an output file (-o)")
		}
		data, err := midifile.Encode(ex, renderOpts.tempo)
		if err != nil {
			return err
		}
		if err := ioutils.WriteFile(cmd.Context(), renderOpts.out, data); err != nil {
			return err
		}
		slog.Info("wrote midi", "path", renderOpts.out, "title", notation.Title(root, t), "tempo", renderOpts.tempo)
		return nil
	}

	abc := notation.Render(ex)
	if renderOpts.tune > 0 {
		abc = notation.Tune(ex, renderOpts.tune)
	}

	if renderOpts.out != "" {
		if err := ioutils.WriteFile(cmd.Context(), renderOpts.out, []byte(abc)); err != nil {
			return err
		}
		slog.Info("wrote abc", "path", renderOpts.out, "title", notation.Title(root, t))
		return nil
	}

	return output(cmd, renderResult{
		Title: notation.Title(root, t),
		Key:   ex.KeyField(),
		ABC:   abc,
	})
}
