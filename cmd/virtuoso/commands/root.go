package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/handiism/virtuoso/internal/config"
	"github.com/handiism/virtuoso/internal/theory"
)

var (
	// Global flags
	cfgFile      string
	outputFormat string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "virtuoso",
	Short: "Scale and cadence exercises around the circle of fifths",
	Long: `Virtuoso builds two-staff piano exercises: a scale up and down,
followed by a five-chord cadence, for any major or minor key.

Examples:
  # Print the ABC notation for B-flat major
  virtuoso render Bb

  # Write F-sharp melodic minor as a MIDI file
  virtuoso render F# --scale melodic -o f-sharp.mid --midi

  # Walk the circle of fifths
  virtuoso next C
  virtuoso circle -f yaml

  # Export every key as configured in settings.json
  virtuoso export --config settings.json
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logLevel := slog.LevelInfo
		if verbose {
			logLevel = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		})))

		switch OutputFormat(outputFormat) {
		case FormatText, FormatYAML, FormatJSON:
			return nil
		default:
			return fmt.Errorf("unsupported output format %q (text, yaml, json)", outputFormat)
		}
	},
}

// Command returns the root cobra command.
func Command() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default is "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", string(FormatText), "output format: text, yaml or json")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(scaleCmd)
	rootCmd.AddCommand(keyCmd)
	rootCmd.AddCommand(circleCmd)
	rootCmd.AddCommand(rootsCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(prevCmd)
	rootCmd.AddCommand(relativeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings reads --config, or the default settings file when it
// exists.
func loadSettings() (*config.Settings, error) {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	settings, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	slog.Debug("settings loaded", "path", path)
	return settings, nil
}

// parseRoot reads a root note and places it in the reference octave.
func parseRoot(name string) (theory.Note, error) {
	n, err := theory.ParseNote(name)
	if err != nil {
		return theory.Note{}, err
	}
	n.Octave = theory.ReferenceOctave
	return n, nil
}

// scaleFlag registers the shared --scale/-s flag on cmd.
func scaleFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "scale", "s", "major", "scale type: major, natural, harmonic or melodic")
}

func output(cmd *cobra.Command, result any) error {
	return Output(cmd.OutOrStdout(), result, OutputFormat(outputFormat))
}
