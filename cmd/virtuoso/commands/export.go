package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/handiism/virtuoso/internal/export"
	"github.com/handiism/virtuoso/internal/model"
	"github.com/handiism/virtuoso/internal/theory"
)

var exportOpts struct {
	out      string
	formats  []string
	scales   []string
	roots    []string
	tempo    float64
	playlist string
	dryRun   bool
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write exercises for many keys to disk",
	Long: `Write one file per key and scale type, plus a tune book (ABC) or
playlist (MIDI) per output format.

Settings come from --config; flags override them.

Examples:
  virtuoso export --formats abc,midi --scales major,harmonic
  virtuoso export --roots C,G,D --out ./scales/{format}
  virtuoso export --formats midi --playlist pls`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOpts.out, "out", "", "output directory template, {format} is replaced")
	exportCmd.Flags().StringSliceVar(&exportOpts.formats, "formats", nil, "output formats: abc, midi")
	exportCmd.Flags().StringSliceVar(&exportOpts.scales, "scales", nil, "scale types, e.g. major,harmonic")
	exportCmd.Flags().StringSliceVar(&exportOpts.roots, "roots", nil, `roots, or "all"`)
	exportCmd.Flags().Float64Var(&exportOpts.tempo, "tempo", 0, "MIDI tempo in quarter notes per minute")
	exportCmd.Flags().StringVar(&exportOpts.playlist, "playlist", "", "MIDI playlist format: m3u, pls, wpl, zpl")
	exportCmd.Flags().BoolVar(&exportOpts.dryRun, "dry-run", false, "plan the export without writing files")
}

func runExport(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	if exportOpts.out != "" {
		settings.OutputPath = exportOpts.out
	}
	if len(exportOpts.formats) > 0 {
		settings.Formats = settings.Formats[:0]
		for _, f := range exportOpts.formats {
			format, err := model.ParseOutputFormat(f)
			if err != nil {
				return err
			}
			settings.Formats = append(settings.Formats, format)
		}
	}
	if len(exportOpts.scales) > 0 {
		settings.ScaleTypes = settings.ScaleTypes[:0]
		for _, s := range exportOpts.scales {
			t, err := theory.ParseScaleType(s)
			if err != nil {
				return err
			}
			settings.ScaleTypes = append(settings.ScaleTypes, t)
		}
	}
	if len(exportOpts.roots) > 0 {
		settings.Roots = exportOpts.roots
	}
	if exportOpts.tempo > 0 {
		settings.Tempo = exportOpts.tempo
	}
	if exportOpts.playlist != "" {
		playlist, err := model.ParsePlaylistFormat(exportOpts.playlist)
		if err != nil {
			return err
		}
		settings.PlaylistFormat = playlist
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	manager := export.NewManager(settings, logProgress)
	if err := manager.Initialize(); err != nil {
		return err
	}

	if exportOpts.dryRun {
		for _, b := range manager.Books() {
			for _, ex := range b.Exercises {
				fmt.Fprintln(cmd.OutOrStdout(), ex.Path)
			}
		}
		return nil
	}

	if err := manager.Start(ctx); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("export cancelled: %w", context.Cause(ctx))
		}
		return err
	}

	written, failed, total := manager.Progress()
	slog.Info("export complete", "written", written, "failed", failed, "total", total)
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, total)
	}
	return nil
}

// logProgress forwards export events to slog.
func logProgress(event export.ProgressEvent) {
	slog.Log(context.Background(), slogLevel(event.Level), event.Message)
}

func slogLevel(level export.ProgressLevel) slog.Level {
	switch level {
	case export.LevelVerbose:
		return slog.LevelDebug
	case export.LevelWarning:
		return slog.LevelWarn
	case export.LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
