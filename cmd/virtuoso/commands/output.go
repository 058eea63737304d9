package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// OutputFormat selects how command results are printed.
type OutputFormat string

const (
	// FormatText prints a human readable rendering (default)
	FormatText OutputFormat = "text"
	// FormatYAML outputs as YAML
	FormatYAML OutputFormat = "yaml"
	// FormatJSON outputs as JSON
	FormatJSON OutputFormat = "json"
)

// texter is implemented by results with a plain text rendering.
type texter interface {
	Text() string
}

// Output writes result to w in the given format. Results without a text
// rendering fall back to YAML.
func Output(w io.Writer, result any, format OutputFormat) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case FormatYAML:
		return outputYAML(w, result)
	case FormatText, "":
		if t, ok := result.(texter); ok {
			_, err := io.WriteString(w, t.Text())
			return err
		}
		return outputYAML(w, result)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func outputYAML(w io.Writer, result any) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	_, err = w.Write(data)
	return err
}
