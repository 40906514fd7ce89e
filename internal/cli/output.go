package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tgardener/metro-gigs/internal/config"
	"github.com/tgardener/metro-gigs/internal/pipeline"
)

// OutputFormat specifies the run summary format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Summary is the JSON shape of a run summary.
type Summary struct {
	GeneratedAt string `json:"generated_at"`
	Market      string `json:"market"`
	Fetched     int    `json:"fetched"`
	Written     int    `json:"written"`
	Filtered    int    `json:"filtered"`
	Truncated   bool   `json:"truncated,omitempty"`
	DurationMS  int64  `json:"duration_ms"`
	DryRun      bool   `json:"dry_run,omitempty"`
}

// WriteSummary writes the run summary in the specified format. In verbose
// text mode it also lists every event written.
func WriteSummary(w io.Writer, result *pipeline.Result, cfg *config.Config, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result, cfg)
	case FormatText:
		return writeText(w, result, cfg, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, result *pipeline.Result, cfg *config.Config) error {
	summary := Summary{
		GeneratedAt: result.Document.GeneratedAt,
		Market:      cfg.Label,
		Fetched:     result.Fetched,
		Written:     result.Written,
		Filtered:    result.Filtered,
		Truncated:   result.Truncated,
		DurationMS:  result.Duration.Milliseconds(),
		DryRun:      result.DryRun,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(summary)
}

func writeText(w io.Writer, result *pipeline.Result, cfg *config.Config, verbose bool) error {
	if result.Written == 0 {
		fmt.Fprintf(w, "No events found for %s.\n", cfg.Label)
		return nil
	}

	fmt.Fprintf(w, "%s: %d events (%d fetched, %d filtered out)\n",
		cfg.Label, result.Written, result.Fetched, result.Filtered)
	if result.Truncated {
		fmt.Fprintln(w, "Note: upstream had more events than one page; results truncated.")
	}

	if verbose {
		for _, evt := range result.Document.Events {
			fmt.Fprintf(w, "  %s  %s - %s (%s, %s)\n",
				evt.DateDisplay, evt.Name, evt.VenueName, evt.City, evt.State)
		}
	}

	return nil
}
