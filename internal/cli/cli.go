package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tgardener/metro-gigs/internal/calendar"
	"github.com/tgardener/metro-gigs/internal/config"
	"github.com/tgardener/metro-gigs/internal/logger"
	"github.com/tgardener/metro-gigs/internal/pipeline"
	"github.com/tgardener/metro-gigs/internal/ticketmaster"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagOut        string
	flagAllowlist  string
	flagMarketFile string
	flagICSOut     string
	flagFormat     string
	flagDryRun     bool
	flagVerbose    bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metro-gigs",
		Short: "Fetch upcoming music events for a metro market",
		Long: `Fetches upcoming music events near a configured metro market from the
Ticketmaster discovery API, filters them against an optional venue
allowlist, and writes events.json for the site generator.`,
		SilenceUsage: true,
		RunE:         runFetch,
	}

	cmd.Flags().StringVar(&flagOut, "out", "data/events.json", "Output path for the events document")
	cmd.Flags().StringVar(&flagAllowlist, "allowlist", "data/venues_allowlist.json", "Venue allowlist JSON file (missing file disables filtering)")
	cmd.Flags().StringVar(&flagMarketFile, "market-file", "", "Optional YAML market definition overriding env defaults")
	cmd.Flags().StringVar(&flagICSOut, "ics-out", "", "Also write an iCalendar export to this path")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Run summary format: text or json")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Fetch and normalize but write nothing")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runFetch is the main command logic
func runFetch(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if flagMarketFile != "" {
		if err := cfg.ApplyMarketFile(flagMarketFile); err != nil {
			return err
		}
	}

	logger.Debug("Resolved market", logger.Fields{
		"label":   cfg.Label,
		"latlong": ticketmaster.FormatLatLong(cfg.Lat, cfg.Lon),
		"radius":  cfg.RadiusMiles,
		"days":    cfg.DaysAhead,
	})

	result, err := pipeline.Run(cfg, ticketmaster.New(cfg.APIKey), pipeline.Options{
		OutPath:       flagOut,
		AllowlistPath: flagAllowlist,
		DryRun:        flagDryRun,
	})
	if err != nil {
		return err
	}

	if flagICSOut != "" && !flagDryRun {
		if err := os.WriteFile(flagICSOut, []byte(calendar.Generate(result.Document)), 0644); err != nil {
			return fmt.Errorf("writing calendar: %w", err)
		}
	}

	if flagVerbose {
		logger.Debug("Run metrics", logger.MetricsSnapshot())
	}

	return WriteSummary(os.Stdout, result, cfg, format, flagVerbose)
}

// Execute runs the root command and returns a process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitSuccess
}
