package pipeline

import (
	"time"

	"github.com/tgardener/metro-gigs/internal/allowlist"
	"github.com/tgardener/metro-gigs/internal/config"
	"github.com/tgardener/metro-gigs/internal/event"
	"github.com/tgardener/metro-gigs/internal/logger"
	"github.com/tgardener/metro-gigs/internal/storage"
	"github.com/tgardener/metro-gigs/internal/ticketmaster"
)

// Fetcher is the upstream search the pipeline runs once per invocation.
// Satisfied by *ticketmaster.Client.
type Fetcher interface {
	SearchWindow(lat, lon float64, radiusMiles, days int, now time.Time) (*ticketmaster.Response, error)
}

// Options control a single pipeline run.
type Options struct {
	OutPath       string
	AllowlistPath string
	DryRun        bool
}

// Result summarizes a completed run for the CLI.
type Result struct {
	Fetched   int
	Written   int
	Filtered  int
	Truncated bool
	DryRun    bool
	Duration  time.Duration
	Document  *event.Document
}

// Run executes the fetch, filter, normalize, serialize sequence once.
// Configuration and fetch failures abort the run; a broken allowlist or
// malformed individual records do not.
func Run(cfg *config.Config, client Fetcher, opts Options) (*Result, error) {
	started := time.Now()

	allow := allowlist.Load(opts.AllowlistPath)
	if allow.Active() {
		logger.Info("Venue allowlist active", logger.Fields{"venues": len(allow)})
	}

	fetchStart := time.Now()
	resp, err := client.SearchWindow(cfg.Lat, cfg.Lon, cfg.RadiusMiles, cfg.DaysAhead, started)
	if err != nil {
		return nil, err
	}
	logger.RecordTiming("fetch", time.Since(fetchStart))

	raw := resp.Embedded.Events
	logger.Add("events_fetched", int64(len(raw)))

	if resp.Page.TotalElements > len(raw) {
		// Single-page cap: anything past one page is silently dropped
		// upstream, so at least say so in the logs.
		logger.Warn("Upstream result set truncated to one page", logger.Fields{
			"fetched": len(raw),
			"total":   resp.Page.TotalElements,
		})
	}

	events := Normalize(raw, allow)
	logger.Add("events_written", int64(len(events)))

	doc := &event.Document{
		GeneratedAt: time.Now().UTC().Format(event.TimeLayout),
		Market:      cfg.Market(),
		Count:       len(events),
		Events:      events,
	}

	if opts.DryRun {
		logger.Info("Dry run, skipping write", logger.Fields{"events": len(events)})
	} else {
		if err := storage.WriteDocument(opts.OutPath, doc); err != nil {
			return nil, err
		}
		logger.Info("Wrote events document", logger.Fields{
			"path":   opts.OutPath,
			"events": len(events),
		})
	}

	return &Result{
		Fetched:   len(raw),
		Written:   len(events),
		Filtered:  len(raw) - len(events),
		Truncated: resp.Page.TotalElements > len(raw),
		DryRun:    opts.DryRun,
		Duration:  time.Since(started),
		Document:  doc,
	}, nil
}
