// Package locker walks selected libraries and locks metadata fields on
// every series that needs it.
package locker

import (
	"context"
	"fmt"
	"strings"

	"github.com/jfmyers9/kavalock/internal/lockfield"
	"github.com/jfmyers9/kavalock/pkg/kavita"
	"github.com/rs/zerolog"
)

// API is the subset of the Kavita client the runner needs.
type API interface {
	AllSeries(ctx context.Context, libraryID int) ([]kavita.Series, error)
	SeriesMetadata(ctx context.Context, seriesID int) (kavita.Metadata, error)
	UpdateSeriesMetadata(ctx context.Context, meta kavita.Metadata) error
}

// Stats accumulates counters across a run.
type Stats struct {
	Total   int // series examined
	Locked  int // series that received (or would receive) an update
	Skipped int // series already locked or with empty selected fields
}

// Runner drives one lock pass over a set of libraries. Requests are
// issued strictly sequentially; the first error aborts the run.
type Runner struct {
	client      API
	selection   []lockfield.Spec
	hideSkipped bool
	dryRun      bool
	logger      zerolog.Logger
}

// Config holds runner configuration.
type Config struct {
	Selection   []lockfield.Spec
	HideSkipped bool // suppress per-series skip messages
	DryRun      bool // resolve locks but never POST updates
}

// New creates a runner for the given client and selection.
func New(client API, cfg Config, logger zerolog.Logger) (*Runner, error) {
	if client == nil {
		return nil, fmt.Errorf("locker: client is required")
	}
	if len(cfg.Selection) == 0 {
		return nil, fmt.Errorf("locker: at least one field must be selected")
	}
	return &Runner{
		client:      client,
		selection:   cfg.Selection,
		hideSkipped: cfg.HideSkipped,
		dryRun:      cfg.DryRun,
		logger:      logger,
	}, nil
}

// Run processes every series in every given library, locking selected
// fields where needed. It returns the counters accumulated so far even
// when it stops early on an error.
func (r *Runner) Run(ctx context.Context, libraries []kavita.Library) (Stats, error) {
	var stats Stats
	lockNames := strings.Join(lockfield.Labels(r.selection), ", ")

	for _, lib := range libraries {
		r.logger.Info().
			Str("library", lib.Name).
			Int("library_id", lib.ID).
			Msg("Processing library")

		all, err := r.client.AllSeries(ctx, lib.ID)
		if err != nil {
			return stats, fmt.Errorf("library %q: %w", lib.Name, err)
		}

		for _, series := range all {
			// The listing endpoint may return series outside the
			// requested library; keep only exact matches.
			if series.LibraryID != lib.ID {
				continue
			}
			stats.Total++

			meta, err := r.client.SeriesMetadata(ctx, series.ID)
			if err != nil {
				return stats, fmt.Errorf("series %q (ID %d): %w", series.Name, series.ID, err)
			}

			if !lockfield.NeedsLock(meta, r.selection) {
				stats.Skipped++
				if !r.hideSkipped {
					r.logger.Info().
						Str("series", series.Name).
						Int("series_id", series.ID).
						Msg("Skipping: selected fields already locked or empty")
				}
				continue
			}

			if r.dryRun {
				stats.Locked++
				r.logger.Info().
					Str("series", series.Name).
					Int("series_id", series.ID).
					Str("fields", lockNames).
					Msg("Would lock (dry run)")
				continue
			}

			r.logger.Info().
				Str("series", series.Name).
				Int("series_id", series.ID).
				Str("fields", lockNames).
				Msg("Locking")

			payload := lockfield.BuildUpdatePayload(meta, r.selection)
			if err := r.client.UpdateSeriesMetadata(ctx, payload); err != nil {
				return stats, fmt.Errorf("series %q (ID %d): %w", series.Name, series.ID, err)
			}
			stats.Locked++
		}
	}

	return stats, nil
}
