package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/backmassage/reseq/internal/config"
	"github.com/backmassage/reseq/internal/logging"
)

// Run is the sequential batch entry point: list once, then rename every
// matching entry to prefix+index+ext.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, out io.Writer) (RunStats, error) {
	plan, err := Plan(cfg)
	if err != nil {
		return RunStats{}, err
	}
	return Execute(ctx, cfg, log, out, plan)
}

// RunRange is the fixed-range entry point: rename source pattern i to target
// pattern i for every i in the configured range, reporting missing sources.
func RunRange(ctx context.Context, cfg *config.Config, log *logging.Logger, out io.Writer) (RunStats, error) {
	plan, err := PlanRange(cfg)
	if err != nil {
		return RunStats{}, err
	}
	return Execute(ctx, cfg, log, out, plan)
}

// Execute performs plan in order. Each successful rename writes
// "Renamed: <old> -> <new>" to out; each missing range source writes
// "File not found: <old>". The first rename error aborts the run, as does
// ctx being cancelled between files. Nothing is rolled back.
//
// In a dry run "Would rename: <old> -> <new>" is written instead and the
// filesystem is not touched.
func Execute(ctx context.Context, cfg *config.Config, log *logging.Logger, out io.Writer, plan []Rename) (RunStats, error) {
	stats := RunStats{Total: len(plan)}
	if len(plan) == 0 {
		log.Debug(cfg.Verbose, "No entries ending with %q in %s", cfg.Extension, cfg.Folder)
		return stats, nil
	}
	log.Debug(cfg.Verbose, "Planned %d renames in %s", stats.Total, cfg.Folder)

	for i, r := range plan {
		stats.Current = i + 1

		if err := ctx.Err(); err != nil {
			log.Warn("Interrupted after %d of %d", stats.Renamed+stats.Missing, stats.Total)
			return stats, err
		}

		if r.Missing {
			progress(log, out, "File not found: %s", r.OldPath)
			stats.Missing++
			continue
		}

		if cfg.DryRun {
			progress(log, out, "Would rename: %s -> %s", r.OldPath, r.NewPath)
			stats.Renamed++
			stats.Bytes += r.Size
			continue
		}

		if err := os.Rename(r.OldPath, r.NewPath); err != nil {
			return stats, fmt.Errorf("after %d of %d renames: %w", stats.Renamed, stats.Total, err)
		}
		progress(log, out, "Renamed: %s -> %s", r.OldPath, r.NewPath)
		stats.Renamed++
		stats.Bytes += r.Size
	}
	return stats, nil
}

// progress writes one plain line to out and mirrors it to the log file.
func progress(log *logging.Logger, out io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(out, format+"\n", args...)
	log.Record(format, args...)
}
