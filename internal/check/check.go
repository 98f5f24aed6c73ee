// Package check provides folder diagnostics ("reseq check"): it reports what
// a run would do, and which existing entries it would replace, without
// renaming anything.
package check

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/backmassage/reseq/internal/config"
	"github.com/backmassage/reseq/internal/naming"
	"github.com/backmassage/reseq/internal/pipeline"
)

// ErrNotWritable is reported when a probe file cannot be created in the folder.
var ErrNotWritable = errors.New("folder is not writable")

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck diagnoses cfg.Folder for the sequential renamer. It returns false
// when the folder cannot be renamed in at all; collisions are only warnings.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== Folder Check ===")

	entries, ok := checkFolder(cfg.Folder, log)
	if !ok {
		return false
	}

	plan, err := pipeline.Plan(cfg)
	if err != nil {
		log.Error("Cannot plan renames: %v", err)
		return false
	}
	log.Info("%d of %d entries end with %q", len(plan), len(entries), cfg.Extension)
	if cfg.Order == config.OrderListing && len(plan) > 1 {
		log.Warn("Order: directory listing (not sorted; may differ between runs or machines)")
	} else {
		log.Info("Order: %s", cfg.Order)
	}

	report(cfg, log, entries, plan)
	return true
}

// RunRangeCheck diagnoses cfg.Folder for the fixed-range variant.
func RunRangeCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== Folder Check (range) ===")

	entries, ok := checkFolder(cfg.Folder, log)
	if !ok {
		return false
	}

	plan, err := pipeline.PlanRange(cfg)
	if err != nil {
		log.Error("Cannot plan renames: %v", err)
		return false
	}
	missing := 0
	for _, r := range plan {
		if r.Missing {
			missing++
		}
	}
	log.Info("Range [%d, %d): %d present, %d not found", cfg.Range.From, cfg.Range.To, len(plan)-missing, missing)

	report(cfg, log, entries, plan)
	return true
}

// checkFolder verifies the folder can be listed and written to.
func checkFolder(folder string, log Logger) ([]fs.DirEntry, bool) {
	entries, err := pipeline.List(folder)
	if err != nil {
		log.Error("%v", err)
		return nil, false
	}
	log.Success("Folder: %s", folder)

	if err := probeWritable(folder); err != nil {
		log.Error("%v", err)
		return nil, false
	}
	log.Success("Folder is writable")
	return entries, true
}

// report logs the planned mapping (verbose) and every rename that would
// replace an existing entry.
func report(cfg *config.Config, log Logger, entries []fs.DirEntry, plan []pipeline.Rename) {
	for _, r := range plan {
		if r.Missing {
			log.Debug(cfg.Verbose, "  %s (not found)", filepath.Base(r.OldPath))
			continue
		}
		log.Debug(cfg.Verbose, "  %s -> %s", filepath.Base(r.OldPath), filepath.Base(r.NewPath))
	}

	collisions := naming.FindCollisions(pipeline.Names(entries), pipeline.Moves(plan))
	if len(collisions) == 0 {
		log.Success("No existing entry would be overwritten")
		return
	}
	for _, c := range collisions {
		if c.Pending {
			log.Warn("%s would overwrite %s before it is renamed itself", c.From, c.To)
		} else {
			log.Warn("%s would overwrite existing %s", c.From, c.To)
		}
	}
	log.Warn("%d existing entries would be overwritten; consider --order or --prefix", len(collisions))
}

// probeWritable creates and removes a hidden temp file in folder.
func probeWritable(folder string) error {
	f, err := os.CreateTemp(folder, ".reseq-probe-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotWritable, err)
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}
