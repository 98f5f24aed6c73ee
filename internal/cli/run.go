package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/backmassage/reseq/internal/check"
	"github.com/backmassage/reseq/internal/config"
	"github.com/backmassage/reseq/internal/display"
	"github.com/backmassage/reseq/internal/logging"
	"github.com/backmassage/reseq/internal/pipeline"
	"github.com/backmassage/reseq/internal/term"
)

type mode int

const (
	modeSequence mode = iota
	modeRange
)

// runRename resolves the config, plans, optionally confirms, and executes.
// Progress lines go to the command's stdout; leveled log lines and the
// summary card go to stderr, so stdout carries exactly one line per rename.
func runRename(cmd *cobra.Command, flags *config.Config, args []string, m mode) error {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors are
	// returned for Execute to print.
	cfg, err := config.Resolve(cmd.Flags(), flags, args)
	if err != nil {
		return err
	}
	if m == modeRange {
		if err := cfg.ValidateRange(); err != nil {
			return err
		}
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	log, err := logging.New(&cfg, errOut, errOut)
	if err != nil {
		return err
	}
	defer log.Close()

	// Phase 2: Logger available.
	if cfg.Verbose {
		display.PrintBanner(errOut)
	}

	var plan []pipeline.Rename
	if m == modeRange {
		plan, err = pipeline.PlanRange(&cfg)
	} else {
		plan, err = pipeline.Plan(&cfg)
	}
	if err != nil {
		log.Error("%v", err)
		return reportedError{err}
	}
	if cfg.DryRun {
		log.Debug(cfg.Verbose, "DRY RUN: nothing will be renamed")
	}

	if cfg.Confirm && !cfg.DryRun && len(plan) > 0 {
		ok, err := confirmPlan(&cfg, log, plan)
		if err != nil {
			log.Error("%v", err)
			return reportedError{err}
		}
		if !ok {
			log.Warn("Cancelled; nothing renamed")
			return nil
		}
	}

	// Phase 3: Execute. The context is cancelled on SIGINT/SIGTERM.
	stats, err := pipeline.Execute(cmd.Context(), &cfg, log, out, plan)
	if stats.Total > 0 {
		display.PrintSummary(errOut, display.Summary{
			Folder:  cfg.Folder,
			Renamed: stats.Renamed,
			Missing: stats.Missing,
			Pending: stats.Pending(),
			Bytes:   stats.Bytes,
			DryRun:  cfg.DryRun,
		})
	}
	if err != nil {
		log.Error("%v", err)
		return reportedError{err}
	}
	return nil
}

// runCheck runs diagnostics; a failed check is an error so the exit code is 1.
func runCheck(cmd *cobra.Command, flags *config.Config, args []string, rangeMode bool) error {
	cfg, err := config.Resolve(cmd.Flags(), flags, args)
	if err != nil {
		return err
	}
	if rangeMode {
		if err := cfg.ValidateRange(); err != nil {
			return err
		}
	}

	log, err := logging.New(&cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer log.Close()

	display.PrintBanner(cmd.OutOrStdout())

	var ok bool
	if rangeMode {
		ok = check.RunRangeCheck(&cfg, log)
	} else {
		ok = check.RunCheck(&cfg, log)
	}
	if !ok {
		return reportedError{fmt.Errorf("check failed for %s", cfg.Folder)}
	}
	return nil
}

// confirmPlan asks before renaming. Without a terminal on stdin there is no
// one to ask, so the run proceeds with a warning.
func confirmPlan(cfg *config.Config, log *logging.Logger, plan []pipeline.Rename) (bool, error) {
	if !term.IsTerminal(os.Stdin) {
		log.Warn("--confirm ignored: stdin is not a terminal")
		return true, nil
	}
	return confirm(fmt.Sprintf("Rename %d entries in %s?", len(plan), cfg.Folder))
}
