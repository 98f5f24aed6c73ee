// Package cli wires the cobra command tree: the sequential renamer on the
// root command plus the range, check, and version subcommands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/reseq/internal/config"
)

// reportedError marks an error that has already been written through the
// logger, so Execute does not print it a second time.
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }

// Execute builds the command tree and runs it against os.Args. SIGINT and
// SIGTERM cancel the context; the renamer stops between files.
func Execute(version, commit string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := NewRootCmd(version, commit).ExecuteContext(ctx)
	if err != nil && !errors.As(err, new(reportedError)) {
		fmt.Fprintf(os.Stderr, "reseq: %v\n", err)
	}
	return err
}

// NewRootCmd returns a fresh command tree. Each call owns its own flag
// values, so tests can build and run commands independently.
func NewRootCmd(version, commit string) *cobra.Command {
	var flags config.Config

	root := &cobra.Command{
		Use:   "reseq [flags] [folder]",
		Short: "Rename video files in a folder to a numbered sequence",
		Long: `reseq renames every entry in a folder whose name ends with the given
extension (default ".avi") to <prefix><index><ext>, e.g. walking0.avi,
walking1.avi, ... Indices follow the directory listing order unless
--order is given. Existing files with a target name are overwritten;
run "reseq check" first to see which ones.

The folder comes from the argument, RESEQ_FOLDER, or "folder:" in
reseq.yaml.`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, &flags, args, modeSequence)
		},
	}
	root.SetVersionTemplate("reseq v{{.Version}}\n")

	config.BindPersistentFlags(root.PersistentFlags(), &flags)
	config.BindSequenceFlags(root.Flags(), &flags)
	config.BindConfirmFlag(root.Flags(), &flags)

	root.AddCommand(
		newRangeCmd(&flags),
		newCheckCmd(&flags),
		newVersionCmd(version, commit),
	)
	return root
}

func newRangeCmd(flags *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "range [flags] [folder]",
		Short: "Rename a fixed numbered range (video_<i>.mp4 -> non<i>.mp4)",
		Long: `range renames <source % i> to <target % i> for every i in [--from, --to).
Sources that do not exist are reported as "File not found" and skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, flags, args, modeRange)
		},
	}
	config.BindRangeFlags(cmd.Flags(), flags)
	config.BindConfirmFlag(cmd.Flags(), flags)
	return cmd
}

func newCheckCmd(flags *config.Config) *cobra.Command {
	var rangeMode bool
	cmd := &cobra.Command{
		Use:   "check [flags] [folder]",
		Short: "Report what a run would rename and overwrite, without renaming",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, flags, args, rangeMode)
		},
	}
	config.BindSequenceFlags(cmd.Flags(), flags)
	config.BindRangeFlags(cmd.Flags(), flags)
	cmd.Flags().BoolVar(&rangeMode, "range", false, "Check the range variant instead of the sequence")
	return cmd
}

func newVersionCmd(version, commit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and exit",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "reseq v%s (%s)\n", version, commit)
		},
	}
}
