package main

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/handiism/coverfix/internal/curate"
	"github.com/handiism/coverfix/internal/logging"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var (
		workers  int
		size     int
		noLog    bool
		playlist bool
	)

	cmd := &cobra.Command{
		Use:   "run <folder>",
		Short: "Fix the cover art of every audio file under folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := ctx.loadSettings()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("workers") {
				settings.Workers = workers
			}
			if cmd.Flags().Changed("size") {
				settings.TargetSize = size
			}
			if noLog {
				settings.EnableLogFile = false
			}
			if playlist {
				settings.CreateDuplicatesPlaylist = true
			}
			if err := settings.Validate(); err != nil {
				return err
			}

			root, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}

			var console io.Writer
			if ctx.verbose {
				console = cmd.ErrOrStderr()
			}
			runLog, err := logging.New(logging.Options{
				Level:      settings.LogLevel,
				Dir:        root,
				FileName:   settings.LogFileName,
				EnableFile: settings.EnableLogFile,
				Console:    console,
			})
			if err != nil {
				return err
			}
			defer runLog.Close()

			out := cmd.OutOrStdout()
			rep := newReporter(out, ctx.verbose)

			runner, err := curate.NewRunner(settings, rep.handle,
				curate.WithLogger(runLog.Logger),
				curate.WithRunID(runLog.RunID),
			)
			if err != nil {
				return err
			}

			rep.header("coverfix")
			if err := runner.Initialize(cmd.Context(), root); err != nil {
				return err
			}

			summary, runErr := runner.Run(cmd.Context())
			if summary != nil {
				fmt.Fprintln(out)
				fmt.Fprintln(out, renderSummaryTable(summary))
				if summary.DuplicateCount() > 0 {
					fmt.Fprintln(out)
					fmt.Fprintln(out, renderDuplicatesTable(root, summary.Duplicates))
				}
				fmt.Fprintf(out, "Finished in %s\n", summary.Elapsed().Round(time.Millisecond))
				if failed := summary.Failed(); failed > 0 {
					fmt.Fprintf(out, "%d file(s) need attention\n", failed)
				}
				if runLog.Path != "" {
					fmt.Fprintf(out, "Log saved: %s\n", runLog.Path)
				}
			}
			return runErr
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Number of files processed in parallel")
	cmd.Flags().IntVar(&size, "size", 0, "Target cover edge length in pixels")
	cmd.Flags().BoolVar(&noLog, "no-log", false, "Do not append to the run log in the folder")
	cmd.Flags().BoolVar(&playlist, "playlist", false, "Write a duplicates review playlist")
	return cmd
}
