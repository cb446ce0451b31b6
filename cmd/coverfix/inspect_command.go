package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/handiism/coverfix/internal/curate"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <folder>",
		Short: "Show the cover art verdict of every audio file without changing anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := ctx.loadSettings()
			if err != nil {
				return err
			}

			runner, err := curate.NewRunner(settings, nil)
			if err != nil {
				return err
			}
			if err := runner.Initialize(cmd.Context(), args[0]); err != nil {
				return err
			}

			rows, err := runner.Inspect(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintf(out, "No audio files found in %s\n", runner.Root())
				return nil
			}
			fmt.Fprintln(out, renderInspectTable(runner.Root(), rows))
			return nil
		},
	}
}

func inspectRow(root string, row curate.InspectRow) []string {
	rec := row.Record
	rel, err := filepath.Rel(root, rec.Path)
	if err != nil {
		rel = rec.Path
	}

	size := "-"
	if row.Width > 0 {
		size = fmt.Sprintf("%dx%d", row.Width, row.Height)
	}
	duration := "-"
	if rec.HasDuration {
		duration = fmt.Sprintf("%d:%02d", int(rec.Duration)/60, int(rec.Duration)%60)
	}
	name := "yes"
	if !rec.Valid() {
		name = "no"
	}
	tags := "-"
	if row.TagArtist != "" || row.TagTitle != "" {
		tags = row.TagArtist + " / " + row.TagTitle
	}
	return []string{rel, rec.Key, name, tags, row.Verdict.String(), size, duration}
}
