package main

import (
	"errors"
	"fmt"
	"log"

	"card-points/internal/shared"
	"card-points/internal/table"

	"github.com/spf13/cobra"
)

type tableFlags struct {
	from    int
	to      int
	format  string
	summary bool
	verbose bool
}

func newTableCmd() *cobra.Command {
	f := &tableFlags{}

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the point table for a range of cards",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&f.from, "from", int(shared.MinCard), "First card value")
	flags.IntVar(&f.to, "to", int(shared.MaxCard), "Last card value")
	flags.StringVar(&f.format, "format", "text", "Output format: text, json or yaml")
	flags.BoolVar(&f.summary, "summary", false, "Append count and point totals per tier")
	flags.BoolVar(&f.verbose, "verbose", false, "Print processing steps to stderr")

	return cmd
}

func runTable(cmd *cobra.Command, f *tableFlags) error {
	logger := log.New(cmd.ErrOrStderr(), "", 0)
	verbose := func(msg string, args ...any) {
		if f.verbose {
			logger.Printf(msg, args...)
		}
	}

	format, err := table.ParseFormat(f.format)
	if err != nil {
		return exitError(2, "invalid --format %q: want text, json or yaml", f.format)
	}

	verbose("Building table for cards %d..%d", f.from, f.to)
	entries, err := table.Build(f.from, f.to)
	if err != nil {
		if errors.Is(err, table.ErrEmptyRange) || errors.Is(err, table.ErrRangeTooLarge) {
			return exitError(2, "invalid range: %v", err)
		}
		return err
	}

	out := cmd.OutOrStdout()
	if f.summary {
		verbose("Writing %d entries with summary as %s", len(entries), format)
		if err := table.WriteReport(out, format, entries); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		return nil
	}

	verbose("Writing %d entries as %s", len(entries), format)
	if err := table.Write(out, format, entries); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}
