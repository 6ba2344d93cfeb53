package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cellcluster/archive"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect archived runs",
	}

	runsCmd.AddCommand(newRunsListCommand(ctx))
	runsCmd.AddCommand(newRunsShowCommand(ctx))
	runsCmd.AddCommand(newRunsDeleteCommand(ctx))

	return runsCmd
}

func newRunsListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List archived runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *archive.Store) error {
				runs, err := store.List()
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(runs) == 0 {
					fmt.Fprintln(out, "No archived runs")
					return nil
				}
				rows := make([][]string, 0, len(runs))
				for _, r := range runs {
					clusters := 0
					if r.Summary != nil {
						clusters = r.Summary.Len()
					}
					rows = append(rows, []string{
						r.ID,
						r.Label,
						r.CreatedAt.Local().Format(time.DateTime),
						strconv.Itoa(r.Channels),
						r.Params.Method + "/" + r.Params.Metric,
						strconv.Itoa(clusters),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"ID", "Label", "Created", "Channels", "Linkage", "Clusters"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignRight},
					shouldColorize(out),
				))
				return nil
			})
		},
	}
}

func newRunsShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show an archived run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *archive.Store) error {
				run, err := store.Get(args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if jsonOutput {
					enc := json.NewEncoder(out)
					enc.SetIndent("", "  ")
					return enc.Encode(run)
				}
				p := run.Params
				fmt.Fprintf(out, "ID:        %s\n", run.ID)
				fmt.Fprintf(out, "Label:     %s\n", run.Label)
				fmt.Fprintf(out, "Created:   %s\n", run.CreatedAt.Format(time.RFC3339))
				fmt.Fprintf(out, "Input:     %d channels, %d samples\n", run.Channels, run.Samples)
				fmt.Fprintf(out, "Linkage:   %s on %s, k=%d\n", p.Method, p.Metric, p.K)
				fmt.Fprintf(out, "Smoothing: window=%d order=%d enabled=%t\n", p.SmoothingWindow, p.PolyOrder, p.Smooth)
				fmt.Fprintln(out, summaryTable(run.Summary, shouldColorize(out)))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the run as JSON")
	return cmd
}

func newRunsDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete archived runs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *archive.Store) error {
				for _, id := range args {
					if err := store.Delete(id); err != nil {
						return fmt.Errorf("delete %s: %w", id, err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
				}
				return nil
			})
		},
	}
}
