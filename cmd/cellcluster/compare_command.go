package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cellcluster/archive"
	"github.com/katalvlaran/cellcluster/compare"
)

func newCompareCommand(ctx *commandContext) *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "compare <id-a> <id-b>",
		Short: "Compare the clusters of two archived runs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *archive.Store) error {
				a, err := store.Get(args[0])
				if err != nil {
					return fmt.Errorf("run %s: %w", args[0], err)
				}
				b, err := store.Get(args[1])
				if err != nil {
					return fmt.Errorf("run %s: %w", args[1], err)
				}
				grid, err := compare.Overlap(a.Summary, b.Summary)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				fmt.Fprintf(out, "%s (%s) vs %s (%s)\n", a.Label, a.ID, b.Label, b.ID)
				if full {
					fmt.Fprintln(out, gridTable(grid, colorize))
				}

				rows := [][]string{}
				for _, m := range compare.Best(grid) {
					other := "-"
					if m.Other > 0 {
						other = strconv.Itoa(m.Other)
					}
					rows = append(rows, []string{strconv.Itoa(m.Rank), other, formatScore(m.Score)})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Rank", "Best match", "Jaccard"},
					rows,
					[]columnAlignment{alignRight, alignRight, alignRight},
					colorize,
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&full, "grid", false, "Also print the full overlap grid")
	return cmd
}

func gridTable(g *compare.Grid, colorize bool) string {
	rowsN, colsN := g.Shape()
	headers := make([]string, 0, colsN+1)
	aligns := make([]columnAlignment, 0, colsN+1)
	headers = append(headers, "")
	aligns = append(aligns, alignRight)
	for j := 1; j <= colsN; j++ {
		headers = append(headers, strconv.Itoa(j))
		aligns = append(aligns, alignRight)
	}
	rows := make([][]string, 0, rowsN)
	for i := 1; i <= rowsN; i++ {
		row := []string{strconv.Itoa(i)}
		for _, v := range g.Row(i) {
			row = append(row, formatScore(v))
		}
		rows = append(rows, row)
	}
	return renderTable(headers, rows, aligns, colorize)
}
