package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cellcluster/archive"
	"github.com/katalvlaran/cellcluster/internal/ingest"
	"github.com/katalvlaran/cellcluster/pipeline"
	"github.com/katalvlaran/cellcluster/series"
	"github.com/katalvlaran/cellcluster/summary"
)

type runOptions struct {
	k           int
	method      string
	metric      string
	highlight   []string
	save        string
	jsonOutput  bool
	extremes    int
	timeColumn  string
	skipRows    int
	exclude     []string
	stripPrefix int
	dropMissing bool
}

func newRunCommand(ctx *commandContext) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run <file.csv>...",
		Short: "Cluster the channels of one or more refresh events",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			pcfg, err := cfg.PipelineConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("k") {
				pcfg.K = opts.k
			}
			if flags.Changed("method") {
				pcfg.Method = opts.method
			}
			if flags.Changed("metric") {
				pcfg.Metric = opts.metric
			}
			if flags.Changed("highlight") {
				pcfg.Highlight = splitChannels(opts.highlight)
			}
			if err := pcfg.Validate(); err != nil {
				return err
			}

			readOpts := ingest.Options{
				SkipRows:    opts.skipRows,
				TimeColumn:  opts.timeColumn,
				Exclude:     opts.exclude,
				StripPrefix: opts.stripPrefix,
				DropMissing: opts.dropMissing,
			}
			jobs := make([]pipeline.Job, 0, len(args))
			for _, path := range args {
				ts, err := ingest.ReadFile(path, readOpts)
				if err != nil {
					return err
				}
				jobs = append(jobs, pipeline.Job{Label: path, Series: ts, Config: pcfg})
			}

			results, err := pipeline.RunBatch(cmd.Context(), jobs, cfg.Cluster.Workers, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, res := range results {
				if err := printResult(out, jobs[i].Label, res, opts); err != nil {
					return err
				}
			}

			if opts.save == "" {
				return nil
			}
			return ctx.withStore(func(store *archive.Store) error {
				for i, res := range results {
					label := opts.save
					if len(results) > 1 {
						label = fmt.Sprintf("%s:%s", opts.save, filepath.Base(jobs[i].Label))
					}
					run, err := store.Put(archive.NewRun(label, pcfg, res))
					if err != nil {
						return fmt.Errorf("save %s: %w", jobs[i].Label, err)
					}
					fmt.Fprintf(out, "Saved run %s (%s)\n", run.ID, run.Label)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&opts.k, "k", "k", pipeline.DefaultK, "Number of flat clusters")
	cmd.Flags().StringVarP(&opts.method, "method", "m", pipeline.DefaultMethod, "Linkage method")
	cmd.Flags().StringVar(&opts.metric, "metric", pipeline.DefaultMetric, "Dissimilarity metric")
	cmd.Flags().StringSliceVar(&opts.highlight, "highlight", nil, "Channels to annotate in the summary")
	cmd.Flags().StringVar(&opts.save, "save", "", "Archive the result under this label")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the summary as JSON")
	cmd.Flags().IntVar(&opts.extremes, "extremes", 0, "Also list the n lowest and highest channels at the dip")
	cmd.Flags().StringVar(&opts.timeColumn, "time-column", "", "Timestamp column header (default: first column)")
	cmd.Flags().IntVar(&opts.skipRows, "skip-rows", 0, "Lines to skip before the header")
	cmd.Flags().StringSliceVar(&opts.exclude, "exclude", nil, "Columns to ignore")
	cmd.Flags().IntVar(&opts.stripPrefix, "strip-prefix", 0, "Characters to strip from each channel header")
	cmd.Flags().BoolVar(&opts.dropMissing, "drop-missing", false, "Drop samples with missing values")
	return cmd
}

func printResult(out io.Writer, label string, res *pipeline.Result, opts runOptions) error {
	if opts.jsonOutput {
		payload := struct {
			Input    string           `json:"input"`
			Channels int              `json:"channels"`
			Samples  int              `json:"samples"`
			Summary  *summary.Summary `json:"summary"`
		}{label, res.Conditioned.Width(), res.Conditioned.Len(), res.Summary}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	fmt.Fprintf(out, "%s: %d channels, %d samples, %d clusters (size stddev %.2f)\n",
		label, res.Conditioned.Width(), res.Conditioned.Len(), res.Summary.Len(), res.Summary.SizeStdDev())
	fmt.Fprintln(out, summaryTable(res.Summary, shouldColorize(out)))

	if opts.extremes > 0 {
		low, high, err := summary.Extremes(res.Conditioned, opts.extremes, -1)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Lowest:  %s\n", joinChannels(low))
		fmt.Fprintf(out, "Highest: %s\n", joinChannels(reversed(high)))
	}
	return nil
}

func reversed(chs []series.Channel) []series.Channel {
	out := make([]series.Channel, len(chs))
	for i, ch := range chs {
		out[len(chs)-1-i] = ch
	}
	return out
}
