// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/cellcluster/condition"
	"github.com/katalvlaran/cellcluster/dissim"
	"github.com/katalvlaran/cellcluster/internal/logging"
	"github.com/katalvlaran/cellcluster/linkage"
	"github.com/katalvlaran/cellcluster/series"
	"github.com/katalvlaran/cellcluster/summary"
)

// Result carries every stage output of one run.
type Result struct {
	Conditioned *series.Matrix
	Distances   *dissim.Matrix
	Tree        *linkage.Tree
	Assignment  *linkage.Assignment
	Summary     *summary.Summary
}

// Run conditions ts, computes distances, builds and cuts the tree and
// summarizes the clusters. ctx is checked between stages; a nil logger
// discards output.
func Run(ctx context.Context, ts *series.Matrix, cfg Config, logger *slog.Logger) (*Result, error) {
	logger = logging.NewComponentLogger(logger, "pipeline")
	if ts == nil {
		return nil, ErrNilSeries
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.MaxChannels > 0 && ts.Width() > cfg.MaxChannels {
		return nil, fmt.Errorf("%d channels, limit %d: %w", ts.Width(), cfg.MaxChannels, ErrTooManyChannels)
	}
	metric, _ := dissim.Lookup(cfg.Metric)
	method, _ := linkage.ParseMethod(cfg.Method)

	res := &Result{}
	stages := []struct {
		name string
		run  func() error
	}{
		{"condition", func() (err error) {
			res.Conditioned, err = condition.Condition(ts, cfg.Condition)
			return err
		}},
		{"dissim", func() (err error) {
			res.Distances, err = dissim.Compute(res.Conditioned, metric)
			return err
		}},
		{"linkage", func() (err error) {
			res.Tree, err = linkage.Build(res.Distances, method)
			return err
		}},
		{"cut", func() (err error) {
			res.Assignment, err = linkage.Cut(res.Tree, cfg.K)
			return err
		}},
		{"summary", func() error {
			res.Summary = summary.Summarize(res.Assignment, summary.WithHighlight(cfg.Highlight...))
			return nil
		}},
	}

	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		if err := st.run(); err != nil {
			logger.Debug("stage failed", slog.String(logging.FieldStage, st.name), logging.Error(err))
			return nil, fmt.Errorf("%s: %w", st.name, err)
		}
		logger.Debug("stage complete",
			slog.String(logging.FieldStage, st.name),
			slog.Duration("elapsed", time.Since(start)))
	}
	logger.Info("run complete",
		slog.Int("channels", ts.Width()),
		slog.Int("samples", res.Conditioned.Len()),
		slog.String("metric", metric.Name()),
		slog.String("method", method.String()),
		slog.Int("clusters", res.Summary.Len()))

	return res, nil
}
