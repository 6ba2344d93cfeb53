// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cellcluster/internal/logging"
	"github.com/katalvlaran/cellcluster/series"
)

// Job is one independent run of RunBatch.
type Job struct {
	Label  string
	Series *series.Matrix
	Config Config
}

// RunBatch runs jobs on at most workers goroutines (≤ 0 means GOMAXPROCS)
// and returns results in job order. The first failure cancels the jobs not
// yet started and is returned wrapped with the job label.
func RunBatch(ctx context.Context, jobs []Job, workers int, logger *slog.Logger) ([]*Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	results := make([]*Result, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, job := range jobs {
		g.Go(func() error {
			res, err := Run(gctx, job.Series, job.Config, logger.With(slog.String(logging.FieldJob, job.Label)))
			if err != nil {
				return fmt.Errorf("job %q: %w", job.Label, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
