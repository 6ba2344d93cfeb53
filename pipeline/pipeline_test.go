// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellcluster/condition"
	"github.com/katalvlaran/cellcluster/dissim"
	"github.com/katalvlaran/cellcluster/internal/logging"
	"github.com/katalvlaran/cellcluster/linkage"
	"github.com/katalvlaran/cellcluster/pipeline"
	"github.com/katalvlaran/cellcluster/series"
	"github.com/katalvlaran/cellcluster/synth"
)

// event is a 1000-sample refresh with three clearly separated behaviours.
func event(t testing.TB, seed int64) (*series.Matrix, map[series.Channel]int) {
	t.Helper()
	ts, truth, err := synth.Refresh(1000, []synth.Group{
		{Size: 5, Depth: 0.15},
		{Size: 4, Depth: 0.45},
		{Size: 3, Depth: 0.30, Offset: -0.05},
	}, synth.WithSeed(seed), synth.WithNoise(0.004))
	require.NoError(t, err)

	return ts, truth
}

func TestRun_RecoversGroups(t *testing.T) {
	ts, truth := event(t, 42)
	for _, method := range []string{"single", "complete", "average", "ward"} {
		cfg := pipeline.DefaultConfig()
		cfg.K = 3
		cfg.Method = method

		res, err := pipeline.Run(context.Background(), ts, cfg, nil)
		require.NoError(t, err, method)
		assert.Equal(t, 650, res.Conditioned.Len())
		assert.Len(t, res.Tree.Merges(), ts.Width()-1)

		recs := res.Summary.Records()
		require.Len(t, recs, 3, method)
		assert.Equal(t, []int{5, 4, 3}, []int{recs[0].Size, recs[1].Size, recs[2].Size}, method)
		for _, r := range recs {
			group := truth[r.Members[0]]
			for _, ch := range r.Members {
				assert.Equal(t, group, truth[ch], "%s: %s mixed into rank %d", method, ch, r.Rank)
			}
		}
	}
}

func TestRun_Deterministic(t *testing.T) {
	ts, _ := event(t, 7)
	cfg := pipeline.DefaultConfig()
	cfg.K = 4
	cfg.Metric = "correlation"
	cfg.Method = "average"
	cfg.Highlight = []series.Channel{"1", "12"}

	a, err := pipeline.Run(context.Background(), ts, cfg, nil)
	require.NoError(t, err)
	b, err := pipeline.Run(context.Background(), ts, cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, a.Assignment.Labels(), b.Assignment.Labels())
	assert.Equal(t, a.Summary.Records(), b.Summary.Records())
}

func TestRun_Errors(t *testing.T) {
	ts, _ := event(t, 1)
	ctx := context.Background()

	cfg := pipeline.DefaultConfig()
	cfg.K = ts.Width() + 1
	_, err := pipeline.Run(ctx, ts, cfg, nil)
	assert.ErrorIs(t, err, linkage.ErrInvalidClusterCount)

	cfg = pipeline.DefaultConfig()
	cfg.MaxChannels = 4
	_, err = pipeline.Run(ctx, ts, cfg, nil)
	assert.ErrorIs(t, err, pipeline.ErrTooManyChannels)

	cfg = pipeline.DefaultConfig()
	cfg.Metric = "cosine"
	_, err = pipeline.Run(ctx, ts, cfg, nil)
	assert.ErrorIs(t, err, dissim.ErrUnknownMetric)

	short, _, err := synth.Refresh(300, []synth.Group{{Size: 2}})
	require.NoError(t, err)
	_, err = pipeline.Run(ctx, short, pipeline.DefaultConfig(), nil)
	assert.ErrorIs(t, err, condition.ErrInsufficientData)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = pipeline.Run(canceled, ts, pipeline.DefaultConfig(), nil)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = pipeline.Run(ctx, nil, pipeline.DefaultConfig(), nil)
	assert.ErrorIs(t, err, pipeline.ErrNilSeries)
}

func TestRun_LogsStages(t *testing.T) {
	ts, _ := event(t, 3)
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "json", Writer: &buf})
	require.NoError(t, err)

	_, err = pipeline.Run(context.Background(), ts, pipeline.DefaultConfig(), logger)
	require.NoError(t, err)
	for _, stage := range []string{"condition", "dissim", "linkage", "cut", "summary"} {
		assert.Contains(t, buf.String(), `"stage":"`+stage+`"`)
	}
	assert.Contains(t, buf.String(), "run complete")
}

func TestRunBatch(t *testing.T) {
	ts, _ := event(t, 9)
	var jobs []pipeline.Job
	for _, w := range []int{21, 31, 51, 101} {
		cfg := pipeline.DefaultConfig()
		cfg.Condition.SmoothingWindow = w
		cfg.K = 3
		jobs = append(jobs, pipeline.Job{Label: "window", Series: ts, Config: cfg})
	}

	results, err := pipeline.RunBatch(context.Background(), jobs, 2, nil)
	require.NoError(t, err)
	require.Len(t, results, len(jobs))
	for i, job := range jobs {
		single, err := pipeline.Run(context.Background(), ts, job.Config, nil)
		require.NoError(t, err)
		assert.Equal(t, single.Summary.Records(), results[i].Summary.Records(), "job order preserved")
	}

	bad := jobs[0]
	bad.Label = "bad"
	bad.Config.K = 0
	_, err = pipeline.RunBatch(context.Background(), append(jobs, bad), 0, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `job "bad"`)
	assert.ErrorIs(t, err, linkage.ErrInvalidClusterCount)
}

func TestDefaultConfig(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, condition.DefaultConfig(), cfg.Condition)
	assert.Equal(t, 12, cfg.K)
}

func BenchmarkRun(b *testing.B) {
	ts, _ := event(b, 1)
	cfg := pipeline.DefaultConfig()
	cfg.K = 3
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pipeline.Run(context.Background(), ts, cfg, nil)
	}
}
