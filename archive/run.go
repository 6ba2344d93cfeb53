// SPDX-License-Identifier: MIT

package archive

import (
	"time"

	"github.com/katalvlaran/cellcluster/pipeline"
	"github.com/katalvlaran/cellcluster/series"
	"github.com/katalvlaran/cellcluster/summary"
)

// Params records the pipeline configuration that produced a run.
type Params struct {
	SmoothingWindow int              `json:"smoothing_window"`
	PolyOrder       int              `json:"poly_order"`
	Smooth          bool             `json:"smooth"`
	TrimLeading     int              `json:"trim_leading"`
	TrimTrailing    int              `json:"trim_trailing"`
	Order           string           `json:"order"`
	ResampleFactor  int              `json:"resample_factor"`
	Resampler       string           `json:"resampler"`
	Metric          string           `json:"metric"`
	Method          string           `json:"method"`
	K               int              `json:"k"`
	Highlight       []series.Channel `json:"highlight,omitempty"`
}

// ParamsFrom captures cfg in its stored form.
func ParamsFrom(cfg pipeline.Config) Params {
	c := cfg.Condition
	resampler := "window-mean"
	if c.Resampler != nil {
		resampler = c.Resampler.Name()
	}

	return Params{
		SmoothingWindow: c.SmoothingWindow,
		PolyOrder:       c.PolyOrder,
		Smooth:          !c.SkipSmoothing,
		TrimLeading:     c.TrimLeading,
		TrimTrailing:    c.TrimTrailing,
		Order:           c.Order.String(),
		ResampleFactor:  c.ResampleFactor,
		Resampler:       resampler,
		Metric:          cfg.Metric,
		Method:          cfg.Method,
		K:               cfg.K,
		Highlight:       append([]series.Channel(nil), cfg.Highlight...),
	}
}

// Run is one archived clustering result.
type Run struct {
	ID        string           `json:"id"`
	Label     string           `json:"label"`
	CreatedAt time.Time        `json:"created_at"`
	Channels  int              `json:"channels"`
	Samples   int              `json:"samples"`
	Params    Params           `json:"params"`
	Summary   *summary.Summary `json:"summary"`
}

// NewRun assembles a Run from a pipeline result. ID and CreatedAt are left
// empty for Put to assign.
func NewRun(label string, cfg pipeline.Config, res *pipeline.Result) Run {
	r := Run{Label: label, Params: ParamsFrom(cfg)}
	if res != nil {
		r.Summary = res.Summary
		if res.Conditioned != nil {
			r.Channels, r.Samples = res.Conditioned.Width(), res.Conditioned.Len()
		}
	}

	return r
}
