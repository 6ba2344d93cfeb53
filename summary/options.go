// SPDX-License-Identifier: MIT

package summary

import "github.com/katalvlaran/cellcluster/series"

// Option customizes Summarize.
type Option func(*config)

type config struct {
	highlight map[series.Channel]bool
}

func newConfig(opts ...Option) config {
	cfg := config{highlight: map[series.Channel]bool{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithHighlight marks channels of interest. Each record then lists its
// members found in this set; membership and ordering are unchanged.
// Unknown channels are ignored.
func WithHighlight(channels ...series.Channel) Option {
	return func(c *config) {
		for _, ch := range channels {
			c.highlight[ch] = true
		}
	}
}
