// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cellcluster/condition"
	"github.com/katalvlaran/cellcluster/dissim"
	"github.com/katalvlaran/cellcluster/linkage"
	"github.com/katalvlaran/cellcluster/series"
)

const (
	// DefaultK is the number of flat clusters cut from the tree.
	DefaultK = 12
	// DefaultMetric names the default dissimilarity metric.
	DefaultMetric = "euclidean"
	// DefaultMethod names the default linkage method.
	DefaultMethod = "single"
	// DefaultMaxChannels bounds the O(N³) linkage stage.
	DefaultMaxChannels = 2048
)

var (
	// ErrTooManyChannels indicates an input wider than Config.MaxChannels.
	ErrTooManyChannels = errors.New("pipeline: too many channels")

	// ErrNilSeries indicates a nil input series.
	ErrNilSeries = errors.New("pipeline: nil series")
)

// Config selects every stage parameter of one run.
type Config struct {
	Condition   condition.Config
	Metric      string
	Method      string
	K           int
	Highlight   []series.Channel
	MaxChannels int // 0 disables the guard
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Condition:   condition.DefaultConfig(),
		Metric:      DefaultMetric,
		Method:      DefaultMethod,
		K:           DefaultK,
		MaxChannels: DefaultMaxChannels,
	}
}

// Validate checks the configuration without touching any data.
func (c Config) Validate() error {
	if err := c.Condition.Validate(); err != nil {
		return err
	}
	if _, err := dissim.Lookup(c.Metric); err != nil {
		return err
	}
	if _, err := linkage.ParseMethod(c.Method); err != nil {
		return err
	}
	if c.K < 1 {
		return fmt.Errorf("k=%d: %w", c.K, linkage.ErrInvalidClusterCount)
	}
	if c.MaxChannels < 0 {
		return fmt.Errorf("max channels %d: %w", c.MaxChannels, condition.ErrInvalidConfig)
	}

	return nil
}
