package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/cellcluster/condition"
	"github.com/katalvlaran/cellcluster/pipeline"
	"github.com/katalvlaran/cellcluster/series"
)

//go:embed sample_config.toml
var sampleConfig string

// Condition mirrors condition.Config with file-friendly types.
type Condition struct {
	SmoothingWindow int    `toml:"smoothing_window"`
	PolyOrder       int    `toml:"poly_order"`
	Smooth          bool   `toml:"smooth"`
	TrimLeading     int    `toml:"trim_leading"`
	TrimTrailing    int    `toml:"trim_trailing"`
	Order           string `toml:"order"`
	ResampleFactor  int    `toml:"resample_factor"`
	Resampler       string `toml:"resampler"`
}

// Cluster selects the distance, linkage and cut parameters.
type Cluster struct {
	Metric      string   `toml:"metric"`
	Method      string   `toml:"method"`
	K           int      `toml:"k"`
	Highlight   []string `toml:"highlight"`
	MaxChannels int      `toml:"max_channels"`
	Workers     int      `toml:"workers"`
}

// Archive locates the run store.
type Archive struct {
	Dir string `toml:"dir"`
}

// Logging selects log level and format.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config encapsulates all configuration values for cellcluster.
type Config struct {
	Condition Condition `toml:"condition"`
	Cluster   Cluster   `toml:"cluster"`
	Archive   Archive   `toml:"archive"`
	Logging   Logging   `toml:"logging"`
}

// Default returns the configuration matching the library defaults.
func Default() Config {
	cc := condition.DefaultConfig()
	pc := pipeline.DefaultConfig()

	return Config{
		Condition: Condition{
			SmoothingWindow: cc.SmoothingWindow,
			PolyOrder:       cc.PolyOrder,
			Smooth:          !cc.SkipSmoothing,
			TrimLeading:     cc.TrimLeading,
			TrimTrailing:    cc.TrimTrailing,
			Order:           cc.Order.String(),
			ResampleFactor:  cc.ResampleFactor,
			Resampler:       cc.Resampler.Name(),
		},
		Cluster: Cluster{
			Metric:      pc.Metric,
			Method:      pc.Method,
			K:           pc.K,
			MaxChannels: pc.MaxChannels,
		},
		Archive: Archive{Dir: "~/.local/share/cellcluster/runs"},
		Logging: Logging{Level: "info", Format: "text"},
	}
}

// DefaultConfigPath returns the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/cellcluster/config.toml")
}

// Load parses and validates the file at path on top of Default. An empty
// path tries DefaultConfigPath; a missing file yields the defaults. The
// returned bool reports whether a file was read.
func Load(path string) (*Config, bool, error) {
	cfg := Default()
	if path == "" {
		var err error
		if path, err = DefaultConfigPath(); err != nil {
			return nil, false, err
		}
	}
	resolved, err := expandPath(path)
	if err != nil {
		return nil, false, err
	}

	file, err := os.Open(resolved)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return finish(&cfg, false)
	case err != nil:
		return nil, false, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, false, fmt.Errorf("parse config %s: %w", resolved, err)
	}

	return finish(&cfg, true)
}

// Parse decodes TOML text on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	c, _, err := finish(&cfg, true)

	return c, err
}

func finish(cfg *Config, exists bool) (*Config, bool, error) {
	dir, err := expandPath(cfg.Archive.Dir)
	if err != nil {
		return nil, false, err
	}
	cfg.Archive.Dir = dir
	if err := cfg.Validate(); err != nil {
		return nil, false, err
	}

	return cfg, exists, nil
}

// Sample returns the annotated sample configuration.
func Sample() string { return sampleConfig }

// CreateSample writes the sample configuration file to path.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// ConditionConfig converts the [condition] section.
func (c *Config) ConditionConfig() (condition.Config, error) {
	order, err := condition.ParseOrder(c.Condition.Order)
	if err != nil {
		return condition.Config{}, err
	}
	r, err := condition.ParseResampler(c.Condition.Resampler)
	if err != nil {
		return condition.Config{}, err
	}

	return condition.Config{
		SmoothingWindow: c.Condition.SmoothingWindow,
		PolyOrder:       c.Condition.PolyOrder,
		SkipSmoothing:   !c.Condition.Smooth,
		TrimLeading:     c.Condition.TrimLeading,
		TrimTrailing:    c.Condition.TrimTrailing,
		Order:           order,
		ResampleFactor:  c.Condition.ResampleFactor,
		Resampler:       r,
	}, nil
}

// PipelineConfig converts the file into a pipeline configuration.
func (c *Config) PipelineConfig() (pipeline.Config, error) {
	cc, err := c.ConditionConfig()
	if err != nil {
		return pipeline.Config{}, err
	}
	var hl []series.Channel
	for _, h := range c.Cluster.Highlight {
		if h = strings.TrimSpace(h); h != "" {
			hl = append(hl, series.Channel(h))
		}
	}

	return pipeline.Config{
		Condition:   cc,
		Metric:      c.Cluster.Metric,
		Method:      c.Cluster.Method,
		K:           c.Cluster.K,
		Highlight:   hl,
		MaxChannels: c.Cluster.MaxChannels,
	}, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}
