package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	pc, err := c.PipelineConfig()
	if err != nil {
		return fmt.Errorf("condition: %w", err)
	}
	if err := pc.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Cluster.Workers < 0 {
		return errors.New("cluster.workers must be >= 0")
	}
	if strings.TrimSpace(c.Archive.Dir) == "" {
		return errors.New("archive.dir must be set")
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "text", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
