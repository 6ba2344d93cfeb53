package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cellcluster/internal/ingest"
	"github.com/katalvlaran/cellcluster/synth"
)

func newSynthCommand() *cobra.Command {
	var (
		samples int
		groups  []string
		seed    int64
		noise   float64
		ripple  float64
		outPath string
	)

	cmd := &cobra.Command{
		Use:         "synth",
		Short:       "Generate a synthetic refresh event as CSV",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseGroups(groups)
			if err != nil {
				return err
			}
			ts, _, err := synth.Refresh(samples, parsed,
				synth.WithSeed(seed), synth.WithNoise(noise), synth.WithRipple(ripple))
			if err != nil {
				return err
			}

			target := strings.TrimSpace(outPath)
			if target == "" || target == "-" {
				return ingest.Write(cmd.OutOrStdout(), ts)
			}
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
			f, err := os.Create(target)
			if err != nil {
				return fmt.Errorf("create %s: %w", target, err)
			}
			if err := ingest.Write(f, ts); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", target, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d channels x %d samples to %s\n", ts.Width(), ts.Len(), target)
			return nil
		},
	}

	cmd.Flags().IntVarP(&samples, "samples", "n", 1000, "Samples per channel")
	cmd.Flags().StringArrayVarP(&groups, "group", "g", []string{"8:0.15", "4:0.45", "2:0.30:-0.05"},
		"Channel group as size:depth[:offset[:delay]] (repeatable)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Random seed")
	cmd.Flags().Float64Var(&noise, "noise", 0.004, "Gaussian noise sigma in volts")
	cmd.Flags().Float64Var(&ripple, "ripple", 0, "Chirp ripple amplitude in volts")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output CSV path (default: stdout)")
	return cmd
}

// parseGroups reads size:depth[:offset[:delay]] group descriptors.
func parseGroups(values []string) ([]synth.Group, error) {
	out := make([]synth.Group, 0, len(values))
	for _, v := range values {
		parts := strings.Split(strings.TrimSpace(v), ":")
		if len(parts) < 2 || len(parts) > 4 {
			return nil, fmt.Errorf("group %q: want size:depth[:offset[:delay]]", v)
		}
		size, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("group %q: size: %w", v, err)
		}
		nums := make([]float64, 3)
		for i, p := range parts[1:] {
			if nums[i], err = strconv.ParseFloat(p, 64); err != nil {
				return nil, fmt.Errorf("group %q: %w", v, err)
			}
		}
		out = append(out, synth.Group{Size: size, Depth: nums[0], Offset: nums[1], Delay: nums[2]})
	}
	return out, nil
}
