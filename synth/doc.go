// SPDX-License-Identifier: MIT

// Package synth generates deterministic, refresh-event shaped battery string
// telemetry for tests, examples and demos.
//
// Every channel follows the same event envelope: flat float voltage, a
// triangular discharge dip, then recovery. Each Group sets its own dip
// depth, voltage offset and dip delay. Optional Gaussian noise, a linear trend and a
// chirp ripple make the series look like a noisy 30 s export. For a fixed
// seed and option set the output is bit-identical across runs.
//
//	ts, truth, err := synth.Refresh(1000, []synth.Group{
//		{Size: 40, Depth: 0.20},
//		{Size: 8, Depth: 0.35, Offset: -0.02},
//	}, synth.WithSeed(7), synth.WithNoise(0.002))
//
// truth maps each channel to its 1-based group, the ground truth a
// clustering run is expected to recover.
package synth
