// SPDX-License-Identifier: MIT

// Package pipeline chains the clustering stages for one event:
//
//	series → condition → dissim → linkage (build, cut) → summary
//
// Run executes one configuration and returns every intermediate value so
// callers can inspect or archive them. RunBatch runs independent jobs (for
// example the same event under several smoothing windows or methods) on a
// bounded worker pool and returns results in job order.
//
// Stages are pure; the only side effect is optional debug logging through
// the supplied *slog.Logger.
package pipeline
