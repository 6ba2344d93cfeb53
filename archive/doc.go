// SPDX-License-Identifier: MIT

// Package archive persists cluster summaries across runs so that later
// runs, on other events or other parameters, can be compared against them.
//
// Runs live in an embedded pebble key-value store under keys "run/<uuid>".
// Values are JSON documents compressed with zstd.
package archive
