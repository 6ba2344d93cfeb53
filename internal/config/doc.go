// Package config loads, validates, and converts the cellcluster TOML
// configuration file.
//
// The file has four sections: [condition] (smoothing, trimming and
// resampling), [cluster] (metric, method, cluster count and highlight set),
// [archive] (run store location) and [logging]. Missing keys keep the
// library defaults, so an empty file is a valid configuration. Use
// `cellcluster config init` to print an annotated sample.
package config
