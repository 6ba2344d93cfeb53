// Package series defines the strongly-typed multi-channel time series that
// flows through the cellcluster pipeline.
//
// A Matrix is an ordered, strictly increasing timestamp axis shared by a set
// of uniquely labelled Channels (one per monitored cell position). Values are
// float64 voltages; math.NaN() is the explicit missing-value marker that the
// ingestion layer must drop or impute before conditioning.
//
// Matrices are immutable value objects: constructors copy their inputs and
// every accessor returns a copy, so a Matrix can be shared freely between
// concurrent pipeline runs without locking.
//
//	ts, err := series.New(times, []series.Channel{"1", "2"}, [][]float64{v1, v2})
//	event, err := ts.Slice(start, stop)   // refresh window
//	clean := event.DropMissing()          // ingestion helper
package series
