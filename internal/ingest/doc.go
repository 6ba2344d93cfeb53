// Package ingest reads and writes voltage exports as CSV: one timestamp
// column followed by one column per channel. Blank or "NaN" cells become
// missing values; columns that are entirely missing are dropped.
package ingest
