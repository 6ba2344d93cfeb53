// Package logging builds the slog loggers used by the cellcluster CLI and
// pipeline: a text or JSON handler with normalized keys, a no-op logger for
// library callers that pass nil, and the standard field names shared by
// every log line.
package logging
