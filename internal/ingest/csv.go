package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/cellcluster/series"
)

// ErrNoData indicates a file without a header or without data rows.
var ErrNoData = errors.New("ingest: no data")

// timeLayouts are tried in order for every timestamp cell.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// Options controls CSV parsing.
type Options struct {
	Comma       rune          // field separator (default ',')
	SkipRows    int           // lines skipped before the header
	TimeColumn  string        // timestamp header (default: first column)
	Exclude     []string      // headers to ignore besides the time column
	StripPrefix int           // runes removed from each channel header
	Offset      time.Duration // shift applied to every timestamp
	DropMissing bool          // drop rows where any channel is missing
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string, opts Options) (*series.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	ts, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ts, nil
}

// Read parses a CSV stream into a series matrix.
func Read(r io.Reader, opts Options) (*series.Matrix, error) {
	cr := csv.NewReader(r)
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := cr.Read(); err != nil {
			return nil, fmt.Errorf("skip row %d: %w", i+1, ErrNoData)
		}
	}
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("header: %w", ErrNoData)
	}

	timeIdx := 0
	if opts.TimeColumn != "" {
		timeIdx = -1
		for i, h := range header {
			if strings.TrimSpace(h) == opts.TimeColumn {
				timeIdx = i
			}
		}
		if timeIdx < 0 {
			return nil, fmt.Errorf("time column %q not found: %w", opts.TimeColumn, ErrNoData)
		}
	}
	skip := make(map[string]bool, len(opts.Exclude))
	for _, e := range opts.Exclude {
		skip[e] = true
	}
	var (
		cols     []int
		channels []series.Channel
	)
	for i, h := range header {
		h = strings.TrimSpace(h)
		if i == timeIdx || skip[h] {
			continue
		}
		if rs := []rune(h); opts.StripPrefix > 0 && len(rs) > opts.StripPrefix {
			h = string(rs[opts.StripPrefix:])
		}
		cols = append(cols, i)
		channels = append(channels, series.Channel(h))
	}

	var times []time.Time
	values := make([][]float64, len(cols))
	for line := opts.SkipRows + 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(rec) <= timeIdx || strings.TrimSpace(rec[timeIdx]) == "" {
			continue
		}
		ts, err := parseTime(rec[timeIdx])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		times = append(times, ts.Add(opts.Offset))
		for c, idx := range cols {
			v := math.NaN()
			if idx < len(rec) {
				if v, err = parseValue(rec[idx]); err != nil {
					return nil, fmt.Errorf("line %d column %q: %w", line, channels[c], err)
				}
			}
			values[c] = append(values[c], v)
		}
	}
	if len(times) == 0 {
		return nil, ErrNoData
	}

	channels, values = dropEmptyColumns(channels, values)
	if len(channels) == 0 {
		return nil, fmt.Errorf("all channels empty: %w", ErrNoData)
	}
	m, err := series.New(times, channels, values)
	if err != nil {
		return nil, err
	}
	if opts.DropMissing {
		return m.DropMissing()
	}
	return m, nil
}

// Write emits ts as CSV with an RFC 3339 "time" column.
func Write(w io.Writer, ts *series.Matrix) error {
	cw := csv.NewWriter(w)
	header := []string{"time"}
	for _, ch := range ts.Channels() {
		header = append(header, string(ch))
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	cols := ts.Columns()
	row := make([]string, len(header))
	for s, t := range ts.Times() {
		row[0] = t.UTC().Format(time.RFC3339)
		for c := range cols {
			row[c+1] = formatValue(cols[c][s])
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "nan", "null", "na":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func dropEmptyColumns(channels []series.Channel, values [][]float64) ([]series.Channel, [][]float64) {
	outCh := channels[:0:0]
	outV := values[:0:0]
	for i, col := range values {
		for _, v := range col {
			if !math.IsNaN(v) {
				outCh = append(outCh, channels[i])
				outV = append(outV, col)
				break
			}
		}
	}
	return outCh, outV
}
