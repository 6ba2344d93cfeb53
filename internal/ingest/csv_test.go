package ingest_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellcluster/internal/ingest"
	"github.com/katalvlaran/cellcluster/series"
	"github.com/katalvlaran/cellcluster/synth"
)

func TestRead(t *testing.T) {
	in := `time,1,2,I,3
2019-03-26T11:00:00Z,2.30,2.31,10,
2019-03-26T11:00:30Z,2.29,,11,
2019-03-26T11:01:00Z,2.28,2.27,12,
`
	ts, err := ingest.Read(strings.NewReader(in), ingest.Options{Exclude: []string{"I"}})
	require.NoError(t, err)
	assert.Equal(t, []series.Channel{"1", "2"}, ts.Channels(), "empty column 3 dropped")
	assert.Equal(t, 3, ts.Len())
	assert.True(t, ts.HasMissing())
	v, err := ts.Values("1")
	require.NoError(t, err)
	assert.Equal(t, []float64{2.30, 2.29, 2.28}, v)

	dropped, err := ingest.Read(strings.NewReader(in), ingest.Options{Exclude: []string{"I"}, DropMissing: true})
	require.NoError(t, err)
	assert.Equal(t, 2, dropped.Len())
}

func TestRead_GrafanaExport(t *testing.T) {
	in := "\"Series export\"\nTime;Battery 1;Battery 2\n2019-03-26 00:00:00;2.3;2.4\n2019-03-26 00:00:30;2.2;2.5\n"
	ts, err := ingest.Read(strings.NewReader(in), ingest.Options{
		Comma:       ';',
		SkipRows:    1,
		TimeColumn:  "Time",
		StripPrefix: len("Battery "),
		Offset:      11 * time.Hour,
	})
	require.NoError(t, err)
	assert.Equal(t, []series.Channel{"1", "2"}, ts.Channels())
	assert.Equal(t, time.Date(2019, 3, 26, 11, 0, 0, 0, time.UTC), ts.Times()[0])
}

func TestRead_Errors(t *testing.T) {
	_, err := ingest.Read(strings.NewReader(""), ingest.Options{})
	assert.ErrorIs(t, err, ingest.ErrNoData)
	_, err = ingest.Read(strings.NewReader("time,a\n"), ingest.Options{})
	assert.ErrorIs(t, err, ingest.ErrNoData)
	_, err = ingest.Read(strings.NewReader("time,a\nyesterday,1\n"), ingest.Options{})
	assert.Error(t, err)
	_, err = ingest.Read(strings.NewReader("time,a\n2019-03-26T11:00:00Z,abc\n"), ingest.Options{})
	assert.Error(t, err)
	_, err = ingest.Read(strings.NewReader("time,a\n2019-03-26T11:00:00Z,1\n"), ingest.Options{TimeColumn: "date"})
	assert.ErrorIs(t, err, ingest.ErrNoData)
	_, err = ingest.Read(strings.NewReader("time,a\n2019-03-26T11:01:00Z,1\n2019-03-26T11:00:00Z,1\n"), ingest.Options{})
	assert.ErrorIs(t, err, series.ErrUnorderedTimes)
}

func TestWriteReadRoundTrip(t *testing.T) {
	ts, _, err := synth.Refresh(50, []synth.Group{{Size: 3, Depth: 0.2}}, synth.WithSeed(4), synth.WithNoise(0.01))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ingest.Write(&buf, ts))
	path := filepath.Join(t.TempDir(), "event.csv")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	back, err := ingest.ReadFile(path, ingest.Options{})
	require.NoError(t, err)
	assert.Equal(t, ts.Channels(), back.Channels())
	assert.Equal(t, ts.Times(), back.Times())
	assert.Equal(t, ts.Columns(), back.Columns())
	assert.False(t, math.IsNaN(back.Column(0)[0]))
}
