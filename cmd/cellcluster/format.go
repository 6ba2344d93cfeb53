package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/cellcluster/series"
	"github.com/katalvlaran/cellcluster/summary"
)

func joinChannels(chs []series.Channel) string {
	parts := make([]string, len(chs))
	for i, ch := range chs {
		parts[i] = string(ch)
	}
	return strings.Join(parts, ", ")
}

func splitChannels(values []string) []series.Channel {
	var out []series.Channel
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, series.Channel(part))
			}
		}
	}
	return out
}

func summaryTable(s *summary.Summary, colorize bool) string {
	records := s.Records()
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Rank),
			strconv.Itoa(r.ClusterID),
			strconv.Itoa(r.Size),
			joinChannels(r.Members),
			joinChannels(r.Highlight),
		})
	}
	return renderTable(
		[]string{"Rank", "Cluster", "Size", "Members", "Highlight"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignRight, alignLeft, alignLeft},
		colorize,
	)
}

func formatScore(v float64) string {
	return fmt.Sprintf("%.3f", v)
}
