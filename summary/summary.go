// SPDX-License-Identifier: MIT

package summary

import (
	"encoding/json"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/cellcluster/linkage"
	"github.com/katalvlaran/cellcluster/series"
)

// Record is one cluster of a Summary.
//
// Rank is the 1-based presentation number; ClusterID is the id the
// assignment gave the cluster. Highlight lists the members present in the
// caller's highlight set, in member order.
type Record struct {
	Rank      int              `json:"rank"`
	ClusterID int              `json:"cluster_id"`
	Members   []series.Channel `json:"members"`
	Size      int              `json:"size"`
	Highlight []series.Channel `json:"highlight,omitempty"`
}

// Summary is an immutable ranked list of cluster records.
type Summary struct {
	records []Record
}

// Summarize groups the channels of a by cluster id and ranks the clusters
// by size descending, ties by ascending cluster id. A nil assignment yields
// an empty summary.
//
// Complexity: O(N + K log K).
func Summarize(a *linkage.Assignment, opts ...Option) *Summary {
	if a == nil {
		return &Summary{}
	}
	cfg := newConfig(opts...)

	channels, labels := a.Channels(), a.Labels()
	byID := make([]Record, a.K())
	for i := range byID {
		byID[i].ClusterID = i + 1
	}
	for i, ch := range channels {
		r := &byID[labels[i]-1]
		r.Members = append(r.Members, ch)
		r.Size++
		if cfg.highlight[ch] {
			r.Highlight = append(r.Highlight, ch)
		}
	}
	sort.SliceStable(byID, func(i, j int) bool {
		if byID[i].Size != byID[j].Size {
			return byID[i].Size > byID[j].Size
		}
		return byID[i].ClusterID < byID[j].ClusterID
	})
	for i := range byID {
		byID[i].Rank = i + 1
	}

	return &Summary{records: byID}
}

// FromRecords rebuilds a Summary from stored records, checking that ranks
// run 1..len and sizes match member counts.
func FromRecords(records []Record) (*Summary, error) {
	out := make([]Record, len(records))
	for i, r := range records {
		if r.Rank != i+1 || r.Size != len(r.Members) || r.Size == 0 {
			return nil, fmt.Errorf("FromRecords: record %d: %w", i, ErrUnknownRank)
		}
		out[i] = cloneRecord(r)
	}

	return &Summary{records: out}, nil
}

// Len returns the number of clusters.
func (s *Summary) Len() int { return len(s.records) }

// Records returns a deep copy of the ranked records.
func (s *Summary) Records() []Record {
	out := make([]Record, len(s.records))
	for i, r := range s.records {
		out[i] = cloneRecord(r)
	}

	return out
}

// Record returns the record at the given 1-based rank.
func (s *Summary) Record(rank int) (Record, error) {
	if rank < 1 || rank > len(s.records) {
		return Record{}, fmt.Errorf("Record: rank %d of %d: %w", rank, len(s.records), ErrUnknownRank)
	}

	return cloneRecord(s.records[rank-1]), nil
}

// Members returns the member channels of the cluster at rank.
func (s *Summary) Members(rank int) ([]series.Channel, error) {
	r, err := s.Record(rank)
	if err != nil {
		return nil, err
	}

	return r.Members, nil
}

// Sizes returns cluster sizes in rank order.
func (s *Summary) Sizes() []float64 {
	out := make([]float64, len(s.records))
	for i, r := range s.records {
		out[i] = float64(r.Size)
	}

	return out
}

// SizeStdDev returns the sample standard deviation of cluster sizes, a
// quick measure of how evenly a configuration splits the channels. It is
// NaN for fewer than two clusters.
func (s *Summary) SizeStdDev() float64 {
	return stat.StdDev(s.Sizes(), nil)
}

// MarshalJSON encodes the summary as its record list.
func (s *Summary) MarshalJSON() ([]byte, error) { return json.Marshal(s.records) }

// UnmarshalJSON decodes a record list and validates it like FromRecords.
func (s *Summary) UnmarshalJSON(b []byte) error {
	var recs []Record
	if err := json.Unmarshal(b, &recs); err != nil {
		return err
	}
	got, err := FromRecords(recs)
	if err != nil {
		return err
	}
	s.records = got.records

	return nil
}

func cloneRecord(r Record) Record {
	r.Members = append([]series.Channel(nil), r.Members...)
	if r.Highlight != nil {
		r.Highlight = append([]series.Channel(nil), r.Highlight...)
	}

	return r
}
