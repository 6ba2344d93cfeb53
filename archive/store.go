// SPDX-License-Identifier: MIT

package archive

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

const keyPrefix = "run/"

var (
	// ErrNotFound indicates no run with the requested id.
	ErrNotFound = errors.New("archive: run not found")

	// ErrInvalidID indicates an id that is not a UUID.
	ErrInvalidID = errors.New("archive: invalid run id")

	// ErrNoSummary indicates a run without a summary.
	ErrNoSummary = errors.New("archive: run has no summary")
)

// Store is a run archive backed by pebble. It is safe for concurrent use.
type Store struct {
	db  *pebble.DB
	enc *zstd.Encoder
	dec *zstd.Decoder
	now func() time.Time
}

// Open opens (creating if needed) the archive in dir.
func Open(dir string) (*Store, error) {
	return open(dir, &pebble.Options{})
}

// OpenInMemory opens an archive that lives only in memory.
func OpenInMemory() (*Store, error) {
	return open("runs", &pebble.Options{FS: vfs.NewMem()})
}

func open(dir string, opts *pebble.Options) (*Store, error) {
	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", dir, err)
	}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		_ = enc.Close()
		_ = db.Close()
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &Store{db: db, enc: enc, dec: dec, now: time.Now}, nil
}

// Close releases the store.
func (s *Store) Close() error {
	_ = s.enc.Close()
	s.dec.Close()
	return s.db.Close()
}

// Put stores run, assigning a UUID when ID is empty and the current time
// when CreatedAt is zero. It returns the run as stored.
func (s *Store) Put(run Run) (Run, error) {
	if run.Summary == nil {
		return Run{}, ErrNoSummary
	}
	if run.ID == "" {
		run.ID = uuid.NewString()
	} else if err := checkID(run.ID); err != nil {
		return Run{}, err
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = s.now().UTC()
	}

	raw, err := json.Marshal(run)
	if err != nil {
		return Run{}, fmt.Errorf("encode run %s: %w", run.ID, err)
	}
	if err := s.db.Set(key(run.ID), s.enc.EncodeAll(raw, nil), pebble.Sync); err != nil {
		return Run{}, fmt.Errorf("store run %s: %w", run.ID, err)
	}

	return run, nil
}

// Get loads the run with the given id.
func (s *Store) Get(id string) (Run, error) {
	if err := checkID(id); err != nil {
		return Run{}, err
	}
	val, closer, err := s.db.Get(key(id))
	if errors.Is(err, pebble.ErrNotFound) {
		return Run{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("load run %s: %w", id, err)
	}
	defer closer.Close()

	return s.decode(val)
}

// List returns every stored run, newest first (ties by id).
func (s *Store) List() ([]Run, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(keyPrefix),
		UpperBound: prefixEnd([]byte(keyPrefix)),
	})
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	var runs []Run
	for iter.First(); iter.Valid(); iter.Next() {
		r, err := s.decode(iter.Value())
		if err != nil {
			_ = iter.Close()
			return nil, fmt.Errorf("list runs: key %s: %w", iter.Key(), err)
		}
		runs = append(runs, r)
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		if !runs[i].CreatedAt.Equal(runs[j].CreatedAt) {
			return runs[i].CreatedAt.After(runs[j].CreatedAt)
		}
		return runs[i].ID < runs[j].ID
	})
	return runs, nil
}

// Delete removes the run with the given id.
func (s *Store) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.db.Delete(key(id), pebble.Sync); err != nil {
		return fmt.Errorf("delete run %s: %w", id, err)
	}
	return nil
}

func (s *Store) decode(val []byte) (Run, error) {
	raw, err := s.dec.DecodeAll(val, nil)
	if err != nil {
		return Run{}, fmt.Errorf("decompress run: %w", err)
	}
	var r Run
	if err := json.NewDecoder(bytes.NewReader(raw)).Decode(&r); err != nil {
		return Run{}, fmt.Errorf("decode run: %w", err)
	}
	return r, nil
}

func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%q: %w", id, ErrInvalidID)
	}
	return nil
}

func key(id string) []byte { return []byte(keyPrefix + id) }

// prefixEnd returns the smallest key greater than every key with prefix p.
func prefixEnd(p []byte) []byte {
	end := append([]byte(nil), p...)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}
