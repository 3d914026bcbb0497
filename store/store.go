// SPDX-License-Identifier: MIT

// Package store keeps finished collation runs in a Badger database, one
// JSON record per run under the "run/" key prefix.
package store

import (
	"encoding/json"
	"slices"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvcollate/collation"
	"github.com/katalvlaran/lvcollate/variantgraph"
)

const keyPrefix = "run/"

var (
	// ErrNotFound indicates an unknown run ID.
	ErrNotFound = errors.New("store: run not found")

	// ErrEmptyID indicates a record without ID.
	ErrEmptyID = errors.New("store: empty run id")
)

// Record is the persisted form of a collation run.
type Record struct {
	ID        string             `json:"id"`
	CreatedAt time.Time          `json:"created_at"`
	Sigils    []string           `json:"sigils"`
	Table     variantgraph.Table `json:"table"`
	Passes    []collation.Pass   `json:"passes"`
}

// NewRecord captures res under id.
func NewRecord(id string, res *collation.Result, now time.Time) Record {
	return Record{
		ID:        id,
		CreatedAt: now.UTC(),
		Sigils:    res.Graph.Sigils(),
		Table:     res.Table,
		Passes:    slices.Clone(res.Passes),
	}
}

// Options selects the database location.
type Options struct {
	Path     string
	InMemory bool
}

// Store is a Badger-backed run store, safe for concurrent use.
type Store struct {
	db *badger.DB
}

// Open opens or creates the store.
func Open(opts Options) (*Store, error) {
	dbOpts := badger.DefaultOptions(opts.Path).WithLogger(nil)
	if opts.InMemory {
		dbOpts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}
	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrapf(err, "store: open %q", opts.Path)
	}

	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return errors.Wrap(s.db.Close(), "store: close")
}

func key(id string) []byte { return []byte(keyPrefix + id) }

// Put writes rec, replacing any record with the same ID.
func (s *Store) Put(rec Record) error {
	if rec.ID == "" {
		return ErrEmptyID
	}
	val, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrapf(err, "store: encode %q", rec.ID)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(rec.ID), val)
	})

	return errors.Wrapf(err, "store: put %q", rec.ID)
}

// Get reads one record.
func (s *Store) Get(id string) (Record, error) {
	var rec Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		} else if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return Record{}, errors.Wrapf(err, "store: get %q", id)
	}

	return rec, nil
}

// List returns every record, oldest first; ties are ordered by ID.
func (s *Store) List() ([]Record, error) {
	var recs []Record
	err := s.db.View(func(txn *badger.Txn) error {
		itOpts := badger.DefaultIteratorOptions
		itOpts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(itOpts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var rec Record
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return errors.Wrapf(err, "decode %q", it.Item().Key())
			}
			recs = append(recs, rec)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "store: list")
	}
	slices.SortStableFunc(recs, func(a, b Record) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}

		return strings.Compare(a.ID, b.ID)
	})

	return recs, nil
}

// Delete removes one record.
func (s *Store) Delete(id string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key(id)); err == badger.ErrKeyNotFound {
			return ErrNotFound
		} else if err != nil {
			return err
		}

		return txn.Delete(key(id))
	})

	return errors.Wrapf(err, "store: delete %q", id)
}
