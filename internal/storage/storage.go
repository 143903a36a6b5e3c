package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/hailam/bbgen/internal/board"
	"github.com/hailam/bbgen/internal/emit"
)

// Storage keys
const (
	snapshotPrefix = "snapshot/"
	keySchema      = "schema"
)

// schemaVersion changes whenever the snapshot value layout changes.
const schemaVersion = "1"

var (
	ErrNotFound       = errors.New("snapshot not found")
	ErrSchemaMismatch = errors.New("snapshot schema mismatch")
	ErrLengthMismatch = errors.New("snapshot length mismatch")
)

// Snapshot is a stored copy of one table's entries.
type Snapshot struct {
	Label   string    `json:"label"`
	Entries []string  `json:"entries"` // emit.Literal of each entry
	SavedAt time.Time `json:"saved_at"`
}

// Bitboards decodes the snapshot's entries.
func (s *Snapshot) Bitboards() ([]board.Bitboard, error) {
	out := make([]board.Bitboard, len(s.Entries))
	for i, lit := range s.Entries {
		b, err := emit.ParseLiteral(lit)
		if err != nil {
			return nil, fmt.Errorf("snapshot %s entry %d: %w", s.Label, i, err)
		}
		out[i] = b
	}
	return out, nil
}

// Storage wraps BadgerDB for table snapshots.
type Storage struct {
	db *badger.DB
}

// Open opens (creating if needed) the snapshot database in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	s := &Storage{db: db}
	if err := s.checkSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// OpenDefault opens the database under the platform data directory.
func OpenDefault() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Storage) checkSchema() error {
	return s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keySchema))
		if err == badger.ErrKeyNotFound {
			return txn.Set([]byte(keySchema), []byte(schemaVersion))
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if string(val) != schemaVersion {
				return fmt.Errorf("%w: have %s, want %s", ErrSchemaMismatch, val, schemaVersion)
			}
			return nil
		})
	})
}

// SaveSnapshot stores entries under label, replacing any previous snapshot.
func (s *Storage) SaveSnapshot(label string, entries []board.Bitboard) error {
	snap := Snapshot{
		Label:   label,
		Entries: make([]string, len(entries)),
		SavedAt: time.Now(),
	}
	for i, b := range entries {
		snap.Entries[i] = emit.Literal(b)
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(snapshotPrefix+label), data)
	})
}

// LoadSnapshot loads the snapshot stored under label.
func (s *Storage) LoadSnapshot(label string) (*Snapshot, error) {
	snap := &Snapshot{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(snapshotPrefix + label))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%s: %w", label, ErrNotFound)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, snap)
		})
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// Labels returns the labels of every stored snapshot, in key order.
func (s *Storage) Labels() ([]string, error) {
	var labels []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(snapshotPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			key := string(it.Item().Key())
			labels = append(labels, strings.TrimPrefix(key, snapshotPrefix))
		}
		return nil
	})

	return labels, err
}

// DeleteSnapshot removes the snapshot stored under label, if any.
func (s *Storage) DeleteSnapshot(label string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(snapshotPrefix + label))
	})
}

// Diff compares current against the snapshot stored under label and returns
// the indices whose entries differ.
func (s *Storage) Diff(label string, current []board.Bitboard) ([]int, error) {
	snap, err := s.LoadSnapshot(label)
	if err != nil {
		return nil, err
	}
	stored, err := snap.Bitboards()
	if err != nil {
		return nil, err
	}
	if len(stored) != len(current) {
		return nil, fmt.Errorf("%s: %w: stored %d, current %d", label, ErrLengthMismatch, len(stored), len(current))
	}

	var diff []int
	for i := range stored {
		if stored[i] != current[i] {
			diff = append(diff, i)
		}
	}
	return diff, nil
}
