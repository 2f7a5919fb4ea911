// Package boltstore keeps the board snapshot in a bbolt key-value file, one
// key per snapshot record field.
package boltstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/five82/tzboard/internal/snapshot"
)

// DefaultBucket is the bucket the record keys live in.
const DefaultBucket = "tzboard"

const openTimeout = 5 * time.Second

// Store is a snapshot.Saver and snapshot.Loader backed by bbolt.
type Store struct {
	db     *bolt.DB
	bucket []byte
	path   string
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("store path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	s := &Store{db: db, bucket: []byte(DefaultBucket), path: path}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(s.bucket)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}
	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Save writes every record key in a single transaction.
func (s *Store) Save(ctx context.Context, snap snapshot.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rec, err := snapshot.Encode(snap)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(s.bucket)
		if err != nil {
			return err
		}
		for _, key := range snapshot.Keys {
			if err := b.Put([]byte(key), []byte(rec[key])); err != nil {
				return fmt.Errorf("put %s: %w", key, err)
			}
		}
		return nil
	})
}

// Load reads the record. It reports ok=false when no timezones key was ever
// written.
func (s *Store) Load(ctx context.Context) (snapshot.Snapshot, bool, error) {
	if err := ctx.Err(); err != nil {
		return snapshot.Snapshot{}, false, err
	}

	rec := snapshot.Record{}
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b == nil {
			return nil
		}
		for _, key := range snapshot.Keys {
			if v := b.Get([]byte(key)); v != nil {
				rec[key] = string(v)
			}
		}
		return nil
	})
	if err != nil {
		return snapshot.Snapshot{}, false, fmt.Errorf("read store: %w", err)
	}
	if _, ok := rec[snapshot.KeyTimezones]; !ok {
		return snapshot.Snapshot{}, false, nil
	}

	snap, err := snapshot.Decode(rec)
	if err != nil {
		return snapshot.Snapshot{}, true, err
	}
	return snap, true, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return s.db.Close()
}
