// Package kv provides the single-file key-value persistence layer. All
// application state lives in named slots inside one bbolt bucket; every
// mutation is a full read-modify-write of a slot inside a single write
// transaction.
package kv

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketName = []byte("simgaji")

// StorageError wraps a failed read or write of the underlying data file.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

type Store struct {
	db *bolt.DB
}

func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, &StorageError{Op: "open", Err: err}
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, &StorageError{Op: "open", Err: err}
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Path() string {
	return s.db.Path()
}

// Get returns the contents of a slot, or nil if the slot has never been
// written.
func (s *Store) Get(slot string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		value := tx.Bucket(bucketName).Get([]byte(slot))
		if value != nil {
			out = make([]byte, len(value))
			copy(out, value)
		}
		return nil
	})
	if err != nil {
		return nil, &StorageError{Op: "read " + slot, Err: err}
	}
	return out, nil
}

func (s *Store) Put(slot string, value []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(slot), value)
	})
	if err != nil {
		return &StorageError{Op: "write " + slot, Err: err}
	}
	return nil
}

func (s *Store) Delete(slot string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(slot))
	})
	if err != nil {
		return &StorageError{Op: "delete " + slot, Err: err}
	}
	return nil
}

// Update applies fn to the current contents of a slot and writes the result
// back in the same transaction. fn receives nil when the slot is empty.
func (s *Store) Update(slot string, fn func(old []byte) ([]byte, error)) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		next, err := fn(bucket.Get([]byte(slot)))
		if err != nil {
			return err
		}
		return bucket.Put([]byte(slot), next)
	})
	if err != nil {
		return &StorageError{Op: "update " + slot, Err: err}
	}
	return nil
}

// Ping verifies the data file is still readable.
func (s *Store) Ping() error {
	err := s.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketName) == nil {
			return fmt.Errorf("bucket missing")
		}
		return nil
	})
	if err != nil {
		return &StorageError{Op: "ping", Err: err}
	}
	return nil
}
