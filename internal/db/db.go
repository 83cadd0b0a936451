// Package db stores a history of rotation checks in a BoltDB file.
//
// A Store is safe for concurrent use between Open and Close: bbolt
// serializes writers and lets readers run alongside them.
package db

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"rotcheck/internal/rec"
	"rotcheck/internal/rotation"
	"time"

	"go.etcd.io/bbolt"
)

var (
	bucketChecks = []byte("checks")
)

const defaultTimeout = 30 * time.Second

type Config struct {
	// File is the bbolt file. Empty disables the history.
	File    string        `yaml:"file"`
	Timeout time.Duration `yaml:"timeout"`
}

func (c Config) Enabled() bool {
	return c.File != ""
}

// Check is one recorded rotation check.
type Check struct {
	A        string        `json:"a"`
	B        string        `json:"b"`
	Mode     rotation.Mode `json:"mode"`
	Rotation bool          `json:"rotation"`
	Offset   int           `json:"offset"`
	Time     time.Time     `json:"time"`
}

type Stats struct {
	Total        int `json:"total"`
	Rotations    int `json:"rotations"`
	NonRotations int `json:"non_rotations"`
}

type Store struct {
	db *bbolt.DB
}

func Open(config Config) (*Store, error) {
	if config.File == "" {
		return nil, errors.New("db: file is required")
	}
	if config.Timeout == 0 {
		config.Timeout = defaultTimeout
	}

	err := os.MkdirAll(filepath.Dir(config.File), 0755)
	if err != nil {
		return nil, fmt.Errorf("db: create db dir: %w", err)
	}

	db, err := bbolt.Open(config.File, 0600, &bbolt.Options{
		Timeout: config.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("db: open bbolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range [][]byte{
			bucketChecks,
		} {
			_, err := tx.CreateBucketIfNotExists(bucket)
			if err != nil {
				return fmt.Errorf("create bucket %q: %w", bucket, err)
			}
		}

		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("db: initialize buckets: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	err := s.db.Close()
	if err != nil {
		return fmt.Errorf("db: close bbolt db: %w", err)
	}
	return nil
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Errorf("db: must: %w", err))
	}
	return v
}

func key(id uint64) []byte {
	return binary.BigEndian.AppendUint64(nil, id)
}

// Record appends check to the history and returns its id.
// A zero Time is replaced with the current time.
func (s *Store) Record(check Check) (id uint64, err error) {
	defer rec.Wrap(&err, "db: record check: %w")

	if check.Time.IsZero() {
		check.Time = time.Now()
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketChecks)
		if b == nil {
			return fmt.Errorf("checks bucket not found")
		}

		id, err = b.NextSequence()
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}

		return b.Put(key(id), must(json.Marshal(check)))
	})
	return id, err
}

var errStop = fmt.Errorf("stop iteration")

// All iterates the history in recording order.
// It panics if the store cannot be read.
func (s *Store) All() iter.Seq2[uint64, Check] {
	return func(yield func(uint64, Check) bool) {
		err := s.db.View(func(tx *bbolt.Tx) error {
			b := tx.Bucket(bucketChecks)
			if b == nil {
				return fmt.Errorf("db: checks bucket not found")
			}

			return b.ForEach(func(k, v []byte) error {
				var check Check
				err := json.Unmarshal(v, &check)
				if err != nil {
					return fmt.Errorf("db: unmarshal check %x: %w", k, err)
				}

				if !yield(binary.BigEndian.Uint64(k), check) {
					return errStop
				}
				return nil
			})
		})

		if err != nil {
			if errors.Is(err, errStop) {
				return
			}
			panic(fmt.Errorf("db: get all checks: %w", err))
		}
	}
}

func (s *Store) Stats() (stats Stats, err error) {
	defer rec.Wrap(&err, "db: stats: %w")

	for _, check := range s.All() {
		stats.Total++
		if check.Rotation {
			stats.Rotations++
		} else {
			stats.NonRotations++
		}
	}
	return stats, nil
}
