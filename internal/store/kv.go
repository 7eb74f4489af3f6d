// Package store persists app state slices as independently keyed JSON
// values in a BoltDB file. The adapter is deliberately forgiving: a
// failed write is a silent no-op and a failed read leaves the caller's
// fallback in place. Bytes written are assumed durable once Put returns.
package store

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketState = []byte("state")

// KVStore implements domain.KeyValue using BoltDB. When the database
// cannot be opened it falls back to memory-only mode, so the app keeps
// working without persistence.
type KVStore struct {
	db     *bolt.DB
	logger *slog.Logger

	mu    sync.RWMutex
	cache map[string][]byte // write-through copy of stored values
}

// Open creates or opens the state database under dir. An empty dir
// selects memory-only mode.
func Open(dir string, logger *slog.Logger) *KVStore {
	if logger == nil {
		logger = slog.Default()
	}
	s := &KVStore{logger: logger, cache: make(map[string][]byte)}
	if dir == "" {
		return s
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Warn("failed to create state directory, persistence disabled", "dir", dir, "error", err)
		return s
	}

	dbPath := filepath.Join(dir, "mania.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		logger.Warn("failed to open state database, persistence disabled", "path", dbPath, "error", err)
		return s
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketState)
		return err
	})
	if err != nil {
		logger.Warn("failed to create state bucket, persistence disabled", "error", err)
		db.Close()
		return s
	}

	s.db = db
	return s
}

// Close releases the underlying database.
func (s *KVStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save serializes value under key. Failures are logged and swallowed;
// in-memory state is always the source of truth for the session.
func (s *KVStore) Save(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("failed to encode state slice", "key", key, "error", err)
		return
	}

	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketState).Put([]byte(key), data)
	})
	if err != nil {
		s.logger.Warn("failed to persist state slice", "key", key, "error", err)
	}
}

// Load decodes the value stored under key into dest. It reports false
// when the key is absent or the stored bytes fail to decode, leaving
// dest untouched so the caller keeps its fallback.
func (s *KVStore) Load(key string, dest any) bool {
	s.mu.RLock()
	data, ok := s.cache[key]
	s.mu.RUnlock()

	if !ok {
		if s.db == nil {
			return false
		}
		s.db.View(func(tx *bolt.Tx) error {
			if v := tx.Bucket(bucketState).Get([]byte(key)); v != nil {
				data = make([]byte, len(v))
				copy(data, v)
			}
			return nil
		})
		if data == nil {
			return false
		}
		s.mu.Lock()
		s.cache[key] = data
		s.mu.Unlock()
	}

	// Decode into a scratch value first. Unmarshal fills its target
	// element by element before reporting a type error, so decoding
	// straight into dest would leak half of a corrupt value into the
	// caller's fallback.
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		s.logger.Warn("load target is not a pointer", "key", key)
		return false
	}
	scratch := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal(data, scratch.Interface()); err != nil {
		s.logger.Warn("failed to decode state slice", "key", key, "error", err)
		return false
	}
	rv.Elem().Set(scratch.Elem())
	return true
}
