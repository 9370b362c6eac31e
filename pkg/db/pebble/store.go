package pebble

import (
	"errors"
	"sync"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
)

// KVStore is a pebble backed implementation of db.KVStore. Safe for
// concurrent use.
type KVStore struct {
	db     *pebble.DB
	closed bool
	mu     sync.RWMutex
}

// NewKVStore opens a fresh in-memory store. Used by tests and by runs that
// do not need persistence.
func NewKVStore() (*KVStore, error) {
	return open("", &pebble.Options{FS: vfs.NewMem()})
}

// NewPersistentKVStore opens or creates an on-disk store at path.
func NewPersistentKVStore(path string) (*KVStore, error) {
	opts := &pebble.Options{
		Cache:        pebble.NewCache(64 * 1024 * 1024), // 64MB
		MemTableSize: 32 * 1024 * 1024,                  // 32MB
	}
	return open(path, opts)
}

func open(path string, opts *pebble.Options) (*KVStore, error) {
	db, err := pebble.Open(path, opts)
	if err != nil {
		return nil, err
	}
	return &KVStore{db: db}, nil
}

func (p *KVStore) Get(key []byte) ([]byte, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return nil, ErrClosed
	}

	value, closer, err := p.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	result := make([]byte, len(value))
	copy(result, value)
	return result, nil
}

func (p *KVStore) Put(key, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	return p.db.Set(key, value, pebble.Sync)
}

func (p *KVStore) Delete(key []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	return p.db.Delete(key, pebble.Sync)
}

func (p *KVStore) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	return p.db.Close()
}
