package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/jamberry/jamberry/internal/crypto"
	"github.com/jamberry/jamberry/pkg/db"
	"github.com/jamberry/jamberry/pkg/db/pebble"
)

var (
	ErrProgramNotFound = errors.New("program not found")
	ErrRecordNotFound  = errors.New("run record not found")
	ErrStoreClosed     = errors.New("program store is closed")
)

const (
	prefixProgram byte = iota + 1
	prefixRunRecord
)

// Programs manages program container blobs and their last-run records using
// a key-value store. Blobs are content addressed by their blake2b hash, so a
// blob is written at most once and retrieval is tamper evident.
type Programs struct {
	db     db.KVStore
	closed atomic.Bool
}

// RunRecord the stored outcome of the most recent invocation of a program
type RunRecord struct {
	Status    string   `json:"status"`
	Reason    string   `json:"reason,omitempty"`
	GasUsed   uint64   `json:"gas_used"`
	Registers []uint64 `json:"registers"`
	Output    []byte   `json:"output,omitempty"`
}

// NewPrograms creates a new program store using KVStore
func NewPrograms(db db.KVStore) *Programs {
	return &Programs{db: db}
}

// PutProgram stores a container blob under its blake2b hash and returns the
// hash. Storing the same blob twice is a no-op.
func (s *Programs) PutProgram(blob []byte) (crypto.Hash, error) {
	if s.closed.Load() {
		return crypto.Hash{}, ErrStoreClosed
	}

	hash := crypto.HashData(blob)
	if err := s.db.Put(makeKey(prefixProgram, hash[:]), blob); err != nil {
		return crypto.Hash{}, fmt.Errorf("store program: %w", err)
	}
	return hash, nil
}

// GetProgram retrieves a container blob by its code hash
func (s *Programs) GetProgram(hash crypto.Hash) ([]byte, error) {
	if s.closed.Load() {
		return nil, ErrStoreClosed
	}

	blob, err := s.db.Get(makeKey(prefixProgram, hash[:]))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, fmt.Errorf("get program: %w", err)
	}
	return blob, nil
}

// HasProgram reports whether a blob with the given code hash is stored
func (s *Programs) HasProgram(hash crypto.Hash) (bool, error) {
	_, err := s.GetProgram(hash)
	if errors.Is(err, ErrProgramNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// PutRunRecord stores the outcome of an invocation next to the program,
// replacing any earlier record, atomically with a guard that the program
// itself is present.
func (s *Programs) PutRunRecord(hash crypto.Hash, record RunRecord) error {
	if s.closed.Load() {
		return ErrStoreClosed
	}

	ok, err := s.HasProgram(hash)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProgramNotFound
	}

	recordBytes, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal run record: %w", err)
	}

	batch := s.db.NewBatch()
	defer batch.Close()
	if err := batch.Put(makeKey(prefixRunRecord, hash[:]), recordBytes); err != nil {
		return fmt.Errorf("store run record: %w", err)
	}
	if err := batch.Commit(); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	return nil
}

// GetRunRecord retrieves the last stored run record for a program
func (s *Programs) GetRunRecord(hash crypto.Hash) (RunRecord, error) {
	if s.closed.Load() {
		return RunRecord{}, ErrStoreClosed
	}

	recordBytes, err := s.db.Get(makeKey(prefixRunRecord, hash[:]))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return RunRecord{}, ErrRecordNotFound
		}
		return RunRecord{}, fmt.Errorf("get run record: %w", err)
	}

	var record RunRecord
	if err := json.Unmarshal(recordBytes, &record); err != nil {
		return RunRecord{}, fmt.Errorf("unmarshal run record: %w", err)
	}
	return record, nil
}

// ListProgramHashes returns the code hashes of all stored blobs
func (s *Programs) ListProgramHashes() ([]crypto.Hash, error) {
	if s.closed.Load() {
		return nil, ErrStoreClosed
	}

	iter, err := s.db.NewIterator([]byte{prefixProgram}, []byte{prefixProgram + 1})
	if err != nil {
		return nil, fmt.Errorf("create iterator: %w", err)
	}
	defer iter.Close()

	var hashes []crypto.Hash
	for iter.Next() {
		key := iter.Key()
		if len(key) != 1+crypto.HashSize {
			continue
		}
		var hash crypto.Hash
		copy(hash[:], key[1:])
		hashes = append(hashes, hash)
	}
	return hashes, nil
}

// DeleteProgram removes a blob and its run record
func (s *Programs) DeleteProgram(hash crypto.Hash) error {
	if s.closed.Load() {
		return ErrStoreClosed
	}

	batch := s.db.NewBatch()
	defer batch.Close()
	if err := batch.Delete(makeKey(prefixProgram, hash[:])); err != nil {
		return fmt.Errorf("delete program: %w", err)
	}
	if err := batch.Delete(makeKey(prefixRunRecord, hash[:])); err != nil {
		return fmt.Errorf("delete run record: %w", err)
	}
	if err := batch.Commit(); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	return nil
}

// Close closes the program store
func (s *Programs) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	return s.db.Close()
}

// PrefixToString converts a prefix byte to a string
func PrefixToString(p byte) string {
	switch p {
	case prefixProgram:
		return "program"
	case prefixRunRecord:
		return "runRecord"
	default:
		return "unknown"
	}
}

// makeKey creates a key from a prefix and hash
func makeKey(prefix byte, hash []byte) []byte {
	key := make([]byte, 1+len(hash))
	key[0] = prefix
	copy(key[1:], hash)
	return key
}
