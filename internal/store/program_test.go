package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamberry/jamberry/internal/crypto"
	"github.com/jamberry/jamberry/pkg/db/pebble"
)

func newTestStore(t *testing.T) *Programs {
	t.Helper()
	kv, err := pebble.NewKVStore()
	require.NoError(t, err)
	store := NewPrograms(kv)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPutGetProgram(t *testing.T) {
	store := newTestStore(t)
	blob := []byte{0x01, 0x02, 0x03, 0x04}

	hash, err := store.PutProgram(blob)
	require.NoError(t, err)
	assert.Equal(t, crypto.HashData(blob), hash)

	got, err := store.GetProgram(hash)
	require.NoError(t, err)
	assert.Equal(t, blob, got)

	ok, err := store.HasProgram(hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.HasProgram(crypto.Hash{0xff})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetProgramNotFound(t *testing.T) {
	store := newTestStore(t)
	_, err := store.GetProgram(crypto.Hash{0x01})
	assert.ErrorIs(t, err, ErrProgramNotFound)
}

func TestPutProgramIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	blob := []byte("same blob")

	first, err := store.PutProgram(blob)
	require.NoError(t, err)
	second, err := store.PutProgram(blob)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	hashes, err := store.ListProgramHashes()
	require.NoError(t, err)
	assert.Len(t, hashes, 1)
}

func TestRunRecords(t *testing.T) {
	store := newTestStore(t)
	hash, err := store.PutProgram([]byte("program"))
	require.NoError(t, err)

	record := RunRecord{
		Status:    "halt",
		GasUsed:   42,
		Registers: []uint64{1, 2, 3},
		Output:    []byte{0xca, 0xfe},
	}
	require.NoError(t, store.PutRunRecord(hash, record))

	got, err := store.GetRunRecord(hash)
	require.NoError(t, err)
	assert.Equal(t, record, got)

	// a second run replaces the record
	record.Status = "out-of-gas"
	record.Output = nil
	require.NoError(t, store.PutRunRecord(hash, record))
	got, err = store.GetRunRecord(hash)
	require.NoError(t, err)
	assert.Equal(t, "out-of-gas", got.Status)
}

func TestRunRecordRequiresProgram(t *testing.T) {
	store := newTestStore(t)
	err := store.PutRunRecord(crypto.Hash{0x01}, RunRecord{Status: "halt"})
	assert.ErrorIs(t, err, ErrProgramNotFound)

	_, err = store.GetRunRecord(crypto.Hash{0x01})
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestListProgramHashes(t *testing.T) {
	store := newTestStore(t)
	first, err := store.PutProgram([]byte("one"))
	require.NoError(t, err)
	second, err := store.PutProgram([]byte("two"))
	require.NoError(t, err)

	hashes, err := store.ListProgramHashes()
	require.NoError(t, err)
	assert.ElementsMatch(t, []crypto.Hash{first, second}, hashes)
}

func TestDeleteProgram(t *testing.T) {
	store := newTestStore(t)
	hash, err := store.PutProgram([]byte("to delete"))
	require.NoError(t, err)
	require.NoError(t, store.PutRunRecord(hash, RunRecord{Status: "halt"}))

	require.NoError(t, store.DeleteProgram(hash))

	_, err = store.GetProgram(hash)
	assert.ErrorIs(t, err, ErrProgramNotFound)
	_, err = store.GetRunRecord(hash)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestStoreClosed(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Close())

	_, err := store.PutProgram([]byte("blob"))
	assert.ErrorIs(t, err, ErrStoreClosed)
	_, err = store.GetProgram(crypto.Hash{})
	assert.ErrorIs(t, err, ErrStoreClosed)

	// double close does not error
	assert.NoError(t, store.Close())
}
