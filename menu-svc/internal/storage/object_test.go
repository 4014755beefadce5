package storage

import (
	"bytes"
	"encoding/gob"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-manager/menu-svc/internal/domain"
)

func TestObjectStore_RoundTrip(t *testing.T) {
	store := NewObjectStore()
	path := filepath.Join(t.TempDir(), "menu.bin")
	want := sampleSnapshot()

	require.NoError(t, store.Save(path, want))
	got, err := store.Load(path)
	require.NoError(t, err)

	assertSameSnapshot(t, want, got)
}

func writeEnvelope(t *testing.T, env objectEnvelope) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(env))
	return writeTemp(t, "menu.bin", buf.String())
}

func TestObjectStore_LoadErrors(t *testing.T) {
	textPath := filepath.Join(t.TempDir(), "menu.txt")
	require.NoError(t, NewTextStore().Save(textPath, sampleSnapshot()))

	dup := sampleSnapshot()
	dup.Items = append(dup.Items, dup.Items[0])

	tests := []struct {
		name string
		path string
	}{
		{"garbage bytes", writeTemp(t, "garbage.bin", "\x00\x01not gob at all")},
		{"text file", textPath},
		{"empty file", writeTemp(t, "empty.bin", "")},
		{"wrong magic", writeEnvelope(t, objectEnvelope{Magic: "other", Version: objectVersion})},
		{"wrong version", writeEnvelope(t, objectEnvelope{Magic: objectMagic, Version: objectVersion + 1})},
		{"invalid snapshot", writeEnvelope(t, objectEnvelope{Magic: objectMagic, Version: objectVersion, Snapshot: *dup})},
	}

	store := NewObjectStore()
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			snap, err := store.Load(testCase.path)

			assert.ErrorIs(t, err, domain.ErrFileFormat)
			assert.Nil(t, snap)
		})
	}
}

func TestObjectStore_IOErrors(t *testing.T) {
	store := NewObjectStore()
	dir := t.TempDir()

	_, err := store.Load(filepath.Join(dir, "missing.bin"))
	assert.ErrorIs(t, err, domain.ErrIO)

	err = store.Save(filepath.Join(dir, "missing", "menu.bin"), sampleSnapshot())
	assert.ErrorIs(t, err, domain.ErrIO)
	_, statErr := os.Stat(filepath.Join(dir, "missing"))
	assert.True(t, os.IsNotExist(statErr))
}
