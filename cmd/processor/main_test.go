package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectRecordingsSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "recording.txt")
	require.NoError(t, os.WriteFile(path, []byte("Date\tTime\n"), 0644))

	got, err := collectRecordings(path)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, got)
}

func TestCollectRecordingsDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "b.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignore.csv"), []byte("x"), 0644))

	got, err := collectRecordings(dir)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCollectRecordingsMissingInput(t *testing.T) {
	_, err := collectRecordings(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
