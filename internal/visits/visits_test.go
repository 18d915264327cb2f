package visits

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInitializesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visit-count.json")
	c := NewCounter(path)

	count, err := c.Get()
	require.NoError(t, err)
	assert.Equal(t, 0, count.Count)
	assert.NotEmpty(t, count.LastUpdated)

	_, err = os.Stat(path)
	assert.NoError(t, err, "counter file should exist after first read")
}

func TestIncrementPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visit-count.json")
	c := NewCounter(path)

	first, err := c.Increment()
	require.NoError(t, err)
	assert.Equal(t, 1, first.Count)

	second, err := c.Increment()
	require.NoError(t, err)
	assert.Equal(t, 2, second.Count)

	// A fresh Counter on the same path sees the persisted value.
	count, err := NewCounter(path).Get()
	require.NoError(t, err)
	assert.Equal(t, 2, count.Count)
}

func TestCorruptFileDegradesToZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visit-count.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	count, err := NewCounter(path).Get()
	require.NoError(t, err)
	assert.Equal(t, 0, count.Count)
}
