package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	report := filepath.Join(dir, "report.txt")

	require.NoError(t, WriteFileAtomic(report, []byte("rounds 10"), 0o644))

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Equal(t, "rounds 10", string(data))

	info, err := os.Stat(report)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file should not remain")
}

func TestWriteFileAtomicReplaces(t *testing.T) {
	t.Parallel()

	report := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, WriteFileAtomic(report, []byte("first run"), 0o644))
	require.NoError(t, WriteFileAtomic(report, []byte("second"), 0o600))

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	t.Parallel()

	err := WriteFileAtomic(filepath.Join(t.TempDir(), "missing", "report.txt"), []byte("x"), 0o644)
	assert.ErrorContains(t, err, "failed to create temp file")
}
