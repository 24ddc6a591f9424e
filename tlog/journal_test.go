package tlog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalRecordAndReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	j, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, j.Record("0x1"))
	require.NoError(t, j.Record("0x2"))
	require.NoError(t, j.Record("0x3"))

	entries, err := j.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "0x3", entries[0].Hash, "newest first")
	assert.Equal(t, "0x1", entries[2].Hash)
	require.NoError(t, j.Close())

	// Entries survive a reopen; the journal is the audit trail across runs.
	j, err = Open(path)
	require.NoError(t, err)
	defer j.Close()

	entries, err = j.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "0x3", entries[0].Hash)
}

func TestJournalEmpty(t *testing.T) {
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	defer j.Close()

	entries, err := j.Entries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}
