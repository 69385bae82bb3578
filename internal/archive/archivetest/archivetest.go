// Package archivetest builds in-memory zip fixtures for tests.
package archivetest

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/require"
)

// Entry is a single named file written into a fixture archive.
type Entry struct {
	Name string
	Body []byte
}

// Zip returns a zip archive holding one empty entry per name.
func Zip(t testing.TB, names ...string) []byte {
	t.Helper()
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, Entry{Name: name})
	}
	return ZipEntries(t, entries...)
}

// ZipEntries returns a zip archive holding the given entries in order.
func ZipEntries(t testing.TB, entries ...Entry) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, e := range entries {
		fw, err := w.Create(e.Name)
		require.NoError(t, err)
		if len(e.Body) > 0 {
			_, err = fw.Write(e.Body)
			require.NoError(t, err)
		}
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}
