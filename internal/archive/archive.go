// Package archive opens uploaded project files as random-access zip listings.
package archive

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zip"
)

// ErrEntryNotFound is returned when a named entry does not exist in the archive.
var ErrEntryNotFound = errors.New("archive entry not found")

// Archive is a read-only view over a zip container held in memory.
// It is not safe to share between validation calls.
type Archive struct {
	files  []*zip.File
	byName map[string]*zip.File
}

// Open parses data as a zip container.
func Open(data []byte) (*Archive, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*zip.File, len(r.File))
	for _, f := range r.File {
		// First entry wins on duplicate names, same as a sequential scan.
		if _, ok := byName[f.Name]; !ok {
			byName[f.Name] = f
		}
	}
	return &Archive{files: r.File, byName: byName}, nil
}

// Len returns the number of entries in the archive.
func (a *Archive) Len() int {
	return len(a.files)
}

// Names returns the entry names in archive order.
func (a *Archive) Names() []string {
	names := make([]string, 0, len(a.files))
	for _, f := range a.files {
		names = append(names, f.Name)
	}
	return names
}

// Contains reports whether an entry with exactly this name exists.
func (a *Archive) Contains(name string) bool {
	_, ok := a.byName[name]
	return ok
}

// Open returns a reader over the decompressed contents of the named entry.
func (a *Archive) Open(name string) (io.ReadCloser, error) {
	f, ok := a.byName[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrEntryNotFound)
	}
	return f.Open()
}

// ReadFile returns the decompressed contents of the named entry.
func (a *Archive) ReadFile(name string) ([]byte, error) {
	rc, err := a.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return io.ReadAll(rc)
}

// AnyMatch reports whether any entry name ends with one of exts, ignoring case.
func (a *Archive) AnyMatch(exts ...string) bool {
	for _, f := range a.files {
		if MatchExtension(f.Name, exts...) {
			return true
		}
	}
	return false
}

// IsCorrupt reports whether err describes a malformed container rather than
// an I/O failure.
func IsCorrupt(err error) bool {
	return errors.Is(err, zip.ErrFormat) ||
		errors.Is(err, zip.ErrAlgorithm) ||
		errors.Is(err, zip.ErrChecksum)
}
