// Package nodeid manages the persistent identifier of a logmesh node.
package nodeid

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// ErrMalformedID indicates a node id that is empty after trimming.
var ErrMalformedID = errors.New("nodeid: malformed node id")

// ErrNoID indicates the node ID file is missing or empty.
var ErrNoID = errors.New("nodeid: no node id stored")

// ID is a node identifier.
type ID string

// String returns the identifier text.
func (id ID) String() string {
	return string(id)
}

// New generates a new node identifier.
func New() (ID, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", fmt.Errorf("generate node id: %w", err)
	}
	return ID(id.String()), nil
}

// Parse returns s, trimmed, as a node identifier.
// Any non-empty content is accepted so ids written by other tools keep
// working; only New is tied to the ULID format.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrMalformedID
	}
	return ID(s), nil
}

// Read returns the identifier stored at path.
// It returns ErrNoID when the file is missing or empty.
func Read(path string) (ID, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNoID
	}
	if err != nil {
		return "", fmt.Errorf("read node id file: %w", err)
	}

	if strings.TrimSpace(string(data)) == "" {
		return "", ErrNoID
	}
	return Parse(string(data))
}

// Resolve returns the identifier stored at path, creating and persisting a
// new one if none is stored yet. created reports whether a new ID was written.
func Resolve(path string) (id ID, created bool, err error) {
	id, err = Read(path)
	if err == nil {
		return id, false, nil
	}
	if !errors.Is(err, ErrNoID) {
		return "", false, err
	}

	id, err = New()
	if err != nil {
		return "", false, err
	}
	if err := os.WriteFile(path, []byte(id.String()+"\n"), 0o644); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return "", false, fmt.Errorf("%w at %s and the file is not writable: %w", ErrNoID, path, err)
		}
		return "", false, fmt.Errorf("write node id file: %w", err)
	}
	return id, true, nil
}
