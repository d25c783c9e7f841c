// Package param declares and validates startup configuration parameters.
package param

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Access modes understood by FileSystem.Access, matching access(2).
const (
	AccessRead  uint32 = 0x4
	AccessWrite uint32 = 0x2
	AccessExec  uint32 = 0x1
)

// FileSystem is the read-only filesystem view used by path validators.
type FileSystem interface {
	// Stat returns file metadata, following symlinks.
	Stat(name string) (fs.FileInfo, error)
	// Access reports whether the current process may access name with the
	// given mode bits; a nil error means access is granted.
	Access(name string, mode uint32) error
}

// OSFileSystem returns the FileSystem backed by the host operating system.
func OSFileSystem() FileSystem {
	return osFileSystem{}
}

type osFileSystem struct{}

func (osFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (osFileSystem) Access(name string, mode uint32) error {
	return access(name, mode)
}

// NodeIDFileValidator checks that the node ID file can either be read
// (holding a persisted ID) or be written (to persist a new one).
//
//	exists  readable  writable  empty   result
//	no      -         parent    -       ok
//	no      -         no        -       invalid
//	yes     yes       yes       any     ok
//	yes     yes       no        no      ok
//	yes     yes       no        yes     invalid
//	yes     no        any       any     invalid
//
// The validator only queries metadata; it never creates the file.
type NodeIDFileValidator struct {
	fs FileSystem
}

// NodeIDFile returns a NodeIDFileValidator using the host filesystem.
func NodeIDFile() *NodeIDFileValidator {
	return NodeIDFileOn(OSFileSystem())
}

// NodeIDFileOn returns a NodeIDFileValidator using fsys.
func NodeIDFileOn(fsys FileSystem) *NodeIDFileValidator {
	return &NodeIDFileValidator{fs: fsys}
}

// Validate implements Validator. An empty path is accepted as unset.
func (v *NodeIDFileValidator) Validate(key, path string) error {
	if path == "" {
		return nil
	}

	info, err := v.fs.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return v.validateMissing(key, path)
	}
	if err != nil {
		return NewValidationError(key, "Parameter %s: node ID file at %s cannot be accessed", key, path).WithCause(err)
	}

	if !info.Mode().IsRegular() {
		return NewValidationError(key, "Parameter %s: node ID file at %s is not a regular file", key, path)
	}
	if err := v.fs.Access(path, AccessRead); err != nil {
		return NewValidationError(key, "Parameter %s: node ID file at %s is not readable", key, path).WithCause(err)
	}
	if v.fs.Access(path, AccessWrite) == nil {
		return nil
	}
	// Read-only is fine as long as an ID has already been persisted.
	if info.Size() == 0 {
		return NewValidationError(key, "Parameter %s: node ID file at %s is empty and not writable", key, path)
	}
	return nil
}

// validateMissing accepts a missing file only if its parent directory
// would allow the file to be created.
func (v *NodeIDFileValidator) validateMissing(key, path string) error {
	parent := filepath.Dir(path)

	info, err := v.fs.Stat(parent)
	if err != nil {
		return NewValidationError(key, "Parameter %s: parent directory %s of node ID file at %s cannot be accessed", key, parent, path).WithCause(err)
	}
	if !info.IsDir() {
		return NewValidationError(key, "Parameter %s: parent path %s of node ID file at %s is not a directory", key, parent, path)
	}
	if err := v.fs.Access(parent, AccessWrite|AccessExec); err != nil {
		return NewValidationError(key, "Parameter %s: parent directory %s of node ID file at %s is not writable", key, parent, path).WithCause(err)
	}
	return nil
}
