//go:build !unix

package param

import (
	"io/fs"
	"os"
)

// access approximates access(2) from the owner permission bits.
func access(name string, mode uint32) error {
	info, err := os.Stat(name)
	if err != nil {
		return err
	}
	perm := uint32(info.Mode().Perm()>>6) & 0x7
	if perm&mode != mode {
		return &fs.PathError{Op: "access", Path: name, Err: fs.ErrPermission}
	}
	return nil
}
