//go:build unix

package param

import "golang.org/x/sys/unix"

func access(name string, mode uint32) error {
	return unix.Access(name, mode)
}
