//go:build linux

// Package proctitle names the server process so it is identifiable in ps/top
// output alongside other services on the host.
package proctitle

import (
	"errors"
	"os"
	"strings"
	"unsafe"

	"golang.org/x/sys/unix"
)

// The kernel caps comm names at 15 bytes plus the NUL terminator.
const commNameLimit = 15

// Set renames the current process. Titles longer than the kernel comm limit
// are truncated.
func Set(title string) error {
	name := strings.TrimSpace(title)
	if name == "" {
		return errors.New("process title must not be empty")
	}
	if len(os.Args) > 0 {
		os.Args[0] = name
	}

	if len(name) > commNameLimit {
		name = name[:commNameLimit]
	}
	buf := make([]byte, commNameLimit+1)
	copy(buf, name)

	return unix.Prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(&buf[0])), 0, 0, 0)
}
