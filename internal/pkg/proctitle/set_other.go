//go:build !linux

package proctitle

import (
	"os"
	"strings"
)

// Set has no syscall to lean on outside Linux; rewriting argv[0] is the best
// available approximation and never fails.
func Set(title string) error {
	name := strings.TrimSpace(title)
	if name == "" {
		return nil
	}
	if len(os.Args) > 0 {
		os.Args[0] = name
	}
	return nil
}
