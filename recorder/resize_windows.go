//go:build windows

package recorder

import (
	"os"

	"github.com/creack/pty"
)

func watchResize(stdin, ptmx *os.File) (stop func()) {
	if stdin != nil {
		_ = pty.InheritSize(stdin, ptmx)
	}
	return func() {}
}
