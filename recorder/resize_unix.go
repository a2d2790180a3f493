//go:build !windows

package recorder

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
	"github.com/ttygif/ttygif/log"
)

// watchResize keeps the size of ptmx in sync with the terminal of stdin.
func watchResize(stdin, ptmx *os.File) (stop func()) {
	if stdin == nil {
		return func() {}
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGWINCH)

	go func() {
		for range ch {
			if err := pty.InheritSize(stdin, ptmx); err != nil {
				log.Debugf("resize pty: %s", err)
			}
		}
	}()
	ch <- syscall.SIGWINCH

	return func() {
		signal.Stop(ch)
		close(ch)
	}
}
