// Package filesystem holds the afero backend every file access goes through.
// Recordings, frames, logs and the history registry use the OS filesystem;
// tests swap in an in-memory one.
package filesystem

import (
	"os"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// Exists reports whether path exists. Errors other than absence count as present,
// so callers never overwrite a file they merely failed to stat.
func Exists(path string) bool {
	_, err := backend.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

// Use makes fs the active backend.
func Use(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}

// SetOsFs switches back to the operating system filesystem.
func SetOsFs() {
	Use(afero.NewOsFs())
}

// SetMemMapFs switches to a fresh in-memory filesystem.
func SetMemMapFs() {
	Use(afero.NewMemMapFs())
}
