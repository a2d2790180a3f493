// Package capture saves snapshots of the terminal as PNG files for the output action.
package capture

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/ttygif/ttygif/key"
	"github.com/ttygif/ttygif/player"
	"github.com/ttygif/ttygif/process"
)

// Backends
const (
	BackendCommand = "command"
	BackendVirtual = "virtual"
)

// Backends returns the names of the available backends.
func Backends() []string {
	return []string{BackendCommand, BackendVirtual}
}

// Config selects and tunes a backend.
type Config struct {
	Backend       string
	Command       []string
	Window        string
	WindowCommand []string
	Cols, Rows    int
	FontSize      float64
}

// FromViper reads the capture.* configuration keys.
func FromViper() Config {
	return Config{
		Backend:       viper.GetString(key.CaptureBackend),
		Command:       viper.GetStringSlice(key.CaptureCommand),
		Window:        viper.GetString(key.CaptureWindow),
		WindowCommand: viper.GetStringSlice(key.CaptureWindowCommand),
		Cols:          viper.GetInt(key.CaptureCols),
		Rows:          viper.GetInt(key.CaptureRows),
		FontSize:      viper.GetFloat64(key.CaptureFontSize),
	}
}

// New builds the session of the configured backend. The session is created
// once per output run and owned by the output action.
func New(cfg Config, runner process.Runner) (player.Capturer, error) {
	switch strings.ToLower(cfg.Backend) {
	case BackendCommand, "":
		return NewCommandSession(runner, cfg.Command, cfg.Window, cfg.WindowCommand)
	case BackendVirtual:
		return NewVirtual(cfg.Cols, cfg.Rows, cfg.FontSize)
	default:
		return nil, fmt.Errorf("unknown capture backend %q (expected one of %s)", cfg.Backend, strings.Join(Backends(), ", "))
	}
}
