// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/ttygif/ttygif/constant"
	"github.com/ttygif/ttygif/filesystem"
)

// EnvConfigPath overrides the default configuration directory.
const EnvConfigPath = "TTYGIF_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory.
// XDG_CONFIG_HOME on Linux and the user profile equivalent on Darwin and Windows,
// unless TTYGIF_CONFIG_PATH is set.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Cache resolves the persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Logs resolves the directory of diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// History resolves the registry of rendered artifacts.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Temp resolves the volatile directory for transient artifacts.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.App))
}

// Frames resolves a fresh directory for the frames of a single capture session.
func Frames() string {
	return ensureDir(filepath.Join(Temp(), "frames-"+uuid.NewString()))
}
