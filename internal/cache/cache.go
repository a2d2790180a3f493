// Package cache prunes the transient artifacts left behind by output runs.
package cache

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ttygif/ttygif/filesystem"
	"github.com/ttygif/ttygif/log"
	"github.com/ttygif/ttygif/where"
)

// TTL is how long frames kept after a failed or interrupted render survive.
const TTL = 7 * 24 * time.Hour

// framesPrefix matches the directories created by where.Frames.
const framesPrefix = "frames-"

// Stale returns the frame directories under dir last modified before cutoff.
func Stale(dir string, cutoff time.Time) ([]string, error) {
	entries, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var stale []string
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), framesPrefix) {
			continue
		}
		if entry.ModTime().Before(cutoff) {
			stale = append(stale, filepath.Join(dir, entry.Name()))
		}
	}
	return stale, nil
}

// Prune removes the frame directories under dir older than ttl and returns how many were removed.
func Prune(dir string, ttl time.Duration) (int, error) {
	stale, err := Stale(dir, time.Now().Add(-ttl))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	var removed int
	for _, path := range stale {
		if err := filesystem.API().RemoveAll(path); err != nil {
			log.Warn(err)
			continue
		}
		removed++
	}
	return removed, nil
}

// CollectGarbage prunes expired frame directories from the temporary directory.
func CollectGarbage() {
	removed, err := Prune(where.Temp(), TTL)
	if err != nil {
		log.Warn(err)
		return
	}
	if removed > 0 {
		log.Infof("removed %d stale frame directories", removed)
	}
}
