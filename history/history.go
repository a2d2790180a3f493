// Package history keeps a registry of the artifacts produced by the output action.
package history

import (
	"errors"
	"fmt"
	"sort"

	"github.com/metafates/gache"
	"github.com/ttygif/ttygif/filesystem"
	"github.com/ttygif/ttygif/where"
)

// ErrNotRecorded is returned when removing an output that was never rendered.
var ErrNotRecorded = errors.New("not in history")

// cacher is the disk-backed registry of rendered artifacts, keyed by output path.
var cacher = gache.New[map[string]*Entry](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns every recorded entry keyed by output path.
func Get() (map[string]*Entry, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Entry), nil
	}
	return cached, nil
}

// List returns the recorded entries, most recent first.
func List() ([]*Entry, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	entries := make([]*Entry, 0, len(saved))
	for _, entry := range saved {
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	return entries, nil
}

// Save records an entry. A previous render to the same output is replaced.
func Save(entry *Entry) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	saved[entry.key()] = entry
	return cacher.Set(saved)
}

// Remove forgets the render into output. Relative paths resolve against the working directory.
func Remove(output string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	key := absolute(output)
	if _, ok := saved[key]; !ok {
		return fmt.Errorf("%s: %w", output, ErrNotRecorded)
	}

	delete(saved, key)
	return cacher.Set(saved)
}

// Clear empties the registry.
func Clear() error {
	return cacher.Set(make(map[string]*Entry))
}
