package definition

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadSeed reads a YAML list of entries from path and inserts them into store.
// It returns the number of inserted entries.
func LoadSeed(ctx context.Context, store Store, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	var entries []Entry
	if err := yaml.NewDecoder(file).Decode(&entries); err != nil {
		return 0, fmt.Errorf("yaml.Decode(%s) > %w", path, err)
	}

	for i, entry := range entries {
		if entry.Word == "" {
			return i, fmt.Errorf("entry %d in %s has an empty word", i, path)
		}
		if _, err := store.Insert(ctx, entry.Word, entry.Definition); err != nil {
			return i, fmt.Errorf("store.Insert(%s) > %w", entry.Word, err)
		}
	}
	return len(entries), nil
}
