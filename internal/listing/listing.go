// Package listing reads the entry names physically present in a directory.
package listing

import (
	"fmt"
	"os"
	"sort"
)

// metadataDirs are repository metadata entries never shown in a listing.
var metadataDirs = map[string]bool{
	".git": true,
}

// Names returns the sorted names of the direct entries of dir, excluding
// repository metadata directories.
func Names(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if metadataDirs[e.Name()] {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
