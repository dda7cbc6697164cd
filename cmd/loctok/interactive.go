package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
)

// pickRootInteractive lists directories under the current directory and lets
// the user fuzzy-pick the scan root. Returns "" if the selection was aborted.
func pickRootInteractive() (string, error) {
	candidates := []string{"."}
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if path == "." || !d.IsDir() {
			return nil
		}
		name := d.Name()
		if name == ".git" || (!showHidden && len(name) > 0 && name[0] == '.') {
			return fs.SkipDir
		}
		candidates = append(candidates, path)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("scanning for directories: %w", err)
	}

	idx, err := fuzzyfinder.Find(
		candidates,
		func(i int) string { return candidates[i] },
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return "Select the directory to scan."
			}
			entries, readErr := os.ReadDir(candidates[i])
			if readErr != nil {
				return fmt.Sprintf("Path: %s\nError: %v", candidates[i], readErr)
			}
			return fmt.Sprintf("Path: %s\nEntries: %d", candidates[i], len(entries))
		}),
	)
	if err != nil {
		if err == fuzzyfinder.ErrAbort {
			return "", nil
		}
		return "", err
	}
	return candidates[idx], nil
}
