package loctok

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	gitignore "github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

const (
	gitDir     = ".git"
	ignoreFile = ".ignore"
)

// enumerateFilteredPaths walks root and returns the regular files to process.
// Layered ignore rules apply: system and global git excludes, .git/info/exclude,
// nested .gitignore files, and per-directory .ignore files. .gitignore files
// are honored even when root is not a git repository. Hidden entries are
// skipped unless opts.IncludeHidden is set, symlinks are never followed, and
// unreadable entries are reported and skipped. The returned order is walk
// order; callers needing determinism sort afterwards.
func enumerateFilteredPaths(root string, opts Options) []string {
	matcher := newIgnoreMatcher(root, opts)

	var paths []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			warnf("skipping entry %s: %v", path, err)
			return nil
		}
		if path == root {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		parts := strings.Split(filepath.ToSlash(rel), "/")
		name := d.Name()

		if d.IsDir() {
			if name == gitDir {
				return fs.SkipDir
			}
			if !opts.IncludeHidden && isHidden(name) {
				return fs.SkipDir
			}
			if matcher != nil && matcher.Match(parts, true) {
				return fs.SkipDir
			}
			return nil
		}

		if !opts.IncludeHidden && isHidden(name) {
			return nil
		}
		// Symlinks and other non-regular entries are never followed; cycles
		// and double counting are worse than a missed link target.
		if !d.Type().IsRegular() {
			return nil
		}
		if matcher != nil && matcher.Match(parts, false) {
			return nil
		}
		if opts.IncludeExts != nil {
			ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
			if _, ok := opts.IncludeExts[ext]; !ok {
				return nil
			}
		}

		paths = append(paths, path)
		return nil
	})
	if walkErr != nil {
		warnf("walking %s: %v", root, walkErr)
	}
	return paths
}

// newIgnoreMatcher layers ignore patterns from least to most specific; the
// matcher gives the last match precedence, so deeper .gitignore entries win
// over global excludes.
func newIgnoreMatcher(root string, opts Options) gitignore.Matcher {
	var patterns []gitignore.Pattern

	hostFS := osfs.New("/")
	if ps, err := gitignore.LoadSystemPatterns(hostFS); err == nil {
		patterns = append(patterns, ps...)
	}
	if ps, err := gitignore.LoadGlobalPatterns(hostFS); err == nil {
		patterns = append(patterns, ps...)
	}

	// Nested .gitignore files plus .git/info/exclude, rooted at the scan root.
	ps, err := gitignore.ReadPatterns(osfs.New(root), nil)
	if err != nil {
		warnf("reading ignore patterns under %s: %v", root, err)
	}
	patterns = append(patterns, ps...)
	patterns = append(patterns, readDotIgnorePatterns(root, opts, patterns)...)

	if len(patterns) == 0 {
		return nil
	}
	return gitignore.NewMatcher(patterns)
}

// readDotIgnorePatterns collects per-directory .ignore files, which use
// gitignore syntax but are not part of git itself. Directories the scan would
// never enter — hidden ones, .git, anything matched by the base gitignore
// layers or by a .ignore file already collected — are not descended into, so
// an excluded subtree cannot inject patterns.
func readDotIgnorePatterns(root string, opts Options, base []gitignore.Pattern) []gitignore.Pattern {
	var patterns []gitignore.Pattern
	excluded := func(parts []string) bool {
		all := make([]gitignore.Pattern, 0, len(base)+len(patterns))
		all = append(all, base...)
		all = append(all, patterns...)
		if len(all) == 0 {
			return false
		}
		return gitignore.NewMatcher(all).Match(parts, true)
	}

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path == root {
				return nil
			}
			if d.Name() == gitDir {
				return fs.SkipDir
			}
			if !opts.IncludeHidden && isHidden(d.Name()) {
				return fs.SkipDir
			}
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				return fs.SkipDir
			}
			if excluded(strings.Split(filepath.ToSlash(rel), "/")) {
				return fs.SkipDir
			}
			return nil
		}
		if d.Name() != ignoreFile {
			return nil
		}

		rel, relErr := filepath.Rel(root, filepath.Dir(path))
		if relErr != nil {
			return nil
		}
		var domain []string
		if rel != "." {
			domain = strings.Split(filepath.ToSlash(rel), "/")
		}

		raw, readErr := os.ReadFile(path)
		if readErr != nil {
			warnf("failed to read %s: %v", path, readErr)
			return nil
		}
		for _, line := range strings.Split(string(raw), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			patterns = append(patterns, gitignore.ParsePattern(line, domain))
		}
		return nil
	})
	return patterns
}

// isHidden reports whether a base name is a dotfile. "." and ".." are not
// considered hidden.
func isHidden(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return len(name) > 0 && name[0] == '.'
}
