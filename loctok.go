// Package loctok counts non-empty lines and BPE tokens across a directory
// tree, honoring gitignore-style rules and fanning file work out across a
// worker pool.
package loctok

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"unicode/utf8"
)

// defaultMaxFileBytes is the safety ceiling for a single file; anything larger
// is skipped rather than read into memory.
const defaultMaxFileBytes = 64 << 20

// Options configures one scan. The zero value scans with the cl100k_base
// encoding, skips hidden files, and accepts every extension.
type Options struct {
	// Encoding names the tiktoken encoding; see Encodings.
	Encoding string
	// IncludeHidden also scans dotfiles and dot-directories.
	IncludeHidden bool
	// IncludeExts, when non-nil, keeps only files whose lowercased extension
	// (no leading dot) is present. The empty string matches files without an
	// extension.
	IncludeExts map[string]struct{}
	// MaxFileSize overrides the 64 MiB per-file ceiling when positive.
	MaxFileSize int64
	// TokenizerFile switches token counting to a local HuggingFace
	// tokenizer.json instead of a tiktoken encoding.
	TokenizerFile string
	// Workers bounds the fan-out; 0 means runtime.NumCPU().
	Workers int
}

// FileCount is the per-file result.
type FileCount struct {
	Path   string `json:"path"`
	Tokens int    `json:"tokens"`
	Lines  int    `json:"lines"`
}

// CountResult is the full scan result. Total always equals the sum of
// Files[i].Tokens, and Files is sorted by path.
type CountResult struct {
	Total int         `json:"total"`
	Files []FileCount `json:"files"`
}

// ProgressFunc receives (processed, total) counts. It is called once before
// processing starts, after every completed file (skips included), and may be
// called from multiple goroutines at once.
type ProgressFunc func(done, total int)

// CountPath scans root and counts lines and tokens in every kept file.
func CountPath(root string, opts Options) (*CountResult, error) {
	return CountPathWithProgress(root, opts, nil)
}

// CountPathWithProgress is CountPath with a progress callback.
func CountPathWithProgress(root string, opts Options, progress ProgressFunc) (*CountResult, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("accessing root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", root)
	}

	newFn, err := newCounterFactory(opts)
	if err != nil {
		return nil, err
	}
	pool, err := newCounterPool(newFn)
	if err != nil {
		return nil, err
	}

	return countPath(root, opts, pool, progress), nil
}

// countPath runs the scan proper: enumerate once for a stable progress
// denominator, then fan the paths out across workers.
func countPath(root string, opts Options, pool *counterPool, progress ProgressFunc) *CountResult {
	paths := enumerateFilteredPaths(root, opts)
	total := len(paths)
	if progress != nil {
		progress(0, total)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	jobs := make(chan string, total)
	results := make(chan FileCount, total)
	var done atomic.Int64
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				fc, ok := countFile(path, opts, pool)
				d := int(done.Add(1))
				if progress != nil {
					progress(d, total)
				}
				if ok {
					results <- fc
				}
			}
		}()
	}

	for _, p := range paths {
		jobs <- p
	}
	close(jobs)
	wg.Wait()
	close(results)

	files := make([]FileCount, 0, total)
	for fc := range results {
		files = append(files, fc)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	sum := 0
	for _, f := range files {
		sum += f.Tokens
	}
	return &CountResult{Total: sum, Files: files}
}

// countFile counts one file. Any failure degrades to a skip: the file is
// absent from the results rather than present with zero counts. A panic while
// counting is contained here so one malformed input cannot take down the scan.
func countFile(path string, opts Options, pool *counterPool) (fc FileCount, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			warnf("skipping %s: %v", path, r)
			fc, ok = FileCount{}, false
		}
	}()

	limit := opts.MaxFileSize
	if limit <= 0 {
		limit = defaultMaxFileBytes
	}

	info, err := os.Stat(path)
	if err != nil {
		warnf("failed to stat %s: %v", path, err)
		return FileCount{}, false
	}
	if info.Size() > limit {
		warnf("skipping large file (%dMB): %s", info.Size()/1024/1024, path)
		return FileCount{}, false
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		warnf("failed to read %s: %v", path, err)
		return FileCount{}, false
	}
	// Binary files are deliberately skipped without a warning.
	if !utf8.Valid(raw) {
		return FileCount{}, false
	}
	text := string(raw)

	counter, err := pool.acquire()
	if err != nil {
		warnf("tokenizer unavailable for %s: %v", path, err)
		return FileCount{}, false
	}
	defer pool.release(counter)

	return FileCount{
		Path:   path,
		Tokens: CountText(counter, text),
		Lines:  CountNonEmptyLines(text),
	}, true
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warn: "+format+"\n", args...)
}
