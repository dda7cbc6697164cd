package loctok

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePool builds a counter pool over the word-count fake so scans run
// without any tokenizer backend.
func fakePool(t *testing.T) *counterPool {
	t.Helper()
	pool, err := newCounterPool(func() (Counter, error) { return wordCounter{}, nil })
	require.NoError(t, err)
	return pool
}

func TestCountPathTotalsAndOrder(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "b.txt", "one two three\n")
	writeTestFile(t, root, "a.txt", "hello world\n")
	writeTestFile(t, root, "sub/c.txt", "solo\n\nduo line\n")

	result := countPath(root, Options{}, fakePool(t), nil)
	require.Len(t, result.Files, 3)

	// Files come back sorted by path regardless of completion order.
	paths := make([]string, len(result.Files))
	for i, f := range result.Files {
		paths[i] = f.Path
	}
	assert.True(t, sort.StringsAreSorted(paths))

	sum := 0
	for _, f := range result.Files {
		sum += f.Tokens
	}
	assert.Equal(t, sum, result.Total)
	assert.Equal(t, 8, result.Total)

	byName := make(map[string]FileCount)
	for _, f := range result.Files {
		byName[filepath.Base(f.Path)] = f
	}
	assert.Equal(t, 2, byName["a.txt"].Tokens)
	assert.Equal(t, 1, byName["a.txt"].Lines)
	assert.Equal(t, 3, byName["c.txt"].Tokens)
	assert.Equal(t, 2, byName["c.txt"].Lines)
}

func TestCountPathSkipsBinarySilently(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "text.txt", "plain words here\n")
	require.NoError(t, os.WriteFile(filepath.Join(root, "blob.bin"), []byte{0xff, 0xfe, 0x00, 0x01}, 0o644))

	result := countPath(root, Options{}, fakePool(t), nil)
	require.Len(t, result.Files, 1)
	assert.Equal(t, "text.txt", filepath.Base(result.Files[0].Path))
}

func TestCountPathSizeCeilingBoundary(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "exact.txt", strings.Repeat("a", 10))
	writeTestFile(t, root, "over.txt", strings.Repeat("b", 11))

	result := countPath(root, Options{MaxFileSize: 10}, fakePool(t), nil)
	require.Len(t, result.Files, 1, "a file exactly at the ceiling is kept, one byte over is not")
	assert.Equal(t, "exact.txt", filepath.Base(result.Files[0].Path))
}

func TestCountPathProgress(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "a.txt", "a\n")
	writeTestFile(t, root, "b.txt", "b\n")
	// Skipped files still tick the progress counter.
	require.NoError(t, os.WriteFile(filepath.Join(root, "blob.bin"), []byte{0xff, 0xfe}, 0o644))

	var mu sync.Mutex
	type tick struct{ done, total int }
	var ticks []tick
	progress := func(done, total int) {
		mu.Lock()
		ticks = append(ticks, tick{done, total})
		mu.Unlock()
	}

	countPath(root, Options{}, fakePool(t), progress)

	require.NotEmpty(t, ticks)
	assert.Equal(t, tick{0, 3}, ticks[0], "one up-front call with the denominator")
	assert.Len(t, ticks, 4)
	for _, tk := range ticks {
		assert.Equal(t, 3, tk.total)
	}
	last := 0
	for _, tk := range ticks[1:] {
		if tk.done > last {
			last = tk.done
		}
	}
	assert.Equal(t, 3, last, "progress ends at the total")
}

func TestCountPathExtFilterNoMatches(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "a.txt", "words\n")

	result := countPath(root, Options{IncludeExts: map[string]struct{}{"rs": {}}}, fakePool(t), nil)
	assert.Empty(t, result.Files)
	assert.Equal(t, 0, result.Total)
}

func TestCountPathDeterministic(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "x.txt", "alpha beta\n")
	writeTestFile(t, root, "y.txt", "gamma\n")
	writeTestFile(t, root, "d/z.txt", "delta epsilon zeta\n")

	first := countPath(root, Options{Workers: 4}, fakePool(t), nil)
	second := countPath(root, Options{Workers: 1}, fakePool(t), nil)
	assert.Equal(t, first, second)
}

func TestCountPathWithProgressRootErrors(t *testing.T) {
	_, err := CountPath(filepath.Join(t.TempDir(), "missing"), Options{})
	assert.Error(t, err)

	root := t.TempDir()
	file := filepath.Join(root, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	_, err = CountPath(file, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestCountPathUnsupportedEncoding(t *testing.T) {
	_, err := CountPath(t.TempDir(), Options{Encoding: "bogus_base"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported encoding")
}

func TestNewCounterFactoryValidatesNames(t *testing.T) {
	for _, name := range Encodings {
		_, err := newCounterFactory(Options{Encoding: name})
		assert.NoError(t, err, "encoding %s", name)
	}
	_, err := newCounterFactory(Options{Encoding: "nope"})
	assert.Error(t, err)
}

func TestNewCounterFactoryTokenizerFileWins(t *testing.T) {
	// An invalid encoding name is irrelevant when a tokenizer file is set; the
	// file path is only opened on first construction.
	newFn, err := newCounterFactory(Options{Encoding: "nope", TokenizerFile: "/no/such/file.json"})
	require.NoError(t, err)
	_, err = newFn()
	assert.Error(t, err)
}
