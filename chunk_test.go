package loctok

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wordCounter counts whitespace-separated fields. Because chunk boundaries
// fall right after a space or newline, chunked totals must equal the
// whole-text count.
type wordCounter struct{}

func (wordCounter) Count(text string) int { return len(strings.Fields(text)) }

// recordingCounter captures every Count call so tests can observe how the
// chunker drives the backend.
type recordingCounter struct {
	calls []string
}

func (c *recordingCounter) Count(text string) int {
	c.calls = append(c.calls, text)
	return len(text)
}

func TestCountTextEmpty(t *testing.T) {
	c := &recordingCounter{}
	assert.Equal(t, 0, CountText(c, ""))
	assert.Empty(t, c.calls, "empty input must not hit the backend")
}

func TestCountTextSmallInputSingleCall(t *testing.T) {
	text := strings.Repeat("a ", chunkSize) // 1024 bytes, under the 4x threshold
	c := &recordingCounter{}
	got := CountText(c, text)

	require.Len(t, c.calls, 1)
	assert.Equal(t, text, c.calls[0])
	assert.Equal(t, len(text), got)
}

func TestCountTextLargeInputSumsChunks(t *testing.T) {
	text := strings.Repeat("word ", 2000) // 10000 bytes
	c := &recordingCounter{}
	got := CountText(c, text)

	assert.Greater(t, len(c.calls), 1)
	assert.Equal(t, len(text), got, "byte-counting backend sums must reconstruct the input length")
}

func TestCountTextChunkingPreservesWordCount(t *testing.T) {
	text := strings.Repeat("alpha beta gamma delta ", 500)
	whole := wordCounter{}.Count(text)
	got := CountText(wordCounter{}, text)
	assert.Equal(t, whole, got)
}

func TestSplitTextIntoChunksReconstruction(t *testing.T) {
	for _, text := range []string{
		strings.Repeat("word ", 400),
		strings.Repeat("x", 3000),
		strings.Repeat("é日本語 ", 300),
		"short",
	} {
		chunks := splitTextIntoChunks(text, chunkSize)
		assert.Equal(t, text, strings.Join(chunks, ""))
	}
}

func TestSplitTextIntoChunksRuneBoundaries(t *testing.T) {
	text := strings.Repeat("日本語テキスト", 200) // multibyte, no whitespace at all
	chunks := splitTextIntoChunks(text, chunkSize)

	require.Greater(t, len(chunks), 1)
	for i, chunk := range chunks {
		assert.True(t, utf8.ValidString(chunk), "chunk %d severed a rune", i)
	}
	assert.Equal(t, text, strings.Join(chunks, ""))
}

func TestSplitTextIntoChunksNoWhitespaceSizes(t *testing.T) {
	text := strings.Repeat("x", 5*chunkSize)
	chunks := splitTextIntoChunks(text, chunkSize)

	for i, chunk := range chunks {
		if i < len(chunks)-1 {
			assert.GreaterOrEqual(t, len(chunk), chunkSize)
			assert.LessOrEqual(t, len(chunk), 2*chunkSize)
		}
	}
}

func TestSplitTextIntoChunksSplitsAfterWhitespace(t *testing.T) {
	text := strings.Repeat("someword ", 600)
	chunks := splitTextIntoChunks(text, chunkSize)

	require.Greater(t, len(chunks), 1)
	for i, chunk := range chunks[:len(chunks)-1] {
		assert.True(t, strings.HasSuffix(chunk, " ") || strings.HasSuffix(chunk, "\n"),
			"chunk %d should end right after whitespace", i)
	}
}

func TestCountNonEmptyLines(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"", 0},
		{"\n", 0},
		{"\n\n\n", 0},
		{"a", 1},
		{"a\n", 1},
		{"a\nb", 2},
		{"a\n\nb\n", 2},
		{"  \n\t\n c ", 1},
		{"line1\r\nline2\r\n", 2},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CountNonEmptyLines(tc.text), "input %q", tc.text)
	}
}
