package loctok

import (
	"strings"
	"unicode/utf8"
)

// chunkSize is the minimum chunk length in bytes when splitting large inputs
// before tokenization.
const chunkSize = 512

// CountText tokenizes text with c. Inputs up to four chunk sizes are encoded
// in one call; anything larger is split into chunks that are tokenized
// independently and summed. Chunked totals can drift slightly from a
// whole-text encode because BPE is context-sensitive at chunk boundaries; the
// split points chase whitespace to keep that drift small.
func CountText(c Counter, text string) int {
	if text == "" {
		return 0
	}
	if len(text) <= chunkSize*4 {
		return c.Count(text)
	}

	chunks := splitTextIntoChunks(text, chunkSize)
	if len(chunks) <= 1 {
		return c.Count(text)
	}
	total := 0
	for _, chunk := range chunks {
		total += c.Count(chunk)
	}
	return total
}

// splitTextIntoChunks carves text into substrings of at least maxChunkBytes
// bytes, never inside a multi-byte rune. After the minimum boundary it looks
// ahead up to another maxChunkBytes for a space or newline and splits just
// after it, so tokens are rarely severed mid-word. Concatenating the chunks
// reproduces the input exactly.
func splitTextIntoChunks(text string, maxChunkBytes int) []string {
	var chunks []string
	start := 0

	for start < len(text) {
		if len(text)-start <= maxChunkBytes {
			chunks = append(chunks, text[start:])
			break
		}

		// Accumulate whole runes until at least maxChunkBytes are consumed.
		baseRel := 0
		acc := 0
		for off, r := range text[start:] {
			w := utf8.RuneLen(r)
			acc += w
			baseRel = off + w
			if acc >= maxChunkBytes {
				break
			}
		}
		baseEnd := start + baseRel

		// Look ahead for whitespace to split after.
		extendedEnd := -1
		la := 0
		for off, r := range text[baseEnd:] {
			w := utf8.RuneLen(r)
			if r == ' ' || r == '\n' {
				extendedEnd = baseEnd + off + w
				break
			}
			la += w
			if la >= maxChunkBytes {
				break
			}
		}

		end := baseEnd
		if extendedEnd >= 0 {
			end = extendedEnd
		}
		chunks = append(chunks, text[start:end])
		start = end
	}

	return chunks
}

// CountNonEmptyLines counts lines with any non-whitespace content.
func CountNonEmptyLines(text string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
