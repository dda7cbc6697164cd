package loctok

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateByLanguageSums(t *testing.T) {
	files := []FileCount{
		{Path: "a.rs", Tokens: 100, Lines: 10},
		{Path: "src/b.rs", Tokens: 50, Lines: 5},
		{Path: "main.go", Tokens: 30, Lines: 3},
	}
	rows := AggregateByLanguage(files)
	require.Len(t, rows, 2)

	assert.Equal(t, LangSummary{Language: "Rust", Lines: 15, Tokens: 150}, rows[0])
	assert.Equal(t, LangSummary{Language: "Go", Lines: 3, Tokens: 30}, rows[1])
}

func TestAggregateByLanguageSortedByTokensDesc(t *testing.T) {
	files := []FileCount{
		{Path: "tiny.py", Tokens: 1, Lines: 1},
		{Path: "big.go", Tokens: 500, Lines: 40},
		{Path: "mid.rs", Tokens: 42, Lines: 7},
	}
	rows := AggregateByLanguage(files)
	require.Len(t, rows, 3)
	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].Tokens, rows[i].Tokens)
	}
}

func TestAggregateByLanguageTieBreaksOnName(t *testing.T) {
	files := []FileCount{
		{Path: "a.go", Tokens: 10, Lines: 1},
		{Path: "b.rs", Tokens: 10, Lines: 1},
	}
	rows := AggregateByLanguage(files)
	require.Len(t, rows, 2)
	assert.Equal(t, "Go", rows[0].Language)
	assert.Equal(t, "Rust", rows[1].Language)
}

func TestAggregateByLanguageOthersBucket(t *testing.T) {
	files := []FileCount{
		{Path: "LICENSE", Tokens: 5, Lines: 2},
		{Path: "data.unknownext", Tokens: 7, Lines: 3},
	}
	rows := AggregateByLanguage(files)
	require.Len(t, rows, 1)
	assert.Equal(t, LangSummary{Language: "Others", Lines: 5, Tokens: 12}, rows[0])
}

func TestAggregateByLanguageTotalsMatchInput(t *testing.T) {
	files := []FileCount{
		{Path: "a.go", Tokens: 3, Lines: 1},
		{Path: "b.rs", Tokens: 5, Lines: 2},
		{Path: "c.py", Tokens: 7, Lines: 3},
		{Path: "d", Tokens: 11, Lines: 4},
	}
	rows := AggregateByLanguage(files)

	wantTokens, wantLines := 0, 0
	for _, f := range files {
		wantTokens += f.Tokens
		wantLines += f.Lines
	}
	gotTokens, gotLines := 0, 0
	for _, r := range rows {
		gotTokens += r.Tokens
		gotLines += r.Lines
	}
	assert.Equal(t, wantTokens, gotTokens)
	assert.Equal(t, wantLines, gotLines)
}

func TestAggregateByLanguageEmpty(t *testing.T) {
	assert.Empty(t, AggregateByLanguage(nil))
}
