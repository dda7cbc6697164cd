package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loctok/loctok"
)

func TestParseExtFilter(t *testing.T) {
	assert.Nil(t, parseExtFilter(""))
	assert.Nil(t, parseExtFilter("   "))
	assert.Equal(t,
		map[string]struct{}{"rs": {}, "py": {}, "js": {}},
		parseExtFilter("rs,py,js"))
	assert.Equal(t,
		map[string]struct{}{"rs": {}, "go": {}},
		parseExtFilter(" .RS , go "))
}

func TestURLDispatch(t *testing.T) {
	assert.True(t, isWebURL("https://example.com/docs"))
	assert.True(t, isWebURL("http://example.com"))
	assert.False(t, isWebURL("./local/path"))

	assert.True(t, isGitURL("https://github.com/user/repo.git"))
	assert.True(t, isGitURL("git@github.com:user/repo.git"))
	assert.False(t, isGitURL("https://example.com/page"))
}

func TestClassifyTarget(t *testing.T) {
	// An https clone URL satisfies both predicates; the git path must win.
	assert.Equal(t, targetGit, classifyTarget("https://github.com/user/repo.git"))
	assert.Equal(t, targetGit, classifyTarget("git@github.com:user/repo.git"))
	assert.Equal(t, targetWeb, classifyTarget("https://example.com/docs"))
	assert.Equal(t, targetLocal, classifyTarget("./vendor"))
	assert.Equal(t, targetLocal, classifyTarget("."))
}

func TestEncodingInfo(t *testing.T) {
	n, models, ok := encodingInfo("o200k_base")
	require.True(t, ok)
	assert.Equal(t, 200_000, n)
	assert.Contains(t, models, "GPT-4o")

	_, _, ok = encodingInfo("bogus")
	assert.False(t, ok)

	// Every supported encoding has metadata.
	for _, name := range loctok.Encodings {
		_, _, ok := encodingInfo(name)
		assert.True(t, ok, "missing metadata for %s", name)
	}
}

func TestFmtNum(t *testing.T) {
	assert.Equal(t, "0", fmtNum(0))
	assert.Equal(t, "999", fmtNum(999))
	assert.Equal(t, "1,234,567", fmtNum(1234567))
}

func TestBuildFileTreeAggregation(t *testing.T) {
	files := []loctok.FileCount{
		{Path: "proj/src/a.go", Tokens: 10, Lines: 2},
		{Path: "proj/src/b.go", Tokens: 20, Lines: 3},
		{Path: "proj/README.md", Tokens: 5, Lines: 1},
	}
	tree := buildFileTree("proj", files)

	assert.Equal(t, 35, tree.tokens)
	assert.Equal(t, 6, tree.lines)

	src := tree.children["src"]
	require.NotNil(t, src)
	assert.True(t, src.isDir)
	assert.Equal(t, 30, src.tokens)
	assert.Equal(t, 5, src.lines)

	ordered := orderedChildren(tree)
	require.Len(t, ordered, 2)
	assert.Equal(t, "src", ordered[0].name, "directories come before files")
	assert.Equal(t, "README.md", ordered[1].name)
}
