package loctok

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageFromPath(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"hello.ts", "TypeScript"},
		{"hello.rs", "Rust"},
		{"src/deep/nested/main.go", "Go"},
		{"script.py", "Python"},
		{"README.md", "Markdown"},
		{"Makefile", "Others"},     // no extension
		{"archive.xyzzy", "Others"}, // unknown extension
		{"UPPER.RS", "Rust"},        // extension match is case-insensitive
		{"noise.tar.gz", "Others"},  // only the last segment counts
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, LanguageFromPath(tc.path), "path %s", tc.path)
	}
}

func TestLanguageFromPathCompositePicksFirst(t *testing.T) {
	// Extensions shared by several languages resolve to the first name.
	assert.Equal(t, "Lisp", LanguageFromPath("prog.cl"))
	assert.Equal(t, "Visual Basic", LanguageFromPath("form.cls"))
	assert.Equal(t, "C", LanguageFromPath("defs.h"))
}

func TestApplyLanguageOverrides(t *testing.T) {
	orig := languageByExt
	defer func() { languageByExt = orig }()

	ApplyLanguageOverrides(map[string]string{
		".tpl":  "Template",
		"RS":    "Rust 2024",
		"":      "ignored",
		"empty": "",
	})

	assert.Equal(t, "Template", LanguageFromPath("view.tpl"))
	assert.Equal(t, "Rust 2024", LanguageFromPath("main.rs"))
	assert.Equal(t, "Others", LanguageFromPath("file.empty"))
	// Untouched entries survive the merge.
	assert.Equal(t, "Go", LanguageFromPath("main.go"))
}

func TestLoadLanguageOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "languages.yml")
	require.NoError(t, os.WriteFile(path, []byte("tpl: Template\nfoo: FooLang\n"), 0o644))

	overrides, err := LoadLanguageOverrides(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"tpl": "Template", "foo": "FooLang"}, overrides)
}

func TestLoadLanguageOverridesMissingFile(t *testing.T) {
	_, err := LoadLanguageOverrides(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoadLanguageOverridesBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "languages.yml")
	require.NoError(t, os.WriteFile(path, []byte("]["), 0o644))

	_, err := LoadLanguageOverrides(path)
	assert.Error(t, err)
}
