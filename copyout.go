package loctok

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

// FileText pairs a slash-separated path relative to the scan root with its
// UTF-8 content.
type FileText struct {
	Path string
	Text string
}

// CollectFilteredTexts enumerates root with the same filtering as a scan and
// returns each kept file's relative path and content, sorted by path. Files
// that cannot be read or are not valid UTF-8 are silently dropped.
func CollectFilteredTexts(root string, opts Options) ([]FileText, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("accessing root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", root)
	}

	paths := enumerateFilteredPaths(root, opts)
	sort.Strings(paths)

	texts := make([]FileText, 0, len(paths))
	for _, abs := range paths {
		rel, relErr := filepath.Rel(root, abs)
		if relErr != nil {
			rel = abs
		}
		raw, readErr := os.ReadFile(abs)
		if readErr != nil {
			continue
		}
		if !utf8.Valid(raw) {
			continue
		}
		texts = append(texts, FileText{Path: filepath.ToSlash(rel), Text: string(raw)})
	}
	return texts, nil
}

type copyDirNode struct {
	dirs  map[string]*copyDirNode
	files []string
}

// BuildCopyOutput renders a file-tree header followed by each file's content
// with line numbers, the format used for clipboard export. Output is
// deterministic for a given input.
func BuildCopyOutput(texts []FileText) string {
	root := &copyDirNode{dirs: make(map[string]*copyDirNode)}
	relPaths := make([]string, 0, len(texts))
	for _, t := range texts {
		relPaths = append(relPaths, t.Path)
	}
	sort.Strings(relPaths)

	for _, rel := range relPaths {
		cur := root
		comps := strings.Split(rel, "/")
		for i, name := range comps {
			if i == len(comps)-1 {
				cur.files = append(cur.files, name)
				continue
			}
			child := cur.dirs[name]
			if child == nil {
				child = &copyDirNode{dirs: make(map[string]*copyDirNode)}
				cur.dirs[name] = child
			}
			cur = child
		}
	}

	var b strings.Builder
	renderCopyDir(root, "", &b)
	if b.Len() > 0 {
		b.WriteString("\n")
	}

	divider := strings.Repeat("-", 80) + "\n"
	for _, t := range texts {
		b.WriteString(divider)
		fmt.Fprintf(&b, "/%s:\n", t.Path)
		b.WriteString(divider)
		for i, line := range splitLines(t.Text) {
			if line == "" {
				fmt.Fprintf(&b, "%d |\n", i+1)
			} else {
				fmt.Fprintf(&b, "%d | %s\n", i+1, line)
			}
		}
		b.WriteString("\n\n")
	}

	return b.String()
}

// renderCopyDir prints directories before files, both lexicographically.
func renderCopyDir(node *copyDirNode, prefix string, b *strings.Builder) {
	dirNames := make([]string, 0, len(node.dirs))
	for name := range node.dirs {
		dirNames = append(dirNames, name)
	}
	sort.Strings(dirNames)
	fileNames := append([]string(nil), node.files...)
	sort.Strings(fileNames)

	entries := len(dirNames) + len(fileNames)
	idx := 0
	writeEntry := func(name string, child *copyDirNode) {
		idx++
		branch, nextPrefix := "├── ", prefix+"│   "
		if idx == entries {
			branch, nextPrefix = "└── ", prefix+"    "
		}
		b.WriteString(prefix)
		b.WriteString(branch)
		b.WriteString(name)
		b.WriteString("\n")
		if child != nil {
			renderCopyDir(child, nextPrefix, b)
		}
	}
	for _, name := range dirNames {
		writeEntry(name, node.dirs[name])
	}
	for _, name := range fileNames {
		writeEntry(name, nil)
	}
}

// splitLines splits on newlines without yielding a phantom empty line for a
// trailing newline.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
