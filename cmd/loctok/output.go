package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/loctok/loctok"
)

var (
	boldStyle = lipgloss.NewStyle().Bold(true)
	dirStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
)

func fmtNum(n int) string {
	return humanize.Comma(int64(n))
}

func printScanHeader(elapsed time.Duration, fileCount int) {
	fmt.Printf("%v (%.2f files/s)\n\n", elapsed, float64(fileCount)/elapsed.Seconds())
}

// encodingInfo maps an encoding name to its vocabulary size and the model
// families that use it.
func encodingInfo(name string) (tokenNumber int, models []string, ok bool) {
	switch name {
	case "o200k_base":
		return 200_000, []string{"GPT-4o", "GPT-4.1", "o1", "o3", "o4"}, true
	case "cl100k_base":
		return 100_000, []string{"ChatGPT", "text-embedding-ada-002"}, true
	case "p50k_base":
		return 50_000, []string{"Code models", "text-davinci-002", "text-davinci-003"}, true
	case "p50k_edit":
		return 50_000, []string{"text-davinci-edit-001", "code-davinci-edit-001"}, true
	case "r50k_base":
		return 50_000, []string{"GPT-3 (davinci)"}, true
	default:
		return 0, nil, false
	}
}

// printLanguageTable renders the by-language summary with a trailing SUM row.
func printLanguageTable(result *loctok.CountResult) {
	rows := loctok.AggregateByLanguage(result.Files)

	sumLines, sumTokens := 0, 0
	for _, r := range rows {
		sumLines += r.Lines
		sumTokens += r.Tokens
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if col > 0 {
				s = s.Align(lipgloss.Right)
			}
			if row == table.HeaderRow {
				s = s.Bold(true)
			}
			return s
		}).
		Headers("Language", "lines of code", "token count")
	for _, r := range rows {
		t.Row(r.Language, fmtNum(r.Lines), fmtNum(r.Tokens))
	}
	t.Row("SUM:", fmtNum(sumLines), fmtNum(sumTokens))

	fmt.Println(t)
}

// printJSON writes the full result with encoding metadata.
func printJSON(path, encoding string, result *loctok.CountResult) error {
	type report struct {
		Path        string               `json:"path"`
		Encoding    string               `json:"encoding"`
		TokenNumber *int                 `json:"token_number"`
		Models      []string             `json:"models"`
		Total       int                  `json:"total"`
		Files       []loctok.FileCount   `json:"files"`
		ByLanguage  []loctok.LangSummary `json:"by_language"`
	}

	doc := report{
		Path:       path,
		Encoding:   encoding,
		Total:      result.Total,
		Files:      result.Files,
		ByLanguage: loctok.AggregateByLanguage(result.Files),
	}
	if n, models, ok := encodingInfo(encoding); ok {
		doc.TokenNumber = &n
		doc.Models = models
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// ----- Tree mode -----

type treeNode struct {
	name     string
	isDir    bool
	lines    int
	tokens   int
	children map[string]*treeNode
}

func newTreeDir(name string) *treeNode {
	return &treeNode{name: name, isDir: true, children: make(map[string]*treeNode)}
}

// relToRoot strips the root prefix from a file path, trying the absolute form
// first and falling back to the argument as given.
func relToRoot(path, rootAbs, rootArg string) string {
	if rel, err := filepath.Rel(rootAbs, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	if rel, err := filepath.Rel(rootArg, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return filepath.Base(path)
}

func buildFileTree(root string, files []loctok.FileCount) *treeNode {
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		rootAbs = root
	}
	rootNode := newTreeDir(filepath.Base(filepath.Clean(root)))

	for _, f := range files {
		rel := filepath.ToSlash(relToRoot(f.Path, rootAbs, root))
		cur := rootNode
		comps := strings.Split(rel, "/")
		for i, name := range comps {
			if i == len(comps)-1 {
				cur.children[name] = &treeNode{name: name, lines: f.Lines, tokens: f.Tokens}
				continue
			}
			child := cur.children[name]
			if child == nil || !child.isDir {
				child = newTreeDir(name)
				cur.children[name] = child
			}
			cur = child
		}
	}

	accumulateTree(rootNode)
	return rootNode
}

func accumulateTree(node *treeNode) {
	if !node.isDir {
		return
	}
	node.lines, node.tokens = 0, 0
	for _, child := range node.children {
		accumulateTree(child)
		node.lines += child.lines
		node.tokens += child.tokens
	}
}

// orderedChildren returns directories before files, each sorted by name.
func orderedChildren(node *treeNode) []*treeNode {
	var dirs, files []*treeNode
	for _, child := range node.children {
		if child.isDir {
			dirs = append(dirs, child)
		} else {
			files = append(files, child)
		}
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].name < dirs[j].name })
	sort.Slice(files, func(i, j int) bool { return files[i].name < files[j].name })
	return append(dirs, files...)
}

func treeLabel(node *treeNode) string {
	if node.isDir {
		return node.name + "/"
	}
	return node.name
}

func visLen(s string) int {
	return utf8.RuneCountInString(s)
}

// printTree renders a LOC/TOK column view of the scanned files.
func printTree(root string, files []loctok.FileCount) {
	tree := buildFileTree(root, files)

	maxLoc, maxTok := 0, 0
	var countWidths func(node *treeNode)
	countWidths = func(node *treeNode) {
		if w := len(fmtNum(node.lines)); w > maxLoc {
			maxLoc = w
		}
		if w := len(fmtNum(node.tokens)); w > maxTok {
			maxTok = w
		}
		for _, child := range node.children {
			countWidths(child)
		}
	}
	countWidths(tree)

	maxLabel := 0
	var labelWidths func(node *treeNode, linePrefix, childPrefix string)
	labelWidths = func(node *treeNode, linePrefix, childPrefix string) {
		if w := visLen(linePrefix) + visLen(treeLabel(node)); w > maxLabel {
			maxLabel = w
		}
		children := orderedChildren(node)
		for i, child := range children {
			branch, nextPrefix := "├── ", childPrefix+"│   "
			if i == len(children)-1 {
				branch, nextPrefix = "└── ", childPrefix+"    "
			}
			labelWidths(child, childPrefix+branch, nextPrefix)
		}
	}
	labelWidths(tree, "", "")

	const gap = "    "
	if maxLoc < len("LOC") {
		maxLoc = len("LOC")
	}
	if maxTok < len("TOK") {
		maxTok = len("TOK")
	}

	pad := func(n int) string {
		if n <= 0 {
			return ""
		}
		return strings.Repeat(" ", n)
	}

	fmt.Printf("%s%s%s%s%s%s%s%s\n",
		boldStyle.Render("Name"), pad(maxLabel-len("Name")),
		gap, pad(maxLoc-len("LOC")), boldStyle.Render("LOC"),
		gap, pad(maxTok-len("TOK")), boldStyle.Render("TOK"))
	fmt.Println(strings.Repeat("-", maxLabel+len(gap)*2+maxLoc+maxTok))

	var printNode func(node *treeNode, linePrefix, childPrefix string)
	printNode = func(node *treeNode, linePrefix, childPrefix string) {
		label := treeLabel(node)
		name := label
		if node.isDir {
			name = dirStyle.Render(label)
		}
		loc := fmtNum(node.lines)
		tok := fmtNum(node.tokens)
		fmt.Printf("%s%s%s%s%s%s%s%s%s\n",
			linePrefix, name, pad(maxLabel-visLen(linePrefix)-visLen(label)),
			gap, pad(maxLoc-len(loc)), loc,
			gap, pad(maxTok-len(tok)), tok)

		children := orderedChildren(node)
		for i, child := range children {
			branch, nextPrefix := "├── ", childPrefix+"│   "
			if i == len(children)-1 {
				branch, nextPrefix = "└── ", childPrefix+"    "
			}
			printNode(child, childPrefix+branch, nextPrefix)
		}
	}
	printNode(tree, "", "")
}
